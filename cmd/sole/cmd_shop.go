// Package main implements the shop listing command.
// This file handles catalog browsing with composable facet filters and the
// gait match mode.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"secondsole/internal/catalog"
	"secondsole/internal/shop"
	"secondsole/internal/types"
)

var (
	shopMatch    bool
	shopWatch    bool
	shopCategory string
	shopGender   string
	shopBrands   []string
	shopSupport  string
	shopCushion  string
)

// shopCmd lists the inventory through the filter pipeline.
var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse the inventory",
	Long: `Browse the store inventory.

Facet filters compose: --match narrows to your gait matches and combines with
every other filter instead of replacing them. Match mode needs a non-guest
profile with gait answers (see 'sole gait').`,
	RunE: runShop,
}

// buildShopFilter assembles the engine filter from the command flags.
func buildShopFilter() shop.Filter {
	return shop.Filter{
		MatchMode: shopMatch,
		Category:  types.Category(normalizeAll(shopCategory)),
		Gender:    types.Gender(normalizeAll(shopGender)),
		Brands:    shopBrands,
		Support:   types.Support(normalizeAll(shopSupport)),
		Cushion:   types.Cushion(normalizeAll(shopCushion)),
	}
}

// normalizeAll maps the user-facing "All" sentinel onto the engine's zero
// value.
func normalizeAll(v string) string {
	if strings.EqualFold(v, "all") {
		return ""
	}
	return v
}

func runShop(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	filter := buildShopFilter()
	printShoes(a.engine.Apply(filter))

	if !shopWatch {
		return nil
	}
	if a.cfg.Catalog.Path == "" {
		return fmt.Errorf("--watch needs a file-backed catalog (set catalog.path in the config)")
	}

	watcher, err := catalog.WatchFile(a.cfg.Catalog.Path, logger, func(c *catalog.Catalog) {
		a.engine.SetCatalog(c)
		fmt.Println("\nStock changed:")
		printShoes(a.engine.Apply(filter))
	})
	if err != nil {
		return fmt.Errorf("failed to watch catalog: %w", err)
	}
	defer watcher.Close()

	fmt.Println("\nWatching for stock changes. Ctrl+C to stop.")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	return nil
}

func printShoes(shoes []types.Shoe) {
	if len(shoes) == 0 {
		fmt.Println("No inventory matches these specific filters.")
		return
	}
	fmt.Println(strings.Repeat("─", 72))
	for _, s := range shoes {
		pick := ""
		if s.IsStaffPick {
			pick = "  ★ Staff Pick"
		}
		fmt.Printf("  %-22s %-20s $%-6.0f %s/%s/%s%s\n",
			s.ID, s.Brand+" "+s.Name, s.Price, s.Category, s.Support, s.Cushion, pick)
	}
	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("Total: %d shoes\n", len(shoes))
}

func init() {
	shopCmd.Flags().BoolVar(&shopMatch, "match", false, "only show gait matches")
	shopCmd.Flags().BoolVar(&shopWatch, "watch", false, "keep running and reprint when the catalog file changes")
	shopCmd.Flags().StringVar(&shopCategory, "category", "All", "Road, Trail, Track, Hybrid")
	shopCmd.Flags().StringVar(&shopGender, "gender", "All", "Men, Women (Unisex always passes)")
	shopCmd.Flags().StringSliceVar(&shopBrands, "brand", nil, "brand filter, repeatable")
	shopCmd.Flags().StringVar(&shopSupport, "support", "All", "Neutral, Stability")
	shopCmd.Flags().StringVar(&shopCushion, "cushion", "All", "Firm, Balanced, Plush")
	rootCmd.AddCommand(shopCmd)
}
