// Package main implements the cart commands.
// This file handles cart mutations, the badge count, and checkout.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	cartSize float64
	cartQty  int
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage your bag",
	Long: `Manage the in-store pickup bag.

Lines are keyed by shoe and size; adding the same shoe in the same size again
bumps the quantity instead of adding a second line.`,
	RunE: runCartList,
}

var cartAddCmd = &cobra.Command{
	Use:   "add <shoe-id>",
	Short: "Add a shoe to the bag",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartAdd,
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <shoe-id>",
	Short: "Remove a line from the bag",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartRemove,
}

var cartListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the bag",
	RunE:  runCartList,
}

var cartCheckoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Reserve the bag for in-store pickup",
	RunE:  runCartCheckout,
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	shoeID := args[0]
	if _, ok := a.catalog.Lookup(shoeID); !ok {
		return fmt.Errorf("unknown shoe id %q; see 'sole shop'", shoeID)
	}

	cancel := a.ledger.Subscribe(func(count int) {
		fmt.Printf("🛍  Bag (%d)\n", count)
	})
	defer cancel()

	if !a.ledger.AddItem(shoeID, cartSize, cartQty) {
		return fmt.Errorf("quantity must be at least 1")
	}
	return nil
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	cancel := a.ledger.Subscribe(func(count int) {
		fmt.Printf("🛍  Bag (%d)\n", count)
	})
	defer cancel()

	a.ledger.RemoveItem(args[0], cartSize)
	return nil
}

func runCartList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	items := a.ledger.Items()
	if len(items) == 0 {
		fmt.Println("Your bag is empty. Your next PB is waiting in the shop.")
		return nil
	}

	fmt.Println(strings.Repeat("─", 56))
	for _, item := range items {
		name := item.ShoeID
		price := "—"
		if shoe, ok := a.catalog.Lookup(item.ShoeID); ok {
			name = shoe.Brand + " " + shoe.Name
			price = fmt.Sprintf("$%.0f", shoe.Price)
		}
		fmt.Printf("  %-28s size %-5.1f x%-3d %s\n", name, item.Size, item.Quantity, price)
	}
	fmt.Println(strings.Repeat("─", 56))
	fmt.Printf("Items: %d   Subtotal: $%.2f\n", a.ledger.Count(), a.ledger.Subtotal(a.catalog))
	return nil
}

func runCartCheckout(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if len(a.ledger.Items()) == 0 {
		return fmt.Errorf("the bag is empty")
	}

	subtotal := a.ledger.Subtotal(a.catalog)
	a.ledger.Clear()

	fmt.Println("✅ Order confirmed.")
	fmt.Printf("Total: $%.2f — show this confirmation at the Second Sole Medina counter.\n", subtotal)
	return nil
}

func init() {
	cartAddCmd.Flags().Float64Var(&cartSize, "size", 9, "US shoe size")
	cartAddCmd.Flags().IntVar(&cartQty, "qty", 1, "quantity")
	cartRemoveCmd.Flags().Float64Var(&cartSize, "size", 9, "US shoe size")

	cartCmd.AddCommand(cartAddCmd, cartRemoveCmd, cartListCmd, cartCheckoutCmd)
	rootCmd.AddCommand(cartCmd)
}
