// Package main implements the sole CLI, the storefront for the secondsole
// core: gait quiz, match-aware shop listings, cart, rotation tracking, and
// the community calendar. All state lives in a single local record; there is
// no backend.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"secondsole/internal/cart"
	"secondsole/internal/catalog"
	"secondsole/internal/config"
	"secondsole/internal/profile"
	"secondsole/internal/rotation"
	"secondsole/internal/shop"
	"secondsole/internal/store"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sole",
	Short: "Second Sole Medina - local-first run specialty shop",
	Long: `sole is the Second Sole Medina companion.

It matches shoes from the store inventory to your gait profile, tracks the
mileage on your rotation, and keeps a cart for in-store pickup. Everything is
stored in one local record on this device; nothing leaves it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		zcfg := zap.NewProductionConfig()
		if cfg.Logging.Development {
			zcfg = zap.NewDevelopmentConfig()
		}
		level, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			level = zapcore.InfoLevel
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		appConfig = cfg
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// appConfig is the loaded configuration, set by PersistentPreRunE.
var appConfig config.Config

// app bundles the wired core for one command invocation.
type app struct {
	cfg     config.Config
	kv      *store.SQLiteKV
	repo    *profile.Repository
	ledger  *cart.Ledger
	tracker *rotation.Tracker
	catalog *catalog.Catalog
	engine  *shop.Engine
}

// openApp wires the store, repositories, and engines from the loaded config.
func openApp() (*app, error) {
	kv, err := store.NewSQLiteKV(appConfig.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	cat := catalog.Seeded()
	if appConfig.Catalog.Path != "" {
		cat, err = catalog.Load(appConfig.Catalog.Path)
		if err != nil {
			kv.Close()
			return nil, err
		}
	}

	st := store.New(kv, appConfig.Store.Key, logger)
	repo := profile.NewRepository(st)
	return &app{
		cfg:     appConfig,
		kv:      kv,
		repo:    repo,
		ledger:  cart.NewLedger(repo),
		tracker: rotation.NewTracker(repo),
		catalog: cat,
		engine:  shop.NewEngine(repo, cat),
	}, nil
}

func (a *app) Close() {
	if err := a.kv.Close(); err != nil {
		logger.Warn("failed to close store", zap.Error(err))
	}
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
