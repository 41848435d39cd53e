package cmd

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"skinfolio/core/config"
	"skinfolio/core/database"
	"skinfolio/core/logger"
	"skinfolio/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncForce   bool
	syncConsent bool
)

// syncCmd runs a one-shot inventory sync for a single user.
var syncCmd = &cobra.Command{
	Use:   "sync <user-id>",
	Short: "Sync one user's inventory from the command line",
	Long: `Runs a single inventory synchronization for the given internal user id
and prints the resulting aggregates. Useful for debugging fetch, matching
and persistence without going through the HTTP API.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid user id %q: %w", args[0], err)
		}

		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		feature := inventory.NewFeature(db, nil, "", nil, cfg.Steam, cfg.Sync, logg)
		result := feature.Service().Sync(context.Background(), uint(userID), inventory.SyncOptions{
			ConsentGiven: syncConsent,
			Force:        syncForce,
		})

		if !result.Success {
			return fmt.Errorf("sync failed: %s (%s)", result.Error, result.Message)
		}

		logg.Info("Sync complete",
			zap.Int("items_imported", result.ItemsImported),
			zap.Int("unmatched_items", result.UnmatchedItems),
			zap.String("total_value", result.TotalValue.String()),
			zap.Bool("cached", result.Cached))
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncForce, "force", false, "bypass the staleness check and always fetch")
	syncCmd.Flags().BoolVar(&syncConsent, "consent", false, "confirm the user has consented to syncing")
	RootCmd.AddCommand(syncCmd)
}
