package cmd

import (
	"context"
	"log"
	"time"

	"novel-hub/core/config"
	"novel-hub/core/database"
	"novel-hub/core/index"
	"novel-hub/core/logger"

	"novel-hub/feature/favorite"
	"novel-hub/feature/novel"
	"novel-hub/feature/novel/audit"
	"novel-hub/feature/novel/models"
	"novel-hub/feature/novel/provider"
	"novel-hub/feature/novel/store"
	"novel-hub/feature/search"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd runs one synchronization cycle for a single work, ignoring the
// freshness window. Useful for debugging provider adapters and merges.
var syncCmd = &cobra.Command{
	Use:   "sync <provider> <work-id>",
	Short: "Synchronize one work immediately",
	Long:  `Fetches a single work from its provider, merges and persists it, bypassing the freshness window.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}
		if err := db.AutoMigrate(&models.WorkRecord{}, &favorite.Record{}, &audit.Record{}); err != nil {
			return err
		}
		idx, err := index.NewBleve(cfg.Index)
		if err != nil {
			return err
		}
		defer idx.Close()

		providers := provider.NewRegistry(provider.Builtins(
			cfg.Sync.GatewayURL,
			time.Duration(cfg.Sync.ProviderTimeoutSeconds)*time.Second,
		)...)
		svc := novel.NewService(
			store.NewGormStore(db),
			providers,
			search.NewService(idx, logg),
			favorite.NewGormStore(db),
			audit.NewGormRecorder(db),
			nil,
			logg,
			time.Duration(cfg.Sync.FreshnessMinutes)*time.Minute,
		)

		key := models.WorkKey{Provider: args[0], WorkID: args[1]}
		// A nanosecond window makes any existing record stale.
		work, err := svc.GetAndSync(context.Background(), key, time.Nanosecond)
		if err != nil {
			return err
		}

		logg.Info("Synchronized",
			zap.String("provider", work.Provider),
			zap.String("work_id", work.WorkID),
			zap.String("title", work.Title),
			zap.Int("chapters", len(work.Toc)),
			zap.Time("sync_at", work.SyncAt),
			zap.Time("update_at", work.UpdateAt),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
}
