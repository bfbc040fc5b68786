package cmd

import (
	"context"
	"log"

	"novel-hub/core/config"
	"novel-hub/core/database"
	"novel-hub/core/index"
	"novel-hub/core/logger"

	"novel-hub/feature/novel/models"
	"novel-hub/feature/novel/store"
	"novel-hub/feature/search"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const reindexPageSize = 500

// reindexCmd rebuilds the search index from the document store. The store is
// authoritative; the index is a projection, so this recovers from any index
// drift or loss.
var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the search index from the document store",
	Long:  `Pages through every stored work and reprojects it into the search index.`,
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
		if err := db.AutoMigrate(&models.WorkRecord{}); err != nil {
			return err
		}
		idx, err := index.NewBleve(cfg.Index)
		if err != nil {
			return err
		}
		defer idx.Close()

		works := store.NewGormStore(db)
		svc := search.NewService(idx, logg)
		ctx := context.Background()

		total := 0
		for offset := 0; ; offset += reindexPageSize {
			page, err := works.List(ctx, offset, reindexPageSize)
			if err != nil {
				return err
			}
			if len(page) == 0 {
				break
			}
			for _, w := range page {
				if err := svc.SyncWork(ctx, w); err != nil {
					return err
				}
			}
			total += len(page)
			logg.Info("Reindex progress", zap.Int("indexed", total))
		}

		logg.Info("Reindex complete", zap.Int("works", total))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(reindexCmd)
}
