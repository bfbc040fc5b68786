package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"novel-hub/core/cache"
	"novel-hub/core/config"
	"novel-hub/core/database"
	"novel-hub/core/index"
	"novel-hub/core/loader"
	"novel-hub/core/logger"
	"novel-hub/core/middleware/auth"
	"novel-hub/core/middleware/rayid"
	"novel-hub/core/storage"

	"novel-hub/feature/favorite"
	"novel-hub/feature/novel"
	"novel-hub/feature/novel/audit"
	"novel-hub/feature/novel/models"
	"novel-hub/feature/novel/provider"
	"novel-hub/feature/novel/store"
	"novel-hub/feature/rank"
	"novel-hub/feature/search"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "novel-hub/docs/swagger"
)

// @title Novel Hub API
// @version 1.0
// @description API for aggregating serialized web fiction.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the novel hub server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to the Document Store
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(&models.WorkRecord{}, &favorite.Record{}, &audit.Record{}); err != nil {
			logg.Fatal("Failed to migrate database", zap.Error(err))
		}

		// 4. Initialize Storage (Optional - covers are a best-effort mirror)
		var covers *novel.CoverMirror
		if cfg.Sync.MirrorCovers {
			if client, err := storage.NewClient(cfg.Storage); err != nil {
				logg.Warn("Optional storage connection failed, cover mirroring disabled", zap.Error(err))
			} else {
				covers = novel.NewCoverMirror(client, cfg.Storage.Bucket)
			}
		}

		// 5. Initialize Redis (Optional - rank listings fall back to live fetches)
		var rdb *redis.Client
		if client, err := cache.New(cfg.Cache); err != nil {
			logg.Warn("Optional redis connection failed, rank caching disabled", zap.Error(err))
		} else {
			rdb = client
		}

		// 6. Open the Search Index
		idx, err := index.NewBleve(cfg.Index)
		if err != nil {
			logg.Fatal("Failed to open search index", zap.Error(err))
		}
		defer idx.Close()

		// 7. Assemble Services
		works := store.NewGormStore(db)
		favorites := favorite.NewGormStore(db)
		providers := provider.NewRegistry(provider.Builtins(
			cfg.Sync.GatewayURL,
			time.Duration(cfg.Sync.ProviderTimeoutSeconds)*time.Second,
		)...)

		searchSvc := search.NewService(idx, logg)
		novelSvc := novel.NewService(
			works,
			providers,
			searchSvc,
			favorites,
			audit.NewGormRecorder(db),
			covers,
			logg,
			time.Duration(cfg.Sync.FreshnessMinutes)*time.Minute,
		)
		rankSvc := rank.NewService(providers, works, rdb, logg,
			time.Duration(cfg.Cache.RankTTLMinutes)*time.Minute)

		// 8. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 9. Register Features
		mgr := loader.NewManager()
		mgr.Register(novel.NewFeature(novelSvc))
		mgr.Register(search.NewFeature(searchSvc))
		mgr.Register(favorite.NewFeature(favorites, logg))
		mgr.Register(rank.NewFeature(rankSvc))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 10. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 11. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.Strings("providers", providers.Names()))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 12. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
