package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"skinfolio/core/cache"
	"skinfolio/core/config"
	"skinfolio/core/database"
	"skinfolio/core/loader"
	"skinfolio/core/logger"
	"skinfolio/core/middleware/auth"
	"skinfolio/core/middleware/rayid"
	"skinfolio/core/storage"
	"skinfolio/feature/audit"
	"skinfolio/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Skinfolio API
// @version 1.0
// @description API for syncing and reading valued Steam inventory snapshots.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the inventory sync server",
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

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}

		// 4. Object storage for the raw payload archive (optional)
		var store storage.Client
		if cfg.Storage.Enabled {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Warn("Payload archiving disabled, storage client failed", zap.Error(err))
				store = nil
			}
		}

		// 5. Cooldown cache backend
		var cooldown cache.Cache
		if cfg.Cache.Backend == "redis" {
			redisCache, err := cache.NewRedisCache(cfg.Cache)
			if err != nil {
				logg.Warn("Falling back to memory cache", zap.Error(err))
				cooldown = cache.NewMemoryCache()
			} else {
				cooldown = redisCache
			}
		} else {
			cooldown = cache.NewMemoryCache()
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 7. Feature registration
		mgr := loader.NewManager()
		invFeature := inventory.NewFeature(db, store, cfg.Storage.Bucket, cooldown, cfg.Steam, cfg.Sync, logg)
		mgr.Register(invFeature)
		mgr.Register(audit.NewFeature(db, store, cfg.Storage.Bucket, logg))

		// Middleware: RayID first so everything downstream is traceable
		app.Use(rayid.New())

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

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
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
