package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"menu-manager/core/baseline"
	"menu-manager/core/config"
	"menu-manager/core/loader"
	"menu-manager/core/logger"
	"menu-manager/core/middleware/auth"
	"menu-manager/core/middleware/rayid"

	"menu-manager/feature/integrity"
	"menu-manager/feature/menu"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "menu-manager/docs/swagger"
)

// @title Menu Manager API
// @version 1.0
// @description API for managing a menu of dishes and syncing it with a baseline document.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the menu manager server",
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
		logg = logg.With(zap.String("mode", cfg.Reconcile.Mode))

		// 3. Storage, staging database and coordinator
		svcs, err := newServices(cfg, logg)
		if err != nil {
			logg.Fatal("Failed to initialize services", zap.Error(err))
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager(logg)

		menuFeature := menu.NewFeature(svcs.coordinator, logg)
		mgr.Register(menuFeature)
		mgr.Register(integrity.NewFeature(svcs.client, cfg.Storage.Bucket, []string{cfg.Baseline.Object}, svcs.db, logg))

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

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Watch a file baseline so edits show up without a restart
		if fileSource, ok := svcs.source.(*baseline.FileSource); ok && cfg.Baseline.Watch {
			watcher, err := fileSource.NewWatcher(logg)
			if err != nil {
				logg.Warn("Baseline watcher disabled", zap.Error(err))
			} else {
				svc := menuFeature.Service()
				go watcher.Run(ctx, func() {
					svc.InvalidateBaseline()
					svc.Load(ctx)
				})
				logg.Info("Watching baseline file", zap.String("path", fileSource.Path()))
			}
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
