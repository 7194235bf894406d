package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"locale-manager/core/config"
	"locale-manager/core/loader"
	"locale-manager/core/logger"
	"locale-manager/core/middleware/auth"
	"locale-manager/core/middleware/rayid"
	"locale-manager/feature/editor"
	"locale-manager/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "locale-manager/docs/swagger"
)

// @title Locale Manager API
// @version 1.0
// @description API for reconciling and editing translation locales.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the locale manager server",
	Long:  `Starts the HTTP server, opens the initial language and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

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

		// 3. Storage, locale source, preferences and editor session
		deps, err := setup(ctx, cfg, logg)
		if err != nil {
			logg.Fatal("Failed to initialize services", zap.Error(err))
		}

		// 4. Open the initial language. A failure leaves the session empty; clients can load later.
		if err := deps.editor.Start(ctx, systemLanguages()...); err != nil {
			logg.Warn("Initial language load failed", zap.Error(err))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			Immutable:             true, // Request values outlive handlers in the editor session
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(editor.NewFeature(deps.editor))
		mgr.Register(integrity.NewFeature(
			integrity.NewService(deps.store, cfg.Storage.Bucket, cfg.Locales, deps.provider, deps.db, logg),
		))

		// Middleware Registration
		// RayID first so every log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			start := time.Now()
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
			l.Debug("Request finished",
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("elapsed", time.Since(start)),
			)
			return err
		})

		// Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(deps.metrics.Handler()))

		app.Use(auth.New(auth.Config{
			ApiKey:      cfg.Server.ApiKey,
			PublicPaths: []string{"/swagger", "/metrics"},
		}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("base", cfg.Locales.Base),
				zap.String("source", cfg.Locales.Source),
				zap.Strings("features", mgr.Enabled()),
			)
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		sig, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-sig.Done()
		logg.Info("Shutting down server...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
