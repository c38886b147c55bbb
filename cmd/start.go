package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"attendance-manager/core/config"
	"attendance-manager/core/database"
	"attendance-manager/core/ledger"
	"attendance-manager/core/loader"
	"attendance-manager/core/logger"
	"attendance-manager/core/masterdata"
	"attendance-manager/core/metrics"
	"attendance-manager/core/middleware/auth"
	"attendance-manager/core/middleware/rayid"
	"attendance-manager/core/storage"
	"attendance-manager/core/syncer"

	attendancefeature "attendance-manager/feature/attendance"
	"attendance-manager/feature/health"
	"attendance-manager/feature/terminals"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "attendance-manager/docs/swagger"
)

// @title Attendance Manager API
// @version 1.0
// @description API for the attendance reconciliation ledger.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the attendance manager server",
	Long:  `Starts the HTTP server, wires the punch sources and loads all enabled features.`,
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

		// 3. Connect to the HR database (optional). Without it the service
		// runs on the in-memory ledger and every punch resolves as
		// unregistered.
		var (
			store    ledger.Store
			provider masterdata.Provider
		)
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Warn("Optional database connection failed, using in-memory ledger", zap.Error(err))
			db = nil
			store = ledger.NewMemoryStore()
			provider = masterdata.NewStaticProvider(nil)
		} else {
			gormStore := ledger.NewGormStore(db)
			if err := gormStore.Migrate(); err != nil {
				logg.Fatal("Failed to migrate ledger table", zap.Error(err))
			}
			store = gormStore
			provider = masterdata.NewGormProvider(db, time.Duration(cfg.Sync.MasterdataTTLSeconds)*time.Second)
			logg.Info("Connected to HR database")
		}

		// 4. Initialize Storage (optional; needed for storage terminals and
		// export uploads)
		var storeClient storage.Client
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage client initialization failed", zap.Error(err))
		} else {
			storeClient = client
		}

		// 5. Wire punch sources
		registry, err := terminals.BuildRegistry(cfg.Terminals, storeClient, cfg.Storage.Bucket, logg)
		if err != nil {
			logg.Fatal("Failed to build terminal registry", zap.Error(err))
		}

		// 6. Sync orchestrator + metrics. One writer serializes every
		// ledger mutation: merge applies, imports and deletes.
		writer := ledger.NewWriter(store)
		m := metrics.New(prometheus.DefaultRegisterer)
		sync := syncer.New(writer, provider, m, logg)

		// 7. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID must be first to trace everything.
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

		// Public endpoints: docs and metrics scrape.
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", metrics.Handler())

		// Auth protects the ledger API.
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		mgr := loader.NewManager()
		mgr.Register(attendancefeature.NewFeature(store, writer, sync, registry, storeClient, cfg.Storage.Bucket, logg))
		mgr.Register(health.NewFeature(db, storeClient, cfg.Storage.Bucket, registry, logg))
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.Int("terminals", len(registry.ListAvailable())),
			)
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
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
