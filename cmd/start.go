package cmd

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"campus-sync/core/archive"
	"campus-sync/core/config"
	"campus-sync/core/database"
	"campus-sync/core/feed"
	"campus-sync/core/loader"
	"campus-sync/core/logger"
	"campus-sync/core/middleware/auth"
	"campus-sync/core/middleware/rayid"
	"campus-sync/core/push"
	"campus-sync/core/storage"

	"campus-sync/feature/athletics"
	athleticsmodels "campus-sync/feature/athletics/models"
	"campus-sync/feature/calendar"
	calendarmodels "campus-sync/feature/calendar/models"
	syncfeature "campus-sync/feature/sync"
	syncmodels "campus-sync/feature/sync/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "campus-sync/docs/swagger"
)

// @title Campus Sync API
// @version 1.0
// @description API for synchronizing school and athletics calendars.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the campus sync server",
	Long:  `Starts the HTTP server, the sync scheduler, and all enabled features.`,
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
		if err := calendarmodels.AutoMigrate(db); err != nil {
			logg.Fatal("Failed to migrate calendar tables", zap.Error(err))
		}
		if err := athleticsmodels.AutoMigrate(db); err != nil {
			logg.Fatal("Failed to migrate athletics tables", zap.Error(err))
		}
		if err := syncmodels.AutoMigrate(db); err != nil {
			logg.Fatal("Failed to migrate sync tables", zap.Error(err))
		}

		// 4. Initialize Archive Storage (Optional)
		// Runs work without it; snapshots are just not kept.
		var arc *archive.Archive
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional archive storage unavailable", zap.Error(err))
		} else {
			a := archive.New(client, cfg.Storage.Bucket)
			if err := a.EnsureBucket(context.Background()); err != nil {
				logg.Warn("Optional archive bucket unavailable", zap.Error(err))
			} else {
				arc = a
			}
		}

		// 5. Wire Features
		feedClient := feed.NewClient(cfg.Feed)
		dispatcher := push.NewDispatcher(cfg.Push)

		calendarFeature := calendar.NewFeature(db, logg)
		athleticsFeature := athletics.NewFeature(db, dispatcher, logg)

		var archiver syncfeature.Archiver
		if arc != nil {
			archiver = arc
		}
		runner := syncfeature.NewRunner(db, feedClient, archiver,
			calendarFeature.Service(), athleticsFeature.Service(), logg)
		syncFeature := syncfeature.NewFeature(runner)

		mgr := loader.NewManager()
		mgr.Register(calendarFeature)
		mgr.Register(athleticsFeature)
		mgr.Register(syncFeature)

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID first so everything downstream is traceable.
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

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Sync Scheduler
		var scheduler *cron.Cron
		if cfg.Server.IsScheduled() {
			scheduler = cron.New()
			_, err := scheduler.AddFunc(cfg.Server.SyncSchedule, func() {
				if _, err := runner.RunCycle(context.Background()); err != nil {
					if errors.Is(err, syncfeature.ErrRunInProgress) {
						logg.Warn("Skipping scheduled sync, previous run still going")
						return
					}
					logg.Error("Scheduled sync failed", zap.Error(err))
				}
			})
			if err != nil {
				logg.Fatal("Invalid sync schedule", zap.Error(err))
			}
			scheduler.Start()
			logg.Info("Sync scheduler started", zap.String("schedule", cfg.Server.SyncSchedule))
		} else {
			logg.Info("Sync scheduler disabled, runs are manual only")
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if scheduler != nil {
			<-scheduler.Stop().Done()
		}
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
