package cmd

import (
	"context"
	"fmt"

	"campus-sync/core/archive"
	"campus-sync/core/config"
	"campus-sync/core/database"
	"campus-sync/core/feed"
	"campus-sync/core/logger"
	"campus-sync/core/push"
	"campus-sync/core/storage"
	"campus-sync/feature/athletics"
	athleticsmodels "campus-sync/feature/athletics/models"
	"campus-sync/feature/calendar"
	calendarmodels "campus-sync/feature/calendar/models"
	syncfeature "campus-sync/feature/sync"
	syncmodels "campus-sync/feature/sync/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd is the parent command for one-shot synchronization runs.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run a synchronization once and exit",
	Long: `Run a synchronization against the calendar feed without starting the
server. Useful for cron-driven deployments and manual runs.`,
}

// syncCalendarsCmd runs one full cycle: school calendar, then athletics.
var syncCalendarsCmd = &cobra.Command{
	Use:   "calendars",
	Short: "Synchronize the school and athletics calendars",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, l, err := buildRunner()
		if err != nil {
			return err
		}

		runs, err := runner.RunCycle(context.Background())
		for _, run := range runs {
			l.Info("Run finished",
				zap.String("calendar", run.Calendar),
				zap.Bool("succeeded", run.Succeeded()),
				zap.Int("changed", run.Changed),
				zap.Int("created", run.Created),
				zap.Int("duplicates", run.Duplicates),
				zap.Int("removed", run.Removed),
				zap.Int("skipped", run.Skipped),
			)
		}
		return err
	},
}

// syncTeamsCmd replaces the stored athletics roster from the feed.
var syncTeamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Replace the athletics team roster (deletes all stored events)",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, l, err := buildRunner()
		if err != nil {
			return err
		}

		run, err := runner.RunTeams(context.Background())
		l.Info("Roster run finished",
			zap.Bool("succeeded", run.Succeeded()),
			zap.Int("removed", run.Removed),
			zap.Int("created", run.Created),
		)
		return err
	},
}

// buildRunner wires a sync runner from configuration, the way the start
// command does, minus the HTTP server.
func buildRunner() (*syncfeature.Runner, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := calendarmodels.AutoMigrate(db); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate calendar tables: %w", err)
	}
	if err := athleticsmodels.AutoMigrate(db); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate athletics tables: %w", err)
	}
	if err := syncmodels.AutoMigrate(db); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate sync tables: %w", err)
	}

	var archiver syncfeature.Archiver
	if client, err := storage.NewClient(cfg.Storage); err != nil {
		l.Warn("Optional archive storage unavailable", zap.Error(err))
	} else {
		a := archive.New(client, cfg.Storage.Bucket)
		if err := a.EnsureBucket(context.Background()); err != nil {
			l.Warn("Optional archive bucket unavailable", zap.Error(err))
		} else {
			archiver = a
		}
	}

	calSvc := calendar.NewService(db, l)
	athSvc := athletics.NewService(db, push.NewDispatcher(cfg.Push), l)
	return syncfeature.NewRunner(db, feed.NewClient(cfg.Feed), archiver, calSvc, athSvc, l), l, nil
}

func init() {
	syncCmd.AddCommand(syncCalendarsCmd)
	syncCmd.AddCommand(syncTeamsCmd)
	RootCmd.AddCommand(syncCmd)
}
