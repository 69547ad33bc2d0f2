package sync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"campus-sync/core/feed"
	"campus-sync/core/logger"
	"campus-sync/feature/athletics"
	"campus-sync/feature/calendar"
	"campus-sync/feature/sync/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrRunInProgress is returned when a run is requested while another run is
// still executing. The caller should simply wait for the next tick.
var ErrRunInProgress = errors.New("a synchronization run is already in progress")

// Fetcher retrieves calendar documents from the feed. *feed.Client satisfies
// it; tests substitute canned data.
type Fetcher interface {
	SchoolCalendar(ctx context.Context) ([]feed.CalendarEventData, []byte, error)
	AthleticsCalendar(ctx context.Context) (*feed.AthleticsCalendarData, []byte, error)
	AthleticsTeams(ctx context.Context) (feed.TeamsData, []byte, error)
}

// Archiver stores raw feed payloads and failure records for a run.
// *archive.Archive satisfies it. Archiving is best effort: a nil Archiver
// disables it, and archive failures never fail a run.
type Archiver interface {
	SaveSnapshot(ctx context.Context, runID, calendar string, payload []byte) error
	SaveError(ctx context.Context, runID, calendar string, runErr error) error
}

// Runner orchestrates synchronization runs: fetch each calendar from the
// feed, archive the raw payload, hand the records to the owning feature, and
// persist a SyncRun row with the outcome. At most one run executes at a time;
// overlapping requests are rejected with ErrRunInProgress.
type Runner struct {
	mu        sync.Mutex
	db        *gorm.DB
	feed      Fetcher
	archive   Archiver
	calendar  *calendar.Service
	athletics *athletics.Service
	logger    *zap.Logger
}

// NewRunner creates a runner. archive may be nil to disable snapshot
// archiving.
func NewRunner(db *gorm.DB, fetcher Fetcher, archiver Archiver, cal *calendar.Service, ath *athletics.Service, l *zap.Logger) *Runner {
	return &Runner{
		db:        db,
		feed:      fetcher,
		archive:   archiver,
		calendar:  cal,
		athletics: ath,
		logger:    l,
	}
}

// RunCycle synchronizes the school calendar and then the athletics calendar.
// The two halves are independent: a feed failure on one still lets the other
// complete, and both outcomes are recorded. The returned error joins whatever
// failed.
func (r *Runner) RunCycle(ctx context.Context) ([]models.SyncRun, error) {
	if !r.mu.TryLock() {
		return nil, ErrRunInProgress
	}
	defer r.mu.Unlock()

	runID := uuid.NewString()
	l := logger.WithRun(r.logger, runID)
	l.Info("Starting synchronization cycle")

	schoolRun, schoolErr := r.runSchool(ctx, runID, l)
	athleticsRun, athleticsErr := r.runAthletics(ctx, runID, l)

	runs := []models.SyncRun{schoolRun, athleticsRun}
	return runs, errors.Join(schoolErr, athleticsErr)
}

// RunTeams replaces the stored athletics roster with feed data. Roster syncs
// run on demand rather than on the cycle schedule, but they share the same
// single-run guard because a roster replacement deletes every stored event.
func (r *Runner) RunTeams(ctx context.Context) (models.SyncRun, error) {
	if !r.mu.TryLock() {
		return models.SyncRun{}, ErrRunInProgress
	}
	defer r.mu.Unlock()

	runID := uuid.NewString()
	l := logger.WithRun(r.logger, runID)
	l.Info("Starting roster synchronization")

	run := begin(runID, models.CalendarTeams)

	data, raw, err := r.feed.AthleticsTeams(ctx)
	r.snapshot(ctx, runID, models.CalendarTeams, raw, l)
	if err != nil {
		return r.finish(ctx, run, fmt.Errorf("failed to fetch athletics teams: %w", err), l), err
	}

	removed, created, err := r.athletics.ReplaceTeams(ctx, data)
	run.Removed = removed
	run.Created = created
	return r.finish(ctx, run, err, l), err
}

func (r *Runner) runSchool(ctx context.Context, runID string, l *zap.Logger) (models.SyncRun, error) {
	run := begin(runID, models.CalendarSchool)

	records, raw, err := r.feed.SchoolCalendar(ctx)
	r.snapshot(ctx, runID, models.CalendarSchool, raw, l)
	if err != nil {
		err = fmt.Errorf("failed to fetch school calendar: %w", err)
		return r.finish(ctx, run, err, l), err
	}

	removed, created, skipped, err := r.calendar.Replace(ctx, records)
	run.Removed = removed
	run.Created = created
	run.Skipped = skipped
	return r.finish(ctx, run, err, l), err
}

func (r *Runner) runAthletics(ctx context.Context, runID string, l *zap.Logger) (models.SyncRun, error) {
	run := begin(runID, models.CalendarAthletics)

	cal, raw, err := r.feed.AthleticsCalendar(ctx)
	r.snapshot(ctx, runID, models.CalendarAthletics, raw, l)
	if err != nil {
		err = fmt.Errorf("failed to fetch athletics calendar: %w", err)
		return r.finish(ctx, run, err, l), err
	}

	counts, err := r.athletics.Reconcile(ctx, cal)
	run.Changed = counts.Changed
	run.Created = counts.Created
	run.Duplicates = counts.Duplicates
	run.Removed = counts.Removed
	run.Skipped = counts.Skipped
	return r.finish(ctx, run, err, l), err
}

// Runs returns the most recent runs, newest first.
func (r *Runner) Runs(ctx context.Context, limit int) ([]models.SyncRun, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var runs []models.SyncRun
	if err := r.db.WithContext(ctx).Order("started_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list sync runs: %w", err)
	}
	return runs, nil
}

func begin(runID, calendar string) models.SyncRun {
	return models.SyncRun{
		ID:        uuid.NewString(),
		RunID:     runID,
		Calendar:  calendar,
		StartedAt: time.Now().UTC(),
	}
}

// finish stamps the run, records the failure (if any) in the archive, and
// persists the row. Persistence failures are logged but do not replace the
// run's own error.
func (r *Runner) finish(ctx context.Context, run models.SyncRun, runErr error, l *zap.Logger) models.SyncRun {
	now := time.Now().UTC()
	run.FinishedAt = &now
	if runErr != nil {
		run.Error = runErr.Error()
		l.Error("Calendar synchronization failed",
			zap.String("calendar", run.Calendar),
			zap.Error(runErr),
		)
		if r.archive != nil {
			if err := r.archive.SaveError(ctx, run.RunID, run.Calendar, runErr); err != nil {
				l.Warn("Failed to archive error record", zap.Error(err))
			}
		}
	} else {
		l.Info("Calendar synchronized",
			zap.String("calendar", run.Calendar),
			zap.Int("changed", run.Changed),
			zap.Int("created", run.Created),
			zap.Int("duplicates", run.Duplicates),
			zap.Int("removed", run.Removed),
			zap.Int("skipped", run.Skipped),
		)
	}

	if err := r.db.WithContext(ctx).Create(&run).Error; err != nil {
		l.Error("Failed to persist sync run", zap.Error(err))
	}
	return run
}

// snapshot archives the raw payload when there is one. The feed client
// returns the body even on parse failures, so bad payloads get archived too.
func (r *Runner) snapshot(ctx context.Context, runID, calendar string, raw []byte, l *zap.Logger) {
	if r.archive == nil || len(raw) == 0 {
		return
	}
	if err := r.archive.SaveSnapshot(ctx, runID, calendar, raw); err != nil {
		l.Warn("Failed to archive feed snapshot",
			zap.String("calendar", calendar),
			zap.Error(err),
		)
	}
}
