package athletics

import (
	"context"

	"campus-sync/core/feed"
	"campus-sync/core/push"
	"campus-sync/feature/athletics/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles athletics calendar operations.
type Service struct {
	store      *Store
	reconciler *Reconciler
	logger     *zap.Logger
}

// NewService creates a new athletics service.
func NewService(db *gorm.DB, dispatcher push.Dispatcher, logger *zap.Logger) *Service {
	store := NewStore(db)
	notifier := NewNotifier(dispatcher, logger)
	return &Service{
		store:      store,
		reconciler: NewReconciler(store, notifier, logger),
		logger:     logger,
	}
}

// Reconcile merges one fetched athletics calendar into storage.
func (s *Service) Reconcile(ctx context.Context, cal *feed.AthleticsCalendarData) (Counts, error) {
	return s.reconciler.Run(ctx, cal)
}

// ReplaceTeams replaces the stored roster with feed data.
func (s *Service) ReplaceTeams(ctx context.Context, data feed.TeamsData) (removed, created int, err error) {
	return s.store.ReplaceTeams(ctx, data)
}

// Teams returns all teams with their events.
func (s *Service) Teams(ctx context.Context) ([]models.AthleticsTeam, error) {
	return s.store.Teams(ctx)
}

// TeamEvents returns one team's events, optionally filtered by kind.
func (s *Service) TeamEvents(ctx context.Context, teamName, kind string) ([]models.AthleticsEvent, error) {
	return s.store.TeamEvents(ctx, teamName, kind)
}
