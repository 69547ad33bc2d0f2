package athletics

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"campus-sync/core/feed"
	"campus-sync/feature/athletics/models"

	"gorm.io/gorm"
)

// ErrUnknownTeam is returned when a feed record names a team that does not
// exist in the roster. The reconciler skips such records instead of failing
// the run.
var ErrUnknownTeam = errors.New("unknown team")

// EventStore is the storage surface the reconciler operates on. The gorm
// Store is the production implementation; tests substitute an in-memory one.
type EventStore interface {
	// EventIndex returns every stored event keyed by hash code. It seeds the
	// reconciler's remaining index before the category passes.
	EventIndex(ctx context.Context) (map[string]*models.AthleticsEvent, error)
	// CreateEvent persists a new event and appends it to the named team's
	// games or practices. Returns ErrUnknownTeam if the team is not stored.
	CreateEvent(ctx context.Context, teamName string, ev *models.AthleticsEvent) error
	// UpdateEvent persists an event mutated by the differ.
	UpdateEvent(ctx context.Context, ev *models.AthleticsEvent) error
	// DeleteEvents removes events in bulk.
	DeleteEvents(ctx context.Context, events []*models.AthleticsEvent) error
}

// Store is the gorm-backed athletics store.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store on the given database.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// EventIndex loads all stored events into a hash-code keyed map.
func (s *Store) EventIndex(ctx context.Context) (map[string]*models.AthleticsEvent, error) {
	var events []models.AthleticsEvent
	if err := s.db.WithContext(ctx).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to load event index: %w", err)
	}

	index := make(map[string]*models.AthleticsEvent, len(events))
	for i := range events {
		index[events[i].HashCode] = &events[i]
	}
	return index, nil
}

// CreateEvent persists a new event and appends it to its team's collection.
// The append position is the current size of that team's collection for the
// event's kind, so feed order is preserved across runs.
func (s *Store) CreateEvent(ctx context.Context, teamName string, ev *models.AthleticsEvent) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var team models.AthleticsTeam
		err := tx.Where("team_name = ?", teamName).First(&team).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrUnknownTeam, teamName)
		}
		if err != nil {
			return fmt.Errorf("failed to look up team %q: %w", teamName, err)
		}

		var position int64
		if err := tx.Model(&models.AthleticsEvent{}).
			Where("team_id = ? AND kind = ?", team.ID, ev.Kind).
			Count(&position).Error; err != nil {
			return fmt.Errorf("failed to count team events: %w", err)
		}

		ev.TeamID = team.ID
		ev.Position = int(position)

		if err := tx.Create(ev).Error; err != nil {
			return fmt.Errorf("failed to create event %q: %w", ev.HashCode, err)
		}
		return nil
	})
}

// UpdateEvent persists a mutated event.
func (s *Store) UpdateEvent(ctx context.Context, ev *models.AthleticsEvent) error {
	if err := s.db.WithContext(ctx).Save(ev).Error; err != nil {
		return fmt.Errorf("failed to update event %q: %w", ev.HashCode, err)
	}
	return nil
}

// DeleteEvents removes the given events in one bulk delete.
func (s *Store) DeleteEvents(ctx context.Context, events []*models.AthleticsEvent) error {
	if len(events) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(events))
	for _, ev := range events {
		ids = append(ids, ev.ID)
	}

	if err := s.db.WithContext(ctx).Delete(&models.AthleticsEvent{}, ids).Error; err != nil {
		return fmt.Errorf("failed to delete events: %w", err)
	}
	return nil
}

// ReplaceTeams deletes every stored team (and, through ownership, every
// event) and recreates the roster from feed data. Returns the number of
// teams removed and created.
func (s *Store) ReplaceTeams(ctx context.Context, data feed.TeamsData) (removed, created int, err error) {
	teams := teamsFromFeed(data)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.AthleticsTeam{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count teams: %w", err)
		}
		removed = int(count)

		// Team deletion owns its events; sqlite test databases do not
		// always enforce the FK cascade, so delete events explicitly.
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.AthleticsEvent{}).Error; err != nil {
			return fmt.Errorf("failed to delete events: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.AthleticsTeam{}).Error; err != nil {
			return fmt.Errorf("failed to delete teams: %w", err)
		}

		if len(teams) > 0 {
			if err := tx.CreateInBatches(teams, 100).Error; err != nil {
				return fmt.Errorf("failed to create teams: %w", err)
			}
		}
		created = len(teams)
		return nil
	})
	return removed, created, err
}

// Teams returns all teams with their events preloaded in append order.
func (s *Store) Teams(ctx context.Context) ([]models.AthleticsTeam, error) {
	var teams []models.AthleticsTeam
	err := s.db.WithContext(ctx).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("team_name ASC").
		Find(&teams).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// TeamEvents returns one team's events, optionally filtered by kind, in
// append order. Returns ErrUnknownTeam if the team is not stored.
func (s *Store) TeamEvents(ctx context.Context, teamName, kind string) ([]models.AthleticsEvent, error) {
	var team models.AthleticsTeam
	err := s.db.WithContext(ctx).Where("team_name = ?", teamName).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTeam, teamName)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up team %q: %w", teamName, err)
	}

	q := s.db.WithContext(ctx).Where("team_id = ?", team.ID)
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}

	var events []models.AthleticsEvent
	if err := q.Order("position ASC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list team events: %w", err)
	}
	return events, nil
}

// teamsFromFeed flattens the season-to-teams map into team rows. Seasons are
// visited in sorted order so the replacement is deterministic.
func teamsFromFeed(data feed.TeamsData) []models.AthleticsTeam {
	seasons := make([]string, 0, len(data))
	for season := range data {
		seasons = append(seasons, season)
	}
	sort.Strings(seasons)

	var teams []models.AthleticsTeam
	for _, season := range seasons {
		for _, name := range data[season] {
			teams = append(teams, models.AthleticsTeam{
				TeamName: name,
				Season:   season,
			})
		}
	}
	return teams
}
