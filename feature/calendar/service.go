package calendar

import (
	"context"
	"fmt"

	"campus-sync/core/feed"
	"campus-sync/feature/calendar/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles school calendar operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new calendar service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Replace overwrites the entire stored school calendar with feed data:
// delete everything, then bulk-create one event per incoming record. Records
// missing a name or start time are skipped with a warning.
func (s *Service) Replace(ctx context.Context, records []feed.CalendarEventData) (removed, created, skipped int, err error) {
	events := make([]models.CalendarEvent, 0, len(records))
	for _, rec := range records {
		if rec.EventName == "" || rec.StartDateTime.IsZero() {
			skipped++
			s.logger.Warn("Skipping malformed school calendar record",
				zap.String("event_name", rec.EventName))
			continue
		}
		events = append(events, models.CalendarEvent{
			EventName:     rec.EventName,
			StartDateTime: rec.StartDateTime,
			EndDateTime:   rec.EndDateTime,
			Location:      rec.Location,
		})
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.CalendarEvent{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count calendar events: %w", err)
		}
		removed = int(count)

		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CalendarEvent{}).Error; err != nil {
			return fmt.Errorf("failed to delete calendar events: %w", err)
		}

		if len(events) > 0 {
			if err := tx.CreateInBatches(events, 100).Error; err != nil {
				return fmt.Errorf("failed to create calendar events: %w", err)
			}
		}
		created = len(events)
		return nil
	})

	if err == nil {
		s.logger.Info("School calendar replaced",
			zap.Int("removed", removed),
			zap.Int("created", created),
			zap.Int("skipped", skipped),
		)
	}
	return removed, created, skipped, err
}

// Events returns the stored school calendar ordered by start time.
func (s *Service) Events(ctx context.Context) ([]models.CalendarEvent, error) {
	var events []models.CalendarEvent
	if err := s.db.WithContext(ctx).Order("start_date_time ASC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return events, nil
}
