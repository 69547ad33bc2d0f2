package calendar_test

import (
	"context"
	"testing"
	"time"

	"campus-sync/core/database"
	"campus-sync/core/feed"
	"campus-sync/feature/calendar"
	"campus-sync/feature/calendar/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*calendar.Service, *gorm.DB) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)
	assert.NoError(t, models.AutoMigrate(db))
	return calendar.NewService(db, zap.NewNop()), db
}

func TestReplace(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	end := time.Date(2024, time.December, 12, 21, 0, 0, 0, time.UTC)
	removed, created, skipped, err := svc.Replace(ctx, []feed.CalendarEventData{
		{
			EventName:     "Winter Concert",
			StartDateTime: time.Date(2024, time.December, 12, 19, 0, 0, 0, time.UTC),
			EndDateTime:   &end,
			Location:      "Auditorium",
		},
		{
			EventName:     "Exam Week Begins",
			StartDateTime: time.Date(2024, time.December, 16, 8, 0, 0, 0, time.UTC),
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 2, created)
	assert.Equal(t, 0, skipped)

	// A second replace removes the previous set entirely.
	removed, created, skipped, err = svc.Replace(ctx, []feed.CalendarEventData{
		{
			EventName:     "Spring Fair",
			StartDateTime: time.Date(2025, time.April, 5, 10, 0, 0, 0, time.UTC),
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, created)

	var count int64
	assert.NoError(t, db.Model(&models.CalendarEvent{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestReplaceWithEmptyFeed(t *testing.T) {
	// An empty incoming feed deletes everything and creates nothing.
	svc, db := newTestService(t)
	ctx := context.Background()

	_, _, _, err := svc.Replace(ctx, []feed.CalendarEventData{
		{EventName: "Winter Concert", StartDateTime: time.Date(2024, time.December, 12, 19, 0, 0, 0, time.UTC)},
	})
	assert.NoError(t, err)

	removed, created, skipped, err := svc.Replace(ctx, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, created)
	assert.Equal(t, 0, skipped)

	var count int64
	assert.NoError(t, db.Model(&models.CalendarEvent{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestReplaceSkipsMalformedRecords(t *testing.T) {
	svc, _ := newTestService(t)

	removed, created, skipped, err := svc.Replace(context.Background(), []feed.CalendarEventData{
		{EventName: "", StartDateTime: time.Date(2024, time.December, 12, 19, 0, 0, 0, time.UTC)},
		{EventName: "No Start Time"},
		{EventName: "Valid", StartDateTime: time.Date(2024, time.December, 13, 9, 0, 0, 0, time.UTC)},
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 1, created)
	assert.Equal(t, 2, skipped)
}

func TestEvents(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, _, err := svc.Replace(ctx, []feed.CalendarEventData{
		{EventName: "Later", StartDateTime: time.Date(2024, time.December, 16, 8, 0, 0, 0, time.UTC)},
		{EventName: "Earlier", StartDateTime: time.Date(2024, time.December, 12, 19, 0, 0, 0, time.UTC)},
	})
	assert.NoError(t, err)

	events, err := svc.Events(ctx)
	assert.NoError(t, err)
	if assert.Len(t, events, 2) {
		assert.Equal(t, "Earlier", events[0].EventName)
		assert.Equal(t, "Later", events[1].EventName)
	}
}
