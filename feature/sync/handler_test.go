package sync_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"campus-sync/core/feed"
	"campus-sync/feature/sync"
	"campus-sync/feature/sync/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newTestApp(t *testing.T, fetcher sync.Fetcher) *fiber.App {
	t.Helper()
	runner, _ := newTestRunner(t, fetcher, nil)
	app := fiber.New()
	feature := sync.NewFeature(runner)
	assert.NoError(t, feature.Load(app))
	return app
}

func TestHandleRunCalendars(t *testing.T) {
	start := time.Date(2024, time.September, 10, 16, 0, 0, 0, time.UTC)
	app := newTestApp(t, &fakeFetcher{
		school: []feed.CalendarEventData{
			{EventName: "Homecoming", StartDateTime: start},
		},
		athletics: &feed.AthleticsCalendarData{},
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/sync/calendars", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var runs []models.SyncRun
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&runs))
	assert.Len(t, runs, 2)
	assert.Equal(t, models.CalendarSchool, runs[0].Calendar)
	assert.Equal(t, 1, runs[0].Created)
}

func TestHandleRunCalendarsFeedFailure(t *testing.T) {
	app := newTestApp(t, &fakeFetcher{
		schoolErr:    &feed.NetworkError{URL: "http://feed/schoolCalendar", Err: assert.AnError},
		athleticsErr: &feed.NetworkError{URL: "http://feed/athleticsCalendar", Err: assert.AnError},
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/sync/calendars", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

func TestHandleRunTeams(t *testing.T) {
	app := newTestApp(t, &fakeFetcher{
		teams: feed.TeamsData{"Fall": {"Varsity Soccer"}},
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/sync/teams", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var run models.SyncRun
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&run))
	assert.Equal(t, models.CalendarTeams, run.Calendar)
	assert.Equal(t, 1, run.Created)
}

func TestHandleListRuns(t *testing.T) {
	app := newTestApp(t, &fakeFetcher{athletics: &feed.AthleticsCalendarData{}})

	resp, err := app.Test(httptest.NewRequest("POST", "/sync/calendars", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/sync/runs", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var runs []models.SyncRun
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&runs))
	assert.Len(t, runs, 2)
}
