package feed_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"campus-sync/core/feed"

	"github.com/stretchr/testify/assert"
)

func newTestClient(url string) *feed.Client {
	return feed.NewClient(feed.Config{BaseURL: url, TimeoutSeconds: 5})
}

func TestSchoolCalendar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/schoolCalendar", r.URL.Path)
		w.Write([]byte(`[
			{"eventName": "Winter Concert", "startDateTime": "2024-12-12T19:00:00Z", "location": "Auditorium"},
			{"eventName": "Exam Week Begins", "startDateTime": "2024-12-16T08:00:00Z"}
		]`))
	}))
	defer srv.Close()

	events, raw, err := newTestClient(srv.URL).SchoolCalendar(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Len(t, events, 2)
	assert.Equal(t, "Winter Concert", events[0].EventName)
	assert.Equal(t, "Auditorium", events[0].Location)
	assert.Nil(t, events[0].EndDateTime)
}

func TestAthleticsCalendar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/athleticsCalendar", r.URL.Path)
		w.Write([]byte(`{
			"games": [{"team": "JV Tennis", "startDateTime": "2024-09-12T15:00:00Z", "isHome": true, "opponent": "Central", "status": null}],
			"practices": [{"team": "Varsity Soccer", "startDateTime": "2024-09-10T16:00:00Z"}]
		}`))
	}))
	defer srv.Close()

	cal, _, err := newTestClient(srv.URL).AthleticsCalendar(context.Background())
	assert.NoError(t, err)
	assert.Len(t, cal.Games, 1)
	assert.Len(t, cal.Practices, 1)

	game := cal.Games[0]
	assert.Equal(t, "JV Tennis", game.Team)
	if assert.NotNil(t, game.IsHome) {
		assert.True(t, *game.IsHome)
	}
	// null status and omitted status both decode to the empty string
	assert.Empty(t, game.Status)
	assert.Empty(t, cal.Practices[0].Status)
}

func TestAthleticsTeams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Fall": ["Varsity Soccer", "JV Tennis"], "Winter": ["Varsity Basketball"]}`))
	}))
	defer srv.Close()

	teams, _, err := newTestClient(srv.URL).AthleticsTeams(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"Varsity Soccer", "JV Tennis"}, teams["Fall"])
}

func TestErrorKinds(t *testing.T) {
	t.Run("Network Error On Bad Host", func(t *testing.T) {
		_, _, err := newTestClient("http://127.0.0.1:1").AthleticsCalendar(context.Background())
		var netErr *feed.NetworkError
		assert.ErrorAs(t, err, &netErr)
	})

	t.Run("Network Error On Server Error Status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, _, err := newTestClient(srv.URL).SchoolCalendar(context.Background())
		var netErr *feed.NetworkError
		assert.ErrorAs(t, err, &netErr)
	})

	t.Run("Parse Error On Malformed Body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"games": [`))
		}))
		defer srv.Close()

		_, raw, err := newTestClient(srv.URL).AthleticsCalendar(context.Background())
		var parseErr *feed.ParseError
		assert.ErrorAs(t, err, &parseErr)
		// raw body is still returned for archiving
		assert.NotEmpty(t, raw)
		assert.False(t, errors.As(err, new(*feed.NetworkError)))
	})
}
