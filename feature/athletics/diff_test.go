package athletics

import (
	"testing"
	"time"

	"campus-sync/core/feed"
	"campus-sync/feature/athletics/models"

	"github.com/stretchr/testify/assert"
)

func TestDiffEventNoChange(t *testing.T) {
	start := time.Date(2024, time.September, 12, 15, 0, 0, 0, time.UTC)
	ev := &models.AthleticsEvent{
		HashCode:      "JV Tennis:game:9-12-2024",
		Kind:          models.KindGame,
		StartDateTime: start,
		Status:        "CANCELLED",
	}

	cs := diffEvent(ev, feed.AthleticsEventData{
		Team:          "JV Tennis",
		StartDateTime: start,
		Status:        "CANCELLED",
	})

	assert.Nil(t, cs)
	// no mutation when nothing changed
	assert.Equal(t, "CANCELLED", ev.Status)
	assert.True(t, ev.StartDateTime.Equal(start))
}

func TestDiffEventStatusChange(t *testing.T) {
	start := time.Date(2024, time.September, 12, 15, 0, 0, 0, time.UTC)
	ev := &models.AthleticsEvent{Kind: models.KindGame, StartDateTime: start}

	cs := diffEvent(ev, feed.AthleticsEventData{
		Team:          "JV Tennis",
		StartDateTime: start,
		Status:        "CANCELLED",
	})

	if assert.NotNil(t, cs) && assert.Len(t, cs.Changes, 1) {
		change := cs.Changes[0]
		assert.Equal(t, FieldStatus, change.Field)
		assert.Equal(t, "", change.Old)
		assert.Equal(t, "CANCELLED", change.New)
		assert.Equal(t, "status changed to CANCELLED", change.Description)
	}
	assert.Equal(t, "CANCELLED", ev.Status)
}

func TestDiffEventStatusCleared(t *testing.T) {
	start := time.Date(2024, time.September, 12, 15, 0, 0, 0, time.UTC)
	ev := &models.AthleticsEvent{Kind: models.KindGame, StartDateTime: start, Status: "POSTPONED"}

	cs := diffEvent(ev, feed.AthleticsEventData{Team: "JV Tennis", StartDateTime: start})

	if assert.NotNil(t, cs) && assert.Len(t, cs.Changes, 1) {
		assert.Equal(t, "status cleared", cs.Changes[0].Description)
	}
	assert.Empty(t, ev.Status)
}

func TestDiffEventTimeChange(t *testing.T) {
	oldStart := time.Date(2024, time.September, 12, 15, 0, 0, 0, time.UTC) // 3:00 PM
	newStart := time.Date(2024, time.September, 12, 17, 20, 0, 0, time.UTC) // 5:20 PM
	ev := &models.AthleticsEvent{Kind: models.KindGame, StartDateTime: oldStart}

	cs := diffEvent(ev, feed.AthleticsEventData{Team: "JV Tennis", StartDateTime: newStart})

	if assert.NotNil(t, cs) && assert.Len(t, cs.Changes, 1) {
		change := cs.Changes[0]
		assert.Equal(t, FieldTime, change.Field)
		assert.Equal(t, "start time moved 2 hr. 20 min. later (now 5:20 PM)", change.Description)
	}
	// OriginalStart is captured before the mutation
	assert.True(t, cs.OriginalStart.Equal(oldStart))
	assert.True(t, ev.StartDateTime.Equal(newStart))
}

func TestDiffEventStatusAndTimeChange(t *testing.T) {
	oldStart := time.Date(2024, time.September, 12, 15, 0, 0, 0, time.UTC)
	newStart := oldStart.Add(30 * time.Minute)
	ev := &models.AthleticsEvent{Kind: models.KindPractice, StartDateTime: oldStart}

	cs := diffEvent(ev, feed.AthleticsEventData{
		Team:          "Varsity Soccer",
		StartDateTime: newStart,
		Status:        "DELAYED",
	})

	if assert.NotNil(t, cs) {
		assert.Len(t, cs.Changes, 2)
		assert.Equal(t, FieldStatus, cs.Changes[0].Field)
		assert.Equal(t, FieldTime, cs.Changes[1].Field)
	}
}

func TestFormatTimeDelta(t *testing.T) {
	base := time.Date(2024, time.September, 12, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		new  time.Time
		want string
	}{
		{"Later", base.Add(2*time.Hour + 20*time.Minute), "2 hr. 20 min. later"},
		{"Earlier Under An Hour", base.Add(-15 * time.Minute), "0 hr. 15 min. earlier"},
		{"Exact Hours", base.Add(3 * time.Hour), "3 hr. 0 min. later"},
		{"Seconds Truncated", base.Add(time.Minute + 59*time.Second), "0 hr. 1 min. later"},
		{"Seconds Truncated Earlier", base.Add(-(time.Minute + 59 * time.Second)), "0 hr. 1 min. earlier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatTimeDelta(base, tt.new))
		})
	}
}

func TestChannelForTeam(t *testing.T) {
	assert.Equal(t, "varsity-soccer", ChannelForTeam("Varsity Soccer"))
	assert.Equal(t, "jv-tennis", ChannelForTeam("JV  Tennis"))
}
