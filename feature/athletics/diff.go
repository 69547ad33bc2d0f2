package athletics

import (
	"fmt"
	"time"

	"campus-sync/core/feed"
	"campus-sync/feature/athletics/models"
)

// Diffable fields of an athletics event.
const (
	FieldStatus = "status"
	FieldTime   = "time"
)

// FieldChange records one detected change on a stored event.
type FieldChange struct {
	Field string
	Old   string
	New   string
	// Description is the human-readable predicate used in notifications,
	// e.g. "status changed to CANCELLED" or
	// "start time moved 2 hr. 20 min. later (now 5:20 PM)".
	Description string
}

// ChangeSet is the result of diffing a stored event against feed data.
type ChangeSet struct {
	// OriginalStart is the event's start before any mutation; notifications
	// reference the original date.
	OriginalStart time.Time
	Changes       []FieldChange
}

// diffEvent compares a stored event against incoming feed data. If the status
// or start time differ, the event's fields are updated in place and a
// ChangeSet describing the changes is returned; the caller persists the
// mutated event. Returns nil when nothing changed, in which case the event is
// untouched and needs neither a write nor a notification.
//
// Only status and start time are diffed. The game-only fields (isHome,
// opponent, result) are set at creation and never updated, and the date
// component of the start time cannot change because it is part of the
// event's identity key.
func diffEvent(ev *models.AthleticsEvent, rec feed.AthleticsEventData) *ChangeSet {
	cs := &ChangeSet{OriginalStart: ev.StartDateTime}

	if ev.Status != rec.Status {
		cs.Changes = append(cs.Changes, FieldChange{
			Field:       FieldStatus,
			Old:         ev.Status,
			New:         rec.Status,
			Description: describeStatusChange(rec.Status),
		})
		ev.Status = rec.Status
	}

	if !ev.StartDateTime.Equal(rec.StartDateTime) {
		cs.Changes = append(cs.Changes, FieldChange{
			Field:       FieldTime,
			Old:         formatClock(ev.StartDateTime),
			New:         formatClock(rec.StartDateTime),
			Description: describeTimeChange(ev.StartDateTime, rec.StartDateTime),
		})
		ev.StartDateTime = rec.StartDateTime
	}

	if len(cs.Changes) == 0 {
		return nil
	}
	return cs
}

func describeStatusChange(newStatus string) string {
	if newStatus == "" {
		return "status cleared"
	}
	return "status changed to " + newStatus
}

func describeTimeChange(oldStart, newStart time.Time) string {
	return fmt.Sprintf("start time moved %s (now %s)",
		formatTimeDelta(oldStart, newStart), formatClock(newStart))
}

// formatTimeDelta renders the shift between two start times as whole hours
// and remaining minutes, e.g. "2 hr. 20 min. later" or "0 hr. 15 min.
// earlier". Seconds are truncated, not rounded.
func formatTimeDelta(oldStart, newStart time.Time) string {
	delta := newStart.Sub(oldStart)
	direction := "later"
	if delta < 0 {
		direction = "earlier"
		delta = -delta
	}

	totalMinutes := int(delta / time.Minute)
	return fmt.Sprintf("%d hr. %d min. %s", totalMinutes/60, totalMinutes%60, direction)
}

// formatClock renders a start time as a 12-hour clock string, e.g. "5:20 PM".
func formatClock(t time.Time) string {
	return t.Format("3:04 PM")
}
