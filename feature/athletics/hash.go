package athletics

import (
	"fmt"
	"time"
)

// EventKey derives the identity key for an athletics event:
//
//	TEAM_NAME:[game|practice]:MONTH-DAY-YEAR
//
// with a one-based month (e.g. "Varsity Soccer:game:9-10-2024"). The key is
// collision-free under the one-game-and-one-practice-per-team-per-day
// assumption, and because the day is part of the identity an event's date can
// never change without it becoming a different event.
func EventKey(team, kind string, start time.Time) string {
	return fmt.Sprintf("%s:%s:%d-%d-%d", team, kind, int(start.Month()), start.Day(), start.Year())
}
