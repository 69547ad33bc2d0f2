package models

import (
	"time"

	"gorm.io/gorm"
)

// Event kinds. A team has at most one game and one practice per calendar day;
// the hash key relies on that assumption.
const (
	KindGame     = "game"
	KindPractice = "practice"
)

// AthleticsTeam is one team for one season. It owns its events: deleting a
// team cascades to every game and practice referencing it.
type AthleticsTeam struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TeamName string `gorm:"column:team_name;size:191;uniqueIndex" json:"team_name"`
	Season   string `gorm:"column:season;size:64" json:"season"`

	// Events holds both games and practices; Games()/Practices() partition it.
	Events []AthleticsEvent `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE" json:"events,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name.
func (AthleticsTeam) TableName() string {
	return "athletics_teams"
}

// Games returns the team's games in append order.
func (t *AthleticsTeam) Games() []AthleticsEvent {
	return t.eventsOfKind(KindGame)
}

// Practices returns the team's practices in append order.
func (t *AthleticsTeam) Practices() []AthleticsEvent {
	return t.eventsOfKind(KindPractice)
}

func (t *AthleticsTeam) eventsOfKind(kind string) []AthleticsEvent {
	out := make([]AthleticsEvent, 0, len(t.Events))
	for _, ev := range t.Events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

// AthleticsEvent is a single game or practice. The hash code is the event's
// identity across feed pulls: team, kind, and calendar day. The day component
// of StartDateTime is therefore immutable; only the time of day may change.
type AthleticsEvent struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	HashCode string `gorm:"column:hash_code;size:191;uniqueIndex" json:"hash_code"`
	TeamID   uint   `gorm:"column:team_id;index" json:"team_id"`
	Kind     string `gorm:"column:kind;size:16;index" json:"kind"`
	// Position preserves append order within the team's games or practices.
	Position int `gorm:"column:position" json:"position"`

	StartDateTime time.Time `gorm:"column:start_date_time" json:"start_date_time"`
	// Status is a mutable status message like "CANCELLED"; empty means none.
	Status string `gorm:"column:status;size:64" json:"status,omitempty"`

	// Game-only fields, set once at creation and never diffed.
	IsHome   *bool  `gorm:"column:is_home" json:"is_home,omitempty"`
	Opponent string `gorm:"column:opponent;size:191" json:"opponent,omitempty"`
	Result   string `gorm:"column:result;size:64" json:"result,omitempty"`

	Location string `gorm:"column:location;size:191" json:"location,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name.
func (AthleticsEvent) TableName() string {
	return "athletics_events"
}

// IsGame reports whether the event is a game.
func (e *AthleticsEvent) IsGame() bool {
	return e.Kind == KindGame
}

// AutoMigrate creates or updates the athletics tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&AthleticsTeam{}, &AthleticsEvent{})
}
