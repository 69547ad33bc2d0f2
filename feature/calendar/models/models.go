package models

import (
	"time"

	"gorm.io/gorm"
)

// CalendarEvent is one school calendar entry. School events have no identity
// beyond existence: the whole set is replaced on every synchronization run,
// so there is no hash code and no diffing.
type CalendarEvent struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	EventName     string     `gorm:"column:event_name;size:255" json:"event_name"`
	StartDateTime time.Time  `gorm:"column:start_date_time;index" json:"start_date_time"`
	EndDateTime   *time.Time `gorm:"column:end_date_time" json:"end_date_time,omitempty"`
	Location      string     `gorm:"column:location;size:191" json:"location,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name.
func (CalendarEvent) TableName() string {
	return "calendar_events"
}

// AutoMigrate creates or updates the calendar tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&CalendarEvent{})
}
