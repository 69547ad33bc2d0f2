package models

import (
	"time"

	"gorm.io/gorm"
)

// Calendar names a synchronized data set. A full cycle produces one SyncRun
// row per calendar; the roster sync produces a single "teams" row.
const (
	CalendarSchool    = "school"
	CalendarAthletics = "athletics"
	CalendarTeams     = "teams"
)

// SyncRun records the outcome of synchronizing one calendar during one run.
// Rows sharing a RunID belong to the same cycle.
type SyncRun struct {
	ID         string     `gorm:"primaryKey;size:36" json:"id"`
	RunID      string     `gorm:"column:run_id;size:36;index" json:"run_id"`
	Calendar   string     `gorm:"column:calendar;size:32;index" json:"calendar"`
	StartedAt  time.Time  `gorm:"column:started_at;index" json:"started_at"`
	FinishedAt *time.Time `gorm:"column:finished_at" json:"finished_at,omitempty"`

	Changed    int `gorm:"column:changed" json:"changed"`
	Created    int `gorm:"column:created" json:"created"`
	Duplicates int `gorm:"column:duplicates" json:"duplicates"`
	Removed    int `gorm:"column:removed" json:"removed"`
	Skipped    int `gorm:"column:skipped" json:"skipped"`

	// Error is empty for a successful run. Failed runs keep whatever counts
	// were accumulated before the failure.
	Error string `gorm:"column:error;size:1024" json:"error,omitempty"`
}

// TableName overrides the table name.
func (SyncRun) TableName() string {
	return "sync_runs"
}

// Succeeded reports whether the run finished without error.
func (r SyncRun) Succeeded() bool {
	return r.Error == ""
}

// AutoMigrate creates or updates the sync tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&SyncRun{})
}
