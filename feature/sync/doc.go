// Package sync implements synchronization runs: fetching feed documents,
// archiving the raw payloads, delegating to the calendar and athletics
// features, and recording the outcome of every run.
//
// # Runs
//
// A cycle (RunCycle) synchronizes the school calendar and then the athletics
// calendar. The halves are independent: a feed failure on one still lets the
// other complete. A roster run (RunTeams) replaces the stored team roster and
// is triggered on demand because it deletes every stored athletics event.
//
// Each calendar touched during a run produces one SyncRun row carrying the
// reconciliation counters (changed, created, duplicates, removed, skipped)
// or the failure message. Rows from the same cycle share a run_id, which is
// also the key under which raw feed snapshots land in object storage
// (runs/<run_id>/<calendar>.json).
//
// At most one run executes at a time. Overlapping requests, including
// scheduler ticks that arrive while a slow run is still going, are rejected
// with ErrRunInProgress and simply wait for the next tick.
//
// # HTTP Endpoints
//
//   - POST /sync/calendars : run a full cycle now.
//   - POST /sync/teams : run a roster sync now.
//   - GET /sync/runs?limit= : recent run records, newest first.
package sync
