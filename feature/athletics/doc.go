// Package athletics implements the athletics calendar feature: the event
// reconciliation engine, the team roster, and the read API.
//
// # Reconciliation
//
// Each run merges a freshly fetched athletics calendar into storage:
//  1. All stored events are loaded into a "remaining" index keyed by the
//     event's hash code (team:kind:month-day-year).
//  2. Games, then practices, are walked strictly in feed order. A record that
//     matches a stored event removes it from the remaining index and is
//     diffed; a record with an unseen key creates a new event; a record whose
//     key was already processed this run is a duplicate and is discarded.
//  3. Whatever is left in the remaining index was absent from the feed and is
//     deleted in bulk.
//
// Status or start-time changes mutate the stored event and emit one push
// notification per changed field to the team's channel. Notification delivery
// is fire-and-forget.
//
// # Components
//
//   - Reconciler: the run state machine (reconcile.go, diff.go, hash.go).
//   - Store: gorm-backed persistence, including the roster full-replace.
//   - Notifier: change notifications via core/push.
//   - Service / Handler / Feature: the usual feature triad.
//
// # HTTP Endpoints
//
//   - GET /athletics/teams : all teams with games and practices.
//   - GET /athletics/teams/:teamName/events?kind= : one team's events.
package athletics
