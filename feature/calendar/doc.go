// Package calendar implements the school calendar feature.
//
// The school calendar has no per-event identity and no subscribers to
// notify, so synchronization is a full replace: every stored event is
// deleted and the fetched set is bulk-created in its place.
//
// # HTTP Endpoints
//
//   - GET /calendar/events : all school calendar events ordered by start time.
package calendar
