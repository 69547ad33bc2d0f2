// Package feed fetches calendar documents from the remote calendar server.
//
// The calendar server exposes three JSON endpoints:
//   - GET /schoolCalendar: array of school calendar events
//   - GET /athleticsCalendar: {games: [...], practices: [...]}
//   - GET /athleticsTeams: map of season name to team names
//
// # Errors
//
// Failures are typed so callers can report them distinctly:
//   - NetworkError: transport failure or non-2xx response
//   - ParseError: response body is not valid JSON
//
// There is no retry at this layer. A failure aborts the affected calendar's
// synchronization run; the next scheduled run retries naturally.
//
// # Raw payloads
//
// Every fetch also returns the raw response body so the caller can archive
// the exact payload a run was based on (see core/archive).
package feed
