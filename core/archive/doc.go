// Package archive persists raw feed snapshots and failure records to object
// storage for later triage.
//
// Each synchronization run writes its fetched payloads (and, on failure, an
// error record) under runs/<runID>/ in the configured bucket. The archive is
// best-effort from the reconciler's point of view: an archive write failure is
// logged but never fails a run.
package archive
