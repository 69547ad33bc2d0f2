package athletics

import (
	"context"
	"errors"

	"campus-sync/core/feed"
	"campus-sync/feature/athletics/models"

	"go.uber.org/zap"
)

// Counts are the per-run reconciliation statistics.
type Counts struct {
	// Changed is the number of stored events whose status or time changed.
	Changed int `json:"changed"`
	// Created is the number of events seen for the first time.
	Created int `json:"created"`
	// Duplicates is the number of feed records discarded because an earlier
	// record in the same run already carried their key.
	Duplicates int `json:"duplicates"`
	// Removed is the number of stored events absent from the feed.
	Removed int `json:"removed"`
	// Skipped is the number of malformed or unplaceable records.
	Skipped int `json:"skipped"`
}

// runState is the working state of one reconciliation run, threaded through
// both category passes.
type runState struct {
	// remaining maps hash keys to stored events not yet matched to a feed
	// record. Whatever is left after both passes gets deleted.
	remaining map[string]*models.AthleticsEvent
	// touched holds every key already processed this run, matched or created.
	// A later record with a touched key is a duplicate.
	touched map[string]struct{}
	counts  Counts
}

// Reconciler merges fetched athletics calendar data into storage and emits a
// notification per detected change.
type Reconciler struct {
	store    EventStore
	notifier *Notifier
	logger   *zap.Logger
}

// NewReconciler creates a Reconciler.
func NewReconciler(store EventStore, notifier *Notifier, logger *zap.Logger) *Reconciler {
	return &Reconciler{store: store, notifier: notifier, logger: logger}
}

// Run reconciles one fetched athletics calendar against storage:
// upserts changed and new events, skips in-feed duplicates, and removes
// stored events no longer present upstream.
//
// The remaining index is seeded once and shared across both category passes,
// so games are always processed before practices: an event matched during the
// games pass must not be considered for deletion while reconciling practices.
func (r *Reconciler) Run(ctx context.Context, cal *feed.AthleticsCalendarData) (Counts, error) {
	remaining, err := r.store.EventIndex(ctx)
	if err != nil {
		return Counts{}, err
	}

	state := &runState{
		remaining: remaining,
		touched:   make(map[string]struct{}),
	}

	if err := r.runCategory(ctx, state, cal.Games, models.KindGame); err != nil {
		return state.counts, err
	}
	if err := r.runCategory(ctx, state, cal.Practices, models.KindPractice); err != nil {
		return state.counts, err
	}

	// Every entry still in the remaining index existed in storage but was
	// absent from this feed pull.
	leftovers := make([]*models.AthleticsEvent, 0, len(state.remaining))
	for _, ev := range state.remaining {
		leftovers = append(leftovers, ev)
	}
	if err := r.store.DeleteEvents(ctx, leftovers); err != nil {
		return state.counts, err
	}
	state.counts.Removed = len(leftovers)

	r.logger.Info("Athletics reconciliation finished",
		zap.Int("changed", state.counts.Changed),
		zap.Int("created", state.counts.Created),
		zap.Int("duplicates", state.counts.Duplicates),
		zap.Int("removed", state.counts.Removed),
		zap.Int("skipped", state.counts.Skipped),
	)

	return state.counts, nil
}

// runCategory folds one category's records into the run state, strictly in
// feed order. Processing must stay sequential: duplicate detection depends on
// the touched set being updated before the next record is examined.
func (r *Reconciler) runCategory(ctx context.Context, state *runState, records []feed.AthleticsEventData, kind string) error {
	for _, rec := range records {
		if rec.Team == "" || rec.StartDateTime.IsZero() {
			state.counts.Skipped++
			r.logger.Warn("Skipping malformed feed record",
				zap.String("kind", kind),
				zap.String("team", rec.Team),
			)
			continue
		}

		key := EventKey(rec.Team, kind, rec.StartDateTime)

		if _, dup := state.touched[key]; dup {
			// At most one game and one practice per team per day; a second
			// record for the same key within one pull is discarded.
			state.counts.Duplicates++
			continue
		}
		state.touched[key] = struct{}{}

		ev, exists := state.remaining[key]
		if !exists {
			newEv := eventFromRecord(key, kind, rec)
			err := r.store.CreateEvent(ctx, rec.Team, newEv)
			if errors.Is(err, ErrUnknownTeam) {
				state.counts.Skipped++
				r.logger.Warn("Feed record references unknown team",
					zap.String("team", rec.Team),
					zap.String("hash_key", key),
				)
				continue
			}
			if err != nil {
				return err
			}
			state.counts.Created++
			continue
		}

		// Matched a stored event: it is no longer a deletion candidate.
		delete(state.remaining, key)

		changes := diffEvent(ev, rec)
		if changes == nil {
			continue
		}

		if err := r.store.UpdateEvent(ctx, ev); err != nil {
			return err
		}
		state.counts.Changed++
		r.logger.Info("Event updated",
			zap.String("hash_key", key),
			zap.Int("fields", len(changes.Changes)),
		)

		for _, change := range changes.Changes {
			r.notifier.NotifyChange(ctx, rec.Team, kind == models.KindGame,
				changes.OriginalStart, key, change)
		}
	}

	return nil
}

// eventFromRecord builds a new stored event from a feed record. The game-only
// fields are only carried for games; the store assigns team and position.
func eventFromRecord(key, kind string, rec feed.AthleticsEventData) *models.AthleticsEvent {
	ev := &models.AthleticsEvent{
		HashCode:      key,
		Kind:          kind,
		StartDateTime: rec.StartDateTime,
		Status:        rec.Status,
		Location:      rec.Location,
	}
	if kind == models.KindGame {
		ev.IsHome = rec.IsHome
		ev.Opponent = rec.Opponent
		ev.Result = rec.Result
	}
	return ev
}
