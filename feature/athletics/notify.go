package athletics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"campus-sync/core/push"

	"go.uber.org/zap"
)

// Notifier emits one push notification per detected event change to the
// subscribers of the affected team's channel.
type Notifier struct {
	dispatcher push.Dispatcher
	logger     *zap.Logger
}

// NewNotifier creates a Notifier on the given dispatcher.
func NewNotifier(dispatcher push.Dispatcher, logger *zap.Logger) *Notifier {
	return &Notifier{dispatcher: dispatcher, logger: logger}
}

// NotifyChange sends a notification for one changed field of one event.
// Dispatch is fire-and-forget: a delivery failure is logged and never fails
// the reconciliation run. The hash key rides along in the metadata so a
// client can correlate and dedupe.
func (n *Notifier) NotifyChange(ctx context.Context, team string, isGame bool, originalDate time.Time, hashKey string, change FieldChange) {
	kind := "practice"
	if isGame {
		kind = "game"
	}

	msg := fmt.Sprintf("%s %s on %d/%d: %s.",
		team, kind, int(originalDate.Month()), originalDate.Day(), change.Description)

	err := n.dispatcher.Send(ctx, push.Notification{
		Channel: ChannelForTeam(team),
		Message: msg,
		Metadata: map[string]string{
			"hashKey": hashKey,
			"field":   change.Field,
		},
	})
	if err != nil {
		n.logger.Warn("Failed to dispatch change notification",
			zap.String("team", team),
			zap.String("hash_key", hashKey),
			zap.Error(err),
		)
	}
}

// ChannelForTeam derives the push channel name for a team. Channel names may
// not contain whitespace, so spaces collapse to dashes and the result is
// lowercased: "Varsity Soccer" -> "varsity-soccer".
func ChannelForTeam(team string) string {
	return strings.ToLower(strings.Join(strings.Fields(team), "-"))
}
