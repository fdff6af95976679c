// Package relay consumes out-of-band push events and merges them into
// local state by triggering targeted reloads of the affected goal's
// withdrawal registry. Events never mutate registries directly.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"fundmate/appcore/internal/model"
)

//go:generate mockgen -destination ./mocks/relay.go . Subscriber,Reloader

// Subscriber is a cancellable push subscription producing raw event
// payloads. The channel closes when the subscription ends.
type Subscriber interface {
	Subscribe(ctx context.Context) (<-chan []byte, error)
}

// Reloader performs targeted refreshes of goal state.
type Reloader interface {
	ReloadGoal(ctx context.Context, goalID string) error
}

type Relay struct {
	sub      Subscriber
	reloader Reloader
	center   *Center
}

func NewRelay(sub Subscriber, reloader Reloader, center *Center) *Relay {
	return &Relay{
		sub:      sub,
		reloader: reloader,
		center:   center,
	}
}

// Run consumes the subscription until ctx is done or the subscription
// closes. Malformed or unrecognized payloads are logged and skipped; a
// failed targeted reload is logged and the stream continues.
func (r *Relay) Run(ctx context.Context) error {
	msgs, err := r.sub.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	slog.Info("notification relay started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case body, ok := <-msgs:
			if !ok {
				slog.Info("notification stream closed")
				return nil
			}
			r.handle(ctx, body)
		}
	}
}

func (r *Relay) handle(ctx context.Context, body []byte) {
	var ev model.Event
	if err := json.Unmarshal(body, &ev); err != nil {
		slog.Warn("dropping malformed push payload", slog.Any("error", err))
		return
	}
	if !ev.Type.Known() {
		slog.Debug("dropping unrecognized push event",
			slog.String("type", string(ev.Type)))
		return
	}

	n := r.center.Add(ev)
	slog.Info("push event received",
		slog.String("type", string(ev.Type)),
		slog.String("notification_id", n.ID),
	)

	if ev.Type.WithdrawalRelated() {
		if ev.GoalID == "" {
			slog.Warn("withdrawal event without goal id, skipping reload")
			return
		}
		if err := r.reloader.ReloadGoal(ctx, ev.GoalID); err != nil {
			slog.Error("targeted reload failed",
				slog.String("goal_id", ev.GoalID),
				slog.Any("error", err),
			)
		}
	}
}
