// Package registry holds the withdrawal requests of one joint goal for the
// lifetime of a mounted view and drives the approval workflow against the
// remote store: full-snapshot loads, optimistic vote patches, and guarded
// request creation.
package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"fundmate/appcore/internal/model"
	"fundmate/appcore/internal/service/approval"
	"fundmate/appcore/internal/service/ledger"
	"golang.org/x/sync/errgroup"
)

var (
	ErrDisposed         = errors.New("registry disposed")
	ErrDecisionInFlight = errors.New("decision already in flight for this request")
)

//go:generate mockgen -destination ./mocks/goal_store.go . GoalStore
type GoalStore interface {
	Goal(ctx context.Context, goalID string) (*model.Goal, error)
	Withdrawals(
		ctx context.Context,
		goalID string,
	) ([]model.WithdrawalRequest, error)
	RequestWithdrawal(
		ctx context.Context,
		goalID string,
		payload model.WithdrawalRequestPayload,
	) (string, error)
	ApproveWithdrawal(
		ctx context.Context,
		requestID string,
		decision model.ApprovalStatus,
	) error
}

// Registry is scoped to one mounted goal-detail view. Two views of the
// same goal each get their own instance and may diverge until each reloads
// on its own; that divergence is intended, not corrected.
type Registry struct {
	goalID string
	store  GoalStore

	lifetime context.Context
	dispose  context.CancelFunc

	mu       sync.Mutex
	requests []model.WithdrawalRequest
	balance  decimal.Decimal
	loaded   bool
	inflight map[string]struct{}
}

func newRegistry(goalID string, store GoalStore) *Registry {
	lifetime, dispose := context.WithCancel(context.Background())
	return &Registry{
		goalID:   goalID,
		store:    store,
		lifetime: lifetime,
		dispose:  dispose,
		inflight: make(map[string]struct{}),
	}
}

func (r *Registry) GoalID() string {
	return r.goalID
}

// Load fetches the goal and its withdrawal requests and replaces local
// state with the server snapshot. Each load is authoritative: the previous
// list is discarded entirely (no merge, last writer wins) and every
// optimistic patch is superseded. Results arriving after Dispose are
// dropped without touching state.
func (r *Registry) Load(ctx context.Context) error {
	if r.lifetime.Err() != nil {
		return ErrDisposed
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(r.lifetime, cancel)
	defer stop()

	var (
		goal     *model.Goal
		requests []model.WithdrawalRequest
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		goal, err = r.store.Goal(gctx, r.goalID)
		return err
	})
	g.Go(func() error {
		var err error
		requests, err = r.store.Withdrawals(gctx, r.goalID)
		return err
	})
	if err := g.Wait(); err != nil {
		if r.lifetime.Err() != nil {
			return ErrDisposed
		}
		return fmt.Errorf("failed to load goal %s: %w", r.goalID, err)
	}

	if r.lifetime.Err() != nil {
		return ErrDisposed
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = requests
	r.balance = goal.CurrentAmount
	r.loaded = true

	slog.Debug("registry loaded",
		slog.String("goal_id", r.goalID),
		slog.Int("requests", len(requests)),
	)
	return nil
}

// Requests returns a deep copy of the current list; callers cannot mutate
// registry state through it.
func (r *Registry) Requests() []model.WithdrawalRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.WithdrawalRequest, len(r.requests))
	for i := range r.requests {
		out[i] = r.requests[i].Clone()
	}
	return out
}

// Request returns a copy of a single request by id.
func (r *Registry) Request(requestID string) (model.WithdrawalRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req := r.find(requestID)
	if req == nil {
		return model.WithdrawalRequest{}, model.ErrRequestNotFound
	}
	return req.Clone(), nil
}

// KnownBalance is the fund balance from the last load, used as a UX guard
// for withdrawal amounts. The server stays authoritative.
func (r *Registry) KnownBalance() decimal.Decimal {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.balance
}

// SetKnownBalance lets the view refresh the guard from a goal fetch it
// already performed.
func (r *Registry) SetKnownBalance(balance decimal.Decimal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balance = balance
}

// ApplyApprovalResult records userID's decision on a request. The local
// entry is patched optimistically before the confirming round trip; if the
// round trip fails the patch is left in place and the caller reconciles
// with a Load. Repeat submissions while a round trip is outstanding are
// rejected per request id.
func (r *Registry) ApplyApprovalResult(
	ctx context.Context,
	requestID, userID string,
	decision model.ApprovalStatus,
) error {
	if !decision.Terminal() {
		return fmt.Errorf(
			"%w: decision must be APPROVED or REJECTED", model.ErrValidation)
	}
	if r.lifetime.Err() != nil {
		return ErrDisposed
	}

	r.mu.Lock()
	req := r.find(requestID)
	if req == nil {
		r.mu.Unlock()
		return model.ErrRequestNotFound
	}
	if _, busy := r.inflight[requestID]; busy {
		r.mu.Unlock()
		return ErrDecisionInFlight
	}
	if !approval.CanAct(req, userID) {
		defer r.mu.Unlock()
		if req.Status.Terminal() {
			return model.ErrRequestFinalized
		}
		entry := req.Approval(userID)
		if entry == nil {
			return fmt.Errorf(
				"%w: user %s is not in the approval set",
				model.ErrValidation, userID)
		}
		return model.ErrAlreadyVoted
	}

	entry := req.Approval(userID)
	entry.Status = decision
	entry.UpdatedAt = time.Now()
	entry.Provenance = model.Optimistic
	req.Status = approval.ComputeStatus(req)

	r.inflight[requestID] = struct{}{}
	r.mu.Unlock()

	err := r.store.ApproveWithdrawal(ctx, requestID, decision)

	r.mu.Lock()
	delete(r.inflight, requestID)
	r.mu.Unlock()

	if err != nil {
		slog.Warn("decision submit failed, local state is provisional",
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)
		return fmt.Errorf(
			"failed to submit decision for request %s: %w", requestID, err)
	}
	return nil
}

// Create validates and submits a new withdrawal request, returning the
// server-assigned id. Once a load has supplied a balance, amount bounds
// are checked against it before any network call.
func (r *Registry) Create(
	ctx context.Context,
	amount decimal.Decimal,
	description string,
) (string, error) {
	if r.lifetime.Err() != nil {
		return "", ErrDisposed
	}
	if description == "" {
		return "", fmt.Errorf(
			"%w: description must not be empty", model.ErrValidation)
	}
	r.mu.Lock()
	balance, loaded := r.balance, r.loaded
	r.mu.Unlock()
	if err := ledger.ValidateWithdrawal(amount, balance); err != nil {
		// before the first load the balance is unknown, so only the
		// server can judge sufficiency
		if loaded || errors.Is(err, model.ErrValidation) {
			return "", err
		}
	}

	id, err := r.store.RequestWithdrawal(
		ctx,
		r.goalID,
		model.WithdrawalRequestPayload{
			Amount:      amount,
			Description: description,
		},
	)
	if err != nil {
		return "", err
	}

	slog.Info("withdrawal requested",
		slog.String("goal_id", r.goalID),
		slog.String("request_id", id),
	)
	return id, nil
}

// Disposed reports whether the owning view unmounted.
func (r *Registry) Disposed() bool {
	return r.lifetime.Err() != nil
}

func (r *Registry) find(requestID string) *model.WithdrawalRequest {
	for i := range r.requests {
		if r.requests[i].ID == requestID {
			return &r.requests[i]
		}
	}
	return nil
}
