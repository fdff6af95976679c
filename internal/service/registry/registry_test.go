package registry

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fundmate/appcore/internal/model"
	mock_registry "fundmate/appcore/internal/service/registry/mocks"
)

const testGoalID = "goal-1"

func goalFixture() *model.Goal {
	return &model.Goal{
		ID:            testGoalID,
		Title:         "Trip fund",
		TargetAmount:  decimal.NewFromInt(1000000),
		CurrentAmount: decimal.NewFromInt(500000),
		Members: []model.GoalMember{
			{UserID: "alice", UserName: "Alice", Role: model.RoleOwner},
			{UserID: "bob", UserName: "Bob", Role: model.RoleMember},
			{UserID: "carol", UserName: "Carol", Role: model.RoleMember},
		},
	}
}

func requestFixture() model.WithdrawalRequest {
	return model.WithdrawalRequest{
		ID:            "wr-1",
		GoalID:        testGoalID,
		RequesterID:   "bob",
		RequesterName: "Bob",
		Amount:        decimal.NewFromInt(200000),
		Description:   "deposit for the venue",
		Status:        model.StatusPending,
		Approvals: []model.WithdrawalApproval{
			{UserID: "alice", UserName: "Alice", Status: model.StatusPending},
			{UserID: "bob", UserName: "Bob", Status: model.StatusPending},
			{UserID: "carol", UserName: "Carol", Status: model.StatusPending},
		},
	}
}

func expectLoad(
	store *mock_registry.MockGoalStore,
	requests []model.WithdrawalRequest,
) {
	store.EXPECT().
		Goal(gomock.Any(), testGoalID).
		Return(goalFixture(), nil)
	store.EXPECT().
		Withdrawals(gomock.Any(), testGoalID).
		Return(requests, nil)
}

func mountLoaded(
	t *testing.T,
	store *mock_registry.MockGoalStore,
	requests []model.WithdrawalRequest,
) (*Arena, *Registry) {
	t.Helper()

	arena := NewArena(store)
	reg := arena.Mount(testGoalID)

	expectLoad(store, requests)
	if err := reg.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	return arena, reg
}

func TestRegistry_Load(t *testing.T) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_registry.NewMockGoalStore(ctrl)
	_, reg := mountLoaded(t, store, []model.WithdrawalRequest{requestFixture()})

	requests := reg.Requests()
	assert.Len(t, requests, 1)
	assert.Equal(t, "wr-1", requests[0].ID)
	assert.True(t, reg.KnownBalance().Equal(decimal.NewFromInt(500000)))

	// every load is a full snapshot: a shorter server list replaces the
	// local one, nothing is merged
	expectLoad(store, nil)
	assert.NoError(t, reg.Load(context.Background()))
	assert.Empty(t, reg.Requests())
}

func TestRegistry_LoadError(t *testing.T) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_registry.NewMockGoalStore(ctrl)
	arena := NewArena(store)
	reg := arena.Mount(testGoalID)

	store.EXPECT().
		Goal(gomock.Any(), testGoalID).
		Return(nil, model.ErrNetwork).
		AnyTimes()
	store.EXPECT().
		Withdrawals(gomock.Any(), testGoalID).
		Return(nil, model.ErrNetwork).
		AnyTimes()

	err := reg.Load(context.Background())
	assert.ErrorIs(t, err, model.ErrNetwork)
	assert.Empty(t, reg.Requests())
}

// Full unanimity walkthrough: Bob requests, Alice approves (still
// pending), Carol rejects (finalized immediately), Alice cannot change
// her vote afterwards.
func TestRegistry_ApprovalWalkthrough(t *testing.T) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_registry.NewMockGoalStore(ctrl)
	_, reg := mountLoaded(t, store, []model.WithdrawalRequest{requestFixture()})
	ctx := context.Background()

	store.EXPECT().
		ApproveWithdrawal(ctx, "wr-1", model.StatusApproved).
		Return(nil)
	assert.NoError(t,
		reg.ApplyApprovalResult(ctx, "wr-1", "alice", model.StatusApproved))

	req, err := reg.Request("wr-1")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, req.Status)
	assert.Equal(t, model.StatusApproved, req.Approval("alice").Status)
	assert.Equal(t, model.Optimistic, req.Approval("alice").Provenance)

	store.EXPECT().
		ApproveWithdrawal(ctx, "wr-1", model.StatusRejected).
		Return(nil)
	assert.NoError(t,
		reg.ApplyApprovalResult(ctx, "wr-1", "carol", model.StatusRejected))

	req, err = reg.Request("wr-1")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusRejected, req.Status)

	// Alice cannot revisit her vote on a finalized request
	err = reg.ApplyApprovalResult(ctx, "wr-1", "alice", model.StatusRejected)
	assert.ErrorIs(t, err, model.ErrRequestFinalized)

	// Bob's own pending entry does not reopen it either
	err = reg.ApplyApprovalResult(ctx, "wr-1", "bob", model.StatusApproved)
	assert.ErrorIs(t, err, model.ErrRequestFinalized)
}

func TestRegistry_ApplyApprovalResult_Guards(t *testing.T) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_registry.NewMockGoalStore(ctrl)
	_, reg := mountLoaded(t, store, []model.WithdrawalRequest{requestFixture()})
	ctx := context.Background()

	err := reg.ApplyApprovalResult(ctx, "wr-1", "alice", model.StatusPending)
	assert.ErrorIs(t, err, model.ErrValidation)

	err = reg.ApplyApprovalResult(ctx, "no-such-id", "alice", model.StatusApproved)
	assert.ErrorIs(t, err, model.ErrRequestNotFound)

	// user outside the approval set
	err = reg.ApplyApprovalResult(ctx, "wr-1", "mallory", model.StatusApproved)
	assert.ErrorIs(t, err, model.ErrValidation)

	// a voter who already decided cannot vote again
	store.EXPECT().
		ApproveWithdrawal(ctx, "wr-1", model.StatusApproved).
		Return(nil)
	assert.NoError(t,
		reg.ApplyApprovalResult(ctx, "wr-1", "alice", model.StatusApproved))
	err = reg.ApplyApprovalResult(ctx, "wr-1", "alice", model.StatusRejected)
	assert.ErrorIs(t, err, model.ErrAlreadyVoted)
}

// A failed round trip keeps the optimistic patch in place; the next full
// load supersedes it with server state.
func TestRegistry_OptimisticPatchSurvivesFailure(t *testing.T) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_registry.NewMockGoalStore(ctrl)
	_, reg := mountLoaded(t, store, []model.WithdrawalRequest{requestFixture()})
	ctx := context.Background()

	store.EXPECT().
		ApproveWithdrawal(ctx, "wr-1", model.StatusApproved).
		Return(model.ErrOperationFailed)

	err := reg.ApplyApprovalResult(ctx, "wr-1", "alice", model.StatusApproved)
	assert.ErrorIs(t, err, model.ErrOperationFailed)

	// no rollback: the entry stays provisionally approved
	req, err := reg.Request("wr-1")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusApproved, req.Approval("alice").Status)
	assert.Equal(t, model.Optimistic, req.Approval("alice").Provenance)

	// reconcile: server still has the vote pending
	expectLoad(store, []model.WithdrawalRequest{requestFixture()})
	assert.NoError(t, reg.Load(ctx))

	req, err = reg.Request("wr-1")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, req.Approval("alice").Status)
	assert.Equal(t, model.Confirmed, req.Approval("alice").Provenance)
}

// Re-submitting a decision for a request whose round trip is still
// outstanding is rejected per request id.
func TestRegistry_DecisionDebounce(t *testing.T) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_registry.NewMockGoalStore(ctrl)
	_, reg := mountLoaded(t, store, []model.WithdrawalRequest{requestFixture()})
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	store.EXPECT().
		ApproveWithdrawal(gomock.Any(), "wr-1", model.StatusApproved).
		DoAndReturn(func(context.Context, string, model.ApprovalStatus) error {
			close(entered)
			<-release
			return nil
		})

	done := make(chan error, 1)
	go func() {
		done <- reg.ApplyApprovalResult(ctx, "wr-1", "alice", model.StatusApproved)
	}()

	<-entered
	err := reg.ApplyApprovalResult(ctx, "wr-1", "carol", model.StatusRejected)
	assert.ErrorIs(t, err, ErrDecisionInFlight)

	close(release)
	assert.NoError(t, <-done)
}

func TestRegistry_Create(t *testing.T) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_registry.NewMockGoalStore(ctrl)
	_, reg := mountLoaded(t, store, nil)
	ctx := context.Background()

	tests := []struct {
		name        string
		amount      int64
		description string
		wantErr     error
	}{
		{
			name:        "amount must be positive",
			amount:      0,
			description: "anything",
			wantErr:     model.ErrValidation,
		},
		{
			name:        "description required",
			amount:      100000,
			description: "",
			wantErr:     model.ErrValidation,
		},
		{
			name:        "amount above known balance",
			amount:      600000,
			description: "too much",
			wantErr:     model.ErrInsufficientFunds,
		},
	}

	// guard failures never reach the store: no RequestWithdrawal
	// expectation is registered for them
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.Create(
				ctx, decimal.NewFromInt(tt.amount), tt.description)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("valid request delegates to the store", func(t *testing.T) {
		store.EXPECT().
			RequestWithdrawal(ctx, testGoalID, model.WithdrawalRequestPayload{
				Amount:      decimal.NewFromInt(200000),
				Description: "deposit for the venue",
			}).
			Return("wr-9", nil)

		id, err := reg.Create(
			ctx, decimal.NewFromInt(200000), "deposit for the venue")
		assert.NoError(t, err)
		assert.Equal(t, "wr-9", id)
	})
}

// Before the first load the balance is unknown, so Create must not fail
// a positive amount locally; sufficiency is the server's call then.
func TestRegistry_CreateBeforeLoadDefersFundsCheck(t *testing.T) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_registry.NewMockGoalStore(ctrl)
	reg := NewArena(store).Mount(testGoalID)
	ctx := context.Background()

	amount := decimal.NewFromInt(600000)
	store.EXPECT().
		RequestWithdrawal(ctx, testGoalID, model.WithdrawalRequestPayload{
			Amount:      amount,
			Description: "deposit for the venue",
		}).
		Return("wr-9", nil)

	id, err := reg.Create(ctx, amount, "deposit for the venue")
	assert.NoError(t, err)
	assert.Equal(t, "wr-9", id)

	// a non-positive amount is still rejected without a round trip
	_, err = reg.Create(ctx, decimal.Zero, "deposit for the venue")
	assert.ErrorIs(t, err, model.ErrValidation)
}

// Creating a request and reloading yields exactly one new PENDING entry
// with the requested amount and one approval per goal member.
func TestRegistry_CreateThenLoadRoundTrip(t *testing.T) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_registry.NewMockGoalStore(ctrl)
	_, reg := mountLoaded(t, store, nil)
	ctx := context.Background()

	amount := decimal.NewFromInt(200000)

	store.EXPECT().
		RequestWithdrawal(ctx, testGoalID, gomock.Any()).
		Return("wr-1", nil)
	id, err := reg.Create(ctx, amount, "deposit for the venue")
	assert.NoError(t, err)

	created := requestFixture()
	created.ID = id
	expectLoad(store, []model.WithdrawalRequest{created})
	assert.NoError(t, reg.Load(ctx))

	requests := reg.Requests()
	assert.Len(t, requests, 1)
	assert.Equal(t, id, requests[0].ID)
	assert.True(t, requests[0].Amount.Equal(amount))
	assert.Equal(t, model.StatusPending, requests[0].Status)
	assert.Len(t, requests[0].Approvals, len(goalFixture().Members))
}

func TestRegistry_RequestsReturnsCopies(t *testing.T) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_registry.NewMockGoalStore(ctrl)
	_, reg := mountLoaded(t, store, []model.WithdrawalRequest{requestFixture()})

	leaked := reg.Requests()
	leaked[0].Approvals[0].Status = model.StatusRejected
	leaked[0].Status = model.StatusRejected

	req, err := reg.Request("wr-1")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, req.Status)
	assert.Equal(t, model.StatusPending, req.Approval("alice").Status)
}
