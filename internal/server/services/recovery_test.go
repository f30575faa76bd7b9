package services

import (
	"context"
	"errors"
	"testing"

	"github.com/keysafe-protocol/keysafe/internal/common"
	"github.com/keysafe-protocol/keysafe/internal/logging"
	"github.com/keysafe-protocol/keysafe/internal/server/models"
	"github.com/keysafe-protocol/keysafe/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartRecovery_RequiresReserve(t *testing.T) {
	f := newFixture(t)
	f.setup(t, 2)

	out, err := f.recovery.StartRecovery(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, models.Rejected(models.ReasonInsufficientReserve), out)
	assert.Equal(t, models.RecoveryIdle, f.session(t, "alice").Status)
}

func TestStartRecovery_NoSession(t *testing.T) {
	f := newFixture(t)
	f.setup(t, 0)

	require.NoError(t, f.ledger.TransferChecked(context.Background(), "root", "bob", 10))

	out, err := f.recovery.StartRecovery(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, models.Rejected(models.ReasonSessionNotFound), out)
}

func TestSubmitConfirmation_Guards(t *testing.T) {
	f := newFixture(t)
	f.setup(t, 3)
	ctx := context.Background()

	res, err := f.recovery.SubmitConfirmation(ctx, "n1", "nobody", "p")
	require.NoError(t, err)
	assert.Equal(t, models.ReasonUserNotFound, res.Reason)

	res, err = f.recovery.SubmitConfirmation(ctx, "n1", "alice", "p")
	require.NoError(t, err)
	assert.Equal(t, models.ReasonSessionNotActive, res.Reason)

	_, err = f.recovery.StartRecovery(ctx, "alice")
	require.NoError(t, err)
	before := f.session(t, "alice")

	res, err = f.recovery.SubmitConfirmation(ctx, "mallory", "alice", "p")
	require.NoError(t, err)
	assert.Equal(t, models.Rejected(models.ReasonNotACustodian), res.Outcome)
	assert.False(t, res.Finalized)
	assert.Equal(t, before, f.session(t, "alice"), "stranger must not change the session")
}

func TestSubmitConfirmation_RejectsNulInProof(t *testing.T) {
	f := newFixture(t)
	f.setup(t, 3)
	ctx := context.Background()

	_, err := f.recovery.StartRecovery(ctx, "alice")
	require.NoError(t, err)
	before := f.session(t, "alice")

	_, err = f.recovery.SubmitConfirmation(ctx, "n1", "alice", "p\x001")
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Equal(t, before, f.session(t, "alice"))
}

func TestSubmitConfirmation_AnyTwoOfThreeFinalize(t *testing.T) {
	pairs := [][2]models.Identity{
		{"n1", "n2"}, {"n2", "n1"},
		{"n1", "n3"}, {"n3", "n1"},
		{"n2", "n3"}, {"n3", "n2"},
	}
	for _, p := range pairs {
		t.Run(string(p[0])+"-"+string(p[1]), func(t *testing.T) {
			f := newFixture(t)
			f.setup(t, 10)
			ctx := context.Background()

			_, err := f.recovery.StartRecovery(ctx, "alice")
			require.NoError(t, err)

			first, err := f.recovery.SubmitConfirmation(ctx, p[0], "alice", "proof-a")
			require.NoError(t, err)
			assert.True(t, first.Applied)
			assert.False(t, first.Finalized)

			second, err := f.recovery.SubmitConfirmation(ctx, p[1], "alice", "proof-b")
			require.NoError(t, err)
			assert.True(t, second.Applied)
			assert.True(t, second.Finalized)

			s := f.session(t, "alice")
			assert.Equal(t, models.RecoveryFinalized, s.Status)
			assert.Equal(t, uint32(1), s.TotalCompletions)

			assert.Equal(t, models.Balance(7), f.balance(t, "alice"))
			for _, n := range []models.Identity{"n1", "n2", "n3"} {
				assert.Equal(t, models.Balance(1), f.balance(t, n), "custodian %s", n)
			}
			require.Len(t, f.archiver.receipts, 1)
		})
	}
}

func TestSubmitConfirmation_RepeatKeepsLatestProof(t *testing.T) {
	f := newFixture(t)
	f.setup(t, 3)
	ctx := context.Background()

	_, err := f.recovery.StartRecovery(ctx, "alice")
	require.NoError(t, err)

	for _, proof := range []string{"p1", "p1-again", "p1-final"} {
		res, err := f.recovery.SubmitConfirmation(ctx, "n1", "alice", proof)
		require.NoError(t, err)
		assert.True(t, res.Applied)
		assert.False(t, res.Finalized)
	}

	s := f.session(t, "alice")
	assert.Equal(t, 1, s.ConfirmedCount())
	assert.Equal(t, "p1-final", s.Slots[0].Proof)
	assert.Equal(t, models.RecoveryActive, s.Status)
}

func TestSubmitConfirmation_AfterFinalizeIsRejected(t *testing.T) {
	f := newFixture(t)
	f.setup(t, 3)
	ctx := context.Background()

	_, _ = f.recovery.StartRecovery(ctx, "alice")
	_, _ = f.recovery.SubmitConfirmation(ctx, "n1", "alice", "p1")
	_, _ = f.recovery.SubmitConfirmation(ctx, "n2", "alice", "p2")

	res, err := f.recovery.SubmitConfirmation(ctx, "n3", "alice", "p3")
	require.NoError(t, err)
	assert.Equal(t, models.ReasonSessionNotActive, res.Reason)
	assert.Equal(t, models.Balance(1), f.balance(t, "n3"), "no second payout")
}

func TestStartRecovery_RestartPreservesCompletions(t *testing.T) {
	f := newFixture(t)
	f.setup(t, 6)
	ctx := context.Background()

	for round := uint32(1); round <= 2; round++ {
		out, err := f.recovery.StartRecovery(ctx, "alice")
		require.NoError(t, err)
		require.True(t, out.Applied)

		s := f.session(t, "alice")
		assert.Equal(t, models.RecoveryActive, s.Status)
		assert.Equal(t, round-1, s.TotalCompletions)
		assert.Zero(t, s.ConfirmedCount())

		_, err = f.recovery.SubmitConfirmation(ctx, "n2", "alice", "a")
		require.NoError(t, err)
		res, err := f.recovery.SubmitConfirmation(ctx, "n3", "alice", "b")
		require.NoError(t, err)
		require.True(t, res.Finalized)
		assert.Equal(t, round, res.Session.TotalCompletions)
	}

	assert.Zero(t, f.balance(t, "alice"))
	assert.Equal(t, models.Balance(2), f.balance(t, "n1"))

	out, err := f.recovery.StartRecovery(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.ReasonInsufficientReserve, out.Reason)
	assert.Equal(t, models.RecoveryFinalized, f.session(t, "alice").Status)
}

func TestStartRecovery_RestartClearsPartialRound(t *testing.T) {
	f := newFixture(t)
	f.setup(t, 3)
	ctx := context.Background()

	_, _ = f.recovery.StartRecovery(ctx, "alice")
	_, _ = f.recovery.SubmitConfirmation(ctx, "n1", "alice", "p1")

	_, err := f.recovery.StartRecovery(ctx, "alice")
	require.NoError(t, err)

	res, err := f.recovery.SubmitConfirmation(ctx, "n2", "alice", "p2")
	require.NoError(t, err)
	assert.False(t, res.Finalized, "confirmation from the previous round must not count")
}

func TestSubmitConfirmation_UnfundedStaysActive(t *testing.T) {
	f := newFixture(t)
	f.setup(t, 3)
	ctx := context.Background()

	_, err := f.recovery.StartRecovery(ctx, "alice")
	require.NoError(t, err)
	require.NoError(t, f.ledger.Transfer(ctx, "alice", "bob", 2))

	_, err = f.recovery.SubmitConfirmation(ctx, "n1", "alice", "p1")
	require.NoError(t, err)
	res, err := f.recovery.SubmitConfirmation(ctx, "n2", "alice", "p2")
	require.NoError(t, err)

	assert.Equal(t, models.Applied(), res.Outcome)
	assert.True(t, res.PayoutPending)
	assert.False(t, res.Finalized)
	s := f.session(t, "alice")
	assert.Equal(t, models.RecoveryActive, s.Status)
	assert.Equal(t, 2, s.ConfirmedCount())
	assert.Zero(t, s.TotalCompletions)
	assert.Equal(t, models.Balance(1), f.balance(t, "alice"))
	for _, n := range []models.Identity{"n1", "n2", "n3"} {
		assert.Zero(t, f.balance(t, n))
	}
	assert.Empty(t, f.archiver.receipts)

	require.NoError(t, f.ledger.Transfer(ctx, "bob", "alice", 2))
	res, err = f.recovery.SubmitConfirmation(ctx, "n3", "alice", "p3")
	require.NoError(t, err)
	assert.True(t, res.Finalized)
	assert.False(t, res.PayoutPending)
	assert.Zero(t, f.balance(t, "alice"))
	assert.Equal(t, models.Balance(1), f.balance(t, "n3"))
}

func TestSubmitConfirmation_DrainedMidRoundReportsStoredConfirmation(t *testing.T) {
	f := newFixture(t)
	f.setup(t, 3)
	ctx := context.Background()

	_, err := f.recovery.StartRecovery(ctx, "alice")
	require.NoError(t, err)
	first, err := f.recovery.SubmitConfirmation(ctx, "n1", "alice", "p1")
	require.NoError(t, err)
	require.True(t, first.Applied)
	require.False(t, first.PayoutPending)

	require.NoError(t, f.ledger.Transfer(ctx, "alice", "bob", 3))
	before := f.session(t, "alice")

	res, err := f.recovery.SubmitConfirmation(ctx, "n2", "alice", "p2")
	require.NoError(t, err)
	after := f.session(t, "alice")

	require.NotEqual(t, before, after, "second confirmation is stored")
	assert.True(t, res.Applied, "a stored confirmation must be reported as applied")
	assert.Empty(t, res.Reason)
	assert.True(t, res.PayoutPending)
	assert.False(t, res.Finalized)
	assert.Equal(t, after, res.Session)
	assert.Equal(t, []models.ConfirmationSlot{{Proof: "p1", Confirmed: true}, {Proof: "p2", Confirmed: true}, {}}, after.Slots[:])
}

func TestSubmitConfirmation_PayoutFailureRollsBackEverything(t *testing.T) {
	f := newFixture(t)
	f.setup(t, 3)
	ctx := context.Background()

	_, _ = f.recovery.StartRecovery(ctx, "alice")
	_, _ = f.recovery.SubmitConfirmation(ctx, "n1", "alice", "p1")
	before := f.session(t, "alice")

	failing := newFixtureWithStore(t, failingStore{Store: f.store, failFor: "n3"})
	_, err := failing.recovery.SubmitConfirmation(ctx, "n2", "alice", "p2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errInjected))

	assert.Equal(t, before, f.session(t, "alice"))
	assert.Equal(t, models.Balance(3), f.balance(t, "alice"))
	assert.Zero(t, f.balance(t, "n1"))
	assert.Zero(t, f.balance(t, "n2"))
	assert.Empty(t, failing.archiver.receipts)
}

func TestSubmitConfirmation_ArchiveFailureKeepsFinalization(t *testing.T) {
	f := newFixture(t)
	f.setup(t, 3)
	f.archiver.err = errors.New("s3 down")
	ctx := context.Background()

	_, _ = f.recovery.StartRecovery(ctx, "alice")
	_, _ = f.recovery.SubmitConfirmation(ctx, "n1", "alice", "p1")
	res, err := f.recovery.SubmitConfirmation(ctx, "n3", "alice", "p3")
	require.NoError(t, err)
	assert.True(t, res.Finalized)
	assert.Equal(t, models.RecoveryFinalized, f.session(t, "alice").Status)

	require.Len(t, f.archiver.receipts, 1)
	r := f.archiver.receipts[0]
	assert.Equal(t, "alice", r.UserID)
	assert.Equal(t, uint32(1), r.Round)
	assert.Equal(t, []bool{true, false, true}, r.Confirmed)
}

// cancelAfterCommit cancels the request context once the transaction
// that finalizes the round has committed, before the archive runs.
type cancelAfterCommit struct {
	repomanager.Store
	cancel context.CancelFunc
}

func (s cancelAfterCommit) Update(ctx context.Context, fn func(ctx context.Context, repos repomanager.Repositories) error) error {
	err := s.Store.Update(ctx, fn)
	s.cancel()
	return err
}

func TestSubmitConfirmation_ArchiveSurvivesCancelledRequest(t *testing.T) {
	f := newFixture(t)
	f.setup(t, 3)
	ctx := context.Background()

	_, _ = f.recovery.StartRecovery(ctx, "alice")
	_, _ = f.recovery.SubmitConfirmation(ctx, "n1", "alice", "p1")

	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	svc := NewRecoveryService(cancelAfterCommit{Store: f.store, cancel: cancel}, f.archiver, logging.Nop{})

	res, err := svc.SubmitConfirmation(reqCtx, "n2", "alice", "p2")
	require.NoError(t, err)
	require.True(t, res.Finalized)
	require.Error(t, reqCtx.Err())

	require.Len(t, f.archiver.receipts, 1)
	assert.NoError(t, f.archiver.ctxErrs[0], "archive must not inherit the request cancellation")
	assert.True(t, f.archiver.deadline[0], "archive runs with a bounded timeout")
}

func TestGetSession_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.recovery.GetSession(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

// Supply of 30000 with root as issuer; alice is funded with exactly the
// reserve before her recovery.
func TestRecoveryScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.Genesis(ctx, "root", 30000)
	require.NoError(t, err)
	_, err = f.registry.RegisterUser(ctx, "A", "pkA", custodians("N1", "N2", "N3"))
	require.NoError(t, err)
	assert.Equal(t, models.NewRecovery("A"), f.session(t, "A"))

	out, err := f.recovery.StartRecovery(ctx, "A")
	require.NoError(t, err)
	assert.False(t, out.Applied)

	require.NoError(t, f.ledger.TransferChecked(ctx, "root", "A", 3))
	out, err = f.recovery.StartRecovery(ctx, "A")
	require.NoError(t, err)
	assert.True(t, out.Applied)
	assert.Equal(t, models.RecoveryActive, f.session(t, "A").Status)

	res, err := f.recovery.SubmitConfirmation(ctx, "N1", "A", "p1")
	require.NoError(t, err)
	assert.False(t, res.Finalized)
	s := f.session(t, "A")
	assert.Equal(t, models.RecoveryActive, s.Status)
	assert.Equal(t, [models.CustodianCount]bool{true, false, false},
		[models.CustodianCount]bool{s.Slots[0].Confirmed, s.Slots[1].Confirmed, s.Slots[2].Confirmed})

	res, err = f.recovery.SubmitConfirmation(ctx, "N2", "A", "p2")
	require.NoError(t, err)
	assert.True(t, res.Finalized)

	s = f.session(t, "A")
	assert.Equal(t, models.RecoveryFinalized, s.Status)
	assert.Equal(t, uint32(1), s.TotalCompletions)
	assert.Zero(t, f.balance(t, "A"))
	for _, n := range []models.Identity{"N1", "N2", "N3"} {
		assert.Equal(t, models.Balance(1), f.balance(t, n))
	}

	total, err := f.ledger.TotalIssued(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Balance(30000), total)
	assert.Equal(t, models.Balance(29997), f.balance(t, "root"))
}
