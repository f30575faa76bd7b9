package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/keysafe-protocol/keysafe/internal/logging"
	"github.com/keysafe-protocol/keysafe/internal/server/archive"
	"github.com/keysafe-protocol/keysafe/internal/server/models"
	"github.com/keysafe-protocol/keysafe/internal/server/repositories/accounts"
	"github.com/keysafe-protocol/keysafe/internal/server/repositories/memory"
	"github.com/keysafe-protocol/keysafe/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
)

type fakeArchiver struct {
	mu       sync.Mutex
	receipts []archive.Receipt
	ctxErrs  []error
	deadline []bool
	err      error
}

func (f *fakeArchiver) Archive(ctx context.Context, r archive.Receipt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receipts = append(f.receipts, r)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	_, ok := ctx.Deadline()
	f.deadline = append(f.deadline, ok)
	return f.err
}

type fixture struct {
	store    repomanager.Store
	ledger   *LedgerService
	registry *RegistryService
	recovery *RecoveryService
	archiver *fakeArchiver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithStore(t, memory.NewStore())
}

func newFixtureWithStore(t *testing.T, store repomanager.Store) *fixture {
	t.Helper()
	arch := &fakeArchiver{}
	return &fixture{
		store:    store,
		ledger:   NewLedgerService(store, logging.Nop{}),
		registry: NewRegistryService(store, logging.Nop{}),
		recovery: NewRecoveryService(store, arch, logging.Nop{}),
		archiver: arch,
	}
}

func custodians(ids ...models.Identity) [models.CustodianCount]models.Custodian {
	var cs [models.CustodianCount]models.Custodian
	for i, id := range ids {
		cs[i] = models.Custodian{NodeID: id}
	}
	return cs
}

func (f *fixture) balance(t *testing.T, id models.Identity) models.Balance {
	t.Helper()
	b, err := f.ledger.BalanceOf(context.Background(), id)
	require.NoError(t, err)
	return b
}

func (f *fixture) session(t *testing.T, id models.Identity) models.Recovery {
	t.Helper()
	s, err := f.recovery.GetSession(context.Background(), id)
	require.NoError(t, err)
	return *s
}

// setup issues supply to root, registers nodes n1..n3 and user alice with
// them as custodians, and funds alice with funds.
func (f *fixture) setup(t *testing.T, funds models.Balance) {
	t.Helper()
	ctx := context.Background()

	_, err := f.ledger.Genesis(ctx, "root", 30000)
	require.NoError(t, err)
	for _, n := range []models.Identity{"n1", "n2", "n3"} {
		_, err := f.registry.RegisterNode(ctx, n, "pk-"+string(n))
		require.NoError(t, err)
	}
	_, err = f.registry.RegisterUser(ctx, "alice", "pk-alice", custodians("n1", "n2", "n3"))
	require.NoError(t, err)
	if funds > 0 {
		require.NoError(t, f.ledger.TransferChecked(ctx, "root", "alice", funds))
	}
}

// failingStore wraps a Store and fails SetBalance for one identity.
type failingStore struct {
	repomanager.Store
	failFor models.Identity
}

var errInjected = errors.New("injected failure")

func (s failingStore) Update(ctx context.Context, fn func(ctx context.Context, repos repomanager.Repositories) error) error {
	return s.Store.Update(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		return fn(ctx, failingRepos{Repositories: repos, failFor: s.failFor})
	})
}

type failingRepos struct {
	repomanager.Repositories
	failFor models.Identity
}

func (r failingRepos) Accounts() accounts.Repository {
	return failingAccounts{Repository: r.Repositories.Accounts(), failFor: r.failFor}
}

type failingAccounts struct {
	accounts.Repository
	failFor models.Identity
}

func (a failingAccounts) SetBalance(ctx context.Context, id models.Identity, b models.Balance) error {
	if id == a.failFor {
		return errInjected
	}
	return a.Repository.SetBalance(ctx, id, b)
}
