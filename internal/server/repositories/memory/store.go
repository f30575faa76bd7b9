// Package memory is the in-process storage backend. Transactions are
// serialized by a single lock and write to a staged overlay that is merged
// into the committed maps only when the transaction function succeeds.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/keysafe-protocol/keysafe/internal/common"
	"github.com/keysafe-protocol/keysafe/internal/server/models"
	"github.com/keysafe-protocol/keysafe/internal/server/repositories/accounts"
	"github.com/keysafe-protocol/keysafe/internal/server/repositories/nodes"
	"github.com/keysafe-protocol/keysafe/internal/server/repositories/recoveries"
	"github.com/keysafe-protocol/keysafe/internal/server/repositories/repomanager"
	"github.com/keysafe-protocol/keysafe/internal/server/repositories/users"
)

type state struct {
	meta       *models.LedgerMeta
	balances   map[models.Identity]models.Balance
	nodes      map[models.Identity]models.Node
	users      map[models.Identity]models.User
	recoveries map[models.Identity]models.Recovery
}

// Store implements repomanager.Store in memory.
type Store struct {
	mu        sync.RWMutex
	committed state
}

func NewStore() *Store {
	return &Store{committed: state{
		balances:   map[models.Identity]models.Balance{},
		nodes:      map[models.Identity]models.Node{},
		users:      map[models.Identity]models.User{},
		recoveries: map[models.Identity]models.Recovery{},
	}}
}

var _ repomanager.Store = (*Store)(nil)

func (s *Store) Update(ctx context.Context, fn func(ctx context.Context, repos repomanager.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := newTx(&s.committed)
	if err := fn(ctx, tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// View runs fn on a throwaway overlay; writes made by fn are discarded.
func (s *Store) View(ctx context.Context, fn func(ctx context.Context, repos repomanager.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(ctx, newTx(&s.committed))
}

// tx reads through its own staged state to the committed one.
type tx struct {
	base *state
	state
}

func newTx(base *state) *tx {
	return &tx{
		base: base,
		state: state{
			balances:   map[models.Identity]models.Balance{},
			nodes:      map[models.Identity]models.Node{},
			users:      map[models.Identity]models.User{},
			recoveries: map[models.Identity]models.Recovery{},
		},
	}
}

func (t *tx) commit() {
	if t.meta != nil {
		t.base.meta = t.meta
	}
	for k, v := range t.balances {
		t.base.balances[k] = v
	}
	for k, v := range t.nodes {
		t.base.nodes[k] = v
	}
	for k, v := range t.users {
		t.base.users[k] = v
	}
	for k, v := range t.recoveries {
		t.base.recoveries[k] = v
	}
}

func lookup[V any](staged, base map[models.Identity]V, id models.Identity) (V, bool) {
	if v, ok := staged[id]; ok {
		return v, true
	}
	v, ok := base[id]
	return v, ok
}

func (t *tx) Accounts() accounts.Repository     { return accountsRepo{t} }
func (t *tx) Nodes() nodes.Repository           { return nodesRepo{t} }
func (t *tx) Users() users.Repository           { return usersRepo{t} }
func (t *tx) Recoveries() recoveries.Repository { return recoveriesRepo{t} }

type accountsRepo struct{ t *tx }

func (r accountsRepo) Balance(_ context.Context, id models.Identity) (models.Balance, error) {
	b, _ := lookup(r.t.balances, r.t.base.balances, id)
	return b, nil
}

func (r accountsRepo) SetBalance(_ context.Context, id models.Identity, balance models.Balance) error {
	if balance > models.MaxBalance {
		return common.ErrorBalanceOverflow
	}
	r.t.balances[id] = balance
	return nil
}

func (r accountsRepo) Meta(context.Context) (*models.LedgerMeta, error) {
	m := r.t.meta
	if m == nil {
		m = r.t.base.meta
	}
	if m == nil {
		return nil, common.ErrorNotFound
	}
	out := *m
	return &out, nil
}

func (r accountsRepo) SetMeta(_ context.Context, meta *models.LedgerMeta) error {
	if meta.TotalSupply > models.MaxBalance {
		return common.ErrorBalanceOverflow
	}
	m := *meta
	r.t.meta = &m
	return nil
}

type nodesRepo struct{ t *tx }

func (r nodesRepo) Create(_ context.Context, node *models.Node) (bool, error) {
	if _, ok := lookup(r.t.nodes, r.t.base.nodes, node.ID); ok {
		return false, nil
	}
	r.t.nodes[node.ID] = *node
	return true, nil
}

func (r nodesRepo) Get(_ context.Context, id models.Identity) (*models.Node, error) {
	n, ok := lookup(r.t.nodes, r.t.base.nodes, id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &n, nil
}

type usersRepo struct{ t *tx }

func (r usersRepo) Save(_ context.Context, user *models.User) error {
	r.t.users[user.ID] = *user
	return nil
}

func (r usersRepo) Get(_ context.Context, id models.Identity) (*models.User, error) {
	u, ok := lookup(r.t.users, r.t.base.users, id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

type recoveriesRepo struct{ t *tx }

func (r recoveriesRepo) Save(_ context.Context, rec *models.Recovery) error {
	if !rec.Status.Valid() {
		return fmt.Errorf("%w: recovery %s", common.ErrorValidation, rec.Status)
	}
	r.t.recoveries[rec.UserID] = *rec
	return nil
}

func (r recoveriesRepo) Get(_ context.Context, userID models.Identity) (*models.Recovery, error) {
	rec, ok := lookup(r.t.recoveries, r.t.base.recoveries, userID)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &rec, nil
}
