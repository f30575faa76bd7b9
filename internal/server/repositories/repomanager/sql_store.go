package repomanager

import (
	"context"
	"database/sql"

	"github.com/keysafe-protocol/keysafe/internal/dbx"
	"github.com/keysafe-protocol/keysafe/internal/server/repositories/accounts"
	"github.com/keysafe-protocol/keysafe/internal/server/repositories/nodes"
	"github.com/keysafe-protocol/keysafe/internal/server/repositories/recoveries"
	"github.com/keysafe-protocol/keysafe/internal/server/repositories/users"
)

// SQLStore runs every Update in a serializable transaction and repeats it on
// serialization failures.
type SQLStore struct {
	db     *sql.DB
	m      RepositoryManager
	policy dbx.RetryPolicy
}

func NewSQLStore(db *sql.DB, m RepositoryManager, policy dbx.RetryPolicy) *SQLStore {
	return &SQLStore{db: db, m: m, policy: policy}
}

func (s *SQLStore) Update(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}
	return dbx.WithRetryingTx(ctx, s.db, opts, s.policy, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, txRepositories{m: s.m, tx: tx})
	})
}

func (s *SQLStore) View(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	return dbx.WithTx(ctx, s.db, opts, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, txRepositories{m: s.m, tx: tx})
	})
}

type txRepositories struct {
	m  RepositoryManager
	tx dbx.DBTX
}

func (r txRepositories) Accounts() accounts.Repository     { return r.m.Accounts(r.tx) }
func (r txRepositories) Nodes() nodes.Repository           { return r.m.Nodes(r.tx) }
func (r txRepositories) Users() users.Repository           { return r.m.Users(r.tx) }
func (r txRepositories) Recoveries() recoveries.Repository { return r.m.Recoveries(r.tx) }
