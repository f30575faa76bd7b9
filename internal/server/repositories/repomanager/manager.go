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

// RepositoryManager vends repositories bound to a DB handle or transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Nodes(db dbx.DBTX) nodes.Repository
	Users(db dbx.DBTX) users.Repository
	Recoveries(db dbx.DBTX) recoveries.Repository
}

// Repositories is the set of repositories visible inside one transaction.
type Repositories interface {
	Accounts() accounts.Repository
	Nodes() nodes.Repository
	Users() users.Repository
	Recoveries() recoveries.Repository
}

// Store runs functions atomically against Repositories. If fn returns an
// error or panics, none of its writes become visible.
type Store interface {
	Update(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
	View(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
