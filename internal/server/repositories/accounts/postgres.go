// Package accounts provides the balance store of the ledger.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/keysafe-protocol/keysafe/internal/common"
	"github.com/keysafe-protocol/keysafe/internal/dbx"
	"github.com/keysafe-protocol/keysafe/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Balance returns 0 for an identity without a row.
func (r *PostgresRepository) Balance(ctx context.Context, id models.Identity) (models.Balance, error) {
	query := `SELECT balance FROM accounts WHERE id = $1`

	var balance int64
	if err := r.db.QueryRowContext(ctx, query, string(id)).Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	if balance < 0 {
		return 0, fmt.Errorf("db error: negative balance %d for %q", balance, id)
	}
	return models.Balance(balance), nil
}

func (r *PostgresRepository) SetBalance(ctx context.Context, id models.Identity, balance models.Balance) error {
	if balance > models.MaxBalance {
		return common.ErrorBalanceOverflow
	}

	query := `
		INSERT INTO accounts (id, balance, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE
		SET balance = EXCLUDED.balance, updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, string(id), int64(balance)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Meta returns common.ErrorNotFound before genesis.
func (r *PostgresRepository) Meta(ctx context.Context) (*models.LedgerMeta, error) {
	query := `SELECT issuer, total_supply FROM ledger_meta WHERE id = 1`

	var (
		issuer string
		supply int64
	)
	if err := r.db.QueryRowContext(ctx, query).Scan(&issuer, &supply); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &models.LedgerMeta{Issuer: models.Identity(issuer), TotalSupply: models.Balance(supply)}, nil
}

func (r *PostgresRepository) SetMeta(ctx context.Context, meta *models.LedgerMeta) error {
	if meta.TotalSupply > models.MaxBalance {
		return common.ErrorBalanceOverflow
	}

	query := `
		INSERT INTO ledger_meta (id, issuer, total_supply)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE
		SET issuer = EXCLUDED.issuer, total_supply = EXCLUDED.total_supply
	`
	if _, err := r.db.ExecContext(ctx, query, string(meta.Issuer), int64(meta.TotalSupply)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
