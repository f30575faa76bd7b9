package accounts

import (
	"context"

	"github.com/keysafe-protocol/keysafe/internal/server/models"
)

// Repository stores account balances and the once-written ledger metadata.
// An account that was never credited has balance 0.
type Repository interface {
	Balance(ctx context.Context, id models.Identity) (models.Balance, error)
	SetBalance(ctx context.Context, id models.Identity, balance models.Balance) error
	Meta(ctx context.Context) (*models.LedgerMeta, error)
	SetMeta(ctx context.Context, meta *models.LedgerMeta) error
}
