package recoveries

import (
	"context"

	"github.com/keysafe-protocol/keysafe/internal/server/models"
)

type Repository interface {
	// Save creates or wholly replaces the session of r.UserID.
	Save(ctx context.Context, r *models.Recovery) error
	Get(ctx context.Context, userID models.Identity) (*models.Recovery, error)
}
