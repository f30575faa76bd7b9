package nodes

import (
	"context"

	"github.com/keysafe-protocol/keysafe/internal/server/models"
)

type Repository interface {
	// Create inserts node unless its id is taken and reports whether it did.
	Create(ctx context.Context, node *models.Node) (bool, error)
	Get(ctx context.Context, id models.Identity) (*models.Node, error)
}
