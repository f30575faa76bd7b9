package users

import (
	"context"

	"github.com/keysafe-protocol/keysafe/internal/server/models"
)

type Repository interface {
	// Save creates or wholly replaces the user.
	Save(ctx context.Context, user *models.User) error
	Get(ctx context.Context, id models.Identity) (*models.User, error)
}
