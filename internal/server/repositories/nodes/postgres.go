// Package nodes stores custodian node registrations. A node row is written
// once and never updated.
package nodes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/keysafe-protocol/keysafe/internal/common"
	"github.com/keysafe-protocol/keysafe/internal/dbx"
	"github.com/keysafe-protocol/keysafe/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, node *models.Node) (bool, error) {
	query := `
		INSERT INTO nodes (id, public_key)
		VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING
	`
	res, err := r.db.ExecContext(ctx, query, string(node.ID), node.PublicKey)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n == 1, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id models.Identity) (*models.Node, error) {
	query := `SELECT id, public_key FROM nodes WHERE id = $1`

	var nodeID string
	node := &models.Node{}
	if err := r.db.QueryRowContext(ctx, query, string(id)).Scan(&nodeID, &node.PublicKey); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	node.ID = models.Identity(nodeID)
	return node, nil
}
