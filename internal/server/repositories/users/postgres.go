// Package users stores user profiles together with their three custodian
// assignments.
package users

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

func (r *PostgresRepository) Save(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, public_key, cond1, node1, cond2, node2, cond3, node3, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (id) DO UPDATE
		SET public_key = EXCLUDED.public_key,
		    cond1 = EXCLUDED.cond1, node1 = EXCLUDED.node1,
		    cond2 = EXCLUDED.cond2, node2 = EXCLUDED.node2,
		    cond3 = EXCLUDED.cond3, node3 = EXCLUDED.node3,
		    updated_at = EXCLUDED.updated_at
	`
	c := user.Custodians
	_, err := r.db.ExecContext(ctx, query,
		string(user.ID), user.PublicKey,
		int16(c[0].Condition), string(c[0].NodeID),
		int16(c[1].Condition), string(c[1].NodeID),
		int16(c[2].Condition), string(c[2].NodeID),
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id models.Identity) (*models.User, error) {
	query := `
		SELECT id, public_key, cond1, node1, cond2, node2, cond3, node3
		FROM users
		WHERE id = $1
	`
	var (
		userID string
		conds  [models.CustodianCount]int16
		nodes  [models.CustodianCount]string
	)
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, string(id)).Scan(
		&userID, &user.PublicKey,
		&conds[0], &nodes[0],
		&conds[1], &nodes[1],
		&conds[2], &nodes[2],
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.ID = models.Identity(userID)
	for i := range user.Custodians {
		user.Custodians[i] = models.Custodian{Condition: uint8(conds[i]), NodeID: models.Identity(nodes[i])}
	}
	return user, nil
}
