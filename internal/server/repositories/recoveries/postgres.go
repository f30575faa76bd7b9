// Package recoveries stores the single recovery session each user has.
package recoveries

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

func (r *PostgresRepository) Save(ctx context.Context, rec *models.Recovery) error {
	if !rec.Status.Valid() {
		return fmt.Errorf("%w: recovery %s", common.ErrorValidation, rec.Status)
	}

	query := `
		INSERT INTO recoveries (user_id, status, total_completions,
		                        proof1, confirmed1, proof2, confirmed2, proof3, confirmed3, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		ON CONFLICT (user_id) DO UPDATE
		SET status = EXCLUDED.status,
		    total_completions = EXCLUDED.total_completions,
		    proof1 = EXCLUDED.proof1, confirmed1 = EXCLUDED.confirmed1,
		    proof2 = EXCLUDED.proof2, confirmed2 = EXCLUDED.confirmed2,
		    proof3 = EXCLUDED.proof3, confirmed3 = EXCLUDED.confirmed3,
		    updated_at = EXCLUDED.updated_at
	`
	s := rec.Slots
	_, err := r.db.ExecContext(ctx, query,
		string(rec.UserID), int16(rec.Status), int64(rec.TotalCompletions),
		s[0].Proof, s[0].Confirmed,
		s[1].Proof, s[1].Confirmed,
		s[2].Proof, s[2].Confirmed,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID models.Identity) (*models.Recovery, error) {
	query := `
		SELECT user_id, status, total_completions,
		       proof1, confirmed1, proof2, confirmed2, proof3, confirmed3
		FROM recoveries
		WHERE user_id = $1
	`
	var (
		id          string
		status      int16
		completions int64
	)
	rec := &models.Recovery{}
	s := &rec.Slots
	err := r.db.QueryRowContext(ctx, query, string(userID)).Scan(
		&id, &status, &completions,
		&s[0].Proof, &s[0].Confirmed,
		&s[1].Proof, &s[1].Confirmed,
		&s[2].Proof, &s[2].Confirmed,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	rec.UserID = models.Identity(id)
	rec.Status = models.RecoveryStatus(status)
	rec.TotalCompletions = uint32(completions)
	if !rec.Status.Valid() {
		return nil, fmt.Errorf("db error: unknown recovery %s for %q", rec.Status, id)
	}
	return rec, nil
}
