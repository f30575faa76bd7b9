// Package dbx provides small DB abstractions shared by repositories:
// a minimal interface (DBTX) implemented by both *sql.DB and *sql.Tx,
// and helpers to run functions inside a (retried) transaction.
package dbx

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
)

// DBTX is the subset of database/sql used by our repos.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx begins a transaction, runs fn with a transactional handle, and then
// commits on success or rolls back on error/panic. Panics are rethrown.
//
// Typical use:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    _, err := tx.ExecContext(ctx, "UPDATE ...")
//	    return err
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}

// PostgreSQL SQLSTATE codes that mean "run the whole transaction again".
const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

// IsSerializationFailure reports whether err carries a PostgreSQL
// serialization failure or deadlock.
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == sqlStateSerializationFailure || pgErr.Code == sqlStateDeadlockDetected
}

// RetryPolicy bounds WithRetryingTx.
type RetryPolicy struct {
	Attempts uint64
	Base     time.Duration
	Max      time.Duration
}

// DefaultRetryPolicy is used when a zero policy is given.
var DefaultRetryPolicy = RetryPolicy{Attempts: 5, Base: 10 * time.Millisecond, Max: 500 * time.Millisecond}

func (p RetryPolicy) backoff() retry.Backoff {
	if p.Attempts == 0 {
		p = DefaultRetryPolicy
	}
	b := retry.NewExponential(p.Base)
	b = retry.WithCappedDuration(p.Max, b)
	return retry.WithMaxRetries(p.Attempts, b)
}

// WithRetryingTx runs WithTx and repeats it while the transaction fails with
// a serialization failure. Every attempt starts from a fresh transaction, so
// fn must not keep state between attempts.
func WithRetryingTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, policy RetryPolicy, fn func(ctx context.Context, tx DBTX) error) error {
	return retry.Do(ctx, policy.backoff(), func(ctx context.Context) error {
		err := WithTx(ctx, db, opts, fn)
		if IsSerializationFailure(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}
