package repomanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/keysafe-protocol/keysafe/internal/dbx"
	"github.com/keysafe-protocol/keysafe/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastRetry = dbx.RetryPolicy{Attempts: 3, Base: time.Millisecond, Max: 2 * time.Millisecond}

func TestSQLStore_UpdateCommits(t *testing.T) {
	db, mock := newDB(t)
	store := NewSQLStore(db, NewPostgresRepositoryManager(), fastRetry)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT\s+INTO\s+accounts`).WithArgs("alice", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.Update(context.Background(), func(ctx context.Context, repos Repositories) error {
		return repos.Accounts().SetBalance(ctx, "alice", 5)
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_UpdateRollsBackOnError(t *testing.T) {
	db, mock := newDB(t)
	store := NewSQLStore(db, NewPostgresRepositoryManager(), fastRetry)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT\s+INTO\s+accounts`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := store.Update(context.Background(), func(ctx context.Context, repos Repositories) error {
		if err := repos.Accounts().SetBalance(ctx, "alice", 5); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_UpdateRetriesSerializationFailure(t *testing.T) {
	db, mock := newDB(t)
	store := NewSQLStore(db, NewPostgresRepositoryManager(), fastRetry)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT\s+INTO\s+nodes`).WillReturnError(&pgconn.PgError{Code: "40001"})
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT\s+INTO\s+nodes`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	calls := 0
	err := store.Update(context.Background(), func(ctx context.Context, repos Repositories) error {
		calls++
		_, err := repos.Nodes().Create(ctx, &models.Node{ID: "n1", PublicKey: "pk"})
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_View(t *testing.T) {
	db, mock := newDB(t)
	store := NewSQLStore(db, NewPostgresRepositoryManager(), fastRetry)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT\s+balance\s+FROM\s+accounts`).WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(int64(9)))
	mock.ExpectCommit()

	var got models.Balance
	err := store.View(context.Background(), func(ctx context.Context, repos Repositories) error {
		var err error
		got, err = repos.Accounts().Balance(ctx, "alice")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, models.Balance(9), got)
	require.NoError(t, mock.ExpectationsWereMet())
}
