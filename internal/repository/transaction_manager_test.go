package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_WithTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("Commit", func(t *testing.T) {
		db, mock := setupTestDB(t)
		tm := NewTransactionManagerAdapter(db)

		mock.ExpectBegin()
		mock.ExpectCommit()

		err := tm.WithTransaction(ctx, func(txCtx context.Context) error {
			_, isTx := GetExecutor(txCtx, db).(*sqlx.Tx)
			assert.True(t, isTx)
			return nil
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NestedJoinsOuter", func(t *testing.T) {
		db, mock := setupTestDB(t)
		tm := NewTransactionManagerAdapter(db)

		mock.ExpectBegin()
		mock.ExpectCommit()

		err := tm.WithTransaction(ctx, func(outer context.Context) error {
			return tm.WithTransaction(outer, func(inner context.Context) error {
				assert.Same(t, GetExecutor(outer, db), GetExecutor(inner, db))
				return nil
			})
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback", func(t *testing.T) {
		db, mock := setupTestDB(t)
		tm := NewTransactionManagerAdapter(db)

		mock.ExpectBegin()
		mock.ExpectRollback()

		fnErr := errors.New("boom")
		err := tm.WithTransaction(ctx, func(context.Context) error { return fnErr })
		assert.ErrorIs(t, err, fnErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoTransactionOutsideContext", func(t *testing.T) {
		db, _ := setupTestDB(t)
		_, isDB := GetExecutor(ctx, db).(*sqlx.DB)
		assert.True(t, isDB)
	})
}
