package dbmetrics

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_ObservesQueries(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	reg := prometheus.NewRegistry()
	db := Wrap(sqlDB, NewCollector("test", reg))

	mock.ExpectExec("DELETE FROM pet_bookings").WillReturnError(assert.AnError)

	_, err = db.ExecContext(context.Background(), "DELETE FROM pet_bookings")
	assert.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(db.collector.errors.WithLabelValues("exec")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExecutor_PrefersTransaction(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := Wrap(sqlDB, nil)
	ctx := context.Background()
	assert.Same(t, db, GetExecutor(ctx, db))

	mock.ExpectBegin()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.Equal(t, tx, GetExecutor(txCtx, db))

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}
