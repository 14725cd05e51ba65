package counter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/counter"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (counter.Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return counter.NewRepository(gdb), mock
}

func TestRepository_Next(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the incremented value", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectQuery("INSERT INTO sequence_counters").
			WithArgs("global", counter.CompanyCode).
			WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(7))

		n, err := repo.Next(ctx, counter.CompanyCode)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps db errors", func(t *testing.T) {
		repo, mock := setupRepo(t)
		dbErr := errors.New("connection reset")
		mock.ExpectQuery("INSERT INTO sequence_counters").WillReturnError(dbErr)

		_, err := repo.Next(ctx, counter.CompanyCode)

		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), counter.CompanyCode)
	})
}

func TestFormatCode(t *testing.T) {
	assert.Equal(t, "0042", counter.FormatCode(42))
	assert.Equal(t, "12345", counter.FormatCode(12345))
}
