package dbtx_test

import (
	"database/sql"
	"testing"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/shared/dbtx"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) (*sql.DB, *gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, gdb, mock
}

func TestBind_RunsStatementsOnTx(t *testing.T) {
	db, gdb, mock := setupDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE empresas SET ativo = \$1`).
		WithArgs(false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()
	mock.ExpectExec(`UPDATE empresas SET ativo = \$1`).
		WithArgs(true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Begin()
	require.NoError(t, err)

	bound := dbtx.Bind(gdb, tx)
	assert.NoError(t, bound.Exec("UPDATE empresas SET ativo = ?", false).Error)
	assert.NoError(t, tx.Rollback())

	// The bound session is tied to the finished tx; the parent handle is not.
	assert.ErrorIs(t, bound.Exec("UPDATE empresas SET ativo = ?", false).Error, sql.ErrTxDone)
	assert.NoError(t, gdb.Exec("UPDATE empresas SET ativo = ?", true).Error)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBind_NilTx(t *testing.T) {
	_, gdb, _ := setupDB(t)
	assert.Same(t, gdb, dbtx.Bind(gdb, nil))
}
