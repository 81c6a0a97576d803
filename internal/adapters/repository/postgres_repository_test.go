package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/core/internal/domain/entities"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestPostgresRepositoryLoad(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"name", "quantity"}).
		AddRow("apple", 7).
		AddRow("banana", 2)
	mock.ExpectQuery("SELECT name, quantity FROM stock_items").WillReturnRows(rows)

	data, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"apple": 7, "banana": 2}, data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepositorySaveReplacesSnapshot(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM stock_items").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO stock_items").
		WithArgs("apple", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Save(context.Background(), []entities.Item{{Name: "apple", Quantity: 7}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepositorySaveRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM stock_items").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.Save(context.Background(), []entities.Item{{Name: "apple", Quantity: 7}})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
