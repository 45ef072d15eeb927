package storage

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*GormStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return NewGormStorage(gdb), mock
}

func TestGormStorageGetItem(t *testing.T) {
	s, mock := newMockGorm(t)

	mock.ExpectQuery("SELECT \\* FROM `local_storage_items` WHERE item_key = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"item_key", "item_value"}).
			AddRow("noga_guest_history", `[{"id":"a"}]`))

	v, err := s.GetItem(context.Background(), "noga_guest_history")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStorageGetItemMissing(t *testing.T) {
	s, mock := newMockGorm(t)

	mock.ExpectQuery("SELECT \\* FROM `local_storage_items`").
		WillReturnRows(sqlmock.NewRows([]string{"item_key", "item_value"}))

	_, err := s.GetItem(context.Background(), "noga_guest_history")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStorageSetItemUpserts(t *testing.T) {
	s, mock := newMockGorm(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `local_storage_items` .* ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.SetItem(context.Background(), "noga_guest_history", `[]`))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStorageRemoveItem(t *testing.T) {
	s, mock := newMockGorm(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `local_storage_items` WHERE item_key = \\?").
		WithArgs("noga_guest_history").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.RemoveItem(context.Background(), "noga_guest_history"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
