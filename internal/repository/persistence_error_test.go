package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"productivity/internal/model"
)

// openMockDB builds a gorm handle over sqlmock so driver-level I/O
// failures can be injected.
func openMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:               logger.Discard,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestCreateCategorySurfacesPersistenceError(t *testing.T) {
	db, mock := openMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `categories`").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	_, err := NewCategoryRepository(db).Create(context.Background(), "gym")
	require.ErrorIs(t, err, ErrPersistence)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveTaskSurfacesPersistenceError(t *testing.T) {
	db, mock := openMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `tasks`").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	task := model.Task{ID: "task-1", Name: "Buy milk"}
	err := NewTaskRepository(db).Save(context.Background(), &task)
	require.ErrorIs(t, err, ErrPersistence)
	require.NoError(t, mock.ExpectationsWereMet())
}
