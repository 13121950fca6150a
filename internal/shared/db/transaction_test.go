package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type counterRow struct {
	ID    uint `gorm:"primarykey"`
	Value int
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&counterRow{}))
	return database
}

func TestRunInTransaction_CommitsOnSuccess(t *testing.T) {
	database := setupTestDB(t)
	tm := NewTransactionManager(database)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		assert.True(t, InTransaction(ctx))
		return GetTxFromContext(ctx, database).Create(&counterRow{Value: 1}).Error
	})
	require.NoError(t, err)

	var count int64
	database.Model(&counterRow{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRunInTransaction_RollsBackOnError(t *testing.T) {
	database := setupTestDB(t)
	tm := NewTransactionManager(database)
	boom := errors.New("second update failed")

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		if err := GetTxFromContext(ctx, database).Create(&counterRow{Value: 1}).Error; err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int64
	database.Model(&counterRow{}).Count(&count)
	assert.Zero(t, count)
}

func TestRunInTransaction_NestedJoinsOuter(t *testing.T) {
	database := setupTestDB(t)
	tm := NewTransactionManager(database)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		outer := GetTxFromContext(ctx, database)
		return tm.RunInTransaction(ctx, func(inner context.Context) error {
			assert.Same(t, outer, GetTxFromContext(inner, database))
			return nil
		})
	})
	require.NoError(t, err)
	assert.False(t, InTransaction(context.Background()))
}

func TestForUpdate_SkipsSQLite(t *testing.T) {
	database := setupTestDB(t)
	var rows []counterRow
	assert.NoError(t, ForUpdate(database).Find(&rows).Error)
}
