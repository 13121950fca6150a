// Package testdb opens migrated in-memory SQLite databases for tests.
package testdb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/migrations"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/seeds"
)

// Open returns a fresh database named after the running test, with
// foreign keys enforced, the schema applied and flags seeded.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	database, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared&_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrations.MigrateAll(database))
	require.NoError(t, seeds.SeedFlags(database))
	return database
}
