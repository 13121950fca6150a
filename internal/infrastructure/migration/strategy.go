package migration

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/migrations"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/seeds"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

//go:embed scripts/mysql/*.sql scripts/sqlite3/*.sql
var embeddedScripts embed.FS

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate executes the migration strategy
	Migrate(db *gorm.DB) error
	// GetName returns the strategy name
	GetName() string
}

// GooseStrategy applies the versioned SQL scripts for one dialect.
// Scripts are embedded in the binary; scriptsPath is only used by Create.
type GooseStrategy struct {
	dialect     string
	scripts     fs.FS
	scriptsPath string
	logger      logger.Interface
}

// NewGooseStrategy creates a goose strategy for dialect ("mysql" or "sqlite3").
func NewGooseStrategy(dialect, scriptsPath string, log logger.Interface) (*GooseStrategy, error) {
	scripts, err := fs.Sub(embeddedScripts, "scripts/"+dialect)
	if err != nil {
		return nil, fmt.Errorf("no migration scripts for dialect %s: %w", dialect, err)
	}
	return &GooseStrategy{
		dialect:     dialect,
		scripts:     scripts,
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.goose"),
	}, nil
}

// open resolves the sql.DB behind db and points goose at the embedded scripts.
func (s *GooseStrategy) open(db *gorm.DB) (*sql.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	goose.SetBaseFS(s.scripts)
	if err := goose.SetDialect(s.dialect); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return sqlDB, nil
}

// Migrate applies every pending script.
func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	sqlDB, err := s.open(db)
	if err != nil {
		return err
	}

	from, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}
	if err := goose.Up(sqlDB, "."); err != nil {
		s.logger.Errorw("goose up failed", "dialect", s.dialect, "from_version", from, "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	to, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("schema migrated", "dialect", s.dialect, "from_version", from, "to_version", to)
	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

// Dialect returns the goose dialect the scripts were selected for.
func (s *GooseStrategy) Dialect() string {
	return s.dialect
}

// MigrateDown rolls back the latest steps scripts, stopping at the first failure.
func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	sqlDB, err := s.open(db)
	if err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, "."); err != nil {
			s.logger.Errorw("goose down failed", "step", i+1, "steps", steps, "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("schema rolled back", "steps", steps)
	return nil
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := s.open(db)
	if err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

// Status prints the applied state of every script through goose's logger.
func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := s.open(db)
	if err != nil {
		return err
	}

	if err := goose.Status(sqlDB, "."); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	return nil
}

// Create writes an empty SQL migration into scriptsPath on disk.
func (s *GooseStrategy) Create(name string) error {
	goose.SetBaseFS(nil)
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Create(nil, s.scriptsPath, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	s.logger.Infow("migration created successfully", "name", name, "dir", s.scriptsPath)
	return nil
}

// AutoMigrateStrategy builds the schema from the GORM models. It keeps
// throwaway development databases in step with the models without
// writing a script first.
type AutoMigrateStrategy struct {
	logger logger.Interface
}

func NewAutoMigrateStrategy(log logger.Interface) *AutoMigrateStrategy {
	return &AutoMigrateStrategy{logger: log.With("component", "migration.auto")}
}

func (s *AutoMigrateStrategy) Migrate(db *gorm.DB) error {
	s.logger.Infow("starting gorm auto migration", "models", len(migrations.Models()))

	if err := migrations.MigrateAll(db); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	if err := seeds.SeedFlags(db); err != nil {
		return fmt.Errorf("failed to seed flags: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

func (s *AutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
