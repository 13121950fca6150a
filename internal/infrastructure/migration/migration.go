package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/szentjozsefhackathon/cantores/internal/shared/config"
	"github.com/szentjozsefhackathon/cantores/internal/shared/constants"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// Manager runs the migration strategy chosen for an environment.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks GORM auto-migration for development sqlite databases
// and the goose scripts everywhere else.
func NewManager(environment string, cfg *config.DatabaseConfig, scriptsPath string, log logger.Interface) (*Manager, error) {
	var strategy Strategy
	if strings.ToLower(environment) == constants.EnvDevelopment && cfg.IsSQLite() {
		strategy = NewAutoMigrateStrategy(log)
	} else {
		goose, err := NewGooseStrategy(Dialect(cfg), scriptsPath, log)
		if err != nil {
			return nil, err
		}
		strategy = goose
	}
	return NewManagerWithStrategy(strategy, log), nil
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

// Dialect returns the goose dialect for the configured driver.
func Dialect(cfg *config.DatabaseConfig) string {
	if cfg.IsSQLite() {
		return "sqlite3"
	}
	return "mysql"
}
