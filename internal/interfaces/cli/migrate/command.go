package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/config"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/database"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/migration"
	"github.com/szentjozsefhackathon/cantores/internal/shared/constants"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

var (
	env        string
	configPath string
	name       string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create an empty SQL migration for the configured dialect.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// initEnv loads config and logging and builds the goose strategy. The
// database is opened only when openDB is set.
func initEnv(openDB bool) (*migration.GooseStrategy, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	dialect := migration.Dialect(&cfg.Database)

	scriptsPath, err := filepath.Abs(filepath.Join("./internal/infrastructure/migration/scripts", dialect))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get scripts path: %w", err)
	}

	strategy, err := migration.NewGooseStrategy(dialect, scriptsPath, log)
	if err != nil {
		return nil, nil, err
	}

	if openDB {
		if err := database.Init(&cfg.Database); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	return strategy, log, nil
}

// withDatabase runs fn against an open database and closes it afterwards.
func withDatabase(fn func(strategy *migration.GooseStrategy, log logger.Interface, db *gorm.DB) error) error {
	strategy, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	return fn(strategy, log.With("environment", env), database.Get())
}

func runUp(cmd *cobra.Command, args []string) error {
	return withDatabase(func(strategy *migration.GooseStrategy, log logger.Interface, db *gorm.DB) error {
		if err := strategy.Migrate(db); err != nil {
			log.Errorw("migration failed", "error", err)
			return fmt.Errorf("migration failed: %w", err)
		}
		log.Infow("migrations completed")
		return nil
	})
}

func runDown(cmd *cobra.Command, args []string) error {
	if steps < 1 {
		return fmt.Errorf("--steps must be at least 1, got %d", steps)
	}
	return withDatabase(func(strategy *migration.GooseStrategy, log logger.Interface, db *gorm.DB) error {
		if err := strategy.MigrateDown(db, steps); err != nil {
			log.Errorw("down migration failed", "steps", steps, "error", err)
			return fmt.Errorf("down migration failed: %w", err)
		}
		return nil
	})
}

func runStatus(cmd *cobra.Command, args []string) error {
	return withDatabase(func(strategy *migration.GooseStrategy, log logger.Interface, db *gorm.DB) error {
		version, err := strategy.GetVersion(db)
		if err != nil {
			return fmt.Errorf("failed to get migration version: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "environment: %s\ndialect:     %s\nversion:     %d\n\n", env, strategy.Dialect(), version)

		return strategy.Status(db)
	})
}

func runCreate(cmd *cobra.Command, args []string) error {
	strategy, log, err := initEnv(false)
	if err != nil {
		return err
	}
	defer logger.Sync()

	log.Infow("creating new migration", "name", name)

	if err := strategy.Create(name); err != nil {
		log.Errorw("failed to create migration", "error", err)
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "migration %q created\n", name)
	return nil
}
