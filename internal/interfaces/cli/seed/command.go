package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/szentjozsefhackathon/cantores/internal/application/catalog/usecases"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/cache"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/catalogseed"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/config"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/database"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/repository"
	"github.com/szentjozsefhackathon/cantores/internal/shared/constants"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

var (
	env        string
	configPath string
	file       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load global slots and templates",
		Long:  `Load the global slot and template catalog from a YAML file. Entries whose names already exist are skipped.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Catalog file (default: catalog.seed_file from config)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.NewLogger()

	path := file
	if path == "" {
		path = cfg.Catalog.SeedFile
	}

	seedCmd, err := catalogseed.NewLoader(log).LoadFile(path)
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()
	templateCache, closeCache := connectCache(cfg, log)
	defer closeCache()

	uc := usecases.NewSeedCatalogUseCase(
		repository.NewSlotRepository(db, log),
		repository.NewTemplateRepository(db, log),
		templateCache,
		log,
	)

	result, err := uc.Execute(context.Background(), *seedCmd)
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	fmt.Printf("Slots:     %d created, %d skipped\n", result.SlotsCreated, result.SlotsSkipped)
	fmt.Printf("Templates: %d created, %d skipped\n", result.TemplatesCreated, result.TemplatesSkipped)
	return nil
}

// connectCache returns the template cache so seeding can invalidate it.
// Without Redis the returned cache is nil.
func connectCache(cfg *config.Config, log logger.Interface) (usecases.TemplateCache, func()) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	closeFn := func() { _ = client.Close() }

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unavailable, template cache not invalidated", "error", err)
		return nil, closeFn
	}

	ttl := time.Duration(cfg.Redis.CatalogTTLSeconds) * time.Second
	return cache.NewTemplateCatalogCache(client, ttl), closeFn
}
