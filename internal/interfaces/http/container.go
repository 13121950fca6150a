package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogUsecases "github.com/szentjozsefhackathon/cantores/internal/application/catalog/usecases"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/auth"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/cache"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/config"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/permission"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/ratelimit"
	"github.com/szentjozsefhackathon/cantores/internal/interfaces/http/handlers"
	"github.com/szentjozsefhackathon/cantores/internal/interfaces/http/middleware"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

const redisPingTimeout = 2 * time.Second

// Container holds all infrastructure components, repositories, use cases
// and handlers, wires them together and releases them on Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter

	// Infrastructure services
	jwtSvc       *auth.JWTService
	enforcer     *permission.Enforcer
	catalogCache *cache.TemplateCatalogCache
}

// NewContainer wires the application against an open database. An
// unreachable Redis disables the template cache; rate limiting then
// lets requests through.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	c.repos = newRepositories(db, log)
	c.ucs = newUseCases(c.repos, c.templateCache(), log)
	c.hdlrs = newHandlers(c.ucs, c.healthChecks(), log)

	c.initMiddlewares()
	c.setupRoutes()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	if err := enforcer.EnsureDefaultPolicies(); err != nil {
		return fmt.Errorf("failed to install default policies: %w", err)
	}
	c.enforcer = enforcer

	c.redis = redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := c.redis.Ping(ctx).Err(); err != nil {
		c.log.Warnw("redis unavailable, template cache disabled",
			"address", c.cfg.Redis.GetAddr(),
			"error", err,
		)
		return nil
	}

	ttl := time.Duration(c.cfg.Redis.CatalogTTLSeconds) * time.Second
	c.catalogCache = cache.NewTemplateCatalogCache(c.redis, ttl)
	c.log.Infow("redis connected", "address", c.cfg.Redis.GetAddr())
	return nil
}

// templateCache returns a nil interface when caching is disabled so the
// use cases can test it against nil.
func (c *Container) templateCache() catalogUsecases.TemplateCache {
	if c.catalogCache == nil {
		return nil
	}
	return c.catalogCache
}

func (c *Container) healthChecks() map[string]handlers.HealthChecker {
	return map[string]handlers.HealthChecker{
		"database": databaseHealthCheck{db: c.db},
		"redis":    redisHealthCheck{client: c.redis},
	}
}

func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)
	c.rateLimiter = middleware.NewRateLimiter(
		ratelimit.NewRedisRateLimiter(c.redis),
		c.cfg.RateLimit.Limit,
		time.Duration(c.cfg.RateLimit.WindowSeconds)*time.Second,
		c.log,
	)
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// JWTService returns the token service used by the auth middleware.
func (c *Container) JWTService() *auth.JWTService {
	return c.jwtSvc
}

// Shutdown releases connections owned by the container. The database
// is owned by the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
	c.log.Infow("container shut down")
}

type databaseHealthCheck struct {
	db *gorm.DB
}

func (h databaseHealthCheck) Ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

type redisHealthCheck struct {
	client redis.UniversalClient
}

func (h redisHealthCheck) Ping(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}
