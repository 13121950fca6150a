package http

import (
	"github.com/szentjozsefhackathon/cantores/internal/interfaces/http/middleware"
	"github.com/szentjozsefhackathon/cantores/internal/interfaces/http/routes"
)

// setupRoutes installs global middleware and every route group.
func (c *Container) setupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.RequestLogger(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", c.hdlrs.health.Health)

	routes.SetupCatalogRoutes(c.engine, &routes.CatalogRouteConfig{
		CatalogHandler:       c.hdlrs.catalog,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
		RateLimiter:          c.rateLimiter,
	})

	routes.SetupPlanRoutes(c.engine, &routes.PlanRouteConfig{
		PlanHandler:     c.hdlrs.plan,
		PlanSlotHandler: c.hdlrs.planSlot,
		AuthMiddleware:  c.authMiddleware,
		RateLimiter:     c.rateLimiter,
	})
}
