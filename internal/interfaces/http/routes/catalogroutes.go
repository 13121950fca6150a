package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/permission"
	"github.com/szentjozsefhackathon/cantores/internal/interfaces/http/handlers"
	"github.com/szentjozsefhackathon/cantores/internal/interfaces/http/middleware"
)

// CatalogRouteConfig holds dependencies for slot and template routes.
type CatalogRouteConfig struct {
	CatalogHandler       *handlers.CatalogHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          *middleware.RateLimiter
}

// SetupCatalogRoutes configures slot and template routes.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	canWrite := cfg.PermissionMiddleware.RequirePermission(permission.ResourceCatalog, permission.ActionWrite)

	slots := engine.Group("/slots")
	{
		// Custom slots are only listed to their creator.
		slots.GET("", cfg.AuthMiddleware.OptionalAuth(), cfg.CatalogHandler.ListSlots)

		slotsAdmin := slots.Group("")
		slotsAdmin.Use(cfg.AuthMiddleware.RequireAuth(), canWrite, cfg.RateLimiter.Limit())
		{
			slotsAdmin.POST("", cfg.CatalogHandler.CreateSlot)
			slotsAdmin.POST("/:id/retire", cfg.CatalogHandler.RetireSlot)
			slotsAdmin.DELETE("/:id", cfg.CatalogHandler.DeleteSlot)
		}
	}

	templates := engine.Group("/templates")
	{
		templates.GET("", cfg.CatalogHandler.ListTemplates)

		templatesAdmin := templates.Group("")
		templatesAdmin.Use(cfg.AuthMiddleware.RequireAuth(), canWrite, cfg.RateLimiter.Limit())
		{
			templatesAdmin.POST("", cfg.CatalogHandler.CreateTemplate)
			templatesAdmin.PATCH("/:id/status", cfg.CatalogHandler.UpdateTemplateStatus)
		}
	}
}
