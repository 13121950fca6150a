package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/interfaces/http/handlers"
	"github.com/szentjozsefhackathon/cantores/internal/interfaces/http/middleware"
)

// PlanRouteConfig holds dependencies for plan routes.
type PlanRouteConfig struct {
	PlanHandler     *handlers.PlanHandler
	PlanSlotHandler *handlers.PlanSlotHandler
	AuthMiddleware  *middleware.AuthMiddleware
	RateLimiter     *middleware.RateLimiter
}

// SetupPlanRoutes configures plan routes.
func SetupPlanRoutes(engine *gin.Engine, cfg *PlanRouteConfig) {
	plans := engine.Group("/plans")
	{
		// Read endpoints (published plans are visible to guests)
		plansRead := plans.Group("")
		plansRead.Use(cfg.AuthMiddleware.OptionalAuth())
		{
			plansRead.GET("", cfg.PlanHandler.ListPlans)
			plansRead.GET("/:id", cfg.PlanHandler.GetPlan)
			plansRead.GET("/:id/suggestions", cfg.PlanHandler.GetSuggestions)
		}

		// Guests are rejected by the handler with a proper error body.
		plans.POST("/:id/clone",
			cfg.AuthMiddleware.OptionalAuth(), cfg.RateLimiter.Limit(), cfg.PlanHandler.ClonePlan)

		plansWrite := plans.Group("")
		plansWrite.Use(cfg.AuthMiddleware.RequireAuth(), cfg.RateLimiter.Limit())
		{
			plansWrite.POST("", cfg.PlanHandler.CreatePlan)
			plansWrite.PATCH("/:id", cfg.PlanHandler.UpdatePlan)
			plansWrite.DELETE("/:id", cfg.PlanHandler.DeletePlan)

			plansWrite.POST("/:id/slots", cfg.PlanSlotHandler.AttachSlot)
			plansWrite.POST("/:id/custom-slots", cfg.PlanSlotHandler.CreateCustomSlot)
			plansWrite.POST("/:id/templates/:template_id", cfg.PlanSlotHandler.AttachTemplate)
			plansWrite.POST("/:id/slots/:occurrence_id/move-up", cfg.PlanSlotHandler.MoveOccurrence(plan.DirectionUp))
			plansWrite.POST("/:id/slots/:occurrence_id/move-down", cfg.PlanSlotHandler.MoveOccurrence(plan.DirectionDown))
			plansWrite.DELETE("/:id/slots/:occurrence_id", cfg.PlanSlotHandler.RemoveOccurrence)
			plansWrite.POST("/:id/slots/:occurrence_id/music", cfg.PlanSlotHandler.AssignMusic)

			plansWrite.POST("/:id/assignments/:assignment_id/move-up", cfg.PlanSlotHandler.MoveAssignment(plan.DirectionUp))
			plansWrite.POST("/:id/assignments/:assignment_id/move-down", cfg.PlanSlotHandler.MoveAssignment(plan.DirectionDown))
			plansWrite.PATCH("/:id/assignments/:assignment_id", cfg.PlanSlotHandler.UpdateAssignment)
			plansWrite.DELETE("/:id/assignments/:assignment_id", cfg.PlanSlotHandler.UnassignMusic)
			plansWrite.POST("/:id/assignments/:assignment_id/scopes", cfg.PlanSlotHandler.AddScope)
			plansWrite.DELETE("/:id/scopes/:scope_id", cfg.PlanSlotHandler.RemoveScope)
		}
	}
}
