package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/huamengwoke/finance_assistant_app/internal/core/ports/services"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
	"github.com/huamengwoke/finance_assistant_app/internal/middleware"
	"github.com/huamengwoke/finance_assistant_app/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// API index, public
	r.GET("/api", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.OK(gin.H{
			"name": "finance assistant API",
			"endpoints": []string{
				"/api/auth", "/api/users", "/api/transactions", "/api/categories",
				"/api/budgets", "/api/projects", "/api/tasks", "/api/statistics",
			},
		}))
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// All remaining /api groups sit behind the auth middleware
	setupAPIRoutes(r, cfg, services)
}

// setupAPIRoutes configures the protected /api groups and delegates to the
// entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(api, services.User)
	registerCategoryRoutes(api, services.Category)
	registerTransactionRoutes(api, services.Transaction)
	registerBudgetRoutes(api, services.Budget)
	registerProjectRoutes(api, services.Project)
	registerTaskRoutes(api, services.Task)
	registerStatisticsRoutes(api, services.Metrics)
}
