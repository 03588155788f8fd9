package routes

import (
	accessesapi "ruangobat-admin/internal/api/accesses"
	adminapi "ruangobat-admin/internal/api/admin"
	eventsapi "ruangobat-admin/internal/api/events"
	plansapi "ruangobat-admin/internal/api/plans"
	usersapi "ruangobat-admin/internal/api/users"
	"ruangobat-admin/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	JWTSecret string
	Accesses  *accessesapi.Handler
	Events    *eventsapi.Handler
	Plans     *plansapi.Handler
	Users     *usersapi.Handler
	Admin     *adminapi.Handler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	admin := r.Group("/")
	admin.Use(
		middleware.AuthMiddleware(h.JWTSecret),
		middleware.RequireRole("admin"),
		middleware.SanitizeAndCleanInputMiddleware(),
	)

	admin.GET("/me", usersapi.GetCurrentAdmin)

	admin.GET("/accesses/videocourse", h.Accesses.ListVideocourse)
	admin.GET("/accesses/:id", h.Accesses.GetAccess)
	admin.POST("/accesses/grant-flows", h.Accesses.StartGrantFlow)
	admin.POST("/accesses/grant-flows/:id/submit", h.Accesses.SubmitGrant)
	admin.PATCH("/accesses/:id/plan", h.Accesses.ChangePlan)
	admin.POST("/accesses/:id/revoke", h.Accesses.Revoke)

	admin.GET("/products", h.Plans.ListProducts)
	admin.GET("/users/search", h.Users.Search)

	admin.GET("/events", h.Events.List)
	admin.GET("/events/:id", h.Events.Get)
	admin.POST("/events", h.Events.Create)
	admin.PATCH("/events/:id", h.Events.Update)
	admin.DELETE("/events/:id", h.Events.Delete)

	admin.GET("/audit-logs", h.Admin.ListAuditLogs)
	admin.GET("/dashboard", h.Admin.GetAdminStats)
}
