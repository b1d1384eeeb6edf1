package routes

import (
	"net/http"

	professionalRepo "agendapro/database/repository/professional"
	"agendapro/handlers"
	"agendapro/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups the constructed handlers and the dependencies route
// registration needs.
type HandlerBundle struct {
	Auth         *handlers.AuthHandler
	Availability *handlers.AvailabilityHandler
	Services     *handlers.ServiceHandler
	Students     *handlers.StudentHandler
	Appointments *handlers.AppointmentHandler
	Public       *handlers.PublicHandler

	AuthCache        *redis.Client
	ProfessionalRepo professionalRepo.ProfessionalRepository
}

// RegisterAuthRoutes registers signup/signin and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.Auth.Signup)
		api.POST("/signin", hb.Auth.Signin)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.AuthCache, hb.ProfessionalRepo))
		api.GET("/me", hb.Auth.GetProfile)
		api.PATCH("/me", hb.Auth.UpdateProfile)
	}
}

// RegisterDashboardRoutes registers the authenticated professional surface:
// availability blocks, service catalog, student roster, appointments.
func RegisterDashboardRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(hb.AuthCache, hb.ProfessionalRepo))
	{
		api.GET("/availabilities", hb.Availability.List)
		api.POST("/availabilities", hb.Availability.Create)
		api.PUT("/availabilities", hb.Availability.BulkReplace)
		api.DELETE("/availabilities/:id", hb.Availability.Delete)

		api.GET("/services", hb.Services.List)
		api.POST("/services", hb.Services.Create)
		api.GET("/services/:id", hb.Services.Get)
		api.PATCH("/services/:id", hb.Services.Update)
		api.DELETE("/services/:id", hb.Services.Delete)

		api.GET("/students", hb.Students.List)
		api.GET("/students/:id", hb.Students.Get)
		api.PATCH("/students/:id", hb.Students.Update)
		api.DELETE("/students/:id", hb.Students.Delete)

		api.GET("/appointments", hb.Appointments.List)
		api.GET("/appointments/:id", hb.Appointments.Get)
		api.PATCH("/appointments/:id/status", hb.Appointments.UpdateStatus)
	}
}

// RegisterPublicRoutes registers the unauthenticated booking page surface.
// Rate limited: this group takes anonymous traffic.
func RegisterPublicRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/public")
	api.Use(middleware.RateLimitMiddleware())
	{
		api.GET("/profile/:slug", hb.Public.GetProfile)
		api.GET("/services/:professionalId", hb.Public.ListServices)
		api.GET("/slots/:professionalId", hb.Public.GetSlots)
		api.POST("/appointments", hb.Public.CreateAppointment)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
