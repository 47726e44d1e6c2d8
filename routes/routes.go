package routes

import (
	"net/http"
	"time"

	"padoo/handlers"
	"padoo/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterStaffRoutes registers technician profile endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.POST("", hb.RegisterStaffHandler)
		api.GET("", hb.ListStaffHandler)
		api.GET("/:id", hb.GetStaffHandler)
		api.PATCH("/:id", hb.UpdateStaffHandler)
	}
}

// RegisterScheduleRoutes registers shift roster endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.PUT("/:date", hb.SetScheduleHandler)
		api.GET("/:date", hb.GetScheduleHandler)
	}
}

// RegisterRotationRoutes registers rotation queue endpoints.
func RegisterRotationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rotation")
	{
		api.POST("/:date/init", hb.InitQueueHandler)
		api.GET("/:date", hb.GetQueueHandler)
		api.POST("/:date/serve", hb.ServeHandler)
		api.POST("/:date/move", hb.MoveHandler)
	}
}

// RegisterBookingRoutes registers consultation and reservation endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	consultations := r.Group("/api/consultations")
	{
		consultations.POST("", hb.CreateConsultationHandler)
		consultations.POST("/:id/void", hb.VoidConsultationHandler)
		consultations.GET("", hb.ListConsultationsHandler)
	}
	reservations := r.Group("/api/reservations")
	{
		reservations.POST("", hb.CreateReservationHandler)
		reservations.POST("/:id/cancel", hb.CancelReservationHandler)
		reservations.GET("", hb.ListReservationsHandler)
	}
}

// RegisterTimelineRoutes registers the availability timeline endpoint.
func RegisterTimelineRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/timeline/:date/:technicianId", hb.GetTimelineHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterStaffRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterRotationRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterTimelineRoutes(r, hb)
	RegisterHealthRoute(r)
}
