package routes

import (
	"truck_companion/internal/controllers"
	"truck_companion/internal/middleware"

	"github.com/gin-gonic/gin"
)

func TelemetryRoutes(r *gin.Engine) {
	telemetry := r.Group("/telemetry")
	telemetry.Use(middleware.RequireAuth())
	{
		telemetry.GET("/snapshot", controllers.GetSnapshot)
		telemetry.PUT("/driver", controllers.BindTelemetryDriver)
	}

	// Live status stream stays public, like the company page it feeds.
	r.GET("/ws/telemetry", controllers.StreamTelemetry)
}
