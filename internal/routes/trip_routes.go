package routes

import (
	"truck_companion/internal/controllers"
	"truck_companion/internal/middleware"

	"github.com/gin-gonic/gin"
)

func TripRoutes(r *gin.Engine) {
	trips := r.Group("/trips")
	trips.Use(middleware.RequireAuth())
	{
		trips.POST("", controllers.CreateTrip)
		trips.GET("", controllers.ListTrips)
		trips.DELETE("", controllers.ClearTrips)
	}
}
