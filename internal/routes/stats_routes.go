package routes

import (
	"truck_companion/internal/controllers"
	"truck_companion/internal/middleware"

	"github.com/gin-gonic/gin"
)

func StatsRoutes(r *gin.Engine) {
	stats := r.Group("/stats")
	stats.Use(middleware.RequireAuth())
	{
		stats.GET("/overview", controllers.GetOverview)
		stats.GET("/monthly", controllers.GetMonthlyStats)
		stats.GET("/leaderboard", controllers.GetLeaderboard)
	}
}
