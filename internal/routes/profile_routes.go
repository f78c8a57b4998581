package routes

import (
	"truck_companion/internal/controllers"
	"truck_companion/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ProfileRoutes(r *gin.Engine) {
	profile := r.Group("/profile")
	profile.Use(middleware.RequireAuth())
	{
		profile.GET("", controllers.GetProfile)
		profile.PUT("", controllers.UpdateProfile)
		profile.PUT("/avatar", controllers.UpdateAvatar)
		profile.PUT("/goal", controllers.UpdateGoal)
		profile.DELETE("", controllers.DeleteAccount)
	}
}
