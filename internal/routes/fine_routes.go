package routes

import (
	"truck_companion/internal/controllers"
	"truck_companion/internal/middleware"

	"github.com/gin-gonic/gin"
)

func FineRoutes(r *gin.Engine) {
	fines := r.Group("/fines")
	fines.Use(middleware.RequireAuth())
	{
		fines.POST("", controllers.CreateFine)
		fines.GET("", controllers.ListFines)
	}
}
