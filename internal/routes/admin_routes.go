package routes

import (
	"truck_companion/internal/controllers"
	"truck_companion/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("admin")
	admin.Use(middleware.RequireAuthWithRole("admin"))
	{
		admin.GET("/users", controllers.ListUsers)
		admin.GET("/pending", controllers.ListPendingUsers)
		admin.POST("/users/:email/approve", controllers.ApproveUser)
		admin.DELETE("/users/:email", controllers.RejectUser)
	}
}
