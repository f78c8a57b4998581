package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	// Request logging middleware
	r.Use(ginlogger.SetLogger())

	AuthRoutes(r)
	TripRoutes(r)
	FineRoutes(r)
	ProfileRoutes(r)
	StatsRoutes(r)
	AdminRoutes(r)
	TelemetryRoutes(r)

	return r
}
