package routes

import (
	"github.com/gin-gonic/gin"

	systemhandlers "jetdesk/internal/interfaces/http/handlers/system"
)

type SystemRouteConfig struct {
	SystemHandler *systemhandlers.SystemHandler
}

func SetupSystemRoutes(engine *gin.Engine, api *gin.RouterGroup, config *SystemRouteConfig) {
	engine.GET("/health", config.SystemHandler.Health)

	api.GET("/statistics", config.SystemHandler.GetStatistics)
	api.GET("/db_info", config.SystemHandler.GetDatabaseInfo)
	api.POST("/demo_data", config.SystemHandler.SeedDemoData)
}
