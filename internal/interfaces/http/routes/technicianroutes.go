package routes

import (
	"github.com/gin-gonic/gin"

	technicianhandlers "jetdesk/internal/interfaces/http/handlers/technician"
)

type TechnicianRouteConfig struct {
	TechnicianHandler *technicianhandlers.TechnicianHandler
}

func SetupTechnicianRoutes(api *gin.RouterGroup, config *TechnicianRouteConfig) {
	technicians := api.Group("/technicians")
	{
		technicians.GET("", config.TechnicianHandler.ListTechnicians)
		technicians.POST("", config.TechnicianHandler.AddTechnician)
	}
}
