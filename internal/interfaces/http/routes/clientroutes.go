package routes

import (
	"github.com/gin-gonic/gin"

	clienthandlers "jetdesk/internal/interfaces/http/handlers/client"
)

type ClientRouteConfig struct {
	ClientHandler *clienthandlers.ClientHandler
}

func SetupClientRoutes(api *gin.RouterGroup, config *ClientRouteConfig) {
	clients := api.Group("/clients")
	{
		clients.GET("", config.ClientHandler.ListClients)
		clients.POST("", config.ClientHandler.AddClient)
	}
}
