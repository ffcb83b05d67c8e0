package client

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jetdesk/internal/application/registry/usecases"
	"jetdesk/internal/shared/logger"
	"jetdesk/internal/shared/utils"
)

type ClientHandler struct {
	addClientUC   usecases.AddClientExecutor
	listClientsUC usecases.ListClientsExecutor
	logger        logger.Interface
}

func NewClientHandler(
	addClientUC usecases.AddClientExecutor,
	listClientsUC usecases.ListClientsExecutor,
) *ClientHandler {
	return &ClientHandler{
		addClientUC:   addClientUC,
		listClientsUC: listClientsUC,
		logger:        logger.NewLogger(),
	}
}

// AddClient handles POST /api/clients
func (h *ClientHandler) AddClient(c *gin.Context) {
	var req AddClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add client", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.addClientUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"id": result.ClientID}, "Client added successfully")
}

// ListClients handles GET /api/clients
func (h *ClientHandler) ListClients(c *gin.Context) {
	result, err := h.listClientsUC.Execute(c.Request.Context(), usecases.ListClientsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	clients := make([]ClientResponse, len(result.Clients))
	for i, data := range result.Clients {
		clients[i] = toClientResponse(data)
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"clients": clients, "total": result.Total})
}
