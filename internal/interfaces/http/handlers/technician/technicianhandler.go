package technician

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jetdesk/internal/application/registry/usecases"
	"jetdesk/internal/shared/logger"
	"jetdesk/internal/shared/utils"
)

type TechnicianHandler struct {
	addTechnicianUC   usecases.AddTechnicianExecutor
	listTechniciansUC usecases.ListTechniciansExecutor
	logger            logger.Interface
}

func NewTechnicianHandler(
	addTechnicianUC usecases.AddTechnicianExecutor,
	listTechniciansUC usecases.ListTechniciansExecutor,
) *TechnicianHandler {
	return &TechnicianHandler{
		addTechnicianUC:   addTechnicianUC,
		listTechniciansUC: listTechniciansUC,
		logger:            logger.NewLogger(),
	}
}

// AddTechnician handles POST /api/technicians
func (h *TechnicianHandler) AddTechnician(c *gin.Context) {
	var req AddTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add technician", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.addTechnicianUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"id": result.TechnicianID}, "Technician added successfully")
}

// ListTechnicians handles GET /api/technicians
func (h *TechnicianHandler) ListTechnicians(c *gin.Context) {
	result, err := h.listTechniciansUC.Execute(c.Request.Context(), usecases.ListTechniciansQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	technicians := make([]TechnicianResponse, len(result.Technicians))
	for i, data := range result.Technicians {
		technicians[i] = toTechnicianResponse(data)
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"technicians": technicians, "total": result.Total})
}
