package problem

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jetdesk/internal/application/registry/usecases"
	"jetdesk/internal/shared/biztime"
	"jetdesk/internal/shared/logger"
	"jetdesk/internal/shared/utils"
)

const (
	unknownClientName    = "Unknown"
	unassignedTechnician = "Unassigned"
)

type ProblemHandler struct {
	addProblemUC      usecases.AddProblemExecutor
	updateStatusUC    usecases.UpdateProblemStatusExecutor
	updateProblemUC   usecases.UpdateProblemExecutor
	listProblemsUC    usecases.ListProblemsExecutor
	addSolutionUC     usecases.AddSolutionExecutor
	listSolutionsUC   usecases.ListSolutionsForProblemExecutor
	rateSolutionUC    usecases.RateSolutionExecutor
	listClientsUC     usecases.ListClientsExecutor
	listTechniciansUC usecases.ListTechniciansExecutor
	logger            logger.Interface
}

func NewProblemHandler(
	addProblemUC usecases.AddProblemExecutor,
	updateStatusUC usecases.UpdateProblemStatusExecutor,
	updateProblemUC usecases.UpdateProblemExecutor,
	listProblemsUC usecases.ListProblemsExecutor,
	addSolutionUC usecases.AddSolutionExecutor,
	listSolutionsUC usecases.ListSolutionsForProblemExecutor,
	rateSolutionUC usecases.RateSolutionExecutor,
	listClientsUC usecases.ListClientsExecutor,
	listTechniciansUC usecases.ListTechniciansExecutor,
) *ProblemHandler {
	return &ProblemHandler{
		addProblemUC:      addProblemUC,
		updateStatusUC:    updateStatusUC,
		updateProblemUC:   updateProblemUC,
		listProblemsUC:    listProblemsUC,
		addSolutionUC:     addSolutionUC,
		listSolutionsUC:   listSolutionsUC,
		rateSolutionUC:    rateSolutionUC,
		listClientsUC:     listClientsUC,
		listTechniciansUC: listTechniciansUC,
		logger:            logger.NewLogger(),
	}
}

// AddProblem handles POST /api/problems
func (h *ProblemHandler) AddProblem(c *gin.Context) {
	var req AddProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add problem", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.addProblemUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"id": result.ProblemID, "status": result.Status}, "Problem reported successfully")
}

// ListProblems handles GET /api/problems
func (h *ProblemHandler) ListProblems(c *gin.Context) {
	result, err := h.listProblemsUC.Execute(c.Request.Context(), usecases.ListProblemsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	clientNames, clientPhones := h.clientLookup(c)
	technicianNames := h.technicianLookup(c)

	problems := make([]ProblemResponse, len(result.Problems))
	for i, p := range result.Problems {
		problems[i] = h.toProblemResponse(p, clientNames, clientPhones, technicianNames)
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"problems": problems, "total": result.Total})
}

// UpdateProblemStatus handles PUT /api/problems/:id/status
func (h *ProblemHandler) UpdateProblemStatus(c *gin.Context) {
	problemID, err := utils.ParseIDParam(c, "id", "problem")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProblemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateProblemStatusCommand{
		ProblemID: problemID,
		NewStatus: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Problem status updated", gin.H{
		"id":         result.ProblemID,
		"old_status": result.OldStatus,
		"new_status": result.NewStatus,
		"updated_at": biztime.FormatTimestamp(result.UpdatedAt),
	})
}

// UpdateProblem handles PUT /api/problems/:id
func (h *ProblemHandler) UpdateProblem(c *gin.Context) {
	problemID, err := utils.ParseIDParam(c, "id", "problem")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.updateProblemUC.Execute(c.Request.Context(), req.ToCommand(problemID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Problem updated", gin.H{
		"id":         result.ProblemID,
		"status":     result.Status,
		"updated_at": biztime.FormatTimestamp(result.UpdatedAt),
	})
}

// AddSolution handles POST /api/problems/:id/solutions
func (h *ProblemHandler) AddSolution(c *gin.Context) {
	problemID, err := utils.ParseIDParam(c, "id", "problem")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.addSolutionUC.Execute(c.Request.Context(), req.ToCommand(problemID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"id": result.SolutionID}, "Solution added successfully")
}

// ListSolutions handles GET /api/problems/:id/solutions
func (h *ProblemHandler) ListSolutions(c *gin.Context) {
	problemID, err := utils.ParseIDParam(c, "id", "problem")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listSolutionsUC.Execute(c.Request.Context(), usecases.ListSolutionsForProblemQuery{
		ProblemID: problemID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	solutions := make([]SolutionResponse, len(result.Solutions))
	for i, s := range result.Solutions {
		solutions[i] = toSolutionResponse(s)
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"solutions": solutions, "total": result.Total})
}

// RateSolution handles POST /api/solutions/:id/rate
func (h *ProblemHandler) RateSolution(c *gin.Context) {
	solutionID, err := utils.ParseIDParam(c, "id", "solution")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.rateSolutionUC.Execute(c.Request.Context(), usecases.RateSolutionCommand{
		SolutionID: solutionID,
		Score:      req.Score,
		Feedback:   req.Feedback,
		RatedBy:    req.RatedBy,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"id": result.RatingID, "solution_id": result.SolutionID}, "Rating recorded")
}

// clientLookup builds id keyed name and phone maps. A lookup failure only
// degrades the joined names, never the listing itself.
func (h *ProblemHandler) clientLookup(c *gin.Context) (map[uint]string, map[uint]string) {
	names := map[uint]string{}
	phones := map[uint]string{}

	result, err := h.listClientsUC.Execute(c.Request.Context(), usecases.ListClientsQuery{})
	if err != nil {
		h.logger.Warnw("failed to load clients for name joining", "error", err)
		return names, phones
	}

	for _, client := range result.Clients {
		names[client.ID] = client.Name
		phones[client.ID] = client.ContactPhone
	}
	return names, phones
}

func (h *ProblemHandler) technicianLookup(c *gin.Context) map[uint]string {
	names := map[uint]string{}

	result, err := h.listTechniciansUC.Execute(c.Request.Context(), usecases.ListTechniciansQuery{})
	if err != nil {
		h.logger.Warnw("failed to load technicians for name joining", "error", err)
		return names
	}

	for _, tech := range result.Technicians {
		names[tech.ID] = tech.Name
	}
	return names
}

func (h *ProblemHandler) toProblemResponse(
	p usecases.ProblemData,
	clientNames, clientPhones map[uint]string,
	technicianNames map[uint]string,
) ProblemResponse {
	clientName, ok := clientNames[p.ClientID]
	if !ok {
		clientName = unknownClientName
	}

	technicianName := unassignedTechnician
	if p.TechnicianID != nil {
		if name, ok := technicianNames[*p.TechnicianID]; ok {
			technicianName = name
		} else {
			technicianName = unknownClientName
		}
	}

	return ProblemResponse{
		ID:                p.ID,
		Title:             p.Title,
		Description:       p.Description,
		Model:             p.Model,
		SerialNumber:      p.SerialNumber,
		ClientID:          p.ClientID,
		ClientName:        clientName,
		ClientPhoneNumber: clientPhones[p.ClientID],
		ErrorCode:         p.ErrorCode,
		Component:         p.Component,
		InkType:           p.InkType,
		SurfaceType:       p.SurfaceType,
		Priority:          p.Priority,
		ImagePath:         p.ImagePath,
		ReportedBy:        p.ReportedBy,
		FailureCause:      p.FailureCause,
		TechnicianID:      p.TechnicianID,
		TechnicianName:    technicianName,
		Status:            p.Status,
		CreatedAt:         biztime.FormatTimestamp(p.CreatedAt),
		UpdatedAt:         biztime.FormatTimestamp(p.UpdatedAt),
	}
}
