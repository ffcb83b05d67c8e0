package system

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"jetdesk/internal/application/registry/usecases"
	"jetdesk/internal/infrastructure/persistence/seeds"
	"jetdesk/internal/shared/logger"
	"jetdesk/internal/shared/utils"
)

// DemoSeeder runs the demo data seeding pass.
type DemoSeeder interface {
	Run(ctx context.Context) (*seeds.Summary, error)
}

type SystemHandler struct {
	statisticsUC   usecases.GetSystemStatisticsExecutor
	databaseInfoUC usecases.GetDatabaseInfoExecutor
	seeder         DemoSeeder
	logger         logger.Interface
}

func NewSystemHandler(
	statisticsUC usecases.GetSystemStatisticsExecutor,
	databaseInfoUC usecases.GetDatabaseInfoExecutor,
	seeder DemoSeeder,
) *SystemHandler {
	return &SystemHandler{
		statisticsUC:   statisticsUC,
		databaseInfoUC: databaseInfoUC,
		seeder:         seeder,
		logger:         logger.NewLogger(),
	}
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
}

// GetStatistics handles GET /api/statistics
func (h *SystemHandler) GetStatistics(c *gin.Context) {
	result, err := h.statisticsUC.Execute(c.Request.Context(), usecases.GetSystemStatisticsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", StatisticsResponse{
		TotalProblems:       result.TotalProblems,
		ProblemsByStatus:    result.ProblemsByStatus,
		UnassignedProblems:  result.UnassignedProblems,
		TotalClients:        result.TotalClients,
		TotalTechnicians:    result.TotalTechnicians,
		TotalSolutions:      result.TotalSolutions,
		TotalRatings:        result.TotalRatings,
		AverageRating:       result.AverageRating,
		RatingsByDifficulty: result.RatingsByDifficulty,
	})
}

// GetDatabaseInfo handles GET /api/db_info
func (h *SystemHandler) GetDatabaseInfo(c *gin.Context) {
	result, err := h.databaseInfoUC.Execute(c.Request.Context(), usecases.GetDatabaseInfoQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", DatabaseInfoResponse{
		Driver:      result.Driver,
		Path:        result.Path,
		SizeBytes:   result.SizeBytes,
		TableCounts: result.TableCounts,
	})
}

// SeedDemoData handles POST /api/demo_data
func (h *SystemHandler) SeedDemoData(c *gin.Context) {
	summary, err := h.seeder.Run(c.Request.Context())
	if err != nil {
		h.logger.Errorw("demo data seeding failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"client_ids":     summary.ClientIDs,
		"technician_ids": summary.TechnicianIDs,
		"problem_ids":    summary.ProblemIDs,
		"solution_ids":   summary.SolutionIDs,
	}, "Demo data created successfully")
}
