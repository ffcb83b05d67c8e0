package usecases

import (
	"context"

	"jetdesk/internal/domain/registry"
	vo "jetdesk/internal/domain/registry/valueobjects"
	"jetdesk/internal/shared/errors"
	"jetdesk/internal/shared/logger"
)

type GetSystemStatisticsQuery struct{}

// GetSystemStatisticsResult is a consistent snapshot of the registry:
// the per-status counts always sum to TotalProblems.
type GetSystemStatisticsResult struct {
	TotalProblems       int64
	ProblemsByStatus    map[string]int64
	UnassignedProblems  int64
	TotalClients        int64
	TotalTechnicians    int64
	TotalSolutions      int64
	TotalRatings        int64
	AverageRating       float64
	RatingsByDifficulty map[int]float64
}

type GetSystemStatisticsUseCase struct {
	problemRepo    registry.ProblemRepository
	clientRepo     registry.ClientRepository
	technicianRepo registry.TechnicianRepository
	solutionRepo   registry.SolutionRepository
	logger         logger.Interface
}

func NewGetSystemStatisticsUseCase(
	problemRepo registry.ProblemRepository,
	clientRepo registry.ClientRepository,
	technicianRepo registry.TechnicianRepository,
	solutionRepo registry.SolutionRepository,
	logger logger.Interface,
) *GetSystemStatisticsUseCase {
	return &GetSystemStatisticsUseCase{
		problemRepo:    problemRepo,
		clientRepo:     clientRepo,
		technicianRepo: technicianRepo,
		solutionRepo:   solutionRepo,
		logger:         logger,
	}
}

func (uc *GetSystemStatisticsUseCase) Execute(ctx context.Context, _ GetSystemStatisticsQuery) (*GetSystemStatisticsResult, error) {
	uc.logger.Debugw("executing get system statistics use case")

	statusCounts, err := uc.problemRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count problems by status", "error", err)
		return nil, errors.NewStorageError("failed to count problems by status")
	}

	// Every known status appears in the snapshot, zero when absent, so the
	// per-status counts sum to the total.
	byStatus := make(map[string]int64, len(vo.AllProblemStatuses()))
	var totalProblems int64
	for _, status := range vo.AllProblemStatuses() {
		byStatus[status.String()] = statusCounts[status.String()]
		totalProblems += statusCounts[status.String()]
	}

	unassigned, err := uc.problemRepo.CountUnassigned(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count unassigned problems", "error", err)
		return nil, errors.NewStorageError("failed to count unassigned problems")
	}

	totalClients, err := uc.clientRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count clients", "error", err)
		return nil, errors.NewStorageError("failed to count clients")
	}

	totalTechnicians, err := uc.technicianRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count technicians", "error", err)
		return nil, errors.NewStorageError("failed to count technicians")
	}

	totalSolutions, err := uc.solutionRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count solutions", "error", err)
		return nil, errors.NewStorageError("failed to count solutions")
	}

	avgRating, totalRatings, err := uc.solutionRepo.AverageRating(ctx)
	if err != nil {
		uc.logger.Errorw("failed to aggregate ratings", "error", err)
		return nil, errors.NewStorageError("failed to aggregate ratings")
	}

	byDifficulty, err := uc.solutionRepo.AverageRatingByDifficulty(ctx)
	if err != nil {
		uc.logger.Errorw("failed to aggregate ratings by difficulty", "error", err)
		return nil, errors.NewStorageError("failed to aggregate ratings by difficulty")
	}

	return &GetSystemStatisticsResult{
		TotalProblems:       totalProblems,
		ProblemsByStatus:    byStatus,
		UnassignedProblems:  unassigned,
		TotalClients:        totalClients,
		TotalTechnicians:    totalTechnicians,
		TotalSolutions:      totalSolutions,
		TotalRatings:        totalRatings,
		AverageRating:       avgRating,
		RatingsByDifficulty: byDifficulty,
	}, nil
}
