package usecases

import (
	"context"
	"fmt"
	"time"

	"jetdesk/internal/domain/registry"
	"jetdesk/internal/shared/errors"
	"jetdesk/internal/shared/logger"
)

type ListSolutionsForProblemQuery struct {
	ProblemID uint
}

type SolutionData struct {
	ID              uint
	ProblemID       uint
	Title           string
	Steps           string
	ToolsNeeded     string
	TimeRequired    string
	SolutionType    string
	DifficultyLevel int
	Notes           string
	CreatedBy       string
	AverageRating   float64
	RatingCount     int
	CreatedAt       time.Time
}

type ListSolutionsForProblemResult struct {
	ProblemID uint
	Solutions []SolutionData
	Total     int
}

type ListSolutionsForProblemUseCase struct {
	solutionRepo registry.SolutionRepository
	problemRepo  registry.ProblemRepository
	logger       logger.Interface
}

func NewListSolutionsForProblemUseCase(
	solutionRepo registry.SolutionRepository,
	problemRepo registry.ProblemRepository,
	logger logger.Interface,
) *ListSolutionsForProblemUseCase {
	return &ListSolutionsForProblemUseCase{
		solutionRepo: solutionRepo,
		problemRepo:  problemRepo,
		logger:       logger,
	}
}

func (uc *ListSolutionsForProblemUseCase) Execute(ctx context.Context, query ListSolutionsForProblemQuery) (*ListSolutionsForProblemResult, error) {
	uc.logger.Debugw("executing list solutions for problem use case", "problem_id", query.ProblemID)

	exists, err := uc.problemRepo.Exists(ctx, query.ProblemID)
	if err != nil {
		uc.logger.Errorw("failed to check problem reference", "problem_id", query.ProblemID, "error", err)
		return nil, errors.NewStorageError("failed to check problem reference")
	}
	if !exists {
		return nil, errors.NewNotFoundError(fmt.Sprintf("problem %d not found", query.ProblemID))
	}

	solutions, err := uc.solutionRepo.FindByProblemID(ctx, query.ProblemID)
	if err != nil {
		uc.logger.Errorw("failed to list solutions", "problem_id", query.ProblemID, "error", err)
		return nil, errors.NewStorageError("failed to list solutions")
	}

	data := make([]SolutionData, len(solutions))
	for i, s := range solutions {
		data[i] = SolutionData{
			ID:              s.ID(),
			ProblemID:       s.ProblemID(),
			Title:           s.Title(),
			Steps:           s.Steps(),
			ToolsNeeded:     s.ToolsNeeded(),
			TimeRequired:    s.TimeRequired(),
			SolutionType:    s.SolutionType(),
			DifficultyLevel: s.DifficultyLevel(),
			Notes:           s.Notes(),
			CreatedBy:       s.CreatedBy(),
			AverageRating:   s.AverageRating(),
			RatingCount:     s.RatingCount(),
			CreatedAt:       s.CreatedAt(),
		}
	}

	return &ListSolutionsForProblemResult{
		ProblemID: query.ProblemID,
		Solutions: data,
		Total:     len(data),
	}, nil
}
