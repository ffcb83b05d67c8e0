package usecases

import (
	"context"
	"fmt"
	"time"

	"jetdesk/internal/domain/registry"
	"jetdesk/internal/shared/errors"
	"jetdesk/internal/shared/logger"
)

type AddSolutionCommand struct {
	ProblemID       uint
	Title           string
	Steps           string
	ToolsNeeded     string
	TimeRequired    string
	SolutionType    string
	DifficultyLevel int
	Notes           string
	CreatedBy       string
}

type AddSolutionResult struct {
	SolutionID uint
	CreatedAt  time.Time
}

type AddSolutionUseCase struct {
	solutionRepo registry.SolutionRepository
	problemRepo  registry.ProblemRepository
	txMgr        TransactionRunner
	logger       logger.Interface
}

func NewAddSolutionUseCase(
	solutionRepo registry.SolutionRepository,
	problemRepo registry.ProblemRepository,
	txMgr TransactionRunner,
	logger logger.Interface,
) *AddSolutionUseCase {
	return &AddSolutionUseCase{
		solutionRepo: solutionRepo,
		problemRepo:  problemRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *AddSolutionUseCase) Execute(ctx context.Context, cmd AddSolutionCommand) (*AddSolutionResult, error) {
	uc.logger.Infow("executing add solution use case", "problem_id", cmd.ProblemID, "title", cmd.Title)

	solution, err := registry.NewSolution(
		cmd.ProblemID,
		cmd.Title,
		cmd.Steps,
		registry.SolutionDetails{
			ToolsNeeded:     cmd.ToolsNeeded,
			TimeRequired:    cmd.TimeRequired,
			SolutionType:    cmd.SolutionType,
			DifficultyLevel: cmd.DifficultyLevel,
			Notes:           cmd.Notes,
			CreatedBy:       cmd.CreatedBy,
		},
	)
	if err != nil {
		uc.logger.Errorw("failed to create solution entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.problemRepo.Exists(txCtx, cmd.ProblemID)
		if err != nil {
			uc.logger.Errorw("failed to check problem reference", "problem_id", cmd.ProblemID, "error", err)
			return errors.NewStorageError("failed to check problem reference")
		}
		if !exists {
			return errors.NewReferenceError(fmt.Sprintf("problem %d does not exist", cmd.ProblemID))
		}

		if err := uc.solutionRepo.Save(txCtx, solution); err != nil {
			uc.logger.Errorw("failed to save solution", "error", err)
			return errors.NewStorageError("failed to save solution")
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("solution added successfully", "solution_id", solution.ID(), "problem_id", cmd.ProblemID)

	return &AddSolutionResult{
		SolutionID: solution.ID(),
		CreatedAt:  solution.CreatedAt(),
	}, nil
}
