package usecases

import (
	"context"
	"fmt"
	"time"

	"jetdesk/internal/domain/registry"
	vo "jetdesk/internal/domain/registry/valueobjects"
	"jetdesk/internal/shared/errors"
	"jetdesk/internal/shared/logger"
)

type UpdateProblemStatusCommand struct {
	ProblemID uint
	NewStatus string
}

type UpdateProblemStatusResult struct {
	ProblemID uint
	OldStatus string
	NewStatus string
	UpdatedAt time.Time
}

type UpdateProblemStatusUseCase struct {
	problemRepo registry.ProblemRepository
	logger      logger.Interface
}

func NewUpdateProblemStatusUseCase(
	problemRepo registry.ProblemRepository,
	logger logger.Interface,
) *UpdateProblemStatusUseCase {
	return &UpdateProblemStatusUseCase{
		problemRepo: problemRepo,
		logger:      logger,
	}
}

func (uc *UpdateProblemStatusUseCase) Execute(ctx context.Context, cmd UpdateProblemStatusCommand) (*UpdateProblemStatusResult, error) {
	uc.logger.Infow("executing update problem status use case", "problem_id", cmd.ProblemID, "new_status", cmd.NewStatus)

	status, err := vo.NewProblemStatus(cmd.NewStatus)
	if err != nil {
		uc.logger.Errorw("invalid status value", "status", cmd.NewStatus, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	problem, err := uc.problemRepo.FindByID(ctx, cmd.ProblemID)
	if err != nil {
		uc.logger.Errorw("failed to get problem", "problem_id", cmd.ProblemID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("problem %d not found", cmd.ProblemID))
	}

	oldStatus := problem.Status()

	if err := problem.ChangeStatus(status); err != nil {
		uc.logger.Errorw("failed to change problem status", "problem_id", cmd.ProblemID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.problemRepo.Update(ctx, problem); err != nil {
		uc.logger.Errorw("failed to update problem", "problem_id", cmd.ProblemID, "error", err)
		return nil, errors.NewStorageError("failed to update problem")
	}

	uc.logger.Infow("problem status updated",
		"problem_id", cmd.ProblemID,
		"old_status", oldStatus.String(),
		"new_status", problem.Status().String())

	return &UpdateProblemStatusResult{
		ProblemID: problem.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: problem.Status().String(),
		UpdatedAt: problem.UpdatedAt(),
	}, nil
}
