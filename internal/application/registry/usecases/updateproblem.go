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

// UpdateProblemCommand is a partial update: nil fields are left untouched.
// A TechnicianID of 0 clears the assignment.
type UpdateProblemCommand struct {
	ProblemID    uint
	Description  *string
	Status       *string
	TechnicianID *uint
	Priority     *int
	ErrorCode    *string
	Component    *string
	InkType      *string
	SurfaceType  *string
	ImagePath    *string
	ReportedBy   *string
	FailureCause *string
}

type UpdateProblemResult struct {
	ProblemID uint
	Status    string
	UpdatedAt time.Time
}

type UpdateProblemUseCase struct {
	problemRepo    registry.ProblemRepository
	technicianRepo registry.TechnicianRepository
	txMgr          TransactionRunner
	logger         logger.Interface
}

func NewUpdateProblemUseCase(
	problemRepo registry.ProblemRepository,
	technicianRepo registry.TechnicianRepository,
	txMgr TransactionRunner,
	logger logger.Interface,
) *UpdateProblemUseCase {
	return &UpdateProblemUseCase{
		problemRepo:    problemRepo,
		technicianRepo: technicianRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *UpdateProblemUseCase) Execute(ctx context.Context, cmd UpdateProblemCommand) (*UpdateProblemResult, error) {
	uc.logger.Infow("executing update problem use case", "problem_id", cmd.ProblemID)

	var result *UpdateProblemResult

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		problem, err := uc.problemRepo.FindByID(txCtx, cmd.ProblemID)
		if err != nil {
			uc.logger.Errorw("failed to get problem", "problem_id", cmd.ProblemID, "error", err)
			return errors.NewNotFoundError(fmt.Sprintf("problem %d not found", cmd.ProblemID))
		}

		if err := uc.applyChanges(txCtx, problem, cmd); err != nil {
			return err
		}

		if err := uc.problemRepo.Update(txCtx, problem); err != nil {
			uc.logger.Errorw("failed to update problem", "problem_id", cmd.ProblemID, "error", err)
			return errors.NewStorageError("failed to update problem")
		}

		result = &UpdateProblemResult{
			ProblemID: problem.ID(),
			Status:    problem.Status().String(),
			UpdatedAt: problem.UpdatedAt(),
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("problem updated successfully", "problem_id", cmd.ProblemID)

	return result, nil
}

func (uc *UpdateProblemUseCase) applyChanges(ctx context.Context, problem *registry.Problem, cmd UpdateProblemCommand) error {
	if cmd.Status != nil {
		status, err := vo.NewProblemStatus(*cmd.Status)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := problem.ChangeStatus(status); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.TechnicianID != nil {
		if *cmd.TechnicianID == 0 {
			problem.ClearTechnician()
		} else {
			exists, err := uc.technicianRepo.Exists(ctx, *cmd.TechnicianID)
			if err != nil {
				uc.logger.Errorw("failed to check technician reference", "technician_id", *cmd.TechnicianID, "error", err)
				return errors.NewStorageError("failed to check technician reference")
			}
			if !exists {
				return errors.NewReferenceError(fmt.Sprintf("technician %d does not exist", *cmd.TechnicianID))
			}
			if err := problem.AssignTechnician(*cmd.TechnicianID); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
	}

	if cmd.Priority != nil {
		if err := problem.ChangePriority(*cmd.Priority); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.Description != nil {
		problem.SetDescription(*cmd.Description)
	}
	if cmd.ErrorCode != nil {
		problem.SetErrorCode(*cmd.ErrorCode)
	}
	if cmd.Component != nil {
		problem.SetComponent(*cmd.Component)
	}
	if cmd.InkType != nil {
		problem.SetInkType(*cmd.InkType)
	}
	if cmd.SurfaceType != nil {
		problem.SetSurfaceType(*cmd.SurfaceType)
	}
	if cmd.ImagePath != nil {
		problem.SetImagePath(*cmd.ImagePath)
	}
	if cmd.ReportedBy != nil {
		problem.SetReportedBy(*cmd.ReportedBy)
	}
	if cmd.FailureCause != nil {
		problem.SetFailureCause(*cmd.FailureCause)
	}

	return nil
}
