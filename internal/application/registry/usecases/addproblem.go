package usecases

import (
	"context"
	"fmt"
	"time"

	"jetdesk/internal/domain/registry"
	"jetdesk/internal/shared/errors"
	"jetdesk/internal/shared/logger"
)

type AddProblemCommand struct {
	Title        string
	Description  string
	Model        string
	SerialNumber string
	ClientID     uint
	ErrorCode    string
	Component    string
	InkType      string
	SurfaceType  string
	Priority     int
	ImagePath    string
	ReportedBy   string
	FailureCause string
	TechnicianID *uint
}

type AddProblemResult struct {
	ProblemID uint
	Status    string
	CreatedAt time.Time
}

type AddProblemUseCase struct {
	problemRepo    registry.ProblemRepository
	clientRepo     registry.ClientRepository
	technicianRepo registry.TechnicianRepository
	txMgr          TransactionRunner
	logger         logger.Interface
}

func NewAddProblemUseCase(
	problemRepo registry.ProblemRepository,
	clientRepo registry.ClientRepository,
	technicianRepo registry.TechnicianRepository,
	txMgr TransactionRunner,
	logger logger.Interface,
) *AddProblemUseCase {
	return &AddProblemUseCase{
		problemRepo:    problemRepo,
		clientRepo:     clientRepo,
		technicianRepo: technicianRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *AddProblemUseCase) Execute(ctx context.Context, cmd AddProblemCommand) (*AddProblemResult, error) {
	uc.logger.Infow("executing add problem use case", "title", cmd.Title, "client_id", cmd.ClientID)

	problem, err := registry.NewProblem(
		cmd.Title,
		cmd.Model,
		cmd.SerialNumber,
		cmd.ClientID,
		registry.ProblemDetails{
			Description:  cmd.Description,
			ErrorCode:    cmd.ErrorCode,
			Component:    cmd.Component,
			InkType:      cmd.InkType,
			SurfaceType:  cmd.SurfaceType,
			Priority:     cmd.Priority,
			ImagePath:    cmd.ImagePath,
			ReportedBy:   cmd.ReportedBy,
			FailureCause: cmd.FailureCause,
			TechnicianID: cmd.TechnicianID,
		},
	)
	if err != nil {
		uc.logger.Errorw("failed to create problem entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	// Reference checks and the insert run in one transaction so a client or
	// technician row cannot disappear between check and write.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.clientRepo.Exists(txCtx, cmd.ClientID)
		if err != nil {
			uc.logger.Errorw("failed to check client reference", "client_id", cmd.ClientID, "error", err)
			return errors.NewStorageError("failed to check client reference")
		}
		if !exists {
			return errors.NewReferenceError(fmt.Sprintf("client %d does not exist", cmd.ClientID))
		}

		if cmd.TechnicianID != nil {
			exists, err := uc.technicianRepo.Exists(txCtx, *cmd.TechnicianID)
			if err != nil {
				uc.logger.Errorw("failed to check technician reference", "technician_id", *cmd.TechnicianID, "error", err)
				return errors.NewStorageError("failed to check technician reference")
			}
			if !exists {
				return errors.NewReferenceError(fmt.Sprintf("technician %d does not exist", *cmd.TechnicianID))
			}
		}

		if err := uc.problemRepo.Save(txCtx, problem); err != nil {
			uc.logger.Errorw("failed to save problem", "error", err)
			return errors.NewStorageError("failed to save problem")
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("problem added successfully", "problem_id", problem.ID())

	return &AddProblemResult{
		ProblemID: problem.ID(),
		Status:    problem.Status().String(),
		CreatedAt: problem.CreatedAt(),
	}, nil
}
