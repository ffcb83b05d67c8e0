package usecases

import (
	"context"
	"time"

	"jetdesk/internal/domain/registry"
	"jetdesk/internal/shared/errors"
	"jetdesk/internal/shared/logger"
)

type AddTechnicianCommand struct {
	Name               string
	Specialty          string
	Contact            string
	CertificationLevel int
}

type AddTechnicianResult struct {
	TechnicianID uint
	CreatedAt    time.Time
}

type AddTechnicianUseCase struct {
	technicianRepo registry.TechnicianRepository
	logger         logger.Interface
}

func NewAddTechnicianUseCase(
	technicianRepo registry.TechnicianRepository,
	logger logger.Interface,
) *AddTechnicianUseCase {
	return &AddTechnicianUseCase{
		technicianRepo: technicianRepo,
		logger:         logger,
	}
}

func (uc *AddTechnicianUseCase) Execute(ctx context.Context, cmd AddTechnicianCommand) (*AddTechnicianResult, error) {
	uc.logger.Infow("executing add technician use case", "name", cmd.Name)

	technician, err := registry.NewTechnician(
		cmd.Name,
		cmd.Specialty,
		cmd.Contact,
		cmd.CertificationLevel,
	)
	if err != nil {
		uc.logger.Errorw("failed to create technician entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.technicianRepo.Save(ctx, technician); err != nil {
		uc.logger.Errorw("failed to save technician", "error", err)
		return nil, errors.NewStorageError("failed to save technician")
	}

	uc.logger.Infow("technician added successfully", "technician_id", technician.ID())

	return &AddTechnicianResult{
		TechnicianID: technician.ID(),
		CreatedAt:    technician.CreatedAt(),
	}, nil
}
