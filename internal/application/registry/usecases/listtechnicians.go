package usecases

import (
	"context"
	"time"

	"jetdesk/internal/domain/registry"
	"jetdesk/internal/shared/errors"
	"jetdesk/internal/shared/logger"
)

type ListTechniciansQuery struct{}

type TechnicianData struct {
	ID                 uint
	Name               string
	Specialty          string
	Contact            string
	CertificationLevel int
	CreatedAt          time.Time
}

type ListTechniciansResult struct {
	Technicians []TechnicianData
	Total       int
}

type ListTechniciansUseCase struct {
	technicianRepo registry.TechnicianRepository
	logger         logger.Interface
}

func NewListTechniciansUseCase(
	technicianRepo registry.TechnicianRepository,
	logger logger.Interface,
) *ListTechniciansUseCase {
	return &ListTechniciansUseCase{
		technicianRepo: technicianRepo,
		logger:         logger,
	}
}

func (uc *ListTechniciansUseCase) Execute(ctx context.Context, _ ListTechniciansQuery) (*ListTechniciansResult, error) {
	uc.logger.Debugw("executing list technicians use case")

	technicians, err := uc.technicianRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list technicians", "error", err)
		return nil, errors.NewStorageError("failed to list technicians")
	}

	data := make([]TechnicianData, len(technicians))
	for i, tech := range technicians {
		data[i] = TechnicianData{
			ID:                 tech.ID(),
			Name:               tech.Name(),
			Specialty:          tech.Specialty(),
			Contact:            tech.Contact(),
			CertificationLevel: tech.CertificationLevel(),
			CreatedAt:          tech.CreatedAt(),
		}
	}

	return &ListTechniciansResult{
		Technicians: data,
		Total:       len(data),
	}, nil
}
