package mappers

import (
	"fmt"

	"jetdesk/internal/domain/registry"
	vo "jetdesk/internal/domain/registry/valueobjects"
	"jetdesk/internal/infrastructure/persistence/models"
)

// ProblemMapper handles the conversion between Problem domain entities and
// persistence models.
type ProblemMapper interface {
	ToModel(p *registry.Problem) *models.ProblemModel
	ToDomain(model *models.ProblemModel) (*registry.Problem, error)
}

type ProblemMapperImpl struct{}

func NewProblemMapper() ProblemMapper {
	return &ProblemMapperImpl{}
}

func (m *ProblemMapperImpl) ToModel(p *registry.Problem) *models.ProblemModel {
	return &models.ProblemModel{
		ID:           p.ID(),
		Title:        p.Title(),
		Description:  p.Description(),
		Model:        p.Model(),
		SerialNumber: p.SerialNumber(),
		ClientID:     p.ClientID(),
		ErrorCode:    p.ErrorCode(),
		Component:    p.Component(),
		InkType:      p.InkType(),
		SurfaceType:  p.SurfaceType(),
		Priority:     p.Priority(),
		ImagePath:    p.ImagePath(),
		ReportedBy:   p.ReportedBy(),
		FailureCause: p.FailureCause(),
		TechnicianID: p.TechnicianID(),
		Status:       p.Status().String(),
		CreatedAt:    p.CreatedAt().UnixMilli(),
		UpdatedAt:    p.UpdatedAt().UnixMilli(),
	}
}

func (m *ProblemMapperImpl) ToDomain(model *models.ProblemModel) (*registry.Problem, error) {
	status, err := vo.NewProblemStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map problem (id=%d): %w", model.ID, err)
	}

	return registry.ReconstructProblem(
		model.ID,
		model.Title,
		model.Model,
		model.SerialNumber,
		model.ClientID,
		registry.ProblemDetails{
			Description:  model.Description,
			ErrorCode:    model.ErrorCode,
			Component:    model.Component,
			InkType:      model.InkType,
			SurfaceType:  model.SurfaceType,
			Priority:     model.Priority,
			ImagePath:    model.ImagePath,
			ReportedBy:   model.ReportedBy,
			FailureCause: model.FailureCause,
			TechnicianID: model.TechnicianID,
		},
		status,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
