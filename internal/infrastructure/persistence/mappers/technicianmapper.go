package mappers

import (
	"jetdesk/internal/domain/registry"
	"jetdesk/internal/infrastructure/persistence/models"
)

// TechnicianMapper handles the conversion between Technician domain entities
// and persistence models.
type TechnicianMapper interface {
	ToModel(t *registry.Technician) *models.TechnicianModel
	ToDomain(model *models.TechnicianModel) (*registry.Technician, error)
}

type TechnicianMapperImpl struct{}

func NewTechnicianMapper() TechnicianMapper {
	return &TechnicianMapperImpl{}
}

func (m *TechnicianMapperImpl) ToModel(t *registry.Technician) *models.TechnicianModel {
	return &models.TechnicianModel{
		ID:                 t.ID(),
		Name:               t.Name(),
		Specialty:          t.Specialty(),
		Contact:            t.Contact(),
		CertificationLevel: t.CertificationLevel(),
		CreatedAt:          t.CreatedAt().UnixMilli(),
	}
}

func (m *TechnicianMapperImpl) ToDomain(model *models.TechnicianModel) (*registry.Technician, error) {
	return registry.ReconstructTechnician(
		model.ID,
		model.Name,
		model.Specialty,
		model.Contact,
		model.CertificationLevel,
		convertMillisToTime(model.CreatedAt),
	)
}
