package mappers

import (
	"jetdesk/internal/domain/registry"
	"jetdesk/internal/infrastructure/persistence/models"
)

// ClientMapper handles the conversion between Client domain entities and
// persistence models.
type ClientMapper interface {
	ToModel(c *registry.Client) *models.ClientModel
	ToDomain(model *models.ClientModel) (*registry.Client, error)
}

type ClientMapperImpl struct{}

func NewClientMapper() ClientMapper {
	return &ClientMapperImpl{}
}

func (m *ClientMapperImpl) ToModel(c *registry.Client) *models.ClientModel {
	return &models.ClientModel{
		ID:              c.ID(),
		Name:            c.Name(),
		ContactPhone:    c.ContactPhone(),
		Email:           c.Email(),
		Company:         c.Company(),
		ServiceContract: c.ServiceContract(),
		Location:        c.Location(),
		CreatedAt:       c.CreatedAt().UnixMilli(),
	}
}

func (m *ClientMapperImpl) ToDomain(model *models.ClientModel) (*registry.Client, error) {
	return registry.ReconstructClient(
		model.ID,
		model.Name,
		model.ContactPhone,
		model.Email,
		model.Company,
		model.ServiceContract,
		model.Location,
		convertMillisToTime(model.CreatedAt),
	)
}
