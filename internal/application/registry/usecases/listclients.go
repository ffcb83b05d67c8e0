package usecases

import (
	"context"
	"time"

	"jetdesk/internal/domain/registry"
	"jetdesk/internal/shared/errors"
	"jetdesk/internal/shared/logger"
)

type ListClientsQuery struct{}

type ClientData struct {
	ID              uint
	Name            string
	ContactPhone    string
	Email           string
	Company         string
	ServiceContract bool
	Location        string
	CreatedAt       time.Time
}

type ListClientsResult struct {
	Clients []ClientData
	Total   int
}

type ListClientsUseCase struct {
	clientRepo registry.ClientRepository
	logger     logger.Interface
}

func NewListClientsUseCase(
	clientRepo registry.ClientRepository,
	logger logger.Interface,
) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context, _ ListClientsQuery) (*ListClientsResult, error) {
	uc.logger.Debugw("executing list clients use case")

	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list clients", "error", err)
		return nil, errors.NewStorageError("failed to list clients")
	}

	data := make([]ClientData, len(clients))
	for i, c := range clients {
		data[i] = ClientData{
			ID:              c.ID(),
			Name:            c.Name(),
			ContactPhone:    c.ContactPhone(),
			Email:           c.Email(),
			Company:         c.Company(),
			ServiceContract: c.ServiceContract(),
			Location:        c.Location(),
			CreatedAt:       c.CreatedAt(),
		}
	}

	return &ListClientsResult{
		Clients: data,
		Total:   len(data),
	}, nil
}
