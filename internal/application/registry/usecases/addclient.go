package usecases

import (
	"context"
	"time"

	"jetdesk/internal/domain/registry"
	"jetdesk/internal/shared/errors"
	"jetdesk/internal/shared/logger"
)

type AddClientCommand struct {
	Name            string
	ContactPhone    string
	Email           string
	Company         string
	ServiceContract bool
	Location        string
}

type AddClientResult struct {
	ClientID  uint
	CreatedAt time.Time
}

type AddClientUseCase struct {
	clientRepo registry.ClientRepository
	logger     logger.Interface
}

func NewAddClientUseCase(
	clientRepo registry.ClientRepository,
	logger logger.Interface,
) *AddClientUseCase {
	return &AddClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *AddClientUseCase) Execute(ctx context.Context, cmd AddClientCommand) (*AddClientResult, error) {
	uc.logger.Infow("executing add client use case", "name", cmd.Name)

	client, err := registry.NewClient(
		cmd.Name,
		cmd.ContactPhone,
		cmd.Email,
		cmd.Company,
		cmd.ServiceContract,
		cmd.Location,
	)
	if err != nil {
		uc.logger.Errorw("failed to create client entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.clientRepo.Save(ctx, client); err != nil {
		uc.logger.Errorw("failed to save client", "error", err)
		return nil, errors.NewStorageError("failed to save client")
	}

	uc.logger.Infow("client added successfully", "client_id", client.ID())

	return &AddClientResult{
		ClientID:  client.ID(),
		CreatedAt: client.CreatedAt(),
	}, nil
}
