package client

import (
	"jetdesk/internal/application/registry/usecases"
	"jetdesk/internal/shared/biztime"
)

type AddClientRequest struct {
	Name            string `json:"name" binding:"required,max=200"`
	ContactPhone    string `json:"contact_phone" binding:"required,max=50"`
	Email           string `json:"email" binding:"omitempty,email"`
	Company         string `json:"company"`
	ServiceContract bool   `json:"service_contract"`
	Location        string `json:"location"`
}

func (r *AddClientRequest) ToCommand() usecases.AddClientCommand {
	return usecases.AddClientCommand{
		Name:            r.Name,
		ContactPhone:    r.ContactPhone,
		Email:           r.Email,
		Company:         r.Company,
		ServiceContract: r.ServiceContract,
		Location:        r.Location,
	}
}

type ClientResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	ContactPhone    string `json:"contact_phone"`
	Email           string `json:"email,omitempty"`
	Company         string `json:"company,omitempty"`
	ServiceContract bool   `json:"service_contract"`
	Location        string `json:"location,omitempty"`
	CreatedAt       string `json:"created_at"`
}

func toClientResponse(data usecases.ClientData) ClientResponse {
	return ClientResponse{
		ID:              data.ID,
		Name:            data.Name,
		ContactPhone:    data.ContactPhone,
		Email:           data.Email,
		Company:         data.Company,
		ServiceContract: data.ServiceContract,
		Location:        data.Location,
		CreatedAt:       biztime.FormatTimestamp(data.CreatedAt),
	}
}
