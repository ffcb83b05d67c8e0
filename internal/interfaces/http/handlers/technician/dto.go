package technician

import (
	"jetdesk/internal/application/registry/usecases"
	"jetdesk/internal/shared/biztime"
)

type AddTechnicianRequest struct {
	Name               string `json:"name" binding:"required,max=200"`
	Specialty          string `json:"specialty"`
	Contact            string `json:"contact"`
	CertificationLevel int    `json:"certification_level" binding:"omitempty,min=0"`
}

func (r *AddTechnicianRequest) ToCommand() usecases.AddTechnicianCommand {
	return usecases.AddTechnicianCommand{
		Name:               r.Name,
		Specialty:          r.Specialty,
		Contact:            r.Contact,
		CertificationLevel: r.CertificationLevel,
	}
}

type TechnicianResponse struct {
	ID                 uint   `json:"id"`
	Name               string `json:"name"`
	Specialty          string `json:"specialty,omitempty"`
	Contact            string `json:"contact,omitempty"`
	CertificationLevel int    `json:"certification_level"`
	CreatedAt          string `json:"created_at"`
}

func toTechnicianResponse(data usecases.TechnicianData) TechnicianResponse {
	return TechnicianResponse{
		ID:                 data.ID,
		Name:               data.Name,
		Specialty:          data.Specialty,
		Contact:            data.Contact,
		CertificationLevel: data.CertificationLevel,
		CreatedAt:          biztime.FormatTimestamp(data.CreatedAt),
	}
}
