package registry

import (
	"fmt"
	"time"

	"jetdesk/internal/shared/biztime"
)

// Technician is a staff member that may be assigned to problems.
type Technician struct {
	id                 uint
	name               string
	specialty          string
	contact            string
	certificationLevel int
	createdAt          time.Time
}

func NewTechnician(
	name string,
	specialty string,
	contact string,
	certificationLevel int,
) (*Technician, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if certificationLevel < 0 {
		return nil, fmt.Errorf("certification level cannot be negative")
	}

	return &Technician{
		name:               name,
		specialty:          specialty,
		contact:            contact,
		certificationLevel: certificationLevel,
		createdAt:          biztime.NowUTC(),
	}, nil
}

func ReconstructTechnician(
	id uint,
	name string,
	specialty string,
	contact string,
	certificationLevel int,
	createdAt time.Time,
) (*Technician, error) {
	if id == 0 {
		return nil, fmt.Errorf("technician ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Technician{
		id:                 id,
		name:               name,
		specialty:          specialty,
		contact:            contact,
		certificationLevel: certificationLevel,
		createdAt:          createdAt,
	}, nil
}

func (t *Technician) ID() uint {
	return t.id
}

func (t *Technician) Name() string {
	return t.name
}

func (t *Technician) Specialty() string {
	return t.specialty
}

func (t *Technician) Contact() string {
	return t.contact
}

func (t *Technician) CertificationLevel() int {
	return t.certificationLevel
}

func (t *Technician) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Technician) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("technician ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("technician ID cannot be zero")
	}
	t.id = id
	return nil
}
