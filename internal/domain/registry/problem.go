package registry

import (
	"fmt"
	"time"

	vo "jetdesk/internal/domain/registry/valueobjects"
	"jetdesk/internal/shared/biztime"
)

const (
	// DefaultPriority is assigned when a problem is reported without one.
	DefaultPriority = 2

	MinPriority = 1
	MaxPriority = 5
)

// Problem is a reported device defect. It is owned by exactly one client and
// may be assigned to one technician. A problem is never deleted; after
// creation it changes only through status transitions and field updates.
type Problem struct {
	id           uint
	title        string
	description  string
	model        string
	serialNumber string
	clientID     uint
	errorCode    string
	component    string
	inkType      string
	surfaceType  string
	priority     int
	imagePath    string
	reportedBy   string
	failureCause string
	technicianID *uint
	status       vo.ProblemStatus
	createdAt    time.Time
	updatedAt    time.Time
}

// ProblemDetails carries the optional attributes of a problem report with
// their defaults: zero-value strings mean "not provided", a zero Priority
// falls back to DefaultPriority, a nil TechnicianID means unassigned.
type ProblemDetails struct {
	Description  string
	ErrorCode    string
	Component    string
	InkType      string
	SurfaceType  string
	Priority     int
	ImagePath    string
	ReportedBy   string
	FailureCause string
	TechnicianID *uint
}

func NewProblem(
	title string,
	model string,
	serialNumber string,
	clientID uint,
	details ProblemDetails,
) (*Problem, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(model) == 0 {
		return nil, fmt.Errorf("model is required")
	}
	if len(serialNumber) == 0 {
		return nil, fmt.Errorf("serial number is required")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}

	priority := details.Priority
	if priority == 0 {
		priority = DefaultPriority
	}
	if priority < MinPriority || priority > MaxPriority {
		return nil, fmt.Errorf("priority must be between %d and %d", MinPriority, MaxPriority)
	}

	if details.TechnicianID != nil && *details.TechnicianID == 0 {
		return nil, fmt.Errorf("technician ID cannot be zero")
	}

	now := biztime.NowUTC()

	return &Problem{
		title:        title,
		description:  details.Description,
		model:        model,
		serialNumber: serialNumber,
		clientID:     clientID,
		errorCode:    details.ErrorCode,
		component:    details.Component,
		inkType:      details.InkType,
		surfaceType:  details.SurfaceType,
		priority:     priority,
		imagePath:    details.ImagePath,
		reportedBy:   details.ReportedBy,
		failureCause: details.FailureCause,
		technicianID: details.TechnicianID,
		status:       vo.StatusOpen,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructProblem(
	id uint,
	title string,
	model string,
	serialNumber string,
	clientID uint,
	details ProblemDetails,
	status vo.ProblemStatus,
	createdAt, updatedAt time.Time,
) (*Problem, error) {
	if id == 0 {
		return nil, fmt.Errorf("problem ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Problem{
		id:           id,
		title:        title,
		description:  details.Description,
		model:        model,
		serialNumber: serialNumber,
		clientID:     clientID,
		errorCode:    details.ErrorCode,
		component:    details.Component,
		inkType:      details.InkType,
		surfaceType:  details.SurfaceType,
		priority:     details.Priority,
		imagePath:    details.ImagePath,
		reportedBy:   details.ReportedBy,
		failureCause: details.FailureCause,
		technicianID: details.TechnicianID,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *Problem) ID() uint {
	return p.id
}

func (p *Problem) Title() string {
	return p.title
}

func (p *Problem) Description() string {
	return p.description
}

func (p *Problem) Model() string {
	return p.model
}

func (p *Problem) SerialNumber() string {
	return p.serialNumber
}

func (p *Problem) ClientID() uint {
	return p.clientID
}

func (p *Problem) ErrorCode() string {
	return p.errorCode
}

func (p *Problem) Component() string {
	return p.component
}

func (p *Problem) InkType() string {
	return p.inkType
}

func (p *Problem) SurfaceType() string {
	return p.surfaceType
}

func (p *Problem) Priority() int {
	return p.priority
}

func (p *Problem) ImagePath() string {
	return p.imagePath
}

func (p *Problem) ReportedBy() string {
	return p.reportedBy
}

func (p *Problem) FailureCause() string {
	return p.failureCause
}

func (p *Problem) TechnicianID() *uint {
	return p.technicianID
}

func (p *Problem) Status() vo.ProblemStatus {
	return p.status
}

func (p *Problem) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Problem) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Problem) IsAssigned() bool {
	return p.technicianID != nil
}

func (p *Problem) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("problem ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("problem ID cannot be zero")
	}
	p.id = id
	return nil
}

// ChangeStatus applies a status transition. Setting the current status again
// is a no-op; anything else must be permitted by the transition table.
func (p *Problem) ChangeStatus(newStatus vo.ProblemStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if p.status == newStatus {
		return nil
	}

	if !p.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", p.status, newStatus)
	}

	p.status = newStatus
	p.touch()

	return nil
}

func (p *Problem) AssignTechnician(technicianID uint) error {
	if technicianID == 0 {
		return fmt.Errorf("technician ID cannot be zero")
	}

	p.technicianID = &technicianID
	p.touch()

	return nil
}

func (p *Problem) ClearTechnician() {
	p.technicianID = nil
	p.touch()
}

func (p *Problem) ChangePriority(priority int) error {
	if priority < MinPriority || priority > MaxPriority {
		return fmt.Errorf("priority must be between %d and %d", MinPriority, MaxPriority)
	}

	p.priority = priority
	p.touch()

	return nil
}

func (p *Problem) SetDescription(description string) {
	p.description = description
	p.touch()
}

func (p *Problem) SetErrorCode(errorCode string) {
	p.errorCode = errorCode
	p.touch()
}

func (p *Problem) SetComponent(component string) {
	p.component = component
	p.touch()
}

func (p *Problem) SetInkType(inkType string) {
	p.inkType = inkType
	p.touch()
}

func (p *Problem) SetSurfaceType(surfaceType string) {
	p.surfaceType = surfaceType
	p.touch()
}

func (p *Problem) SetImagePath(imagePath string) {
	p.imagePath = imagePath
	p.touch()
}

func (p *Problem) SetReportedBy(reportedBy string) {
	p.reportedBy = reportedBy
	p.touch()
}

func (p *Problem) SetFailureCause(failureCause string) {
	p.failureCause = failureCause
	p.touch()
}

func (p *Problem) touch() {
	p.updatedAt = biztime.NowUTC()
}
