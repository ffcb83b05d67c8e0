package problem

import (
	"jetdesk/internal/application/registry/usecases"
	"jetdesk/internal/shared/biztime"
)

type AddProblemRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description"`
	Model        string `json:"model" binding:"required,max=100"`
	SerialNumber string `json:"serial_number" binding:"required,max=100"`
	ClientID     uint   `json:"client_id" binding:"required"`
	ErrorCode    string `json:"error_code"`
	Component    string `json:"component"`
	InkType      string `json:"ink_type"`
	SurfaceType  string `json:"surface_type"`
	Priority     int    `json:"priority" binding:"omitempty,min=1,max=5"`
	ImagePath    string `json:"image_path"`
	ReportedBy   string `json:"reported_by"`
	FailureCause string `json:"failure_cause"`
	TechnicianID *uint  `json:"technician_id"`
}

func (r *AddProblemRequest) ToCommand() usecases.AddProblemCommand {
	return usecases.AddProblemCommand{
		Title:        r.Title,
		Description:  r.Description,
		Model:        r.Model,
		SerialNumber: r.SerialNumber,
		ClientID:     r.ClientID,
		ErrorCode:    r.ErrorCode,
		Component:    r.Component,
		InkType:      r.InkType,
		SurfaceType:  r.SurfaceType,
		Priority:     r.Priority,
		ImagePath:    r.ImagePath,
		ReportedBy:   r.ReportedBy,
		FailureCause: r.FailureCause,
		TechnicianID: r.TechnicianID,
	}
}

type UpdateProblemStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateProblemRequest carries only the fields the caller wants changed.
// Omitted fields stay untouched; technician_id 0 clears the assignment.
type UpdateProblemRequest struct {
	Description  *string `json:"description"`
	Status       *string `json:"status"`
	TechnicianID *uint   `json:"technician_id"`
	Priority     *int    `json:"priority"`
	ErrorCode    *string `json:"error_code"`
	Component    *string `json:"component"`
	InkType      *string `json:"ink_type"`
	SurfaceType  *string `json:"surface_type"`
	ImagePath    *string `json:"image_path"`
	ReportedBy   *string `json:"reported_by"`
	FailureCause *string `json:"failure_cause"`
}

func (r *UpdateProblemRequest) ToCommand(problemID uint) usecases.UpdateProblemCommand {
	return usecases.UpdateProblemCommand{
		ProblemID:    problemID,
		Description:  r.Description,
		Status:       r.Status,
		TechnicianID: r.TechnicianID,
		Priority:     r.Priority,
		ErrorCode:    r.ErrorCode,
		Component:    r.Component,
		InkType:      r.InkType,
		SurfaceType:  r.SurfaceType,
		ImagePath:    r.ImagePath,
		ReportedBy:   r.ReportedBy,
		FailureCause: r.FailureCause,
	}
}

type AddSolutionRequest struct {
	Title           string `json:"title" binding:"required,max=200"`
	Steps           string `json:"steps" binding:"required"`
	ToolsNeeded     string `json:"tools_needed"`
	TimeRequired    string `json:"time_required"`
	SolutionType    string `json:"solution_type"`
	DifficultyLevel int    `json:"difficulty_level" binding:"omitempty,min=1,max=5"`
	Notes           string `json:"notes"`
	CreatedBy       string `json:"created_by"`
}

func (r *AddSolutionRequest) ToCommand(problemID uint) usecases.AddSolutionCommand {
	return usecases.AddSolutionCommand{
		ProblemID:       problemID,
		Title:           r.Title,
		Steps:           r.Steps,
		ToolsNeeded:     r.ToolsNeeded,
		TimeRequired:    r.TimeRequired,
		SolutionType:    r.SolutionType,
		DifficultyLevel: r.DifficultyLevel,
		Notes:           r.Notes,
		CreatedBy:       r.CreatedBy,
	}
}

type RateSolutionRequest struct {
	Score    int    `json:"rating" binding:"required,min=1,max=5"`
	Feedback string `json:"feedback"`
	RatedBy  string `json:"rated_by"`
}

// ProblemResponse is the wire shape of a problem with client and technician
// names joined in. Unknown references fall back to "Unknown"/"Unassigned".
type ProblemResponse struct {
	ID                uint   `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description,omitempty"`
	Model             string `json:"model"`
	SerialNumber      string `json:"serial_number"`
	ClientID          uint   `json:"client_id"`
	ClientName        string `json:"client_name"`
	ClientPhoneNumber string `json:"client_phone_number,omitempty"`
	ErrorCode         string `json:"error_code,omitempty"`
	Component         string `json:"component,omitempty"`
	InkType           string `json:"ink_type,omitempty"`
	SurfaceType       string `json:"surface_type,omitempty"`
	Priority          int    `json:"priority"`
	ImagePath         string `json:"image_path,omitempty"`
	ReportedBy        string `json:"reported_by,omitempty"`
	FailureCause      string `json:"failure_cause,omitempty"`
	TechnicianID      *uint  `json:"technician_id"`
	TechnicianName    string `json:"technician_name"`
	Status            string `json:"status"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

type SolutionResponse struct {
	ID              uint    `json:"id"`
	ProblemID       uint    `json:"problem_id"`
	Title           string  `json:"title"`
	Steps           string  `json:"steps"`
	ToolsNeeded     string  `json:"tools_needed,omitempty"`
	TimeRequired    string  `json:"time_required,omitempty"`
	SolutionType    string  `json:"solution_type,omitempty"`
	DifficultyLevel int     `json:"difficulty_level"`
	Notes           string  `json:"notes,omitempty"`
	CreatedBy       string  `json:"created_by,omitempty"`
	AverageRating   float64 `json:"average_rating"`
	RatingCount     int     `json:"rating_count"`
	CreatedAt       string  `json:"created_at"`
}

func toSolutionResponse(s usecases.SolutionData) SolutionResponse {
	return SolutionResponse{
		ID:              s.ID,
		ProblemID:       s.ProblemID,
		Title:           s.Title,
		Steps:           s.Steps,
		ToolsNeeded:     s.ToolsNeeded,
		TimeRequired:    s.TimeRequired,
		SolutionType:    s.SolutionType,
		DifficultyLevel: s.DifficultyLevel,
		Notes:           s.Notes,
		CreatedBy:       s.CreatedBy,
		AverageRating:   s.AverageRating,
		RatingCount:     s.RatingCount,
		CreatedAt:       biztime.FormatTimestamp(s.CreatedAt),
	}
}
