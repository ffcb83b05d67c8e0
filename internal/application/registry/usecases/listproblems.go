package usecases

import (
	"context"
	"time"

	"jetdesk/internal/domain/registry"
	"jetdesk/internal/shared/errors"
	"jetdesk/internal/shared/logger"
)

type ListProblemsQuery struct{}

// ProblemData is the flat read model of a problem returned by queries.
type ProblemData struct {
	ID           uint
	Title        string
	Description  string
	Model        string
	SerialNumber string
	ClientID     uint
	ErrorCode    string
	Component    string
	InkType      string
	SurfaceType  string
	Priority     int
	ImagePath    string
	ReportedBy   string
	FailureCause string
	TechnicianID *uint
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ListProblemsResult struct {
	Problems []ProblemData
	Total    int
}

type ListProblemsUseCase struct {
	problemRepo registry.ProblemRepository
	logger      logger.Interface
}

func NewListProblemsUseCase(
	problemRepo registry.ProblemRepository,
	logger logger.Interface,
) *ListProblemsUseCase {
	return &ListProblemsUseCase{
		problemRepo: problemRepo,
		logger:      logger,
	}
}

func (uc *ListProblemsUseCase) Execute(ctx context.Context, _ ListProblemsQuery) (*ListProblemsResult, error) {
	uc.logger.Debugw("executing list problems use case")

	problems, err := uc.problemRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list problems", "error", err)
		return nil, errors.NewStorageError("failed to list problems")
	}

	data := make([]ProblemData, len(problems))
	for i, p := range problems {
		data[i] = toProblemData(p)
	}

	return &ListProblemsResult{
		Problems: data,
		Total:    len(data),
	}, nil
}

func toProblemData(p *registry.Problem) ProblemData {
	return ProblemData{
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
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}
