package mappers

import (
	"jetdesk/internal/domain/registry"
	"jetdesk/internal/infrastructure/persistence/models"
)

// SolutionMapper handles the conversion between Solution/Rating domain
// entities and persistence models.
type SolutionMapper interface {
	ToModel(s *registry.Solution) *models.SolutionModel

	// ToDomain converts the solution fields only. Ratings must be loaded
	// separately by the repository.
	ToDomain(model *models.SolutionModel) (*registry.Solution, error)

	RatingToModel(r *registry.Rating) *models.RatingModel
	RatingToDomain(model *models.RatingModel) (*registry.Rating, error)
}

type SolutionMapperImpl struct{}

func NewSolutionMapper() SolutionMapper {
	return &SolutionMapperImpl{}
}

func (m *SolutionMapperImpl) ToModel(s *registry.Solution) *models.SolutionModel {
	return &models.SolutionModel{
		ID:              s.ID(),
		ProblemID:       s.ProblemID(),
		Title:           s.Title(),
		Steps:           s.Steps(),
		ToolsNeeded:     s.ToolsNeeded(),
		TimeRequired:    s.TimeRequired(),
		SolutionType:    s.SolutionType(),
		DifficultyLevel: s.DifficultyLevel(),
		Notes:           s.Notes(),
		CreatedBy:       s.CreatedBy(),
		CreatedAt:       s.CreatedAt().UnixMilli(),
	}
}

func (m *SolutionMapperImpl) ToDomain(model *models.SolutionModel) (*registry.Solution, error) {
	return registry.ReconstructSolution(
		model.ID,
		model.ProblemID,
		model.Title,
		model.Steps,
		registry.SolutionDetails{
			ToolsNeeded:     model.ToolsNeeded,
			TimeRequired:    model.TimeRequired,
			SolutionType:    model.SolutionType,
			DifficultyLevel: model.DifficultyLevel,
			Notes:           model.Notes,
			CreatedBy:       model.CreatedBy,
		},
		convertMillisToTime(model.CreatedAt),
	)
}

func (m *SolutionMapperImpl) RatingToModel(r *registry.Rating) *models.RatingModel {
	return &models.RatingModel{
		ID:         r.ID(),
		SolutionID: r.SolutionID(),
		Score:      r.Score(),
		Feedback:   r.Feedback(),
		RatedBy:    r.RatedBy(),
		CreatedAt:  r.CreatedAt().UnixMilli(),
	}
}

func (m *SolutionMapperImpl) RatingToDomain(model *models.RatingModel) (*registry.Rating, error) {
	return registry.ReconstructRating(
		model.ID,
		model.SolutionID,
		model.Score,
		model.Feedback,
		model.RatedBy,
		convertMillisToTime(model.CreatedAt),
	)
}
