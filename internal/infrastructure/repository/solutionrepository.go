package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"jetdesk/internal/domain/registry"
	"jetdesk/internal/infrastructure/persistence/mappers"
	"jetdesk/internal/infrastructure/persistence/models"
	db "jetdesk/internal/shared/db"
)

type SolutionRepository struct {
	db     *gorm.DB
	mapper mappers.SolutionMapper
}

func NewSolutionRepository(db *gorm.DB) *SolutionRepository {
	return &SolutionRepository{
		db:     db,
		mapper: mappers.NewSolutionMapper(),
	}
}

func (r *SolutionRepository) Save(ctx context.Context, s *registry.Solution) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save solution: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *SolutionRepository) FindByID(ctx context.Context, id uint) (*registry.Solution, error) {
	var model models.SolutionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("solution not found")
		}
		return nil, fmt.Errorf("failed to find solution: %w", err)
	}

	solution, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadRatings(ctx, []*registry.Solution{solution}); err != nil {
		return nil, err
	}

	return solution, nil
}

func (r *SolutionRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.SolutionModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check solution existence: %w", err)
	}

	return count > 0, nil
}

// FindByProblemID returns the problem's solutions ordered by id ascending,
// each with its rating rows loaded.
func (r *SolutionRepository) FindByProblemID(ctx context.Context, problemID uint) ([]*registry.Solution, error) {
	var solutionModels []models.SolutionModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("problem_id = ?", problemID).
		Order("id ASC").
		Find(&solutionModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find solutions for problem: %w", err)
	}

	solutions := make([]*registry.Solution, len(solutionModels))
	for i, model := range solutionModels {
		s, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		solutions[i] = s
	}

	if err := r.loadRatings(ctx, solutions); err != nil {
		return nil, err
	}

	return solutions, nil
}

func (r *SolutionRepository) SaveRating(ctx context.Context, rating *registry.Rating) error {
	model := r.mapper.RatingToModel(rating)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}

	if err := rating.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *SolutionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.SolutionModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count solutions: %w", err)
	}

	return count, nil
}

// AverageRating returns the mean score across all rating rows along with the
// number of rows. With no ratings both values are zero.
func (r *SolutionRepository) AverageRating(ctx context.Context) (float64, int64, error) {
	type ratingAggregate struct {
		Average float64
		Total   int64
	}

	var agg ratingAggregate
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.RatingModel{}).
		Select("COALESCE(AVG(score), 0) as average, COUNT(*) as total").
		Scan(&agg).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	return agg.Average, agg.Total, nil
}

// AverageRatingByDifficulty returns the mean rating score grouped by the
// rated solution's difficulty level. Levels without ratings are absent.
func (r *SolutionRepository) AverageRatingByDifficulty(ctx context.Context) (map[int]float64, error) {
	type difficultyAggregate struct {
		DifficultyLevel int
		Average         float64
	}

	var rows []difficultyAggregate
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.RatingModel{}).
		Select("solutions.difficulty_level, AVG(solution_ratings.score) as average").
		Joins("JOIN solutions ON solutions.id = solution_ratings.solution_id").
		Group("solutions.difficulty_level").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings by difficulty: %w", err)
	}

	averages := make(map[int]float64, len(rows))
	for _, row := range rows {
		averages[row.DifficultyLevel] = row.Average
	}

	return averages, nil
}

// loadRatings attaches rating rows to the given solutions with a single
// query over the combined solution ids.
func (r *SolutionRepository) loadRatings(ctx context.Context, solutions []*registry.Solution) error {
	if len(solutions) == 0 {
		return nil
	}

	ids := make([]uint, len(solutions))
	byID := make(map[uint]*registry.Solution, len(solutions))
	for i, s := range solutions {
		ids[i] = s.ID()
		byID[s.ID()] = s
	}

	var ratingModels []models.RatingModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("solution_id IN ?", ids).
		Order("id ASC").
		Find(&ratingModels).Error
	if err != nil {
		return fmt.Errorf("failed to load ratings: %w", err)
	}

	for _, model := range ratingModels {
		rating, err := r.mapper.RatingToDomain(&model)
		if err != nil {
			return err
		}
		if s, ok := byID[rating.SolutionID()]; ok {
			if err := s.AddRating(rating); err != nil {
				return err
			}
		}
	}

	return nil
}
