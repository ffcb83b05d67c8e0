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

type ProblemRepository struct {
	db     *gorm.DB
	mapper mappers.ProblemMapper
}

func NewProblemRepository(db *gorm.DB) *ProblemRepository {
	return &ProblemRepository{
		db:     db,
		mapper: mappers.NewProblemMapper(),
	}
}

func (r *ProblemRepository) Save(ctx context.Context, p *registry.Problem) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save problem: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ProblemRepository) Update(ctx context.Context, p *registry.Problem) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	// Save writes every column so cleared fields (e.g. technician_id set
	// back to NULL) are persisted as well.
	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update problem: %w", err)
	}

	return nil
}

func (r *ProblemRepository) FindByID(ctx context.Context, id uint) (*registry.Problem, error) {
	var model models.ProblemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("problem not found")
		}
		return nil, fmt.Errorf("failed to find problem: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProblemRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.ProblemModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check problem existence: %w", err)
	}

	return count > 0, nil
}

// List returns all problems ordered by id ascending.
func (r *ProblemRepository) List(ctx context.Context) ([]*registry.Problem, error) {
	var problemModels []models.ProblemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id ASC").Find(&problemModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}

	problems := make([]*registry.Problem, len(problemModels))
	for i, model := range problemModels {
		p, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		problems[i] = p
	}

	return problems, nil
}

func (r *ProblemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.ProblemModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count problems: %w", err)
	}

	return count, nil
}

// CountByStatus returns the number of problems per status value. Statuses
// with no problems are absent from the result.
func (r *ProblemRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}

	var rows []statusCount
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.ProblemModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count problems by status: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}

func (r *ProblemRepository) CountUnassigned(ctx context.Context) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.ProblemModel{}).
		Where("technician_id IS NULL").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unassigned problems: %w", err)
	}

	return count, nil
}
