package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"jetdesk/internal/infrastructure/persistence/models"
	db "jetdesk/internal/shared/db"
)

// SystemRepository answers diagnostic queries about the backing store.
type SystemRepository struct {
	db *gorm.DB
}

func NewSystemRepository(db *gorm.DB) *SystemRepository {
	return &SystemRepository{db: db}
}

// TableCounts returns the row count of every registry table keyed by table
// name.
func (r *SystemRepository) TableCounts(ctx context.Context) (map[string]int64, error) {
	tables := map[string]interface{}{
		"clients":          &models.ClientModel{},
		"technicians":      &models.TechnicianModel{},
		"problems":         &models.ProblemModel{},
		"solutions":        &models.SolutionModel{},
		"solution_ratings": &models.RatingModel{},
	}

	tx := db.GetTxFromContext(ctx, r.db)
	counts := make(map[string]int64, len(tables))

	for name, model := range tables {
		var count int64
		if err := tx.Model(model).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count table %s: %w", name, err)
		}
		counts[name] = count
	}

	return counts, nil
}
