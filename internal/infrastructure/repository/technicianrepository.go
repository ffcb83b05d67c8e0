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

type TechnicianRepository struct {
	db     *gorm.DB
	mapper mappers.TechnicianMapper
}

func NewTechnicianRepository(db *gorm.DB) *TechnicianRepository {
	return &TechnicianRepository{
		db:     db,
		mapper: mappers.NewTechnicianMapper(),
	}
}

func (r *TechnicianRepository) Save(ctx context.Context, t *registry.Technician) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save technician: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TechnicianRepository) FindByID(ctx context.Context, id uint) (*registry.Technician, error) {
	var model models.TechnicianModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("technician not found")
		}
		return nil, fmt.Errorf("failed to find technician: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TechnicianRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TechnicianModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check technician existence: %w", err)
	}

	return count > 0, nil
}

// List returns all technicians ordered by id ascending.
func (r *TechnicianRepository) List(ctx context.Context) ([]*registry.Technician, error) {
	var technicianModels []models.TechnicianModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id ASC").Find(&technicianModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}

	technicians := make([]*registry.Technician, len(technicianModels))
	for i, model := range technicianModels {
		tech, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		technicians[i] = tech
	}

	return technicians, nil
}

func (r *TechnicianRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TechnicianModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count technicians: %w", err)
	}

	return count, nil
}
