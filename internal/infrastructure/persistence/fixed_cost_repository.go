package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/profitlens/backend/internal/domain/profit"
	"github.com/profitlens/backend/internal/infrastructure/persistence/models"
)

// GormFixedCostRepository implements profit.FixedCostSource using GORM
type GormFixedCostRepository struct {
	db *gorm.DB
}

// NewGormFixedCostRepository creates a new GormFixedCostRepository
func NewGormFixedCostRepository(db *gorm.DB) *GormFixedCostRepository {
	return &GormFixedCostRepository{db: db}
}

// GetActiveFixedCosts retrieves the active recurring cost entries for a shop
func (r *GormFixedCostRepository) GetActiveFixedCosts(ctx context.Context, shop string) ([]profit.FixedCostEntry, error) {
	var costModels []models.FixedCostModel
	if err := r.db.WithContext(ctx).
		Where("shop_domain = ? AND active = ?", shop, true).
		Order("description ASC").
		Find(&costModels).Error; err != nil {
		return nil, err
	}

	entries := make([]profit.FixedCostEntry, len(costModels))
	for i, model := range costModels {
		entries[i] = model.ToDomain()
	}
	return entries, nil
}

var _ profit.FixedCostSource = (*GormFixedCostRepository)(nil)
