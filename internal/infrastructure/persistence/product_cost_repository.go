package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/profitlens/backend/internal/domain/profit"
	"github.com/profitlens/backend/internal/infrastructure/persistence/models"
)

// GormProductCostRepository implements profit.CostSource using GORM over the
// merchant-entered per-variant cost table
type GormProductCostRepository struct {
	db *gorm.DB
}

// NewGormProductCostRepository creates a new GormProductCostRepository
func NewGormProductCostRepository(db *gorm.DB) *GormProductCostRepository {
	return &GormProductCostRepository{db: db}
}

// GetCostLookup builds the variant-to-cost lookup for the given variants.
// Variants without a stored cost are simply absent from the lookup.
func (r *GormProductCostRepository) GetCostLookup(ctx context.Context, shop string, variantIDs []string) (profit.CostLookup, error) {
	lookup := make(profit.CostLookup, len(variantIDs))
	if len(variantIDs) == 0 {
		return lookup, nil
	}

	var costModels []models.ProductCostModel
	if err := r.db.WithContext(ctx).
		Where("shop_domain = ? AND variant_id IN ?", shop, variantIDs).
		Find(&costModels).Error; err != nil {
		return nil, err
	}

	for _, model := range costModels {
		lookup[model.VariantID] = model.Cost
	}
	return lookup, nil
}

var _ profit.CostSource = (*GormProductCostRepository)(nil)
