package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/profitlens/backend/internal/domain/profit"
	"github.com/profitlens/backend/internal/infrastructure/persistence/models"
)

// GormAdSpendRepository implements profit.AdSpendSource using GORM over the
// synced ad-platform spend table
type GormAdSpendRepository struct {
	db *gorm.DB
}

// NewGormAdSpendRepository creates a new GormAdSpendRepository
func NewGormAdSpendRepository(db *gorm.DB) *GormAdSpendRepository {
	return &GormAdSpendRepository{db: db}
}

// GetAdSpend retrieves the spend entries for a shop and date. Entries are
// ordered by platform name so the report breakdown is deterministic across
// recomputations.
func (r *GormAdSpendRepository) GetAdSpend(ctx context.Context, shop, date string) ([]profit.AdSpendEntry, error) {
	var spendModels []models.AdSpendModel
	if err := r.db.WithContext(ctx).
		Where("shop_domain = ? AND date = ?", shop, date).
		Order("platform ASC").
		Find(&spendModels).Error; err != nil {
		return nil, err
	}

	entries := make([]profit.AdSpendEntry, len(spendModels))
	for i, model := range spendModels {
		entries[i] = model.ToDomain()
	}
	return entries, nil
}

var _ profit.AdSpendSource = (*GormAdSpendRepository)(nil)
