package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/profitlens/backend/internal/domain/profit"
	"github.com/profitlens/backend/internal/domain/shared"
	"github.com/profitlens/backend/internal/infrastructure/persistence/models"
)

// GormProfitReportRepository implements profit.ReportRepository using GORM
type GormProfitReportRepository struct {
	db *gorm.DB
}

// NewGormProfitReportRepository creates a new GormProfitReportRepository
func NewGormProfitReportRepository(db *gorm.DB) *GormProfitReportRepository {
	return &GormProfitReportRepository{db: db}
}

// Upsert creates or replaces the report stored for (shop, date) as a single
// atomic write. Concurrent upserts resolve last-write-wins.
func (r *GormProfitReportRepository) Upsert(ctx context.Context, shop string, report *profit.Report) error {
	model := models.ProfitReportModelFromDomain(shop, report)

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "shop_domain"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"revenue",
			"cogs",
			"ad_spend",
			"fees",
			"fixed_costs",
			"gross_profit",
			"net_profit",
			"gross_margin",
			"profit_margin",
			"cogs_match_rate",
			"average_order_value",
			"order_count",
			"items_sold",
			"ad_spend_by_platform",
			"fee_breakdown",
			"alerts",
			"updated_at",
		}),
	}).Create(model).Error
}

// FindByShopAndDate retrieves the stored report for a shop and date
func (r *GormProfitReportRepository) FindByShopAndDate(ctx context.Context, shop, date string) (*profit.Report, error) {
	var model models.ProfitReportModel
	if err := r.db.WithContext(ctx).
		Where("shop_domain = ? AND date = ?", shop, date).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindInRange retrieves the stored reports with date in [start, end]
// inclusive, ordered by date ascending. The comparison is lexicographic,
// which matches chronological order for ISO dates.
func (r *GormProfitReportRepository) FindInRange(ctx context.Context, shop, start, end string) ([]profit.Report, error) {
	var reportModels []models.ProfitReportModel
	if err := r.db.WithContext(ctx).
		Where("shop_domain = ? AND date >= ? AND date <= ?", shop, start, end).
		Order("date ASC").
		Find(&reportModels).Error; err != nil {
		return nil, err
	}

	reports := make([]profit.Report, len(reportModels))
	for i, model := range reportModels {
		reports[i] = *model.ToDomain()
	}
	return reports, nil
}

var _ profit.ReportRepository = (*GormProfitReportRepository)(nil)
