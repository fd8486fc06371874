package models

import (
	"github.com/shopspring/decimal"

	"github.com/profitlens/backend/internal/domain/profit"
)

// AdSpendModel is the persistence model for a synced per-platform,
// per-day advertising spend record
type AdSpendModel struct {
	BaseModel
	ShopDomain  string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_ad_spend_shop_platform_date,priority:1"`
	Platform    string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_ad_spend_shop_platform_date,priority:2"`
	Date        string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_ad_spend_shop_platform_date,priority:3"`
	Spend       decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Impressions int64           `gorm:"not null;default:0"`
	Clicks      int64           `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (AdSpendModel) TableName() string {
	return "ad_spend_entries"
}

// ToDomain converts the persistence model to a domain AdSpendEntry
func (m *AdSpendModel) ToDomain() profit.AdSpendEntry {
	return profit.AdSpendEntry{
		Platform:    m.Platform,
		Date:        m.Date,
		Spend:       m.Spend,
		Impressions: m.Impressions,
		Clicks:      m.Clicks,
	}
}

// FixedCostModel is the persistence model for a recurring fixed cost entry
type FixedCostModel struct {
	BaseModel
	ShopDomain  string           `gorm:"type:varchar(255);not null;index"`
	Description string           `gorm:"type:varchar(200);not null"`
	Amount      decimal.Decimal  `gorm:"type:decimal(20,2);not null"`
	Frequency   profit.Frequency `gorm:"type:varchar(20);not null"`
	Active      bool             `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (FixedCostModel) TableName() string {
	return "fixed_costs"
}

// ToDomain converts the persistence model to a domain FixedCostEntry
func (m *FixedCostModel) ToDomain() profit.FixedCostEntry {
	return profit.FixedCostEntry{
		Description: m.Description,
		Amount:      m.Amount,
		Frequency:   m.Frequency,
		Active:      m.Active,
	}
}

// ProductCostModel is the persistence model for a merchant-entered
// cost-per-unit record keyed by product variant
type ProductCostModel struct {
	BaseModel
	ShopDomain string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_product_cost_shop_variant,priority:1"`
	VariantID  string          `gorm:"type:varchar(64);not null;uniqueIndex:idx_product_cost_shop_variant,priority:2"`
	SKU        string          `gorm:"type:varchar(100);index"`
	Cost       decimal.Decimal `gorm:"type:decimal(20,2);not null"`
}

// TableName returns the table name for GORM
func (ProductCostModel) TableName() string {
	return "product_costs"
}
