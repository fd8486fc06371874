package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/profitlens/backend/internal/domain/profit"
)

// PlatformSpendColumn stores the per-platform ad spend breakdown as JSON
type PlatformSpendColumn []profit.PlatformSpend

// Value implements driver.Valuer for GORM to write to JSONB
func (p PlatformSpendColumn) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner for GORM to read from JSONB
func (p *PlatformSpendColumn) Scan(value interface{}) error {
	return scanJSON(value, p)
}

// FeeBreakdownColumn stores the per-gateway fee breakdown as JSON
type FeeBreakdownColumn map[profit.Gateway]profit.GatewayFeeStat

// Value implements driver.Valuer for GORM to write to JSONB
func (f FeeBreakdownColumn) Value() (driver.Value, error) {
	if f == nil {
		return "{}", nil
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner for GORM to read from JSONB
func (f *FeeBreakdownColumn) Scan(value interface{}) error {
	return scanJSON(value, f)
}

// AlertColumn stores the report alerts as JSON
type AlertColumn []profit.Alert

// Value implements driver.Valuer for GORM to write to JSONB
func (a AlertColumn) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for GORM to read from JSONB
func (a *AlertColumn) Scan(value interface{}) error {
	return scanJSON(value, a)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}
	if len(bytes) == 0 {
		return nil
	}
	return json.Unmarshal(bytes, dest)
}

// ProfitReportModel is the persistence model for a daily profit report.
// (shop_domain, date) is the natural key; the date is stored as an ISO
// YYYY-MM-DD string so range scans can compare lexicographically.
type ProfitReportModel struct {
	BaseModel
	ShopDomain string `gorm:"type:varchar(255);not null;uniqueIndex:idx_report_shop_date,priority:1"`
	Date       string `gorm:"type:varchar(10);not null;uniqueIndex:idx_report_shop_date,priority:2"`

	Revenue    decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	COGS       decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	AdSpend    decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Fees       decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	FixedCosts decimal.Decimal `gorm:"type:decimal(20,2);not null"`

	GrossProfit  decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	NetProfit    decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	GrossMargin  decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	ProfitMargin decimal.Decimal `gorm:"type:decimal(8,2);not null"`

	COGSMatchRate     decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	AverageOrderValue decimal.Decimal `gorm:"type:decimal(20,2);not null"`

	OrderCount int64 `gorm:"not null"`
	ItemsSold  int64 `gorm:"not null"`

	AdSpendByPlatform PlatformSpendColumn `gorm:"type:jsonb;default:'[]'"`
	FeeBreakdown      FeeBreakdownColumn  `gorm:"type:jsonb;default:'{}'"`
	Alerts            AlertColumn         `gorm:"type:jsonb;default:'[]'"`
}

// TableName returns the table name for GORM
func (ProfitReportModel) TableName() string {
	return "profit_reports"
}

// ToDomain converts the persistence model to a domain Report
func (m *ProfitReportModel) ToDomain() *profit.Report {
	return &profit.Report{
		Date:              m.Date,
		Revenue:           m.Revenue,
		COGS:              m.COGS,
		AdSpend:           m.AdSpend,
		Fees:              m.Fees,
		FixedCosts:        m.FixedCosts,
		GrossProfit:       m.GrossProfit,
		NetProfit:         m.NetProfit,
		GrossMargin:       m.GrossMargin,
		ProfitMargin:      m.ProfitMargin,
		COGSMatchRate:     m.COGSMatchRate,
		AverageOrderValue: m.AverageOrderValue,
		OrderCount:        m.OrderCount,
		ItemsSold:         m.ItemsSold,
		AdSpendByPlatform: m.AdSpendByPlatform,
		FeeBreakdown:      m.FeeBreakdown,
		Alerts:            m.Alerts,
	}
}

// FromDomain populates the persistence model from a domain Report
func (m *ProfitReportModel) FromDomain(shop string, report *profit.Report) {
	m.ShopDomain = shop
	m.Date = report.Date
	m.Revenue = report.Revenue
	m.COGS = report.COGS
	m.AdSpend = report.AdSpend
	m.Fees = report.Fees
	m.FixedCosts = report.FixedCosts
	m.GrossProfit = report.GrossProfit
	m.NetProfit = report.NetProfit
	m.GrossMargin = report.GrossMargin
	m.ProfitMargin = report.ProfitMargin
	m.COGSMatchRate = report.COGSMatchRate
	m.AverageOrderValue = report.AverageOrderValue
	m.OrderCount = report.OrderCount
	m.ItemsSold = report.ItemsSold
	m.AdSpendByPlatform = report.AdSpendByPlatform
	m.FeeBreakdown = report.FeeBreakdown
	m.Alerts = report.Alerts
}

// ProfitReportModelFromDomain creates a new persistence model from a domain Report
func ProfitReportModelFromDomain(shop string, report *profit.Report) *ProfitReportModel {
	m := &ProfitReportModel{}
	m.ID = uuid.New()
	m.FromDomain(shop, report)
	return m
}
