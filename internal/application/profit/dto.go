package profit

import (
	"github.com/profitlens/backend/internal/domain/profit"
)

// AlertResponse represents a report alert in API responses
type AlertResponse struct {
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PlatformSpendResponse is one ad platform's spend in API responses
type PlatformSpendResponse struct {
	Platform string `json:"platform"`
	Spend    string `json:"spend"`
}

// GatewayFeeStatResponse is one gateway's fee breakdown in API responses
type GatewayFeeStatResponse struct {
	Count      int64  `json:"count"`
	OrderTotal string `json:"order_total"`
	Fees       string `json:"fees"`
}

// DailyReportResponse represents a daily profit report in API responses.
// All money and percentage fields are fixed-point strings with 2 fraction
// digits.
type DailyReportResponse struct {
	Date string `json:"date"`

	Revenue    string `json:"revenue"`
	COGS       string `json:"cogs"`
	AdSpend    string `json:"ad_spend"`
	Fees       string `json:"fees"`
	FixedCosts string `json:"fixed_costs"`

	GrossProfit  string `json:"gross_profit"`
	NetProfit    string `json:"net_profit"`
	GrossMargin  string `json:"gross_margin"`
	ProfitMargin string `json:"profit_margin"`

	COGSMatchRate     string `json:"cogs_match_rate"`
	AverageOrderValue string `json:"average_order_value"`

	OrderCount int64 `json:"order_count"`
	ItemsSold  int64 `json:"items_sold"`

	AdSpendByPlatform []PlatformSpendResponse           `json:"ad_spend_by_platform"`
	FeeBreakdown      map[string]GatewayFeeStatResponse `json:"fee_breakdown"`
	Alerts            []AlertResponse                   `json:"alerts"`

	Cached bool `json:"cached"`
}

// RangeSummaryResponse represents an aggregated date window in API
// responses
type RangeSummaryResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	Revenue      string `json:"revenue"`
	COGS         string `json:"cogs"`
	AdSpend      string `json:"ad_spend"`
	Fees         string `json:"fees"`
	FixedCosts   string `json:"fixed_costs"`
	NetProfit    string `json:"net_profit"`
	ProfitMargin string `json:"profit_margin"`

	OrderCount int64 `json:"order_count"`
	DaysCount  int   `json:"days_count"`
}

func toDailyReportResponse(report *profit.Report, cached bool) *DailyReportResponse {
	resp := &DailyReportResponse{
		Date:              report.Date,
		Revenue:           report.Revenue.StringFixed(2),
		COGS:              report.COGS.StringFixed(2),
		AdSpend:           report.AdSpend.StringFixed(2),
		Fees:              report.Fees.StringFixed(2),
		FixedCosts:        report.FixedCosts.StringFixed(2),
		GrossProfit:       report.GrossProfit.StringFixed(2),
		NetProfit:         report.NetProfit.StringFixed(2),
		GrossMargin:       report.GrossMargin.StringFixed(2),
		ProfitMargin:      report.ProfitMargin.StringFixed(2),
		COGSMatchRate:     report.COGSMatchRate.StringFixed(2),
		AverageOrderValue: report.AverageOrderValue.StringFixed(2),
		OrderCount:        report.OrderCount,
		ItemsSold:         report.ItemsSold,
		FeeBreakdown:      make(map[string]GatewayFeeStatResponse, len(report.FeeBreakdown)),
		Cached:            cached,
	}

	for _, spend := range report.AdSpendByPlatform {
		resp.AdSpendByPlatform = append(resp.AdSpendByPlatform, PlatformSpendResponse{
			Platform: spend.Platform,
			Spend:    spend.Spend.StringFixed(2),
		})
	}

	for gateway, stat := range report.FeeBreakdown {
		resp.FeeBreakdown[gateway.String()] = GatewayFeeStatResponse{
			Count:      stat.Count,
			OrderTotal: stat.OrderTotal.StringFixed(2),
			Fees:       stat.Fees.StringFixed(2),
		}
	}

	for _, alert := range report.Alerts {
		resp.Alerts = append(resp.Alerts, AlertResponse{
			Level:   string(alert.Level),
			Code:    alert.Code,
			Message: alert.Message,
		})
	}

	return resp
}

func toRangeSummaryResponse(summary profit.RangeSummary) *RangeSummaryResponse {
	return &RangeSummaryResponse{
		StartDate:    summary.StartDate,
		EndDate:      summary.EndDate,
		Revenue:      summary.Revenue.StringFixed(2),
		COGS:         summary.COGS.StringFixed(2),
		AdSpend:      summary.AdSpend.StringFixed(2),
		Fees:         summary.Fees.StringFixed(2),
		FixedCosts:   summary.FixedCosts.StringFixed(2),
		NetProfit:    summary.NetProfit.StringFixed(2),
		ProfitMargin: summary.ProfitMargin.StringFixed(2),
		OrderCount:   summary.OrderCount,
		DaysCount:    summary.DaysCount,
	}
}
