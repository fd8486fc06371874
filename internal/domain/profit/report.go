package profit

import (
	"github.com/shopspring/decimal"
)

// DateLayout is the ISO calendar date layout used as the report key.
// Lexicographic comparison of dates in this layout matches chronological
// order, which the range scan relies on.
const DateLayout = "2006-01-02"

// AdSpendEntry is a per-platform, per-day advertising spend record.
// Only Spend feeds the profit calculation; the metrics are pass-through.
type AdSpendEntry struct {
	Platform    string          `json:"platform"`
	Date        string          `json:"date"`
	Spend       decimal.Decimal `json:"spend"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
}

// PlatformSpend is one slice of the ad-spend breakdown, kept in
// first-seen-platform order
type PlatformSpend struct {
	Platform string          `json:"platform"`
	Spend    decimal.Decimal `json:"spend"`
}

// Report is the profit report for a single shop and date. It is a pure
// function of its inputs at computation time: recomputing with identical
// inputs yields identical decimal values.
type Report struct {
	Date string `json:"date"`

	Revenue    decimal.Decimal `json:"revenue"`
	COGS       decimal.Decimal `json:"cogs"`
	AdSpend    decimal.Decimal `json:"ad_spend"`
	Fees       decimal.Decimal `json:"fees"`
	FixedCosts decimal.Decimal `json:"fixed_costs"`

	GrossProfit  decimal.Decimal `json:"gross_profit"`
	NetProfit    decimal.Decimal `json:"net_profit"`
	GrossMargin  decimal.Decimal `json:"gross_margin"`
	ProfitMargin decimal.Decimal `json:"profit_margin"`

	COGSMatchRate     decimal.Decimal `json:"cogs_match_rate"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`

	OrderCount int64 `json:"order_count"`
	ItemsSold  int64 `json:"items_sold"`

	AdSpendByPlatform []PlatformSpend            `json:"ad_spend_by_platform"`
	FeeBreakdown      map[Gateway]GatewayFeeStat `json:"fee_breakdown"`
	Alerts            []Alert                    `json:"alerts"`
}

// BuildReport combines the reduced order metrics, COGS match, ad spend,
// fee estimate and fixed-cost amortization for one date into a Report.
// The step order is fixed for numeric reproducibility.
func BuildReport(date string, orders []Order, costs CostLookup, adSpend []AdSpendEntry, fixedCosts []FixedCostEntry) *Report {
	// Step 1: revenue and item metrics
	metrics := ReduceOrders(orders)

	// Step 2: per-line-item COGS matching
	match := MatchCOGS(ExtractLineItems(orders), costs)

	// Step 3: ad spend, breakdown in first-seen-platform order
	adTotal := decimal.Zero
	var byPlatform []PlatformSpend
	for _, entry := range adSpend {
		adTotal = adTotal.Add(entry.Spend)
		byPlatform = append(byPlatform, PlatformSpend{
			Platform: entry.Platform,
			Spend:    entry.Spend.Round(2),
		})
	}

	// Step 4: payment fees over the same order list
	fees := TotalFees(orders)

	// Step 5: the day's fixed-cost equivalent
	fixed := NormalizeFixedCosts(fixedCosts)

	// Step 6: profit and margins, derived at full precision
	revenue := metrics.Revenue
	cogs := match.MatchedCost
	grossProfit := revenue.Sub(cogs)
	netProfit := grossProfit.Sub(adTotal).Sub(fees.Total).Sub(fixed.Daily)

	hundred := decimal.NewFromInt(100)
	grossMargin := decimal.Zero
	profitMargin := decimal.Zero
	if revenue.IsPositive() {
		grossMargin = grossProfit.Div(revenue).Mul(hundred).Round(2)
		profitMargin = netProfit.Div(revenue).Mul(hundred).Round(2)
	}

	report := &Report{
		Date:              date,
		Revenue:           revenue.Round(2),
		COGS:              cogs.Round(2),
		AdSpend:           adTotal.Round(2),
		Fees:              fees.Total.Round(2),
		FixedCosts:        fixed.Daily,
		GrossProfit:       grossProfit.Round(2),
		NetProfit:         netProfit.Round(2),
		GrossMargin:       grossMargin,
		ProfitMargin:      profitMargin,
		COGSMatchRate:     match.MatchRate(),
		AverageOrderValue: metrics.AverageOrderValue,
		OrderCount:        metrics.OrderCount,
		ItemsSold:         metrics.ItemsSold,
		AdSpendByPlatform: byPlatform,
		FeeBreakdown:      fees.Breakdown,
	}

	// Step 7: alert policy over the unrounded figures
	report.Alerts = EvaluateAlerts(AlertInputs{
		TotalLineItems: match.TotalItems(),
		MatchRate:      report.COGSMatchRate,
		Revenue:        revenue,
		AdSpend:        adTotal,
		NetProfit:      netProfit,
		ProfitMargin:   profitMargin,
	})

	return report
}

// RangeSummary is the additive roll-up of the stored daily reports inside
// an inclusive date window. It is derived on demand and never persisted.
// Days without a stored report are excluded from the totals and from
// DaysCount.
type RangeSummary struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	Revenue    decimal.Decimal `json:"revenue"`
	COGS       decimal.Decimal `json:"cogs"`
	AdSpend    decimal.Decimal `json:"ad_spend"`
	Fees       decimal.Decimal `json:"fees"`
	FixedCosts decimal.Decimal `json:"fixed_costs"`
	NetProfit  decimal.Decimal `json:"net_profit"`

	ProfitMargin decimal.Decimal `json:"profit_margin"`

	OrderCount int64 `json:"order_count"`
	DaysCount  int   `json:"days_count"`
}

// SummarizeRange folds previously computed daily reports into a
// RangeSummary. The margin is recomputed from the summed totals; averaging
// daily margins would misweight days with different revenue.
func SummarizeRange(start, end string, reports []Report) RangeSummary {
	summary := RangeSummary{
		StartDate:  start,
		EndDate:    end,
		Revenue:    decimal.Zero,
		COGS:       decimal.Zero,
		AdSpend:    decimal.Zero,
		Fees:       decimal.Zero,
		FixedCosts: decimal.Zero,
		NetProfit:  decimal.Zero,
	}

	for _, r := range reports {
		summary.Revenue = summary.Revenue.Add(r.Revenue)
		summary.COGS = summary.COGS.Add(r.COGS)
		summary.AdSpend = summary.AdSpend.Add(r.AdSpend)
		summary.Fees = summary.Fees.Add(r.Fees)
		summary.FixedCosts = summary.FixedCosts.Add(r.FixedCosts)
		summary.NetProfit = summary.NetProfit.Add(r.NetProfit)
		summary.OrderCount += r.OrderCount
		summary.DaysCount++
	}

	summary.ProfitMargin = decimal.Zero
	if summary.Revenue.IsPositive() {
		summary.ProfitMargin = summary.NetProfit.
			Div(summary.Revenue).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	return summary
}
