package profit

import (
	"github.com/shopspring/decimal"
)

// AlertLevel is the severity of a report alert
type AlertLevel string

const (
	AlertLevelInfo    AlertLevel = "info"
	AlertLevelWarning AlertLevel = "warning"
	AlertLevelError   AlertLevel = "error"
)

// Alert is a threshold-based signal attached to a daily report
type Alert struct {
	Level   AlertLevel `json:"level"`
	Code    string     `json:"code"`
	Message string     `json:"message"`
}

// Alert thresholds. Boundary operators are exact: coverage fires strictly
// below 50, ad-spend ratio strictly above 30%, low margin on (0, 10).
var (
	lowCoverageThreshold = decimal.NewFromInt(50)
	adSpendRatioLimit    = decimal.NewFromFloat(0.30)
	lowMarginThreshold   = decimal.NewFromInt(10)
)

// AlertInputs carries the figures the alert policy evaluates
type AlertInputs struct {
	TotalLineItems int64
	MatchRate      decimal.Decimal
	Revenue        decimal.Decimal
	AdSpend        decimal.Decimal
	NetProfit      decimal.Decimal
	ProfitMargin   decimal.Decimal
}

// EvaluateAlerts runs the deterministic alert policy. Rules are
// independent and evaluated in a fixed order; multiple may fire.
func EvaluateAlerts(in AlertInputs) []Alert {
	var alerts []Alert

	if in.TotalLineItems > 0 && in.MatchRate.LessThan(lowCoverageThreshold) {
		alerts = append(alerts, Alert{
			Level:   AlertLevelWarning,
			Code:    "LOW_COGS_COVERAGE",
			Message: "Less than half of sold items have a configured product cost; COGS is understated",
		})
	}

	if in.NetProfit.IsNegative() {
		alerts = append(alerts, Alert{
			Level:   AlertLevelError,
			Code:    "NEGATIVE_NET_PROFIT",
			Message: "Net profit is negative for this day",
		})
	}

	if in.Revenue.IsPositive() && in.AdSpend.Div(in.Revenue).GreaterThan(adSpendRatioLimit) {
		alerts = append(alerts, Alert{
			Level:   AlertLevelWarning,
			Code:    "HIGH_AD_SPEND_RATIO",
			Message: "Advertising spend exceeds 30% of revenue",
		})
	}

	if in.ProfitMargin.IsPositive() && in.ProfitMargin.LessThan(lowMarginThreshold) {
		alerts = append(alerts, Alert{
			Level:   AlertLevelInfo,
			Code:    "LOW_PROFIT_MARGIN",
			Message: "Profit margin is below 10%",
		})
	}

	return alerts
}
