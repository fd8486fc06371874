package profit

import (
	"github.com/profitlens/backend/internal/domain/shared"
	"github.com/profitlens/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Frequency is the billing frequency of a recurring fixed cost
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// IsValid checks if the frequency is a valid Frequency
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// String returns the string representation of Frequency
func (f Frequency) String() string {
	return string(f)
}

// Calendar constants for amortizing across billing frequencies.
// These are fixed by convention and must not drift: stored reports are
// only comparable while every computation uses the same constants.
var (
	daysPerWeek   = decimal.NewFromInt(7)
	daysPerMonth  = decimal.NewFromInt(30)
	daysPerYear   = decimal.NewFromInt(365)
	weeksPerMonth = decimal.NewFromFloat(4.33)
	weeksPerYear  = decimal.NewFromInt(52)
	monthsPerYear = decimal.NewFromInt(12)
)

// FixedCostEntry is a recurring non-order-linked expense (rent, tooling,
// payroll) amortized into the daily profit computation
type FixedCostEntry struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Frequency   Frequency       `json:"frequency"`
	Active      bool            `json:"active"`
}

// NewFixedCostEntry creates a validated fixed cost entry
func NewFixedCostEntry(description string, amount valueobject.Money, frequency Frequency, active bool) (*FixedCostEntry, error) {
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	if !frequency.IsValid() {
		return nil, shared.NewDomainError("INVALID_FREQUENCY", "Frequency must be daily, weekly, monthly or yearly")
	}
	return &FixedCostEntry{
		Description: description,
		Amount:      amount.Amount(),
		Frequency:   frequency,
		Active:      active,
	}, nil
}

// FixedCostTotals holds the amortized fixed-cost equivalents.
// InvalidEntries counts entries excluded for an unknown frequency - a
// data-quality signal for the caller, never a fatal condition.
type FixedCostTotals struct {
	Daily          decimal.Decimal `json:"daily"`
	Monthly        decimal.Decimal `json:"monthly"`
	Yearly         decimal.Decimal `json:"yearly"`
	InvalidEntries int             `json:"invalid_entries"`
}

// NormalizeFixedCosts converts the active entries into daily, monthly and
// yearly equivalents. Inactive entries are excluded. Each entry contributes
// at full precision; totals are rounded to 2 places once at the end so
// per-entry rounding error cannot compound.
func NormalizeFixedCosts(entries []FixedCostEntry) FixedCostTotals {
	daily := decimal.Zero
	monthly := decimal.Zero
	yearly := decimal.Zero
	invalid := 0

	for _, e := range entries {
		if !e.Active {
			continue
		}
		switch e.Frequency {
		case FrequencyDaily:
			daily = daily.Add(e.Amount)
			monthly = monthly.Add(e.Amount.Mul(daysPerMonth))
			yearly = yearly.Add(e.Amount.Mul(daysPerYear))
		case FrequencyWeekly:
			daily = daily.Add(e.Amount.Div(daysPerWeek))
			monthly = monthly.Add(e.Amount.Mul(weeksPerMonth))
			yearly = yearly.Add(e.Amount.Mul(weeksPerYear))
		case FrequencyMonthly:
			daily = daily.Add(e.Amount.Div(daysPerMonth))
			monthly = monthly.Add(e.Amount)
			yearly = yearly.Add(e.Amount.Mul(monthsPerYear))
		case FrequencyYearly:
			daily = daily.Add(e.Amount.Div(daysPerYear))
			monthly = monthly.Add(e.Amount.Div(monthsPerYear))
			yearly = yearly.Add(e.Amount)
		default:
			invalid++
		}
	}

	return FixedCostTotals{
		Daily:          daily.Round(2),
		Monthly:        monthly.Round(2),
		Yearly:         yearly.Round(2),
		InvalidEntries: invalid,
	}
}
