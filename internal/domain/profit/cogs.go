package profit

import (
	"github.com/shopspring/decimal"
)

// CostLookup maps a product-variant identifier to its cost per unit.
// Absence of a key means "unknown cost", not "zero cost" - the distinction
// feeds the coverage ratio.
type CostLookup map[string]decimal.Decimal

// COGSMatch is the result of joining line-item records against a cost lookup
type COGSMatch struct {
	MatchedCost  decimal.Decimal // Σ cost × quantity over matched records, full precision
	MatchedItems int64
	MissingItems int64
}

// MatchCOGS joins each line-item record against the cost lookup by variant
// identifier. A cost of exactly zero counts as "no cost configured",
// consistent with the positive-amount rule applied when costs are entered.
func MatchCOGS(records []LineItemRecord, costs CostLookup) COGSMatch {
	match := COGSMatch{MatchedCost: decimal.Zero}

	for _, rec := range records {
		cost, ok := costs[rec.VariantID]
		if ok && cost.IsPositive() {
			match.MatchedCost = match.MatchedCost.Add(cost.Mul(decimal.NewFromInt(rec.Quantity)))
			match.MatchedItems++
		} else {
			match.MissingItems++
		}
	}

	return match
}

// TotalItems returns the number of line-item records considered
func (m COGSMatch) TotalItems() int64 {
	return m.MatchedItems + m.MissingItems
}

// MatchRate returns the coverage ratio as a percentage rounded to 2 places.
// An empty order day is full coverage, not a coverage failure.
func (m COGSMatch) MatchRate() decimal.Decimal {
	total := m.TotalItems()
	if total == 0 {
		return decimal.NewFromInt(100)
	}
	return decimal.NewFromInt(m.MatchedItems).
		Div(decimal.NewFromInt(total)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
