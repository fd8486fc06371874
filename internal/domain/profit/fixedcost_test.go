package profit

import (
	"testing"

	"github.com/profitlens/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFixedCostEntry(t *testing.T) {
	t.Run("creates a valid entry", func(t *testing.T) {
		amount := valueobject.NewMoneyUSD(decimal.NewFromInt(300))
		entry, err := NewFixedCostEntry("Office rent", amount, FrequencyMonthly, true)

		require.NoError(t, err)
		assert.Equal(t, "Office rent", entry.Description)
		assert.True(t, entry.Amount.Equal(decimal.NewFromInt(300)))
		assert.Equal(t, FrequencyMonthly, entry.Frequency)
		assert.True(t, entry.Active)
	})

	t.Run("rejects empty description", func(t *testing.T) {
		amount := valueobject.NewMoneyUSD(decimal.NewFromInt(10))
		_, err := NewFixedCostEntry("", amount, FrequencyDaily, true)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewFixedCostEntry("Tooling", valueobject.ZeroUSD(), FrequencyDaily, true)
		assert.Error(t, err)

		negative := valueobject.NewMoneyUSD(decimal.NewFromInt(-5))
		_, err = NewFixedCostEntry("Tooling", negative, FrequencyDaily, true)
		assert.Error(t, err)
	})

	t.Run("rejects unknown frequency", func(t *testing.T) {
		amount := valueobject.NewMoneyUSD(decimal.NewFromInt(10))
		_, err := NewFixedCostEntry("Tooling", amount, Frequency("quarterly"), true)
		assert.Error(t, err)
	})
}

func TestFrequencyIsValid(t *testing.T) {
	valid := []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly}
	for _, f := range valid {
		assert.True(t, f.IsValid(), "expected %s to be valid", f)
	}
	assert.False(t, Frequency("quarterly").IsValid())
	assert.False(t, Frequency("").IsValid())
}

func TestNormalizeFixedCosts(t *testing.T) {
	t.Run("monthly entry amortizes to daily and yearly equivalents", func(t *testing.T) {
		entries := []FixedCostEntry{
			{Description: "Rent", Amount: decimal.NewFromInt(300), Frequency: FrequencyMonthly, Active: true},
		}

		totals := NormalizeFixedCosts(entries)

		assert.Equal(t, "10.00", totals.Daily.StringFixed(2))
		assert.Equal(t, "300.00", totals.Monthly.StringFixed(2))
		assert.Equal(t, "3600.00", totals.Yearly.StringFixed(2))
		assert.Zero(t, totals.InvalidEntries)
	})

	t.Run("weekly entry uses the 4.33 weeks-per-month constant", func(t *testing.T) {
		entries := []FixedCostEntry{
			{Description: "Cleaning", Amount: decimal.NewFromInt(70), Frequency: FrequencyWeekly, Active: true},
		}

		totals := NormalizeFixedCosts(entries)

		assert.Equal(t, "10.00", totals.Daily.StringFixed(2))
		assert.Equal(t, "303.10", totals.Monthly.StringFixed(2))
		assert.Equal(t, "3640.00", totals.Yearly.StringFixed(2))
	})

	t.Run("yearly entry divides down", func(t *testing.T) {
		entries := []FixedCostEntry{
			{Description: "Insurance", Amount: decimal.NewFromInt(365), Frequency: FrequencyYearly, Active: true},
		}

		totals := NormalizeFixedCosts(entries)

		assert.Equal(t, "1.00", totals.Daily.StringFixed(2))
		assert.Equal(t, "30.42", totals.Monthly.StringFixed(2))
		assert.Equal(t, "365.00", totals.Yearly.StringFixed(2))
	})

	t.Run("inactive entries are excluded", func(t *testing.T) {
		entries := []FixedCostEntry{
			{Description: "Rent", Amount: decimal.NewFromInt(300), Frequency: FrequencyMonthly, Active: true},
			{Description: "Old tool", Amount: decimal.NewFromInt(900), Frequency: FrequencyMonthly, Active: false},
		}

		totals := NormalizeFixedCosts(entries)

		assert.Equal(t, "300.00", totals.Monthly.StringFixed(2))
	})

	t.Run("unknown frequency is excluded and counted, not fatal", func(t *testing.T) {
		entries := []FixedCostEntry{
			{Description: "Rent", Amount: decimal.NewFromInt(300), Frequency: FrequencyMonthly, Active: true},
			{Description: "Odd", Amount: decimal.NewFromInt(100), Frequency: Frequency("quarterly"), Active: true},
		}

		totals := NormalizeFixedCosts(entries)

		assert.Equal(t, "300.00", totals.Monthly.StringFixed(2))
		assert.Equal(t, 1, totals.InvalidEntries)
	})

	t.Run("rounds the sums once at the end, not per entry", func(t *testing.T) {
		// Three weekly $1 entries: each contributes 1/7 daily. Per-entry
		// rounding would give 0.14*3 = 0.42; summing first gives 3/7 = 0.43.
		entries := []FixedCostEntry{
			{Description: "a", Amount: decimal.NewFromInt(1), Frequency: FrequencyWeekly, Active: true},
			{Description: "b", Amount: decimal.NewFromInt(1), Frequency: FrequencyWeekly, Active: true},
			{Description: "c", Amount: decimal.NewFromInt(1), Frequency: FrequencyWeekly, Active: true},
		}

		totals := NormalizeFixedCosts(entries)

		assert.Equal(t, "0.43", totals.Daily.StringFixed(2))
	})

	t.Run("empty input yields zero totals", func(t *testing.T) {
		totals := NormalizeFixedCosts(nil)

		assert.Equal(t, "0.00", totals.Daily.StringFixed(2))
		assert.Equal(t, "0.00", totals.Monthly.StringFixed(2))
		assert.Equal(t, "0.00", totals.Yearly.StringFixed(2))
	})
}
