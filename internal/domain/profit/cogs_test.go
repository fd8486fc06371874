package profit

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMatchCOGS(t *testing.T) {
	records := []LineItemRecord{
		{OrderID: "1", VariantID: "v1", Quantity: 2},
		{OrderID: "1", VariantID: "v2", Quantity: 1},
		{OrderID: "2", VariantID: "v3", Quantity: 3},
	}

	t.Run("accumulates cost times quantity for matched variants", func(t *testing.T) {
		costs := CostLookup{
			"v1": decimal.NewFromFloat(12.50),
			"v2": decimal.NewFromFloat(8.00),
			"v3": decimal.NewFromFloat(3.00),
		}

		match := MatchCOGS(records, costs)

		assert.Equal(t, "42.00", match.MatchedCost.StringFixed(2))
		assert.Equal(t, int64(3), match.MatchedItems)
		assert.Zero(t, match.MissingItems)
		assert.Equal(t, "100.00", match.MatchRate().StringFixed(2))
	})

	t.Run("absent variant counts as missing, not zero cost", func(t *testing.T) {
		costs := CostLookup{"v1": decimal.NewFromFloat(12.50)}

		match := MatchCOGS(records, costs)

		assert.Equal(t, "25.00", match.MatchedCost.StringFixed(2))
		assert.Equal(t, int64(1), match.MatchedItems)
		assert.Equal(t, int64(2), match.MissingItems)
		assert.Equal(t, "33.33", match.MatchRate().StringFixed(2))
	})

	t.Run("zero cost counts as no cost configured", func(t *testing.T) {
		costs := CostLookup{
			"v1": decimal.Zero,
			"v2": decimal.NewFromFloat(8.00),
		}

		match := MatchCOGS(records, costs)

		assert.Equal(t, "8.00", match.MatchedCost.StringFixed(2))
		assert.Equal(t, int64(1), match.MatchedItems)
		assert.Equal(t, int64(2), match.MissingItems)
	})

	t.Run("coverage decreases as more items lack a cost", func(t *testing.T) {
		full := MatchCOGS(records, CostLookup{
			"v1": decimal.NewFromInt(1), "v2": decimal.NewFromInt(1), "v3": decimal.NewFromInt(1),
		})
		partial := MatchCOGS(records, CostLookup{"v1": decimal.NewFromInt(1)})
		none := MatchCOGS(records, CostLookup{})

		assert.True(t, full.MatchRate().GreaterThan(partial.MatchRate()))
		assert.True(t, partial.MatchRate().GreaterThan(none.MatchRate()))
		assert.Equal(t, "0.00", none.MatchRate().StringFixed(2))
	})

	t.Run("empty record list is full coverage", func(t *testing.T) {
		match := MatchCOGS(nil, CostLookup{})
		assert.Equal(t, "100.00", match.MatchRate().StringFixed(2))
		assert.True(t, match.MatchedCost.IsZero())
	})
}
