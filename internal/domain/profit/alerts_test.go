package profit

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateAlerts(t *testing.T) {
	base := AlertInputs{
		TotalLineItems: 10,
		MatchRate:      decimal.NewFromInt(100),
		Revenue:        decimal.NewFromInt(1000),
		AdSpend:        decimal.NewFromInt(100),
		NetProfit:      decimal.NewFromInt(500),
		ProfitMargin:   decimal.NewFromInt(50),
	}

	t.Run("healthy day fires nothing", func(t *testing.T) {
		assert.Empty(t, EvaluateAlerts(base))
	})

	t.Run("coverage below 50 fires, exactly 50 does not", func(t *testing.T) {
		in := base
		in.MatchRate = decimal.NewFromFloat(49.99)
		assert.True(t, hasAlert(EvaluateAlerts(in), "LOW_COGS_COVERAGE"))

		in.MatchRate = decimal.NewFromInt(50)
		assert.False(t, hasAlert(EvaluateAlerts(in), "LOW_COGS_COVERAGE"))
	})

	t.Run("coverage rule needs at least one line item", func(t *testing.T) {
		in := base
		in.TotalLineItems = 0
		in.MatchRate = decimal.Zero
		assert.False(t, hasAlert(EvaluateAlerts(in), "LOW_COGS_COVERAGE"))
	})

	t.Run("negative net profit is an error, zero is not", func(t *testing.T) {
		in := base
		in.NetProfit = decimal.NewFromFloat(-0.01)
		in.ProfitMargin = decimal.Zero
		alerts := EvaluateAlerts(in)
		assert.True(t, hasAlert(alerts, "NEGATIVE_NET_PROFIT"))
		assert.Equal(t, AlertLevelError, alerts[0].Level)

		in.NetProfit = decimal.Zero
		assert.False(t, hasAlert(EvaluateAlerts(in), "NEGATIVE_NET_PROFIT"))
	})

	t.Run("ad spend ratio fires strictly above 30 percent", func(t *testing.T) {
		in := base
		in.AdSpend = decimal.NewFromInt(300) // exactly 30%
		assert.False(t, hasAlert(EvaluateAlerts(in), "HIGH_AD_SPEND_RATIO"))

		in.AdSpend = decimal.NewFromInt(301)
		assert.True(t, hasAlert(EvaluateAlerts(in), "HIGH_AD_SPEND_RATIO"))
	})

	t.Run("ad spend rule is vacuous without revenue", func(t *testing.T) {
		in := base
		in.Revenue = decimal.Zero
		in.AdSpend = decimal.NewFromInt(100)
		assert.False(t, hasAlert(EvaluateAlerts(in), "HIGH_AD_SPEND_RATIO"))
	})

	t.Run("low margin fires only on the open interval (0, 10)", func(t *testing.T) {
		in := base

		in.ProfitMargin = decimal.NewFromFloat(9.99)
		assert.True(t, hasAlert(EvaluateAlerts(in), "LOW_PROFIT_MARGIN"))

		in.ProfitMargin = decimal.NewFromInt(10)
		assert.False(t, hasAlert(EvaluateAlerts(in), "LOW_PROFIT_MARGIN"))

		in.ProfitMargin = decimal.Zero
		assert.False(t, hasAlert(EvaluateAlerts(in), "LOW_PROFIT_MARGIN"))

		in.ProfitMargin = decimal.NewFromInt(-5)
		assert.False(t, hasAlert(EvaluateAlerts(in), "LOW_PROFIT_MARGIN"))
	})

	t.Run("multiple independent rules may fire in fixed order", func(t *testing.T) {
		in := AlertInputs{
			TotalLineItems: 4,
			MatchRate:      decimal.NewFromInt(25),
			Revenue:        decimal.NewFromInt(1000),
			AdSpend:        decimal.NewFromInt(400),
			NetProfit:      decimal.NewFromInt(-50),
			ProfitMargin:   decimal.NewFromInt(-5),
		}

		alerts := EvaluateAlerts(in)

		assert.Len(t, alerts, 3)
		assert.Equal(t, "LOW_COGS_COVERAGE", alerts[0].Code)
		assert.Equal(t, "NEGATIVE_NET_PROFIT", alerts[1].Code)
		assert.Equal(t, "HIGH_AD_SPEND_RATIO", alerts[2].Code)
	})
}
