package profit

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrders() []Order {
	return []Order{
		{
			ID:             "1001",
			TotalPrice:     decimal.NewFromFloat(120.50),
			TotalTax:       decimal.NewFromFloat(10.50),
			TotalShipping:  decimal.NewFromFloat(5.00),
			TotalDiscounts: decimal.NewFromFloat(2.00),
			Gateway:        "shopify_payments",
			LineItems: []OrderLineItem{
				{VariantID: "v1", SKU: "SKU-1", Quantity: 2, Price: decimal.NewFromFloat(40.00)},
				{VariantID: "v2", SKU: "SKU-2", Quantity: 1, Price: decimal.NewFromFloat(33.00)},
			},
		},
		{
			ID:             "1002",
			TotalPrice:     decimal.NewFromFloat(79.50),
			TotalTax:       decimal.NewFromFloat(6.50),
			TotalShipping:  decimal.NewFromFloat(5.00),
			TotalDiscounts: decimal.Zero,
			Gateway:        "paypal",
			LineItems: []OrderLineItem{
				{VariantID: "v1", SKU: "SKU-1", Quantity: 3, Price: decimal.NewFromFloat(22.50)},
			},
		},
	}
}

func TestReduceOrders(t *testing.T) {
	t.Run("sums totals and counts items across line items", func(t *testing.T) {
		m := ReduceOrders(testOrders())

		assert.Equal(t, "200.00", m.Revenue.StringFixed(2))
		assert.Equal(t, "17.00", m.Tax.StringFixed(2))
		assert.Equal(t, "10.00", m.Shipping.StringFixed(2))
		assert.Equal(t, "2.00", m.Discounts.StringFixed(2))
		assert.Equal(t, int64(2), m.OrderCount)
		assert.Equal(t, int64(6), m.ItemsSold)
		assert.Equal(t, "100.00", m.AverageOrderValue.StringFixed(2))
	})

	t.Run("empty order list yields zero metrics and zero average", func(t *testing.T) {
		m := ReduceOrders(nil)

		assert.True(t, m.Revenue.IsZero())
		assert.Zero(t, m.OrderCount)
		assert.Zero(t, m.ItemsSold)
		assert.Equal(t, "0.00", m.AverageOrderValue.StringFixed(2))
	})
}

func TestExtractLineItems(t *testing.T) {
	t.Run("produces one record per line item, not per order", func(t *testing.T) {
		records := ExtractLineItems(testOrders())

		require.Len(t, records, 3)
		assert.Equal(t, "1001", records[0].OrderID)
		assert.Equal(t, "v1", records[0].VariantID)
		assert.Equal(t, int64(2), records[0].Quantity)
		assert.Equal(t, "1002", records[2].OrderID)
		assert.Equal(t, "v1", records[2].VariantID)
		assert.Equal(t, int64(3), records[2].Quantity)
	})

	t.Run("no orders yields no records", func(t *testing.T) {
		assert.Empty(t, ExtractLineItems(nil))
	})
}

func TestVariantIDs(t *testing.T) {
	t.Run("deduplicates in first-seen order", func(t *testing.T) {
		ids := VariantIDs(testOrders())
		assert.Equal(t, []string{"v1", "v2"}, ids)
	})

	t.Run("skips empty variant identifiers", func(t *testing.T) {
		orders := []Order{
			{ID: "1", LineItems: []OrderLineItem{{VariantID: "", Quantity: 1}}},
		}
		assert.Empty(t, VariantIDs(orders))
	})
}
