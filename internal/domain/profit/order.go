package profit

import (
	"github.com/shopspring/decimal"
)

// OrderLineItem is a single sold line within an order
type OrderLineItem struct {
	VariantID string          `json:"variant_id"`
	SKU       string          `json:"sku"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"` // unit price
}

// Order is a paid order as delivered by the order source.
// It is a read-only input to the engine.
type Order struct {
	ID             string          `json:"id"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	TotalTax       decimal.Decimal `json:"total_tax"`
	TotalShipping  decimal.Decimal `json:"total_shipping"`
	TotalDiscounts decimal.Decimal `json:"total_discounts"`
	Gateway        string          `json:"gateway"` // raw payment gateway identifier
	LineItems      []OrderLineItem `json:"line_items"`
}

// LineItemRecord is the flat per-line-item unit of COGS matching.
// One record per line item, never collapsed per order: quantity
// multiplies unit cost independently per line.
type LineItemRecord struct {
	OrderID   string          `json:"order_id"`
	VariantID string          `json:"variant_id"`
	SKU       string          `json:"sku"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// OrderMetrics holds the revenue-side totals reduced from an order list.
// Totals are accumulated at full precision; callers round for display.
type OrderMetrics struct {
	Revenue           decimal.Decimal
	Tax               decimal.Decimal
	Shipping          decimal.Decimal
	Discounts         decimal.Decimal
	OrderCount        int64
	ItemsSold         int64
	AverageOrderValue decimal.Decimal
}

// ReduceOrders reduces an order list into revenue, tax, shipping, discount
// and item-count totals
func ReduceOrders(orders []Order) OrderMetrics {
	m := OrderMetrics{
		Revenue:           decimal.Zero,
		Tax:               decimal.Zero,
		Shipping:          decimal.Zero,
		Discounts:         decimal.Zero,
		AverageOrderValue: decimal.Zero,
	}

	for _, o := range orders {
		m.Revenue = m.Revenue.Add(o.TotalPrice)
		m.Tax = m.Tax.Add(o.TotalTax)
		m.Shipping = m.Shipping.Add(o.TotalShipping)
		m.Discounts = m.Discounts.Add(o.TotalDiscounts)
		m.OrderCount++
		for _, li := range o.LineItems {
			m.ItemsSold += li.Quantity
		}
	}

	if m.OrderCount > 0 {
		m.AverageOrderValue = m.Revenue.Div(decimal.NewFromInt(m.OrderCount)).Round(2)
	}

	return m
}

// ExtractLineItems flattens every line item of every order into a
// LineItemRecord slice, preserving order
func ExtractLineItems(orders []Order) []LineItemRecord {
	var records []LineItemRecord
	for _, o := range orders {
		for _, li := range o.LineItems {
			records = append(records, LineItemRecord{
				OrderID:   o.ID,
				VariantID: li.VariantID,
				SKU:       li.SKU,
				Quantity:  li.Quantity,
				Price:     li.Price,
			})
		}
	}
	return records
}

// VariantIDs returns the distinct variant identifiers referenced by the
// orders, in first-seen order. Used to build the cost lookup upstream.
func VariantIDs(orders []Order) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, o := range orders {
		for _, li := range o.LineItems {
			if li.VariantID == "" {
				continue
			}
			if _, ok := seen[li.VariantID]; ok {
				continue
			}
			seen[li.VariantID] = struct{}{}
			ids = append(ids, li.VariantID)
		}
	}
	return ids
}
