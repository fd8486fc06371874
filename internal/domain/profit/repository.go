package profit

import (
	"context"
)

// OrderSource delivers paid orders for a single shop and calendar date.
// Implemented at the platform boundary (Shopify Admin API adapter).
type OrderSource interface {
	FetchOrdersForDate(ctx context.Context, shop, date string) ([]Order, error)
}

// CostSource delivers the merchant-entered cost-per-unit lookup for a set
// of product variants. SKU-based joins happen upstream when the lookup is
// built; absence of a variant key means the cost is unknown.
type CostSource interface {
	GetCostLookup(ctx context.Context, shop string, variantIDs []string) (CostLookup, error)
}

// AdSpendSource delivers the synced ad-platform spend entries already
// scoped to a shop and date, in first-seen-platform order
type AdSpendSource interface {
	GetAdSpend(ctx context.Context, shop, date string) ([]AdSpendEntry, error)
}

// FixedCostSource delivers the shop's active recurring cost entries
type FixedCostSource interface {
	GetActiveFixedCosts(ctx context.Context, shop string) ([]FixedCostEntry, error)
}

// ReportRepository persists daily reports keyed by (shop, date).
// Upsert must replace the stored report as a single logical write; a
// half-updated report must never be visible to readers.
type ReportRepository interface {
	Upsert(ctx context.Context, shop string, report *Report) error
	FindByShopAndDate(ctx context.Context, shop, date string) (*Report, error)
	// FindInRange returns the stored reports whose date lies in
	// [start, end] inclusive, ordered by date ascending. Missing days are
	// simply absent.
	FindInRange(ctx context.Context, shop, start, end string) ([]Report, error)
}
