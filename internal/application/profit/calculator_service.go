package profit

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/profitlens/backend/internal/domain/profit"
	"github.com/profitlens/backend/internal/domain/shared"
)

// ProfitCalculatorService orchestrates the daily profit computation: it
// gathers orders, costs, ad spend and fixed costs for one shop and date,
// reduces them into a report, persists it and caches the result.
type ProfitCalculatorService struct {
	orders     profit.OrderSource
	costs      profit.CostSource
	adSpend    profit.AdSpendSource
	fixedCosts profit.FixedCostSource
	reports    profit.ReportRepository
	cache      ReportCache
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewProfitCalculatorService creates a new profit calculator service
func NewProfitCalculatorService(
	orders profit.OrderSource,
	costs profit.CostSource,
	adSpend profit.AdSpendSource,
	fixedCosts profit.FixedCostSource,
	reports profit.ReportRepository,
	cache ReportCache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *ProfitCalculatorService {
	return &ProfitCalculatorService{
		orders:     orders,
		costs:      costs,
		adSpend:    adSpend,
		fixedCosts: fixedCosts,
		reports:    reports,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// ComputeDailyReport computes (or returns the cached) profit report for one
// shop and calendar date. With force set, the cache fast path is skipped and
// the report is recomputed from the sources. Any source failure aborts the
// computation before the stored report is touched.
func (s *ProfitCalculatorService) ComputeDailyReport(ctx context.Context, shop, date string, force bool) (*DailyReportResponse, error) {
	if shop == "" {
		return nil, shared.ErrShopRequired
	}
	if _, err := time.Parse(profit.DateLayout, date); err != nil {
		return nil, shared.ErrInvalidDate
	}

	if !force {
		cached, err := s.cache.Get(ctx, shop, date)
		if err != nil {
			s.logger.Warn("report cache read failed",
				zap.String("shop", shop),
				zap.String("date", date),
				zap.Error(err))
		} else if cached != nil {
			return toDailyReportResponse(cached, true), nil
		}
	}

	orders, err := s.orders.FetchOrdersForDate(ctx, shop, date)
	if err != nil {
		return nil, fmt.Errorf("orders source: %w", err)
	}

	costs, err := s.costs.GetCostLookup(ctx, shop, profit.VariantIDs(orders))
	if err != nil {
		return nil, fmt.Errorf("cost source: %w", err)
	}

	adSpend, err := s.adSpend.GetAdSpend(ctx, shop, date)
	if err != nil {
		return nil, fmt.Errorf("ad spend source: %w", err)
	}

	fixedCosts, err := s.fixedCosts.GetActiveFixedCosts(ctx, shop)
	if err != nil {
		return nil, fmt.Errorf("fixed cost source: %w", err)
	}
	if totals := profit.NormalizeFixedCosts(fixedCosts); totals.InvalidEntries > 0 {
		s.logger.Warn("fixed cost entries with unknown frequency excluded",
			zap.String("shop", shop),
			zap.Int("excluded", totals.InvalidEntries))
	}

	report := profit.BuildReport(date, orders, costs, adSpend, fixedCosts)

	if err := s.reports.Upsert(ctx, shop, report); err != nil {
		return nil, fmt.Errorf("persist report: %w", err)
	}

	if err := s.cache.Put(ctx, shop, date, report, s.cacheTTL); err != nil {
		s.logger.Warn("report cache write failed",
			zap.String("shop", shop),
			zap.String("date", date),
			zap.Error(err))
	}

	s.logger.Info("daily profit report computed",
		zap.String("shop", shop),
		zap.String("date", date),
		zap.Int64("orders", report.OrderCount),
		zap.String("net_profit", report.NetProfit.StringFixed(2)),
		zap.Int("alerts", len(report.Alerts)))

	return toDailyReportResponse(report, false), nil
}
