package profit

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/profitlens/backend/internal/domain/profit"
	"github.com/profitlens/backend/internal/domain/shared"
)

// RangeReportService aggregates previously stored daily reports over an
// inclusive date window. It never computes missing days; absent dates are
// simply excluded from the totals.
type RangeReportService struct {
	reports profit.ReportRepository
	logger  *zap.Logger
}

// NewRangeReportService creates a new range report service
func NewRangeReportService(reports profit.ReportRepository, logger *zap.Logger) *RangeReportService {
	return &RangeReportService{
		reports: reports,
		logger:  logger,
	}
}

// AggregateRange sums the stored daily reports for [start, end] into a
// single summary with the margin recomputed from the totals
func (s *RangeReportService) AggregateRange(ctx context.Context, shop, start, end string) (*RangeSummaryResponse, error) {
	if shop == "" {
		return nil, shared.ErrShopRequired
	}
	if _, err := time.Parse(profit.DateLayout, start); err != nil {
		return nil, shared.ErrInvalidDate
	}
	if _, err := time.Parse(profit.DateLayout, end); err != nil {
		return nil, shared.ErrInvalidDate
	}
	if start > end {
		return nil, shared.ErrInvalidRange
	}

	reports, err := s.reports.FindInRange(ctx, shop, start, end)
	if err != nil {
		return nil, fmt.Errorf("report store: %w", err)
	}

	summary := profit.SummarizeRange(start, end, reports)

	s.logger.Debug("range summary aggregated",
		zap.String("shop", shop),
		zap.String("start", start),
		zap.String("end", end),
		zap.Int("days", summary.DaysCount))

	return toRangeSummaryResponse(summary), nil
}
