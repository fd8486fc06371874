package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appprofit "github.com/profitlens/backend/internal/application/profit"
)

// DailyReportComputer computes or returns the cached daily profit report
type DailyReportComputer interface {
	ComputeDailyReport(ctx context.Context, shop, date string, force bool) (*appprofit.DailyReportResponse, error)
}

// RangeAggregator aggregates stored daily reports over a date window
type RangeAggregator interface {
	AggregateRange(ctx context.Context, shop, start, end string) (*appprofit.RangeSummaryResponse, error)
}

// ProfitHandler handles profit report HTTP requests
type ProfitHandler struct {
	BaseHandler
	calculator DailyReportComputer
	ranges     RangeAggregator
	logger     *zap.Logger
}

// NewProfitHandler creates a new profit handler
func NewProfitHandler(calculator DailyReportComputer, ranges RangeAggregator, logger *zap.Logger) *ProfitHandler {
	return &ProfitHandler{
		calculator: calculator,
		ranges:     ranges,
		logger:     logger,
	}
}

// GetDailyReport handles GET /api/v1/profit/daily?date=YYYY-MM-DD&force=true
func (h *ProfitHandler) GetDailyReport(c *gin.Context) {
	shop := getShopDomain(c)
	date := c.Query("date")
	if date == "" {
		h.BadRequest(c, "date query parameter is required")
		return
	}
	force := c.Query("force") == "true"

	report, err := h.calculator.ComputeDailyReport(c.Request.Context(), shop, date, force)
	if err != nil {
		h.logger.Warn("daily report request failed",
			zap.String("shop", shop),
			zap.String("date", date),
			zap.Error(err))
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}

// GetRangeSummary handles GET /api/v1/profit/range?start_date=...&end_date=...
func (h *ProfitHandler) GetRangeSummary(c *gin.Context) {
	shop := getShopDomain(c)
	start := c.Query("start_date")
	end := c.Query("end_date")
	if start == "" || end == "" {
		h.BadRequest(c, "start_date and end_date query parameters are required")
		return
	}

	summary, err := h.ranges.AggregateRange(c.Request.Context(), shop, start, end)
	if err != nil {
		h.logger.Warn("range summary request failed",
			zap.String("shop", shop),
			zap.String("start", start),
			zap.String("end", end),
			zap.Error(err))
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}
