package profit

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/profitlens/backend/internal/domain/profit"
	"github.com/profitlens/backend/internal/domain/shared"
)

func newRangeFixture() (*MockReportRepository, *RangeReportService) {
	repo := new(MockReportRepository)
	return repo, NewRangeReportService(repo, zap.NewNop())
}

func TestAggregateRange(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects an empty shop domain", func(t *testing.T) {
		_, service := newRangeFixture()

		_, err := service.AggregateRange(ctx, "", "2026-08-01", "2026-08-03")

		assert.ErrorIs(t, err, shared.ErrShopRequired)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		_, service := newRangeFixture()

		_, err := service.AggregateRange(ctx, testShop, "Aug 1", "2026-08-03")
		assert.ErrorIs(t, err, shared.ErrInvalidDate)

		_, err = service.AggregateRange(ctx, testShop, "2026-08-01", "2026-8-3")
		assert.ErrorIs(t, err, shared.ErrInvalidDate)
	})

	t.Run("rejects a start date after the end date", func(t *testing.T) {
		repo, service := newRangeFixture()

		_, err := service.AggregateRange(ctx, testShop, "2026-08-03", "2026-08-01")

		assert.ErrorIs(t, err, shared.ErrInvalidRange)
		repo.AssertNotCalled(t, "FindInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("sums stored days and recomputes the margin", func(t *testing.T) {
		repo, service := newRangeFixture()
		repo.On("FindInRange", mock.Anything, testShop, "2026-08-01", "2026-08-03").Return([]profit.Report{
			{Date: "2026-08-01", Revenue: decimal.NewFromInt(100), NetProfit: decimal.NewFromInt(10), OrderCount: 3},
			{Date: "2026-08-02", Revenue: decimal.NewFromInt(200), NetProfit: decimal.NewFromInt(-5), OrderCount: 5},
		}, nil)

		resp, err := service.AggregateRange(ctx, testShop, "2026-08-01", "2026-08-03")

		require.NoError(t, err)
		assert.Equal(t, "300.00", resp.Revenue)
		assert.Equal(t, "5.00", resp.NetProfit)
		assert.Equal(t, "1.67", resp.ProfitMargin)
		assert.Equal(t, int64(8), resp.OrderCount)
		assert.Equal(t, 2, resp.DaysCount)
	})

	t.Run("single-day window is inclusive of both bounds", func(t *testing.T) {
		repo, service := newRangeFixture()
		repo.On("FindInRange", mock.Anything, testShop, "2026-08-01", "2026-08-01").Return([]profit.Report{
			{Date: "2026-08-01", Revenue: decimal.NewFromInt(50), NetProfit: decimal.NewFromInt(5), OrderCount: 1},
		}, nil)

		resp, err := service.AggregateRange(ctx, testShop, "2026-08-01", "2026-08-01")

		require.NoError(t, err)
		assert.Equal(t, 1, resp.DaysCount)
		assert.Equal(t, "50.00", resp.Revenue)
	})

	t.Run("window with no stored days is empty, not an error", func(t *testing.T) {
		repo, service := newRangeFixture()
		repo.On("FindInRange", mock.Anything, testShop, "2026-08-01", "2026-08-03").
			Return([]profit.Report{}, nil)

		resp, err := service.AggregateRange(ctx, testShop, "2026-08-01", "2026-08-03")

		require.NoError(t, err)
		assert.Zero(t, resp.DaysCount)
		assert.Equal(t, "0.00", resp.Revenue)
		assert.Equal(t, "0.00", resp.ProfitMargin)
	})

	t.Run("store failure surfaces to the caller", func(t *testing.T) {
		repo, service := newRangeFixture()
		repo.On("FindInRange", mock.Anything, testShop, "2026-08-01", "2026-08-03").
			Return(nil, errors.New("db: timeout"))

		_, err := service.AggregateRange(ctx, testShop, "2026-08-01", "2026-08-03")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "report store")
	})
}
