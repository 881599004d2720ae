package forecast

import (
	"testing"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bucket(period string, revenue int64) domain.MonthlyBucket {
	return domain.MonthlyBucket{Period: period, Revenue: decimal.NewFromInt(revenue), Expenses: decimal.Zero}
}

func TestStaticForecaster(t *testing.T) {
	f := NewStaticForecaster(nil)

	points := f.Project([]domain.MonthlyBucket{bucket("2025-01", 1)})

	require.Len(t, points, 7)
	assert.Equal(t, "Jun", points[0].Period)
	assert.True(t, decimal.NewFromInt(45000).Equal(points[0].ProjectedAmount))
	assert.Equal(t, "Dec", points[6].Period)
	assert.True(t, decimal.NewFromInt(98000).Equal(points[6].ProjectedAmount))

	// Callers cannot mutate the configured series.
	points[0].Period = "changed"
	assert.Equal(t, "Jun", f.Project(nil)[0].Period)
}

func TestLinearForecaster_RisingSeries(t *testing.T) {
	history := []domain.MonthlyBucket{
		bucket("2025-01", 1000),
		bucket("2025-02", 2000),
		bucket("2025-03", 3000),
	}

	points := NewLinearForecaster(3).Project(history)

	require.Len(t, points, 3)
	assert.Equal(t, "Apr 2025", points[0].Period)
	assert.True(t, decimal.NewFromInt(4000).Equal(points[0].ProjectedAmount), "got %s", points[0].ProjectedAmount)
	assert.True(t, decimal.NewFromInt(6000).Equal(points[2].ProjectedAmount), "got %s", points[2].ProjectedAmount)
	for i := 1; i < len(points); i++ {
		assert.True(t, points[i].ProjectedAmount.GreaterThanOrEqual(points[i-1].ProjectedAmount))
	}
}

func TestLinearForecaster_GapMonthsKeepCalendarSpacing(t *testing.T) {
	// February to May have no activity and produce no buckets.
	history := []domain.MonthlyBucket{
		bucket("2025-01", 1000),
		bucket("2025-06", 6000),
	}

	points := NewLinearForecaster(2).Project(history)

	require.Len(t, points, 2)
	assert.Equal(t, "Jul 2025", points[0].Period)
	assert.True(t, decimal.NewFromInt(7000).Equal(points[0].ProjectedAmount), "got %s", points[0].ProjectedAmount)
	assert.True(t, decimal.NewFromInt(8000).Equal(points[1].ProjectedAmount), "got %s", points[1].ProjectedAmount)
}

func TestLinearForecaster_SpansYears(t *testing.T) {
	history := []domain.MonthlyBucket{
		bucket("2024-11", 1100),
		bucket("2025-02", 1400),
	}

	points := NewLinearForecaster(1).Project(history)

	require.Len(t, points, 1)
	assert.Equal(t, "Mar 2025", points[0].Period)
	assert.True(t, decimal.NewFromInt(1500).Equal(points[0].ProjectedAmount), "got %s", points[0].ProjectedAmount)
}

func TestLinearForecaster_YearRollover(t *testing.T) {
	points := NewLinearForecaster(2).Project([]domain.MonthlyBucket{bucket("2025-12", 500)})

	require.Len(t, points, 2)
	assert.Equal(t, "Jan 2026", points[0].Period)
	assert.True(t, decimal.NewFromInt(500).Equal(points[0].ProjectedAmount), "single month projects flat")
}

func TestLinearForecaster_ClampsNegative(t *testing.T) {
	history := []domain.MonthlyBucket{bucket("2025-01", 3000), bucket("2025-02", 1000)}

	points := NewLinearForecaster(4).Project(history)

	require.Len(t, points, 4)
	for _, p := range points {
		assert.False(t, p.ProjectedAmount.IsNegative())
	}
}

func TestLinearForecaster_Empty(t *testing.T) {
	assert.Empty(t, NewLinearForecaster(0).Project(nil))
	assert.Equal(t, DefaultHorizon, NewLinearForecaster(0).Horizon)
}

func TestNew(t *testing.T) {
	f, err := New("", 0)
	require.NoError(t, err)
	assert.IsType(t, &StaticForecaster{}, f)

	f, err = New("Linear", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, f.(*LinearForecaster).Horizon)

	_, err = New("arima", 0)
	assert.Error(t, err)
}
