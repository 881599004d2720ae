// Package forecast projects future monthly revenue for the reports view.
package forecast

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Strategy names accepted by New.
const (
	StrategyStatic = "static"
	StrategyLinear = "linear"
)

// DefaultHorizon is the number of projected periods.
const DefaultHorizon = 7

// Forecaster projects a series of future periods from monthly history.
type Forecaster interface {
	Project(history []domain.MonthlyBucket) []domain.ForecastPoint
}

// DefaultStaticSeries is the placeholder projection shown before enough
// history exists: June through December.
func DefaultStaticSeries() []domain.ForecastPoint {
	values := []int64{45000, 53000, 58000, 64000, 72000, 85000, 98000}
	months := []string{"Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	points := make([]domain.ForecastPoint, len(values))
	for i := range values {
		points[i] = domain.ForecastPoint{Period: months[i], ProjectedAmount: decimal.NewFromInt(values[i])}
	}
	return points
}

// StaticForecaster returns a fixed, configured series and ignores history.
type StaticForecaster struct {
	series []domain.ForecastPoint
}

// NewStaticForecaster creates a forecaster returning series. A nil or empty
// series falls back to DefaultStaticSeries.
func NewStaticForecaster(series []domain.ForecastPoint) *StaticForecaster {
	if len(series) == 0 {
		series = DefaultStaticSeries()
	}
	return &StaticForecaster{series: series}
}

// Project returns a copy of the configured series.
func (f *StaticForecaster) Project(_ []domain.MonthlyBucket) []domain.ForecastPoint {
	out := make([]domain.ForecastPoint, len(f.series))
	copy(out, f.series)
	return out
}

// LinearForecaster fits a least-squares line through monthly revenue and
// extends it for Horizon months after the last observed period.
type LinearForecaster struct {
	Horizon int
}

// NewLinearForecaster creates a linear forecaster. horizon <= 0 uses DefaultHorizon.
func NewLinearForecaster(horizon int) *LinearForecaster {
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	return &LinearForecaster{Horizon: horizon}
}

// Project extrapolates revenue. With no history it returns an empty series;
// with a single month the projection is flat. Negative projections clamp to zero.
func (f *LinearForecaster) Project(history []domain.MonthlyBucket) []domain.ForecastPoint {
	points := make([]domain.ForecastPoint, 0, f.Horizon)
	if len(history) == 0 {
		return points
	}

	samples := monthSamples(history)
	if len(samples) == 0 {
		return points
	}
	slope, intercept := fitLine(samples)

	lastSample := samples[len(samples)-1]
	for i := 0; i < f.Horizon; i++ {
		x := decimal.NewFromInt(int64(lastSample.offset + i + 1))
		y := intercept.Add(slope.Mul(x)).Round(0)
		if y.IsNegative() {
			y = decimal.Zero
		}
		period := lastSample.month.AddDate(0, i+1, 0)
		points = append(points, domain.ForecastPoint{
			Period:          period.Format("Jan 2006"),
			ProjectedAmount: y,
		})
	}
	return points
}

type monthSample struct {
	month   time.Time
	offset  int // months since the first sample
	revenue decimal.Decimal
}

// monthSamples places each bucket at its calendar month offset from the first
// one, so months missing from history keep their gap on the x axis. Buckets
// with an unparseable period are skipped.
func monthSamples(history []domain.MonthlyBucket) []monthSample {
	samples := make([]monthSample, 0, len(history))
	var first time.Time
	for _, b := range history {
		month, err := time.Parse("2006-01", b.Period)
		if err != nil {
			continue
		}
		if len(samples) == 0 {
			first = month
		}
		offset := (month.Year()-first.Year())*12 + int(month.Month()-first.Month())
		samples = append(samples, monthSample{month: month, offset: offset, revenue: b.Revenue})
	}
	return samples
}

// fitLine computes slope and intercept of revenue against the month offset.
func fitLine(samples []monthSample) (slope, intercept decimal.Decimal) {
	n := decimal.NewFromInt(int64(len(samples)))
	sumX, sumY, sumXY, sumXX := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, sample := range samples {
		x := decimal.NewFromInt(int64(sample.offset))
		sumX = sumX.Add(x)
		sumY = sumY.Add(sample.revenue)
		sumXY = sumXY.Add(x.Mul(sample.revenue))
		sumXX = sumXX.Add(x.Mul(x))
	}

	denominator := n.Mul(sumXX).Sub(sumX.Mul(sumX))
	if denominator.IsZero() {
		return decimal.Zero, sumY.Div(n)
	}
	slope = n.Mul(sumXY).Sub(sumX.Mul(sumY)).Div(denominator)
	intercept = sumY.Sub(slope.Mul(sumX)).Div(n)
	return slope, intercept
}

// New returns the forecaster for a configured strategy name.
func New(strategy string, horizon int) (Forecaster, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", StrategyStatic:
		return NewStaticForecaster(nil), nil
	case StrategyLinear:
		return NewLinearForecaster(horizon), nil
	default:
		return nil, fmt.Errorf("unknown forecast strategy '%s'", strategy)
	}
}
