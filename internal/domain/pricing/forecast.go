package pricing

import (
	"time"

	"parkpricer/internal/pkg/errs"
)

// OccupancyPoint is one hour of forecast demand for a listing.
type OccupancyPoint struct {
	Time          time.Time `json:"time"`
	OccupancyRate float64   `json:"occupancy_rate"`
}

// Forecaster produces a synthetic hourly occupancy forecast: 30% base,
// +40% during business hours, ×0.8 on weekends, with up to ±10% jitter from
// the demand signal. The jitter is intentionally not bit-reproducible in
// production; inject FixedDemand for stable test output.
type Forecaster struct {
	demand DemandSignal
}

func NewForecaster(demand DemandSignal) *Forecaster {
	return &Forecaster{demand: demand}
}

func (f *Forecaster) Forecast(start, end time.Time) ([]OccupancyPoint, error) {
	if !end.After(start) {
		return nil, errs.ErrInvalidDateRange
	}

	from := start.Truncate(time.Hour)
	points := make([]OccupancyPoint, 0, int(end.Sub(from).Hours())+1)

	for t := from; t.Before(end); t = t.Add(time.Hour) {
		rate := 0.3
		if h := t.Hour(); h >= 8 && h <= 18 {
			rate += 0.4
		}
		if d := t.Weekday(); d == time.Saturday || d == time.Sunday {
			rate *= 0.8
		}

		// Jitter in [-0.1, 0.1).
		rate += (f.demand.Level(t) - 0.5) * 0.2
		points = append(points, OccupancyPoint{Time: t, OccupancyRate: clamp01(rate)})
	}

	return points, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
