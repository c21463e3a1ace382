//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"parkpricer/internal/domain/pricing"
	"parkpricer/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noSurge suppresses every probabilistic demand draw.
var noSurge = pricing.FixedDemand{Value: 0.99}

// alwaysSurge makes every probabilistic demand draw succeed.
var alwaysSurge = pricing.FixedDemand{Value: 0.0}

var listingID = uuid.MustParse("b7f3d1a0-5c2e-4f88-9b41-6d0a2e7c1f55")

// at builds a fixed UTC timestamp on a known week: 2025-03-10 is a Monday.
func at(day, hour, minute int) time.Time {
	return time.Date(2025, 3, day, hour, minute, 0, 0, time.UTC)
}

func TestCalculate(t *testing.T) {
	calc := pricing.NewCalculator(noSurge)

	t.Run("rejects empty or inverted intervals", func(t *testing.T) {
		start := at(11, 14, 0)

		_, err := calc.Calculate(listingID, start, start, 10)
		assert.ErrorIs(t, err, errs.ErrInvalidInterval)

		_, err = calc.Calculate(listingID, start, start.Add(-time.Hour), 10)
		assert.ErrorIs(t, err, errs.ErrInvalidInterval)
	})

	t.Run("rejects non-positive base rate", func(t *testing.T) {
		_, err := calc.Calculate(listingID, at(11, 14, 0), at(11, 16, 0), 0)
		assert.ErrorIs(t, err, errs.ErrInvalidBasePrice)
	})

	t.Run("neutral interval applies no factors", func(t *testing.T) {
		// Tuesday 14:00, 2 hours: off-peak, weekday, short stay.
		quote, err := calc.Calculate(listingID, at(11, 14, 0), at(11, 16, 0), 10)
		require.NoError(t, err)

		assert.Empty(t, quote.AppliedFactors)
		assert.InDelta(t, 20.0, quote.BasePrice, 1e-9)
		assert.Equal(t, 1.0, quote.TotalMultiplier)
		assert.Equal(t, 20.0, quote.FinalPrice)
		assert.False(t, quote.SurgeActive)
		require.Len(t, quote.Breakdown, 1)
		assert.Equal(t, pricing.BreakdownBase, quote.Breakdown[0].Type)
	})

	t.Run("saturday evening peak plus weekend", func(t *testing.T) {
		// Saturday 18:30-20:30 at $10/hr: Peak Hours x1.5, Weekend x1.3.
		quote, err := calc.Calculate(listingID, at(15, 18, 30), at(15, 20, 30), 10)
		require.NoError(t, err)

		require.Len(t, quote.AppliedFactors, 2)
		assert.Equal(t, "Peak Hours", quote.AppliedFactors[0].Name)
		assert.Equal(t, 1.5, quote.AppliedFactors[0].Multiplier)
		assert.Equal(t, "Weekend Pricing", quote.AppliedFactors[1].Name)
		assert.Equal(t, 1.3, quote.AppliedFactors[1].Multiplier)

		assert.InDelta(t, 20.0, quote.BasePrice, 1e-9)
		assert.Equal(t, 1.95, quote.TotalMultiplier)
		assert.Equal(t, 39.0, quote.FinalPrice)
		assert.False(t, quote.SurgeActive)
	})

	t.Run("time of day tiers", func(t *testing.T) {
		cases := []struct {
			name     string
			hour     int
			wantName string
			wantMult float64
		}{
			{name: "morning peak lower bound", hour: 7, wantName: "Peak Hours", wantMult: 1.5},
			{name: "morning peak upper bound", hour: 10, wantName: "Peak Hours", wantMult: 1.5},
			{name: "evening peak", hour: 19, wantName: "Peak Hours", wantMult: 1.5},
			{name: "late night start", hour: 22, wantName: "Late Night", wantMult: 0.8},
			{name: "early morning", hour: 6, wantName: "Late Night", wantMult: 0.8},
			{name: "midday has no factor", hour: 13},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				// Tuesday keeps day-of-week factors out of the way.
				start := at(11, tc.hour, 0)
				quote, err := calc.Calculate(listingID, start, start.Add(time.Hour), 10)
				require.NoError(t, err)

				if tc.wantName == "" {
					assert.Empty(t, quote.AppliedFactors)
					return
				}
				require.NotEmpty(t, quote.AppliedFactors)
				assert.Equal(t, tc.wantName, quote.AppliedFactors[0].Name)
				assert.Equal(t, tc.wantMult, quote.AppliedFactors[0].Multiplier)
				assert.Equal(t, pricing.FactorTime, quote.AppliedFactors[0].Type)
			})
		}
	})

	t.Run("friday evening surcharge", func(t *testing.T) {
		// Friday 21:00: past the peak window, before late night.
		quote, err := calc.Calculate(listingID, at(14, 21, 0), at(14, 23, 0), 10)
		require.NoError(t, err)

		require.Len(t, quote.AppliedFactors, 1)
		assert.Equal(t, "Weekend Pricing", quote.AppliedFactors[0].Name)
		assert.Equal(t, 1.2, quote.AppliedFactors[0].Multiplier)
	})

	t.Run("duration discount tiers pick the longest match", func(t *testing.T) {
		cases := []struct {
			hours    int
			wantMult float64
		}{
			{hours: 3, wantMult: 1.0},
			{hours: 4, wantMult: 0.95},
			{hours: 8, wantMult: 0.85},
			{hours: 24, wantMult: 0.7},
			{hours: 48, wantMult: 0.7},
		}

		for _, tc := range cases {
			start := at(11, 14, 0)
			quote, err := calc.Calculate(listingID, start, start.Add(time.Duration(tc.hours)*time.Hour), 10)
			require.NoError(t, err)

			assert.Equal(t, tc.wantMult, quote.TotalMultiplier, "%dh stay", tc.hours)
			if tc.wantMult < 1 {
				require.NotEmpty(t, quote.AppliedFactors)
				last := quote.AppliedFactors[len(quote.AppliedFactors)-1]
				assert.Equal(t, pricing.FactorDuration, last.Type)
				assert.Negative(t, quote.Breakdown[len(quote.Breakdown)-1].Amount)
				assert.Equal(t, pricing.BreakdownDiscount, quote.Breakdown[len(quote.Breakdown)-1].Type)
			}
		}
	})

	t.Run("effective hourly rate never increases with duration", func(t *testing.T) {
		prev := -1.0
		for _, hours := range []float64{1, 3, 4, 6, 8, 12, 24, 36} {
			start := at(11, 14, 0)
			quote, err := calc.Calculate(listingID, start, start.Add(time.Duration(hours*float64(time.Hour))), 10)
			require.NoError(t, err)

			effective := quote.FinalPrice / hours
			if prev >= 0 {
				assert.LessOrEqual(t, effective, prev+1e-9, "%vh stay", hours)
			}
			prev = effective
		}
	})

	t.Run("business hours surge", func(t *testing.T) {
		surgeCalc := pricing.NewCalculator(alwaysSurge)

		// Wednesday 11:00: off-peak but inside the weekday surge window.
		quote, err := surgeCalc.Calculate(listingID, at(12, 11, 0), at(12, 13, 0), 10)
		require.NoError(t, err)

		assert.True(t, quote.SurgeActive)
		require.Len(t, quote.AppliedFactors, 1)
		assert.Equal(t, "High Demand", quote.AppliedFactors[0].Name)
		assert.Equal(t, pricing.FactorDemand, quote.AppliedFactors[0].Type)
		assert.Equal(t, 1.5, quote.AppliedFactors[0].Multiplier)
		assert.Equal(t, 30.0, quote.FinalPrice)
	})

	t.Run("saturday evening surge uses the higher tier", func(t *testing.T) {
		surgeCalc := pricing.NewCalculator(alwaysSurge)

		// Saturday 21:00: outside peak, weekend x1.3, evening surge x1.8.
		quote, err := surgeCalc.Calculate(listingID, at(15, 21, 0), at(15, 22, 0), 10)
		require.NoError(t, err)

		assert.True(t, quote.SurgeActive)
		require.Len(t, quote.AppliedFactors, 2)
		assert.Equal(t, 1.8, quote.AppliedFactors[1].Multiplier)
		assert.Equal(t, 2.34, quote.TotalMultiplier) // 1.3 * 1.8
		assert.Equal(t, 23.4, quote.FinalPrice)
	})

	t.Run("total multiplier composes applied factors", func(t *testing.T) {
		surgeCalc := pricing.NewCalculator(alwaysSurge)

		// Saturday 08:00, 9 hours: peak x1.5, 8h+ discount x0.85, weekend x1.3.
		quote, err := surgeCalc.Calculate(listingID, at(15, 8, 0), at(15, 17, 0), 12)
		require.NoError(t, err)

		product := 1.0
		for _, f := range quote.AppliedFactors {
			product *= f.Multiplier
		}
		assert.InDelta(t, quote.TotalMultiplier, product, 0.005)
		assert.InDelta(t, quote.BasePrice*quote.TotalMultiplier, quote.FinalPrice, 0.005)
	})

	t.Run("fixed demand makes the calculation pure", func(t *testing.T) {
		surgeCalc := pricing.NewCalculator(alwaysSurge)

		first, err := surgeCalc.Calculate(listingID, at(14, 19, 0), at(14, 22, 0), 8.5)
		require.NoError(t, err)
		second, err := surgeCalc.Calculate(listingID, at(14, 19, 0), at(14, 22, 0), 8.5)
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Quote mismatch (-first +second):\n%s", diff)
		}
	})

	t.Run("fractional durations are allowed", func(t *testing.T) {
		quote, err := calc.Calculate(listingID, at(11, 14, 0), at(11, 15, 30), 10)
		require.NoError(t, err)

		assert.InDelta(t, 15.0, quote.BasePrice, 1e-9)
		assert.Equal(t, 15.0, quote.FinalPrice)
	})
}
