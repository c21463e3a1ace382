package pricing

import (
	"fmt"
	"math"
	"time"

	"parkpricer/internal/pkg/errs"

	"github.com/google/uuid"
)

// Time-of-day tiers, evaluated on the start time's local hour.
const (
	peakMultiplier      = 1.5
	lateNightMultiplier = 0.8
)

// Day-of-week tiers.
const (
	weekendMultiplier       = 1.3
	fridayEveningMultiplier = 1.2
)

// Demand surge tiers and draw probabilities.
const (
	businessSurgeMultiplier = 1.5
	businessSurgeChance     = 0.3
	eveningSurgeMultiplier  = 1.8
	eveningSurgeChance      = 0.4
	surgeThreshold          = 1.2
)

// Calculator produces deterministic parking quotes from a base hourly rate
// and a requested interval. It holds no state beyond the injected demand
// signal; every call builds a fresh Quote.
type Calculator struct {
	demand DemandSignal
}

func NewCalculator(demand DemandSignal) *Calculator {
	return &Calculator{demand: demand}
}

// Calculate applies the ordered multiplicative factors (time-of-day,
// duration discount, day-of-week, demand surge) to baseHourlyRate over
// [start, end). The interval must be non-empty and the rate positive.
func (c *Calculator) Calculate(_ uuid.UUID, start, end time.Time, baseHourlyRate float64) (*Quote, error) {
	if !end.After(start) {
		return nil, errs.ErrInvalidInterval
	}
	if baseHourlyRate <= 0 {
		return nil, errs.ErrInvalidBasePrice
	}

	hours := end.Sub(start).Hours()
	basePrice := baseHourlyRate * hours

	quote := &Quote{
		BasePrice:      basePrice,
		AppliedFactors: []Factor{},
		AppliedRules:   []Rule{},
		Breakdown: []BreakdownItem{{
			Label:       "Base Price",
			Description: fmt.Sprintf("%.1f hours at $%.2f/hr", hours, baseHourlyRate),
			Amount:      basePrice,
			Type:        BreakdownBase,
		}},
	}

	total := 1.0
	total *= c.applyTimeOfDay(quote, start, basePrice)
	total *= c.applyDurationDiscount(quote, hours, basePrice)
	total *= c.applyDayOfWeek(quote, start, basePrice)
	total *= c.applyDemandSurge(quote, start, basePrice)

	quote.TotalMultiplier = round2(total)
	quote.FinalPrice = round2(basePrice * quote.TotalMultiplier)

	return quote, nil
}

func (c *Calculator) applyTimeOfDay(quote *Quote, start time.Time, basePrice float64) float64 {
	hour := start.Hour()

	switch {
	case (hour >= 7 && hour <= 10) || (hour >= 17 && hour <= 20):
		appendFactor(quote, Factor{
			Type:        FactorTime,
			Name:        "Peak Hours",
			Description: "Morning and evening commute demand",
			Multiplier:  peakMultiplier,
		}, basePrice)
		return peakMultiplier
	case hour >= 22 || hour <= 6:
		appendFactor(quote, Factor{
			Type:        FactorTime,
			Name:        "Late Night",
			Description: "Off-peak overnight rate",
			Multiplier:  lateNightMultiplier,
		}, basePrice)
		return lateNightMultiplier
	default:
		return 1.0
	}
}

func (c *Calculator) applyDurationDiscount(quote *Quote, hours, basePrice float64) float64 {
	var multiplier float64
	switch {
	case hours >= 24:
		multiplier = 0.7
	case hours >= 8:
		multiplier = 0.85
	case hours >= 4:
		multiplier = 0.95
	default:
		return 1.0
	}

	appendFactor(quote, Factor{
		Type:        FactorDuration,
		Name:        "Duration Discount",
		Description: fmt.Sprintf("%.0f%% off for longer stays", (1-multiplier)*100),
		Multiplier:  multiplier,
	}, basePrice)
	return multiplier
}

func (c *Calculator) applyDayOfWeek(quote *Quote, start time.Time, basePrice float64) float64 {
	day := start.Weekday()
	hour := start.Hour()

	var multiplier float64
	switch {
	case day == time.Saturday || day == time.Sunday:
		multiplier = weekendMultiplier
	case day == time.Friday && hour >= 17:
		multiplier = fridayEveningMultiplier
	default:
		return 1.0
	}

	appendFactor(quote, Factor{
		Type:        FactorTime,
		Name:        "Weekend Pricing",
		Description: "Weekend and Friday evening demand",
		Multiplier:  multiplier,
	}, basePrice)
	return multiplier
}

func (c *Calculator) applyDemandSurge(quote *Quote, start time.Time, basePrice float64) float64 {
	day := start.Weekday()
	hour := start.Hour()
	weekday := day >= time.Monday && day <= time.Friday

	multiplier := 1.0
	switch {
	case weekday && hour >= 8 && hour <= 18:
		if c.demand.Level(start) < businessSurgeChance {
			multiplier = businessSurgeMultiplier
		}
	case (day == time.Friday || day == time.Saturday) && hour >= 18 && hour <= 23:
		if c.demand.Level(start) < eveningSurgeChance {
			multiplier = eveningSurgeMultiplier
		}
	}

	quote.SurgeActive = multiplier > surgeThreshold
	if !quote.SurgeActive {
		return 1.0
	}

	appendFactor(quote, Factor{
		Type:        FactorDemand,
		Name:        "High Demand",
		Description: "Elevated demand in this area right now",
		Multiplier:  multiplier,
	}, basePrice)
	return multiplier
}

// appendFactor records an applied factor and its mirrored breakdown line.
// Line amounts stay un-rounded on purpose; only the quote totals round.
func appendFactor(quote *Quote, f Factor, basePrice float64) {
	f.Active = true
	quote.AppliedFactors = append(quote.AppliedFactors, f)

	itemType := BreakdownSurcharge
	if f.Multiplier < 1 {
		itemType = BreakdownDiscount
	}
	quote.Breakdown = append(quote.Breakdown, BreakdownItem{
		Label:       f.Name,
		Description: f.Description,
		Amount:      basePrice * (f.Multiplier - 1),
		Type:        itemType,
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
