package queries

import (
	"context"
	"log/slog"
	"time"

	"parkpricer/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	quotesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parkpricer_quotes_total",
		Help: "Number of quotes calculated.",
	})
	surgeQuotesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parkpricer_surge_quotes_total",
		Help: "Number of quotes with an active surge multiplier.",
	})
	ruleFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parkpricer_rule_fallbacks_total",
		Help: "Number of rule reads served from the hardcoded defaults.",
	})
)

type QuoteInput struct {
	ListingID      uuid.UUID
	Start          time.Time
	End            time.Time
	BaseHourlyRate float64
}

type ForecastInput struct {
	ListingID uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// RuleProbe carries the optional booking context for rule evaluation.
// A nil probe means "just list the rules".
type RuleProbe struct {
	Hour          int
	DayOfWeek     time.Weekday
	DurationHours float64
	OccupancyRate *float64
}

// RuleEvaluation reports which stored rules match a probe context.
type RuleEvaluation struct {
	Rules              []pricing.Rule `json:"rules"`
	Matched            []pricing.Rule `json:"matched"`
	CombinedMultiplier float64        `json:"combined_multiplier"`
}

type RulesReadStore interface {
	FindAll(ctx context.Context) ([]pricing.Rule, error)
}

// QuoteSource produces a quote for an interval. The production
// implementation is the remote-first quote client, which degrades to the
// local calculator when no upstream is configured or reachable.
type QuoteSource interface {
	Quote(ctx context.Context, listingID uuid.UUID, start, end time.Time, baseHourlyRate float64) (*pricing.Quote, error)
}

type PricingQueries interface {
	Quote(ctx context.Context, input QuoteInput) (*pricing.Quote, error)
	Rules(ctx context.Context) []pricing.Rule
	EvaluateRules(ctx context.Context, probe *RuleProbe) *RuleEvaluation
	Forecast(ctx context.Context, input ForecastInput) ([]pricing.OccupancyPoint, error)
}

type pricingQueriesImpl struct {
	quotes     QuoteSource
	forecaster *pricing.Forecaster
	rules      RulesReadStore
	logger     *slog.Logger
}

func NewPricingQueries(
	quotes QuoteSource,
	forecaster *pricing.Forecaster,
	rules RulesReadStore,
	logger *slog.Logger,
) PricingQueries {
	return &pricingQueriesImpl{
		quotes:     quotes,
		forecaster: forecaster,
		rules:      rules,
		logger:     logger,
	}
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, input QuoteInput) (*pricing.Quote, error) {
	quote, err := q.quotes.Quote(ctx, input.ListingID, input.Start, input.End, input.BaseHourlyRate)
	if err != nil {
		return nil, err
	}

	quotesTotal.Inc()
	if quote.SurgeActive {
		surgeQuotesTotal.Inc()
	}
	return quote, nil
}

// Rules never fails: a storage error or an empty table degrades to the
// hardcoded defaults, logged but invisible to the caller.
func (q *pricingQueriesImpl) Rules(ctx context.Context) []pricing.Rule {
	rules, err := q.rules.FindAll(ctx)
	if err != nil {
		q.logger.Warn("rule store unavailable, serving default rules", "error", err)
		ruleFallbacksTotal.Inc()
		return pricing.DefaultRules()
	}
	if len(rules) == 0 {
		ruleFallbacksTotal.Inc()
		return pricing.DefaultRules()
	}
	return rules
}

func (q *pricingQueriesImpl) EvaluateRules(ctx context.Context, probe *RuleProbe) *RuleEvaluation {
	rules := q.Rules(ctx)
	eval := &RuleEvaluation{Rules: rules, Matched: []pricing.Rule{}, CombinedMultiplier: 1.0}
	if probe == nil {
		return eval
	}

	matched := pricing.EvaluateRules(rules, pricing.RuleContext{
		Hour:          probe.Hour,
		DayOfWeek:     probe.DayOfWeek,
		DurationHours: probe.DurationHours,
		OccupancyRate: probe.OccupancyRate,
	})
	eval.Matched = matched
	eval.CombinedMultiplier = pricing.CombinedMultiplier(matched)
	return eval
}

func (q *pricingQueriesImpl) Forecast(_ context.Context, input ForecastInput) ([]pricing.OccupancyPoint, error) {
	return q.forecaster.Forecast(input.StartDate, input.EndDate)
}
