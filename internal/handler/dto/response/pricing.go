package response

import (
	"parkpricer/internal/domain/pricing"
	"parkpricer/internal/usecase/queries"

	"github.com/google/uuid"
)

type FactorResponse struct {
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Multiplier  float64 `json:"multiplier"`
	Active      bool    `json:"active"`
}

type BreakdownItemResponse struct {
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
}

type QuoteResponse struct {
	BasePrice       float64                 `json:"base_price"`
	AppliedFactors  []FactorResponse        `json:"applied_factors"`
	AppliedRules    []RuleResponse          `json:"applied_rules"`
	TotalMultiplier float64                 `json:"total_multiplier"`
	FinalPrice      float64                 `json:"final_price"`
	SurgeActive     bool                    `json:"surge_active"`
	Breakdown       []BreakdownItemResponse `json:"breakdown"`
}

func FromQuote(q *pricing.Quote) *QuoteResponse {
	resp := &QuoteResponse{
		BasePrice:       q.BasePrice,
		AppliedFactors:  make([]FactorResponse, len(q.AppliedFactors)),
		AppliedRules:    fromRules(q.AppliedRules),
		TotalMultiplier: q.TotalMultiplier,
		FinalPrice:      q.FinalPrice,
		SurgeActive:     q.SurgeActive,
		Breakdown:       make([]BreakdownItemResponse, len(q.Breakdown)),
	}
	for i, f := range q.AppliedFactors {
		resp.AppliedFactors[i] = FactorResponse{
			Type:        string(f.Type),
			Name:        f.Name,
			Description: f.Description,
			Multiplier:  f.Multiplier,
			Active:      f.Active,
		}
	}
	for i, b := range q.Breakdown {
		resp.Breakdown[i] = BreakdownItemResponse{
			Label:       b.Label,
			Description: b.Description,
			Amount:      b.Amount,
			Type:        string(b.Type),
		}
	}
	return resp
}

type RuleConditionResponse struct {
	Field    string    `json:"field"`
	Operator string    `json:"operator"`
	Value    float64   `json:"value,omitempty"`
	Values   []float64 `json:"values,omitempty"`
}

type RuleResponse struct {
	ID         uuid.UUID               `json:"id"`
	Name       string                  `json:"name"`
	Conditions []RuleConditionResponse `json:"conditions"`
	Multiplier float64                 `json:"multiplier"`
	Priority   int                     `json:"priority"`
	Active     bool                    `json:"active"`
}

func FromRule(r pricing.Rule) RuleResponse {
	conditions := make([]RuleConditionResponse, len(r.Conditions))
	for i, c := range r.Conditions {
		conditions[i] = RuleConditionResponse{
			Field:    c.Field,
			Operator: string(c.Operator),
			Value:    c.Value,
			Values:   c.Values,
		}
	}
	return RuleResponse{
		ID:         r.ID,
		Name:       r.Name,
		Conditions: conditions,
		Multiplier: r.Multiplier,
		Priority:   r.Priority,
		Active:     r.Active,
	}
}

func fromRules(rules []pricing.Rule) []RuleResponse {
	out := make([]RuleResponse, len(rules))
	for i, r := range rules {
		out[i] = FromRule(r)
	}
	return out
}

type RulesResponse struct {
	Rules              []RuleResponse `json:"rules"`
	Matched            []RuleResponse `json:"matched,omitempty"`
	CombinedMultiplier *float64       `json:"combined_multiplier,omitempty"`
}

func FromRuleEvaluation(eval *queries.RuleEvaluation, probed bool) *RulesResponse {
	resp := &RulesResponse{Rules: fromRules(eval.Rules)}
	if probed {
		resp.Matched = fromRules(eval.Matched)
		multiplier := eval.CombinedMultiplier
		resp.CombinedMultiplier = &multiplier
	}
	return resp
}

type ForecastPointResponse struct {
	Time          string  `json:"time"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

type ForecastResponse struct {
	ListingID uuid.UUID               `json:"listing_id"`
	Points    []ForecastPointResponse `json:"points"`
}

func FromForecast(listingID uuid.UUID, points []pricing.OccupancyPoint) *ForecastResponse {
	resp := &ForecastResponse{
		ListingID: listingID,
		Points:    make([]ForecastPointResponse, len(points)),
	}
	for i, p := range points {
		resp.Points[i] = ForecastPointResponse{
			Time:          p.Time.Format("2006-01-02T15:04:05Z07:00"),
			OccupancyRate: p.OccupancyRate,
		}
	}
	return resp
}
