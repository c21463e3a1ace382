package request

import (
	"time"

	"parkpricer/internal/domain/pricing"
	"parkpricer/internal/usecase/commands"
	"parkpricer/internal/usecase/queries"

	"github.com/google/uuid"
)

type CalculateQuoteRequest struct {
	ListingID uuid.UUID `json:"listing_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	BasePrice float64   `json:"base_price" binding:"required,gt=0"`
}

func (r CalculateQuoteRequest) ToInput() queries.QuoteInput {
	return queries.QuoteInput{
		ListingID:      r.ListingID,
		Start:          r.StartTime,
		End:            r.EndTime,
		BaseHourlyRate: r.BasePrice,
	}
}

type RuleConditionRequest struct {
	Field    string    `json:"field" binding:"required"`
	Operator string    `json:"operator" binding:"required"`
	Value    float64   `json:"value,omitempty"`
	Values   []float64 `json:"values,omitempty"`
}

type UpdateRuleRequest struct {
	Name       *string                `json:"name,omitempty"`
	Multiplier *float64               `json:"multiplier,omitempty" binding:"omitempty,gt=0"`
	Priority   *int                   `json:"priority,omitempty"`
	Active     *bool                  `json:"active,omitempty"`
	Conditions []RuleConditionRequest `json:"conditions,omitempty" binding:"omitempty,dive"`
}

func (r UpdateRuleRequest) ToParams() commands.UpdateRuleParams {
	params := commands.UpdateRuleParams{
		Name:       r.Name,
		Multiplier: r.Multiplier,
		Priority:   r.Priority,
		Active:     r.Active,
	}
	if r.Conditions != nil {
		params.Conditions = make([]pricing.Condition, len(r.Conditions))
		for i, c := range r.Conditions {
			params.Conditions[i] = pricing.Condition{
				Field:    c.Field,
				Operator: pricing.Operator(c.Operator),
				Value:    c.Value,
				Values:   c.Values,
			}
		}
	}
	return params
}

type DemandForecastRequest struct {
	ListingID uuid.UUID `json:"listing_id" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

func (r DemandForecastRequest) ToInput() queries.ForecastInput {
	return queries.ForecastInput{
		ListingID: r.ListingID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}
