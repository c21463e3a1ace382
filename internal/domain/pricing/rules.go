package pricing

import (
	"time"

	"parkpricer/internal/pkg/errs"

	"github.com/google/uuid"
)

type Operator string

const (
	OpEq      Operator = "eq"
	OpGt      Operator = "gt"
	OpLt      Operator = "lt"
	OpGte     Operator = "gte"
	OpLte     Operator = "lte"
	OpIn      Operator = "in"
	OpBetween Operator = "between"
)

func (o Operator) IsValid() bool {
	switch o {
	case OpEq, OpGt, OpLt, OpGte, OpLte, OpIn, OpBetween:
		return true
	default:
		return false
	}
}

// Condition fields evaluated against a booking context.
const (
	FieldHour          = "hour"
	FieldDayOfWeek     = "day_of_week"
	FieldOccupancyRate = "occupancy_rate"
	FieldDurationHours = "duration_hours"
)

// Condition is one field/operator/value triple. Value carries the operand
// for scalar operators; Values carries the operand list for in and between
// (between reads the first two entries as inclusive bounds).
type Condition struct {
	Field    string    `json:"field"`
	Operator Operator  `json:"operator"`
	Value    float64   `json:"value,omitempty"`
	Values   []float64 `json:"values,omitempty"`
}

// Rule is a declarative, server-configured pricing rule. All conditions
// must hold for the rule to match.
type Rule struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	Conditions []Condition `json:"conditions"`
	Multiplier float64     `json:"multiplier"`
	Priority   int         `json:"priority"`
	Active     bool        `json:"active"`
}

func (r Rule) Validate() error {
	if r.Name == "" {
		return errs.ErrInvalidRule
	}
	if r.Multiplier <= 0 {
		return errs.ErrInvalidMultiplier
	}
	for _, c := range r.Conditions {
		if !c.Operator.IsValid() {
			return errs.ErrInvalidCondition
		}
		switch c.Operator {
		case OpIn:
			if len(c.Values) == 0 {
				return errs.ErrInvalidCondition
			}
		case OpBetween:
			if len(c.Values) < 2 {
				return errs.ErrInvalidCondition
			}
		}
	}
	return nil
}

// RuleContext is the booking context a rule set is evaluated against.
// OccupancyRate is optional; conditions on it fail when unknown.
type RuleContext struct {
	Hour          int
	DayOfWeek     time.Weekday
	DurationHours float64
	OccupancyRate *float64
}

func ContextForInterval(start, end time.Time) RuleContext {
	return RuleContext{
		Hour:          start.Hour(),
		DayOfWeek:     start.Weekday(),
		DurationHours: end.Sub(start).Hours(),
	}
}

func (c RuleContext) fieldValue(field string) (float64, bool) {
	switch field {
	case FieldHour:
		return float64(c.Hour), true
	case FieldDayOfWeek:
		return float64(c.DayOfWeek), true
	case FieldDurationHours:
		return c.DurationHours, true
	case FieldOccupancyRate:
		if c.OccupancyRate == nil {
			return 0, false
		}
		return *c.OccupancyRate, true
	default:
		return 0, false
	}
}

// EvaluateRules returns the active rules whose conditions all hold for ctx,
// ordered by descending priority. Inactive rules and rules referencing
// unknown fields never match.
func EvaluateRules(rules []Rule, ctx RuleContext) []Rule {
	matched := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.Active && ruleMatches(r, ctx) {
			matched = append(matched, r)
		}
	}

	// Insertion sort keeps ties in input order.
	for i := 1; i < len(matched); i++ {
		for j := i; j > 0 && matched[j].Priority > matched[j-1].Priority; j-- {
			matched[j], matched[j-1] = matched[j-1], matched[j]
		}
	}
	return matched
}

// CombinedMultiplier is the product of the matched rules' multipliers,
// rounded to 2 decimals.
func CombinedMultiplier(matched []Rule) float64 {
	total := 1.0
	for _, r := range matched {
		total *= r.Multiplier
	}
	return round2(total)
}

func ruleMatches(r Rule, ctx RuleContext) bool {
	for _, cond := range r.Conditions {
		if !conditionHolds(cond, ctx) {
			return false
		}
	}
	return true
}

func conditionHolds(cond Condition, ctx RuleContext) bool {
	v, ok := ctx.fieldValue(cond.Field)
	if !ok {
		return false
	}

	switch cond.Operator {
	case OpEq:
		return v == cond.Value
	case OpGt:
		return v > cond.Value
	case OpLt:
		return v < cond.Value
	case OpGte:
		return v >= cond.Value
	case OpLte:
		return v <= cond.Value
	case OpIn:
		for _, candidate := range cond.Values {
			if v == candidate {
				return true
			}
		}
		return false
	case OpBetween:
		return v >= cond.Values[0] && v <= cond.Values[1]
	default:
		return false
	}
}

// DefaultRules is the hardcoded fallback used when the rule store is empty
// or unreachable. IDs are fixed so repeated fallbacks stay stable.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:   uuid.MustParse("7f8c2a10-0b42-4d35-9d6e-3f1a5c8b9e01"),
			Name: "Peak Hours",
			Conditions: []Condition{
				{Field: FieldHour, Operator: OpBetween, Values: []float64{7, 10}},
			},
			Multiplier: 1.5,
			Priority:   10,
			Active:     true,
		},
		{
			ID:   uuid.MustParse("7f8c2a10-0b42-4d35-9d6e-3f1a5c8b9e02"),
			Name: "Weekend Pricing",
			Conditions: []Condition{
				{Field: FieldDayOfWeek, Operator: OpIn, Values: []float64{0, 6}},
			},
			Multiplier: 1.3,
			Priority:   5,
			Active:     true,
		},
		{
			ID:   uuid.MustParse("7f8c2a10-0b42-4d35-9d6e-3f1a5c8b9e03"),
			Name: "High Demand",
			Conditions: []Condition{
				{Field: FieldOccupancyRate, Operator: OpGt, Value: 0.8},
			},
			Multiplier: 2.0,
			Priority:   20,
			Active:     true,
		},
	}
}
