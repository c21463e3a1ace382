package pricing

type FactorType string

const (
	FactorTime     FactorType = "time"
	FactorDemand   FactorType = "demand"
	FactorEvent    FactorType = "event"
	FactorWeather  FactorType = "weather"
	FactorLocation FactorType = "location"
	FactorDuration FactorType = "duration"
)

type BreakdownType string

const (
	BreakdownBase      BreakdownType = "base"
	BreakdownSurcharge BreakdownType = "surcharge"
	BreakdownDiscount  BreakdownType = "discount"
	BreakdownFee       BreakdownType = "fee"
)

// Factor is one applied multiplier. Multiplier 1.0 factors are never
// recorded, so Active is always true on an applied factor.
type Factor struct {
	Type        FactorType `json:"type"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Multiplier  float64    `json:"multiplier"`
	Active      bool       `json:"active"`
}

// BreakdownItem is one line of the displayed receipt. Amount is signed;
// negative means discount.
type BreakdownItem struct {
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Amount      float64       `json:"amount"`
	Type        BreakdownType `json:"type"`
}

// Quote is the aggregate price calculation result.
//
// Breakdown line amounts are un-rounded intermediates while FinalPrice
// rounds the full product, so summing the breakdown may drift from
// FinalPrice by a cent in edge cases. Display code depends on the existing
// figures; do not reconcile them here.
type Quote struct {
	BasePrice       float64         `json:"base_price"`
	AppliedFactors  []Factor        `json:"applied_factors"`
	AppliedRules    []Rule          `json:"applied_rules"`
	TotalMultiplier float64         `json:"total_multiplier"`
	FinalPrice      float64         `json:"final_price"`
	SurgeActive     bool            `json:"surge_active"`
	Breakdown       []BreakdownItem `json:"breakdown"`
}
