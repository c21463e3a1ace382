package pricing

import (
	"math/rand"
	"sync"
	"time"
)

// DemandSignal supplies the demand level used for surge decisions. The
// production default is a synthetic pseudo-random source standing in for a
// real telemetry feed; tests inject a fixed value.
type DemandSignal interface {
	// Level reports demand in [0, 1) for the given start time.
	Level(at time.Time) float64
}

// SyntheticDemand draws uniform pseudo-random levels. Seed 0 seeds from the
// wall clock. Safe for concurrent use.
type SyntheticDemand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSyntheticDemand(seed int64) *SyntheticDemand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SyntheticDemand{rng: rand.New(rand.NewSource(seed))}
}

func (d *SyntheticDemand) Level(_ time.Time) float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Float64()
}

// FixedDemand always reports the same level.
type FixedDemand struct {
	Value float64
}

func (d FixedDemand) Level(_ time.Time) float64 {
	return d.Value
}
