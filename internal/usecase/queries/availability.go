package queries

import (
	"context"
	"time"

	"parkpricer/internal/domain/availability"
)

type SlotGridInput struct {
	Date           time.Time
	Conflicts      []availability.Conflict
	Suggestions    []availability.Suggestion
	OperatingHours availability.OperatingHours
}

type AvailabilityQueries interface {
	SlotGrid(ctx context.Context, input SlotGridInput) []availability.TimeSlot
}

type availabilityQueriesImpl struct{}

func NewAvailabilityQueries() AvailabilityQueries {
	return &availabilityQueriesImpl{}
}

func (q *availabilityQueriesImpl) SlotGrid(_ context.Context, input SlotGridInput) []availability.TimeSlot {
	return availability.GenerateTimeSlots(input.Date, input.Conflicts, input.Suggestions, input.OperatingHours)
}
