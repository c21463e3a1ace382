package request

import (
	"time"

	"parkpricer/internal/domain/availability"
	"parkpricer/internal/usecase/queries"
)

// DateLayout is the calendar-day format accepted by the slot grid endpoint.
const DateLayout = "2006-01-02"

type ConflictRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Status    string    `json:"status,omitempty"`
}

type SuggestionRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
	Label string    `json:"label,omitempty"`
}

type OperatingHoursRequest struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type SlotGridRequest struct {
	Date           string                 `json:"date" binding:"required"`
	Conflicts      []ConflictRequest      `json:"conflicts,omitempty" binding:"omitempty,dive"`
	Suggestions    []SuggestionRequest    `json:"suggestions,omitempty" binding:"omitempty,dive"`
	OperatingHours *OperatingHoursRequest `json:"operating_hours,omitempty"`
}

func (r SlotGridRequest) ToInput() (queries.SlotGridInput, error) {
	day, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return queries.SlotGridInput{}, err
	}

	input := queries.SlotGridInput{Date: day}

	input.Conflicts = make([]availability.Conflict, len(r.Conflicts))
	for i, c := range r.Conflicts {
		input.Conflicts[i] = availability.Conflict{
			StartTime: c.StartTime,
			EndTime:   c.EndTime,
			Status:    c.Status,
		}
	}

	input.Suggestions = make([]availability.Suggestion, len(r.Suggestions))
	for i, s := range r.Suggestions {
		input.Suggestions[i] = availability.Suggestion{
			Start: s.Start,
			End:   s.End,
			Label: s.Label,
		}
	}

	if r.OperatingHours != nil {
		input.OperatingHours = availability.OperatingHours{
			Start: r.OperatingHours.Start,
			End:   r.OperatingHours.End,
		}
	}

	return input, nil
}
