package availability

import "time"

type SlotType string

const (
	SlotAvailable   SlotType = "available"
	SlotConflict    SlotType = "conflict"
	SlotSuggested   SlotType = "suggested"
	SlotUnavailable SlotType = "unavailable"
)

func (t SlotType) String() string {
	return string(t)
}

// TimeSlot is a one-hour interval on a calendar day, classified for display
// and submission gating. Slots are recomputed from scratch on every
// evaluation and never persisted.
type TimeSlot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
	Type      SlotType  `json:"type"`
}

// Conflict is an existing reservation supplied by the booking backend.
// The half-open interval [StartTime, EndTime) is what matters; Status is
// carried through for display only and never inspected here.
type Conflict struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

// Suggestion is a candidate slot offered to the user. A slot counts as
// suggested only when the suggestion starts exactly on the slot boundary.
type Suggestion struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label,omitempty"`
}
