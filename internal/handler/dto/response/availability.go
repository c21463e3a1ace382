package response

import (
	"time"

	"parkpricer/internal/domain/availability"
)

type TimeSlotResponse struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
	Type      string    `json:"type"`
}

type SlotGridResponse struct {
	Date  string             `json:"date"`
	Slots []TimeSlotResponse `json:"slots"`
}

func FromSlots(date string, slots []availability.TimeSlot) *SlotGridResponse {
	resp := &SlotGridResponse{
		Date:  date,
		Slots: make([]TimeSlotResponse, len(slots)),
	}
	for i, s := range slots {
		resp.Slots[i] = TimeSlotResponse{
			Start:     s.Start,
			End:       s.End,
			Available: s.Available,
			Type:      s.Type.String(),
		}
	}
	return resp
}
