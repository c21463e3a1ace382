package availability

import "time"

// HoursPerDay is the number of slots produced per calendar day.
const HoursPerDay = 24

// GenerateTimeSlots classifies every hour of the given calendar day against
// known conflicts, suggested slots, and the host's operating hours. The
// time-of-day component of day is ignored; slots are built in the day's
// location.
//
// Classification priority: unavailable > conflict > suggested > available.
// Missing inputs degrade gracefully: no conflicts, no suggestions, and a
// fully open operating window. The function never fails.
func GenerateTimeSlots(day time.Time, conflicts []Conflict, suggestions []Suggestion, hours OperatingHours) []TimeSlot {
	opStart, opEnd := hours.HourBounds()
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	slots := make([]TimeSlot, 0, HoursPerDay)
	for h := 0; h < HoursPerDay; h++ {
		slotStart := midnight.Add(time.Duration(h) * time.Hour)
		slotEnd := slotStart.Add(time.Hour)

		withinHours := h >= opStart && h < opEnd
		hasConflict := anyOverlap(conflicts, slotStart, slotEnd)
		suggested := anySuggestionAt(suggestions, slotStart)

		slot := TimeSlot{
			Start:     slotStart,
			End:       slotEnd,
			Available: withinHours && !hasConflict,
		}

		switch {
		case !withinHours:
			slot.Type = SlotUnavailable
		case hasConflict:
			slot.Type = SlotConflict
		case suggested:
			slot.Type = SlotSuggested
		default:
			slot.Type = SlotAvailable
		}

		slots = append(slots, slot)
	}

	return slots
}

// anyOverlap reports whether any conflict's half-open interval
// [StartTime, EndTime) intersects [slotStart, slotEnd).
func anyOverlap(conflicts []Conflict, slotStart, slotEnd time.Time) bool {
	for _, c := range conflicts {
		if slotStart.Before(c.EndTime) && slotEnd.After(c.StartTime) {
			return true
		}
	}
	return false
}

func anySuggestionAt(suggestions []Suggestion, slotStart time.Time) bool {
	for _, s := range suggestions {
		if s.Start.Equal(slotStart) {
			return true
		}
	}
	return false
}
