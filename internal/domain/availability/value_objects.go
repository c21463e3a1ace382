package availability

import (
	"strconv"
	"strings"
)

// OperatingHours is a host-defined open window in "HH:00" form, e.g.
// {"08:00", "20:00"}. A zero value means fully open ([0, 24)).
//
// Known limitation: only the hour component is honored. A close time of
// "17:30" is truncated to hour 17; partial-hour windows are not
// representable at slot granularity.
type OperatingHours struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// HourBounds returns the open interval [startHour, endHour) with the
// [0, 24) default for missing or malformed fields.
func (h OperatingHours) HourBounds() (int, int) {
	start := parseHour(h.Start, 0)
	end := parseHour(h.End, 24)
	return start, end
}

func parseHour(s string, def int) int {
	if s == "" {
		return def
	}
	head, _, _ := strings.Cut(s, ":")
	hour, err := strconv.Atoi(head)
	if err != nil || hour < 0 || hour > 24 {
		return def
	}
	return hour
}
