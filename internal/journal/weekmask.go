package journal

import (
	"fmt"
	"time"
)

// SkipMarker marks a weekday that never receives an entry.
const SkipMarker = '_'

// DefaultWeekMask generates entries on weekdays only.
const DefaultWeekMask = "MTWTF__"

// WeekMask is a Monday-first, seven slot day filter. A slot holding
// SkipMarker is skipped; any other rune selects the day.
type WeekMask [7]bool

// ParseWeekMask parses a mask such as "MTWTF__" or "MTWTFSS".
func ParseWeekMask(s string) (WeekMask, error) {
	var m WeekMask
	runes := []rune(s)
	if len(runes) != len(m) {
		return m, fmt.Errorf("weekday mask %q must have exactly %d markers, got %d", s, len(m), len(runes))
	}
	for i, r := range runes {
		m[i] = r != SkipMarker
	}
	return m, nil
}

// Allows reports whether entries may be generated on the given weekday.
func (m WeekMask) Allows(d time.Weekday) bool {
	return m[mondayIndex(d)]
}

func (m WeekMask) String() string {
	const letters = "MTWTFSS"
	out := []byte(letters)
	for i, on := range m {
		if !on {
			out[i] = SkipMarker
		}
	}
	return string(out)
}

// mondayIndex converts time.Weekday (Sunday=0) to Monday=0 indexing.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
