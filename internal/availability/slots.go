package availability

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"eventdesk/internal/model"
)

// Default bounds for a freshly created slot.
const (
	DefaultSlotStart = "09:00"
	DefaultSlotEnd   = "17:00"
)

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format: %s", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time out of range: %s", s)
	}
	return hour*60 + minute, nil
}

// ValidateSlots checks every slot parses, ends after it starts, and that
// no two slots overlap. Slots are treated as half-open [start, end)
// intervals. The original client saved slot lists unchecked; malformed
// ranges surfaced only as backend data anomalies, so the check lives here
// at the mutation boundary.
func ValidateSlots(slots []model.TimeSlot) error {
	type span struct{ start, end int }
	spans := make([]span, 0, len(slots))

	for _, s := range slots {
		start, err := parseClock(s.StartTime)
		if err != nil {
			return err
		}
		end, err := parseClock(s.EndTime)
		if err != nil {
			return err
		}
		if end <= start {
			return fmt.Errorf("%w: %s-%s", ErrSlotOrder, s.StartTime, s.EndTime)
		}
		spans = append(spans, span{start, end})
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	for i := 1; i < len(spans); i++ {
		if spans[i].start < spans[i-1].end {
			return ErrSlotOverlap
		}
	}
	return nil
}
