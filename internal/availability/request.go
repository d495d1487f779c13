package availability

import (
	"time"

	"eventdesk/internal/api"
	"eventdesk/internal/model"
)

// Request is a tagged availability mutation. Each variant carries only the
// fields it needs and is converted to the wire format at the API boundary,
// so stale fields never leak into a payload.
type Request interface {
	Date() time.Time
	Payload() api.AvailabilityPayload
}

// SetAvailable opens a date, either full-day or per time slot. The wire
// status is always "available"; the weekend-only display state is derived
// at read time from the stored flags.
type SetAvailable struct {
	On        time.Time
	IsFullDay bool
	Slots     []model.TimeSlot
	// Weekend overrides the flags derived from On's day of week when
	// non-nil. Every stored record carries a pair either way.
	Weekend *model.WeekendFlags
}

func (r SetAvailable) Date() time.Time { return r.On }

func (r SetAvailable) Payload() api.AvailabilityPayload {
	flags := model.WeekendFlagsFor(r.On)
	if r.Weekend != nil {
		flags = *r.Weekend
	}
	slots := r.Slots
	if slots == nil {
		slots = []model.TimeSlot{}
	}
	return api.AvailabilityPayload{
		Date:                r.On.Format(time.RFC3339),
		IsFullDay:           r.IsFullDay,
		Status:              model.SlotAvailable,
		TimeSlots:           slots,
		WeekendAvailability: flags,
	}
}

// Block closes a date entirely. Blocking always clears the weekend flags.
type Block struct {
	On time.Time
}

func (r Block) Date() time.Time { return r.On }

func (r Block) Payload() api.AvailabilityPayload {
	return api.AvailabilityPayload{
		Date:                r.On.Format(time.RFC3339),
		IsFullDay:           true,
		Status:              model.SlotUnavailable,
		TimeSlots:           []model.TimeSlot{},
		WeekendAvailability: model.WeekendFlags{},
	}
}

// SetWeekend opens a weekend date through its day-of-week flag with a
// single slot spanning the whole day.
type SetWeekend struct {
	On time.Time
}

func (r SetWeekend) Date() time.Time { return r.On }

func (r SetWeekend) Payload() api.AvailabilityPayload {
	return api.AvailabilityPayload{
		Date:      r.On.Format(time.RFC3339),
		IsFullDay: false,
		Status:    model.SlotAvailable,
		TimeSlots: []model.TimeSlot{{
			ID:        "1",
			StartTime: "00:00",
			EndTime:   "23:59",
			Status:    model.SlotAvailable,
		}},
		WeekendAvailability: model.WeekendFlagsFor(r.On),
	}
}
