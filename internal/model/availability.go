package model

import "time"

// Availability record statuses. The "weekend-only" display state is a
// read-time projection and never stored here.
const (
	SlotAvailable   = "available"
	SlotUnavailable = "unavailable"
	SlotBooked      = "booked"
)

// WeekendFlags marks which weekend days a record opens up. Every stored
// record carries a pair, both false for weekday records.
type WeekendFlags struct {
	Saturday bool `json:"saturday"`
	Sunday   bool `json:"sunday"`
}

// WeekendFlagsFor derives the flags from a date's day of week.
func WeekendFlagsFor(date time.Time) WeekendFlags {
	return WeekendFlags{
		Saturday: date.Weekday() == time.Saturday,
		Sunday:   date.Weekday() == time.Sunday,
	}
}

// TimeSlot is a sub-range of a day with its own status. IDs are generated
// client-side and are unique within their Availability.
type TimeSlot struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"` // HH:MM, 24-hour
	EndTime   string `json:"endTime"`   // HH:MM, 24-hour
	Status    string `json:"status"`
	BookingID string `json:"bookingId,omitempty"`
}

// Availability is the per-date, per-manager open/closed statement.
// At most one record exists per (manager, date); the date is compared by
// calendar day only.
type Availability struct {
	ID        string        `json:"_id"`
	ManagerID string        `json:"managerId"`
	Date      time.Time     `json:"date"`
	IsFullDay bool          `json:"isFullDay"`
	Status    string        `json:"status"`
	TimeSlots []TimeSlot    `json:"timeSlots"`
	Weekend   *WeekendFlags `json:"weekendAvailability,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Matches reports whether the record is keyed to the given calendar day.
func (a *Availability) Matches(date time.Time) bool {
	return SameDay(a.Date, date)
}

// WeekendOpen reports whether the record opens the given date through its
// weekend flags: the date must fall on a weekend and the flag for that
// specific day must be set.
func (a *Availability) WeekendOpen(date time.Time) bool {
	if a.Weekend == nil {
		return false
	}
	switch date.Weekday() {
	case time.Saturday:
		return a.Weekend.Saturday
	case time.Sunday:
		return a.Weekend.Sunday
	default:
		return false
	}
}
