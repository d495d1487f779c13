// Package calendar derives a single display status per calendar day from
// the month's bookings and availability records.
package calendar

import (
	"time"

	"eventdesk/internal/model"
)

// DayStatus is the mutually exclusive display status of one calendar day.
type DayStatus string

const (
	StatusBooked      DayStatus = "booked"
	StatusAvailable   DayStatus = "available"
	StatusWeekendOnly DayStatus = "weekend-only"
	StatusUnavailable DayStatus = "unavailable"
	StatusNone        DayStatus = "none"
)

// dayContext is the resolved input for one date: whether any booking
// occurs on it and the (first) matching availability record, if any.
type dayContext struct {
	date         time.Time
	hasBooking   bool
	availability *model.Availability
}

// rule pairs a predicate with the status it yields. Rules are evaluated in
// order; the first match wins.
type rule struct {
	match  func(dayContext) bool
	status DayStatus
}

// The priority order: bookings shadow everything, weekend flags shadow the
// stored record status, and an absent record means no status at all.
var rules = []rule{
	{
		match:  func(c dayContext) bool { return c.hasBooking },
		status: StatusBooked,
	},
	{
		match: func(c dayContext) bool {
			return c.availability != nil && c.availability.WeekendOpen(c.date)
		},
		status: StatusWeekendOnly,
	},
	{
		match: func(c dayContext) bool {
			return c.availability != nil && c.availability.Status == model.SlotAvailable
		},
		status: StatusAvailable,
	},
	{
		match: func(c dayContext) bool {
			return c.availability != nil && c.availability.Status == model.SlotUnavailable
		},
		status: StatusUnavailable,
	},
}

// DeriveStatus computes the display status for a date. Pure function over
// its inputs; callers re-derive whenever bookings or availabilities change.
func DeriveStatus(date time.Time, bookings []model.Booking, availabilities []model.Availability) DayStatus {
	ctx := dayContext{
		date:         date,
		hasBooking:   len(BookingsFor(date, bookings)) > 0,
		availability: AvailabilityFor(date, availabilities),
	}

	for _, r := range rules {
		if r.match(ctx) {
			return r.status
		}
	}
	return StatusNone
}

// BookingsFor returns the bookings occurring on the given calendar day.
func BookingsFor(date time.Time, bookings []model.Booking) []model.Booking {
	var matched []model.Booking
	for i := range bookings {
		if bookings[i].OccursOn(date) {
			matched = append(matched, bookings[i])
		}
	}
	return matched
}

// AvailabilityFor returns the record matching the given calendar day.
// The invariant is one record per date; if duplicates exist the first in
// list order wins, deterministically.
func AvailabilityFor(date time.Time, availabilities []model.Availability) *model.Availability {
	for i := range availabilities {
		if availabilities[i].Matches(date) {
			return &availabilities[i]
		}
	}
	return nil
}

// EventsFor projects the bookings of a date into calendar events.
func EventsFor(date time.Time, bookings []model.Booking) []model.CalendarEvent {
	return model.EventsFromBookings(BookingsFor(date, bookings))
}
