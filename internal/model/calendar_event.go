package model

import (
	"fmt"
	"time"
)

// CalendarEvent is a derived projection of a booking onto the calendar.
// It is never persisted and is rebuilt from bookings on every load.
type CalendarEvent struct {
	ID           string
	Title        string
	Date         time.Time
	Time         string
	BookingID    string
	CustomerName string
	Location     string
}

// EventFromBooking projects a booking into its calendar event.
func EventFromBooking(b Booking) CalendarEvent {
	return CalendarEvent{
		ID:           b.ID,
		Title:        fmt.Sprintf("%s - %s", b.EventType, b.CustomerName),
		Date:         b.Date,
		Time:         b.Time,
		BookingID:    b.ID,
		CustomerName: b.CustomerName,
		Location:     b.Location,
	}
}

// EventsFromBookings projects a booking list, preserving order.
func EventsFromBookings(bookings []Booking) []CalendarEvent {
	events := make([]CalendarEvent, len(bookings))
	for i, b := range bookings {
		events[i] = EventFromBooking(b)
	}
	return events
}
