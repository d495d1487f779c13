package calendar

import (
	"time"

	"eventdesk/internal/model"
)

// Day is one derived cell of a month view.
type Day struct {
	Date   time.Time
	Status DayStatus
}

// MonthDays enumerates every calendar day of a month at midnight UTC.
func MonthDays(year int, month time.Month) []time.Time {
	n := model.DaysIn(year, month)
	days := make([]time.Time, n)
	for i := 0; i < n; i++ {
		days[i] = time.Date(year, month, i+1, 0, 0, 0, 0, time.UTC)
	}
	return days
}

// MonthView derives the status of every day in a month.
func MonthView(year int, month time.Month, bookings []model.Booking, availabilities []model.Availability) []Day {
	dates := MonthDays(year, month)
	days := make([]Day, len(dates))
	for i, d := range dates {
		days[i] = Day{Date: d, Status: DeriveStatus(d, bookings, availabilities)}
	}
	return days
}

// WeekendDays returns the Saturdays and Sundays of a month.
func WeekendDays(year int, month time.Month) []time.Time {
	var weekend []time.Time
	for _, d := range MonthDays(year, month) {
		if model.IsWeekend(d) {
			weekend = append(weekend, d)
		}
	}
	return weekend
}

// LeadingBlanks returns the number of empty cells before the 1st of the
// month in a Sunday-first grid.
func LeadingBlanks(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return int(first.Weekday())
}
