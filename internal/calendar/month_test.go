package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eventdesk/internal/model"
)

func TestMonthDays(t *testing.T) {
	days := MonthDays(2024, time.June)
	assert.Len(t, days, 30)
	assert.Equal(t, date(2024, time.June, 1), days[0])
	assert.Equal(t, date(2024, time.June, 30), days[29])

	assert.Len(t, MonthDays(2024, time.February), 29)
	assert.Len(t, MonthDays(2023, time.February), 28)
}

func TestMonthView(t *testing.T) {
	bookings := []model.Booking{
		{ID: "b1", Date: time.Date(2024, time.June, 15, 18, 30, 0, 0, time.UTC)},
	}
	availabilities := []model.Availability{
		{Date: date(2024, time.June, 10), Status: model.SlotAvailable},
		{Date: date(2024, time.June, 11), Status: model.SlotUnavailable},
	}

	view := MonthView(2024, time.June, bookings, availabilities)
	assert.Len(t, view, 30)
	assert.Equal(t, StatusNone, view[0].Status)
	assert.Equal(t, StatusAvailable, view[9].Status)
	assert.Equal(t, StatusUnavailable, view[10].Status)
	assert.Equal(t, StatusBooked, view[14].Status)
}

func TestWeekendDays(t *testing.T) {
	// June 2024: Saturdays 1,8,15,22,29 and Sundays 2,9,16,23,30.
	weekend := WeekendDays(2024, time.June)
	assert.Len(t, weekend, 10)
	assert.Equal(t, 1, weekend[0].Day())
	assert.Equal(t, 30, weekend[9].Day())
	for _, d := range weekend {
		assert.True(t, model.IsWeekend(d))
	}
}

func TestLeadingBlanks(t *testing.T) {
	// June 2024 starts on a Saturday.
	assert.Equal(t, 6, LeadingBlanks(2024, time.June))
	// September 2024 starts on a Sunday.
	assert.Equal(t, 0, LeadingBlanks(2024, time.September))
}
