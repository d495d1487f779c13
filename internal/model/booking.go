package model

import "time"

// Booking statuses as used by the backend. Transitions are owned by the
// backend; the client only requests them.
const (
	BookingPending   = "Pending"
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
	BookingCompleted = "Completed"
)

// Booking represents a customer engagement, confirmed or pending.
type Booking struct {
	ID            string    `json:"_id"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	CustomerEmail string    `json:"customerEmail"`
	EventType     string    `json:"eventType"`
	Date          time.Time `json:"date"`
	Time          string    `json:"time"` // HH:MM
	Location      string    `json:"location"`
	Status        string    `json:"status"`
	ManagerID     string    `json:"managerId"`
	ServiceIDs    []string  `json:"serviceIds"`
	TotalAmount   float64   `json:"totalAmount"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// OccursOn reports whether the booking falls on the given calendar day.
func (b *Booking) OccursOn(date time.Time) bool {
	return SameDay(b.Date, date)
}

// IsActive reports whether the booking still occupies its date.
func (b *Booking) IsActive() bool {
	return b.Status != BookingCancelled
}
