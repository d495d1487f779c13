package model

import "time"

// Broadcast request statuses. An open request is visible to multiple
// managers until one accepts it.
const (
	BroadcastOpen      = "Open"
	BroadcastAccepted  = "Accepted"
	BroadcastExpired   = "Expired"
	BroadcastCompleted = "Completed"
)

// BroadcastRequest is an open customer request up for acceptance.
type BroadcastRequest struct {
	ID            string    `json:"_id"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	CustomerEmail string    `json:"customerEmail"`
	EventType     string    `json:"eventType"`
	GuestCount    int       `json:"guestCount"`
	Date          time.Time `json:"date"`
	Time          string    `json:"time"`
	Location      string    `json:"location"`
	Budget        float64   `json:"budget"`
	Requirements  string    `json:"requirements"`
	Status        string    `json:"status"`
	AcceptedBy    string    `json:"acceptedBy,omitempty"`
	DistanceKm    float64   `json:"distance,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Review is customer feedback attached to a completed booking.
type Review struct {
	ID           string    `json:"_id"`
	CustomerName string    `json:"customerName"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	EventType    string    `json:"eventType"`
	Date         time.Time `json:"date"`
	BookingID    string    `json:"bookingId"`
}
