package model

import "time"

// Aadhar verification states for the manager profile.
const (
	AadharPending  = "Pending"
	AadharVerified = "Verified"
	AadharRejected = "Rejected"
)

// Location is the manager's registered address with coordinates.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Manager is the authenticated event-service provider.
type Manager struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Photo        string    `json:"photo,omitempty"`
	AadharStatus string    `json:"aadharStatus"`
	AadharNumber string    `json:"aadharNumber,omitempty"`
	VerifiedName string    `json:"verifiedName,omitempty"`
	Location     Location  `json:"location"`
	CreatedAt    time.Time `json:"createdAt"`
}
