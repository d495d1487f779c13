package model

import "time"

// Service is a single catalog entry offered by a manager.
type Service struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image,omitempty"`
	ManagerID   string    `json:"managerId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Package bundles several services at a combined price.
type Package struct {
	ID            string    `json:"_id"`
	Name          string    `json:"name"`
	ServiceIDs    []string  `json:"serviceIds"`
	Services      []Service `json:"services,omitempty"`
	CombinedPrice float64   `json:"combinedPrice"`
	OriginalPrice float64   `json:"originalPrice"`
	ManagerID     string    `json:"managerId"`
	CreatedAt     time.Time `json:"createdAt"`
}
