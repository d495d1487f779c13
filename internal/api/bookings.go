package api

import (
	"context"
	"fmt"
	"net/url"

	"eventdesk/internal/metrics"
	"eventdesk/internal/model"
)

// BookingsPage is one page of the bookings list.
type BookingsPage struct {
	Success  bool            `json:"success"`
	Bookings []model.Booking `json:"bookings"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	Pages    int             `json:"pages"`
}

// BookingStats is the dashboard stats summary.
type BookingStats struct {
	Success        bool    `json:"success"`
	TotalBookings  int     `json:"totalBookings"`
	PendingCount   int     `json:"pendingCount"`
	ConfirmedCount int     `json:"confirmedCount"`
	CompletedCount int     `json:"completedCount"`
	TotalEarnings  float64 `json:"totalEarnings"`
}

// ListBookings fetches a page of bookings, optionally filtered by status.
func (c *Client) ListBookings(ctx context.Context, page, limit int, status string) (*BookingsPage, error) {
	params := url.Values{}
	params.Set("page", fmt.Sprint(page))
	params.Set("limit", fmt.Sprint(limit))
	if status != "" {
		params.Set("status", status)
	}

	endpoint := "/bookings?" + params.Encode()
	cacheKey := "bookings:" + params.Encode()
	var resp BookingsPage

	if c.readCache(ctx, cacheKey, &resp) {
		return &resp, nil
	}

	if err := c.doGet(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	c.writeCache(ctx, cacheKey, resp)
	return &resp, nil
}

// GetBooking fetches one booking by id.
func (c *Client) GetBooking(ctx context.Context, id string) (*model.Booking, error) {
	var resp struct {
		Success bool          `json:"success"`
		Booking model.Booking `json:"booking"`
	}
	if err := c.doGet(ctx, "/bookings/"+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}
	return &resp.Booking, nil
}

// CreateBooking creates a manual booking entry.
func (c *Client) CreateBooking(ctx context.Context, booking model.Booking) (*model.Booking, error) {
	var resp struct {
		Success bool          `json:"success"`
		Booking model.Booking `json:"booking"`
	}
	if err := c.doPost(ctx, "/bookings", booking, &resp); err != nil {
		return nil, err
	}
	c.invalidateCache(ctx, "bookings:")
	return &resp.Booking, nil
}

// UpdateBookingStatus transitions a booking's status.
func (c *Client) UpdateBookingStatus(ctx context.Context, id, status string) error {
	body := map[string]string{"status": status}
	var resp struct {
		Success bool `json:"success"`
	}
	if err := c.doPut(ctx, "/bookings/"+url.PathEscape(id)+"/status", body, &resp); err != nil {
		return err
	}
	metrics.IncBookingDecision(status)
	c.invalidateCache(ctx, "bookings:")
	return nil
}

// GetBookingStats fetches the dashboard stats.
func (c *Client) GetBookingStats(ctx context.Context) (*BookingStats, error) {
	var resp BookingStats
	if err := c.doGet(ctx, "/bookings/stats/dashboard", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCompletedBookings fetches recently completed bookings.
func (c *Client) GetCompletedBookings(ctx context.Context, limit int) ([]model.Booking, error) {
	var resp struct {
		Success  bool            `json:"success"`
		Bookings []model.Booking `json:"bookings"`
	}
	endpoint := fmt.Sprintf("/bookings/completed/recent?limit=%d", limit)
	if err := c.doGet(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return resp.Bookings, nil
}
