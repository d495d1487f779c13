package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"eventdesk/internal/model"
)

// AvailabilityPayload is the wire format for creating or replacing the
// availability record of one date. The backend replaces any existing record
// for the same (manager, date) pair rather than appending.
type AvailabilityPayload struct {
	Date                string             `json:"date"` // ISO-8601
	IsFullDay           bool               `json:"isFullDay"`
	Status              string             `json:"status"`
	TimeSlots           []model.TimeSlot   `json:"timeSlots"`
	WeekendAvailability model.WeekendFlags `json:"weekendAvailability"`
}

// ListAvailability fetches all availability records for a month.
func (c *Client) ListAvailability(ctx context.Context, month time.Month, year int) ([]model.Availability, error) {
	params := url.Values{}
	params.Set("month", fmt.Sprint(int(month)))
	params.Set("year", fmt.Sprint(year))

	endpoint := "/availability?" + params.Encode()
	cacheKey := fmt.Sprintf("availability:%d:%d", year, int(month))
	var resp struct {
		Success      bool                 `json:"success"`
		Availability []model.Availability `json:"availability"`
	}

	if c.readCache(ctx, cacheKey, &resp) {
		return resp.Availability, nil
	}

	if err := c.doGet(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	c.writeCache(ctx, cacheKey, resp)
	return resp.Availability, nil
}

// GetAvailabilityByDate fetches the record for one date (YYYY-MM-DD).
func (c *Client) GetAvailabilityByDate(ctx context.Context, date string) (*model.Availability, error) {
	var resp struct {
		Success      bool               `json:"success"`
		Availability model.Availability `json:"availability"`
	}
	if err := c.doGet(ctx, "/availability/"+url.PathEscape(date), &resp); err != nil {
		return nil, err
	}
	return &resp.Availability, nil
}

// SetAvailability creates or replaces the record for the payload's date.
func (c *Client) SetAvailability(ctx context.Context, payload AvailabilityPayload) error {
	var resp struct {
		Success bool `json:"success"`
	}
	if err := c.doPost(ctx, "/availability", payload, &resp); err != nil {
		return err
	}
	c.invalidateCache(ctx, "availability:")
	return nil
}

// DeleteAvailability removes a record by id.
func (c *Client) DeleteAvailability(ctx context.Context, id string) error {
	if err := c.doDelete(ctx, "/availability/"+url.PathEscape(id), nil); err != nil {
		return err
	}
	c.invalidateCache(ctx, "availability:")
	return nil
}

// CheckAvailability asks the backend whether a manager is free on a date,
// optionally at a specific time.
func (c *Client) CheckAvailability(ctx context.Context, managerID, date, timeOfDay string) (bool, error) {
	body := map[string]string{"managerId": managerID, "date": date}
	if timeOfDay != "" {
		body["time"] = timeOfDay
	}
	var resp struct {
		Success   bool `json:"success"`
		Available bool `json:"available"`
	}
	if err := c.doPost(ctx, "/availability/check", body, &resp); err != nil {
		return false, err
	}
	return resp.Available, nil
}
