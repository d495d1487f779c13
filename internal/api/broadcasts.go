package api

import (
	"context"
	"fmt"
	"net/url"

	"eventdesk/internal/model"
)

// BroadcastsPage is one page of broadcast requests.
type BroadcastsPage struct {
	Success    bool                     `json:"success"`
	Broadcasts []model.BroadcastRequest `json:"broadcasts"`
	Total      int                      `json:"total"`
	Page       int                      `json:"page"`
	Pages      int                      `json:"pages"`
}

// ListBroadcasts fetches broadcast requests by status (default Open).
func (c *Client) ListBroadcasts(ctx context.Context, page, limit int, status string) (*BroadcastsPage, error) {
	if status == "" {
		status = model.BroadcastOpen
	}
	params := url.Values{}
	params.Set("page", fmt.Sprint(page))
	params.Set("limit", fmt.Sprint(limit))
	params.Set("status", status)

	var resp BroadcastsPage
	if err := c.doGet(ctx, "/broadcasts?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetBroadcast fetches one broadcast request.
func (c *Client) GetBroadcast(ctx context.Context, id string) (*model.BroadcastRequest, error) {
	var resp struct {
		Success   bool                   `json:"success"`
		Broadcast model.BroadcastRequest `json:"broadcast"`
	}
	if err := c.doGet(ctx, "/broadcasts/"+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}
	return &resp.Broadcast, nil
}

// AcceptBroadcast claims an open request for the current manager. The
// backend rejects the call when another manager accepted it first.
func (c *Client) AcceptBroadcast(ctx context.Context, id string) error {
	var resp struct {
		Success bool `json:"success"`
	}
	return c.doPut(ctx, "/broadcasts/"+url.PathEscape(id)+"/accept", nil, &resp)
}

// ListAcceptedBroadcasts fetches requests accepted by the current manager.
func (c *Client) ListAcceptedBroadcasts(ctx context.Context, page, limit int) (*BroadcastsPage, error) {
	params := url.Values{}
	params.Set("page", fmt.Sprint(page))
	params.Set("limit", fmt.Sprint(limit))

	var resp BroadcastsPage
	if err := c.doGet(ctx, "/broadcasts/my/accepted?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
