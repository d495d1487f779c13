package api

import (
	"context"
	"fmt"
	"net/url"

	"eventdesk/internal/model"
)

// ReviewsPage is one page of customer reviews.
type ReviewsPage struct {
	Success bool           `json:"success"`
	Reviews []model.Review `json:"reviews"`
	Total   int            `json:"total"`
}

// ReviewStats is the aggregate rating summary.
type ReviewStats struct {
	Success       bool    `json:"success"`
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}

// ListReviews fetches reviews, optionally filtered by rating.
func (c *Client) ListReviews(ctx context.Context, page, limit, rating int) (*ReviewsPage, error) {
	params := url.Values{}
	params.Set("page", fmt.Sprint(page))
	params.Set("limit", fmt.Sprint(limit))
	if rating > 0 {
		params.Set("rating", fmt.Sprint(rating))
	}

	var resp ReviewsPage
	if err := c.doGet(ctx, "/reviews?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetReviewStats fetches the aggregate rating summary.
func (c *Client) GetReviewStats(ctx context.Context) (*ReviewStats, error) {
	var resp ReviewStats
	if err := c.doGet(ctx, "/reviews/stats/dashboard", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProfile replaces mutable profile fields of the current manager.
func (c *Client) UpdateProfile(ctx context.Context, updates map[string]any) (*model.Manager, error) {
	var resp struct {
		Success bool          `json:"success"`
		User    model.Manager `json:"user"`
	}
	if err := c.doPut(ctx, "/users/profile", updates, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}
