package api

import (
	"context"
	"fmt"
	"net/url"

	"eventdesk/internal/model"
)

// ServicesPage is one page of the service catalog.
type ServicesPage struct {
	Success  bool            `json:"success"`
	Services []model.Service `json:"services"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	Pages    int             `json:"pages"`
}

// ListServices fetches a catalog page, optionally filtered by category.
func (c *Client) ListServices(ctx context.Context, page, limit int, category string) (*ServicesPage, error) {
	params := url.Values{}
	params.Set("page", fmt.Sprint(page))
	params.Set("limit", fmt.Sprint(limit))
	if category != "" {
		params.Set("category", category)
	}

	endpoint := "/services?" + params.Encode()
	cacheKey := "services:" + params.Encode()
	var resp ServicesPage

	if c.readCache(ctx, cacheKey, &resp) {
		return &resp, nil
	}

	if err := c.doGet(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	c.writeCache(ctx, cacheKey, resp)
	return &resp, nil
}

// CreateService adds a catalog entry.
func (c *Client) CreateService(ctx context.Context, svc model.Service) (*model.Service, error) {
	var resp struct {
		Success bool          `json:"success"`
		Service model.Service `json:"service"`
	}
	if err := c.doPost(ctx, "/services", svc, &resp); err != nil {
		return nil, err
	}
	c.invalidateCache(ctx, "services:")
	return &resp.Service, nil
}

// UpdateService replaces a catalog entry.
func (c *Client) UpdateService(ctx context.Context, id string, svc model.Service) (*model.Service, error) {
	var resp struct {
		Success bool          `json:"success"`
		Service model.Service `json:"service"`
	}
	if err := c.doPut(ctx, "/services/"+url.PathEscape(id), svc, &resp); err != nil {
		return nil, err
	}
	c.invalidateCache(ctx, "services:")
	return &resp.Service, nil
}

// DeleteService removes a catalog entry.
func (c *Client) DeleteService(ctx context.Context, id string) error {
	if err := c.doDelete(ctx, "/services/"+url.PathEscape(id), nil); err != nil {
		return err
	}
	c.invalidateCache(ctx, "services:")
	return nil
}

// ListCategories returns the known service categories.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var resp struct {
		Success    bool     `json:"success"`
		Categories []string `json:"categories"`
	}
	if err := c.doGet(ctx, "/services/categories/list", &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}
