package api

import (
	"context"

	"eventdesk/internal/model"
)

// AuthResponse is the envelope returned by auth endpoints.
type AuthResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Token   string        `json:"token,omitempty"`
	User    model.Manager `json:"user"`
}

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Password string  `json:"password"`
	Address  string  `json:"address"`
	Lat      float64 `json:"lat,omitempty"`
	Lng      float64 `json:"lng,omitempty"`
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp AuthResponse
	if err := c.doPost(ctx, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoginWithPhone authenticates with phone and a one-time code. The OTP is
// issued and verified by the backend; the client only passes it through.
func (c *Client) LoginWithPhone(ctx context.Context, phone, otp string) (*AuthResponse, error) {
	body := map[string]string{"phone": phone, "otp": otp}
	var resp AuthResponse
	if err := c.doPost(ctx, "/auth/phone-login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterWithPhone creates a manager account keyed to a verified phone
// number. The OTP is issued and checked by the backend.
func (c *Client) RegisterWithPhone(ctx context.Context, name, phone, otp string) (*AuthResponse, error) {
	body := map[string]string{"name": name, "phone": phone, "otp": otp}
	var resp AuthResponse
	if err := c.doPost(ctx, "/auth/phone-register", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a manager account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.doPost(ctx, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the profile for the current token.
func (c *Client) Me(ctx context.Context) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.doGet(ctx, "/auth/me", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyAadhar submits an Aadhar number for verification.
func (c *Client) VerifyAadhar(ctx context.Context, aadharNumber string) (*AuthResponse, error) {
	body := map[string]string{"aadharNumber": aadharNumber}
	var resp AuthResponse
	if err := c.doPost(ctx, "/auth/verify-aadhar", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChangePassword replaces the account password.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, password string) error {
	body := map[string]string{"currentPassword": currentPassword, "password": password}
	var resp AuthResponse
	return c.doPut(ctx, "/auth/change-password", body, &resp)
}
