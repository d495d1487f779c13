// Package auth manages the manager's authenticated session: login, signup,
// token restore and profile updates, persisting through the session store.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"eventdesk/internal/api"
	"eventdesk/internal/model"
	"eventdesk/internal/session"
	"eventdesk/internal/validate"
)

// ErrNotAuthenticated is returned when an operation needs a session and
// none exists.
var ErrNotAuthenticated = errors.New("not logged in")

// Service wires the auth endpoints to the persistent session store.
type Service struct {
	client *api.Client
	store  *session.Store
	logger *zerolog.Logger
}

func NewService(client *api.Client, store *session.Store, logger *zerolog.Logger) *Service {
	return &Service{client: client, store: store, logger: logger}
}

// Current returns the persisted profile, or nil when logged out.
func (s *Service) Current() *model.Manager {
	sess := s.store.Current()
	if sess == nil {
		return nil
	}
	return &sess.Manager
}

func (s *Service) persistAuth(resp *api.AuthResponse) error {
	if !resp.Success {
		return fmt.Errorf("auth failed: %s", resp.Message)
	}
	return s.store.Persist(session.Session{Manager: resp.User, Token: resp.Token})
}

// Login authenticates with email/password and persists the session.
func (s *Service) Login(ctx context.Context, email, password string) (*model.Manager, error) {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := s.persistAuth(resp); err != nil {
		return nil, err
	}
	if s.logger != nil {
		s.logger.Info().Str("manager", resp.User.ID).Msg("logged in")
	}
	return &resp.User, nil
}

// LoginWithPhone authenticates with phone/OTP and persists the session.
func (s *Service) LoginWithPhone(ctx context.Context, phone, otp string) (*model.Manager, error) {
	resp, err := s.client.LoginWithPhone(ctx, phone, otp)
	if err != nil {
		return nil, fmt.Errorf("phone login: %w", err)
	}
	if err := s.persistAuth(resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Signup validates the form, registers the account and persists the
// session. Password strength is checked before any network call.
func (s *Service) Signup(ctx context.Context, form validate.SignupForm) (*model.Manager, error) {
	if err := validate.Signup(form); err != nil {
		return nil, err
	}

	resp, err := s.client.Register(ctx, api.RegisterRequest{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Password: form.Password,
		Address:  form.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	if err := s.persistAuth(resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// SignupWithPhone registers an account keyed to a phone number. The OTP
// proves ownership; the backend issues and checks it.
func (s *Service) SignupWithPhone(ctx context.Context, name, phone, otp string) (*model.Manager, error) {
	resp, err := s.client.RegisterWithPhone(ctx, name, phone, otp)
	if err != nil {
		return nil, fmt.Errorf("phone signup: %w", err)
	}
	if err := s.persistAuth(resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Restore verifies a persisted token against the backend and refreshes the
// stored profile. A session whose token no longer verifies is dropped.
func (s *Service) Restore(ctx context.Context) (*model.Manager, error) {
	sess := s.store.Current()
	if sess == nil || sess.Token == "" {
		return nil, ErrNotAuthenticated
	}

	resp, err := s.client.Me(ctx)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			_ = s.store.Clear()
			return nil, ErrNotAuthenticated
		}
		// Transport failure: keep the session, surface the error.
		return nil, fmt.Errorf("verify session: %w", err)
	}
	if !resp.Success {
		_ = s.store.Clear()
		return nil, ErrNotAuthenticated
	}

	if err := s.store.Persist(session.Session{Manager: resp.User, Token: sess.Token}); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// UpdateProfile validates and applies profile changes, keeping the stored
// session in sync.
func (s *Service) UpdateProfile(ctx context.Context, form validate.ProfileForm) (*model.Manager, error) {
	if s.store.Current() == nil {
		return nil, ErrNotAuthenticated
	}
	if err := validate.Profile(form); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if form.Name != "" {
		updates["name"] = form.Name
	}
	if form.Email != "" {
		updates["email"] = form.Email
	}
	if form.Phone != "" {
		updates["phone"] = form.Phone
	}
	if form.Address != "" {
		updates["address"] = form.Address
	}

	user, err := s.client.UpdateProfile(ctx, updates)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if err := s.store.Update(*user); err != nil {
		return nil, err
	}
	return user, nil
}

// VerifyAadhar submits the KYC number and refreshes the stored profile
// with the returned verification status.
func (s *Service) VerifyAadhar(ctx context.Context, aadharNumber string) (*model.Manager, error) {
	if err := validate.Aadhar(validate.AadharForm{AadharNumber: aadharNumber}); err != nil {
		return nil, err
	}

	resp, err := s.client.VerifyAadhar(ctx, aadharNumber)
	if err != nil {
		return nil, fmt.Errorf("verify aadhar: %w", err)
	}
	if resp.Success {
		if err := s.store.Update(resp.User); err != nil {
			return nil, err
		}
	}
	return &resp.User, nil
}

// ChangePassword checks the new password's strength and submits the change.
func (s *Service) ChangePassword(ctx context.Context, current, next string) error {
	if pw := validate.CheckPassword(next); !pw.IsValid {
		return fmt.Errorf("weak password: %s", pw.Errors[0])
	}
	if err := s.client.ChangePassword(ctx, current, next); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

// Logout drops the persisted session.
func (s *Service) Logout() error {
	if s.logger != nil {
		s.logger.Info().Msg("logged out")
	}
	return s.store.Clear()
}
