package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/model"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func newTestClient(handler http.Handler, token string) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, staticToken(token), 5*time.Second), srv
}

func TestBearerHeader(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})
	client, srv := newTestClient(handler, "jwt-token")
	defer srv.Close()

	_, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer jwt-token", gotAuth)
}

func TestNoHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})
	client, srv := newTestClient(handler, "")
	defer srv.Close()

	_, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestErrorNormalization(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	})
	client, srv := newTestClient(handler, "")
	defer srv.Close()

	_, err := client.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.Equal(t, "http 401: Invalid credentials", apiErr.Error())
}

func TestErrorWithoutBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	client, srv := newTestClient(handler, "")
	defer srv.Close()

	_, err := client.GetBooking(context.Background(), "b1")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "http 500", apiErr.Error())
}

func TestLogin(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ravi@example.com", body["email"])

		_ = json.NewEncoder(w).Encode(AuthResponse{
			Success: true,
			Token:   "jwt",
			User:    model.Manager{ID: "m1", Email: body["email"]},
		})
	})
	client, srv := newTestClient(handler, "")
	defer srv.Close()

	resp, err := client.Login(context.Background(), "ravi@example.com", "Demo123!")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "jwt", resp.Token)
	assert.Equal(t, "m1", resp.User.ID)
}

func TestListBookings(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "Pending", q.Get("status"))

		_ = json.NewEncoder(w).Encode(BookingsPage{
			Success:  true,
			Bookings: []model.Booking{{ID: "b1", Status: model.BookingPending}},
			Total:    1,
			Page:     2,
			Pages:    3,
		})
	})
	client, srv := newTestClient(handler, "jwt")
	defer srv.Close()

	page, err := client.ListBookings(context.Background(), 2, 10, "Pending")
	require.NoError(t, err)
	require.Len(t, page.Bookings, 1)
	assert.Equal(t, "b1", page.Bookings[0].ID)
	assert.Equal(t, 3, page.Pages)
}

func TestUpdateBookingStatus(t *testing.T) {
	var gotPath, gotStatus string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		gotPath = r.URL.Path

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotStatus = body["status"]
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})
	client, srv := newTestClient(handler, "jwt")
	defer srv.Close()

	err := client.UpdateBookingStatus(context.Background(), "b1", model.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, "/bookings/b1/status", gotPath)
	assert.Equal(t, model.BookingConfirmed, gotStatus)
}

func TestSetAvailability(t *testing.T) {
	var got AvailabilityPayload
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/availability", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})
	client, srv := newTestClient(handler, "jwt")
	defer srv.Close()

	payload := AvailabilityPayload{
		Date:      "2024-06-10T00:00:00Z",
		IsFullDay: true,
		Status:    model.SlotAvailable,
		TimeSlots: []model.TimeSlot{},
	}
	require.NoError(t, client.SetAvailability(context.Background(), payload))
	assert.Equal(t, payload, got)
}

func TestListAvailability(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "6", q.Get("month"))
		assert.Equal(t, "2024", q.Get("year"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"availability": []model.Availability{
				{ID: "a1", Status: model.SlotAvailable},
			},
		})
	})
	client, srv := newTestClient(handler, "jwt")
	defer srv.Close()

	records, err := client.ListAvailability(context.Background(), time.June, 2024)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a1", records[0].ID)
}

func TestAcceptBroadcastConflict(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Already accepted by another manager"})
	})
	client, srv := newTestClient(handler, "jwt")
	defer srv.Close()

	err := client.AcceptBroadcast(context.Background(), "br1")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
}

func TestHealthCheck(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	client, srv := newTestClient(handler, "")
	defer srv.Close()

	assert.NoError(t, client.HealthCheck(context.Background()))
}
