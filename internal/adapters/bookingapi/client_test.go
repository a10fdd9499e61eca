package bookingapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evently/evently-ui/internal/domain/model"
	"github.com/evently/evently-ui/internal/ports"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestExchangeCredentialsSendsFormEncodedGrant(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "password", r.PostForm.Get("grant_type"))
		assert.Equal(t, "user@example.com", r.PostForm.Get("username"))
		assert.Equal(t, "hunter2", r.PostForm.Get("password"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token": "tok-abc",
			"token_type":   "bearer",
		})
	}))

	token, err := client.ExchangeCredentials(context.Background(), "user@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
}

func TestExchangeCredentialsRejection(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect email or password"})
	}))

	_, err := client.ExchangeCredentials(context.Background(), "user@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, IsAuthFailure(err))
}

func TestCurrentUserAttachesBearerToken(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":       int64(7),
			"email":    "user@example.com",
			"is_admin": true,
		})
	}))

	identity, err := client.CurrentUser(context.Background(), "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, int64(7), identity.ID)
	assert.Equal(t, "user@example.com", identity.Email)
	assert.True(t, identity.IsAdmin)
}

func TestRegisterSendsJSONBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "new@example.com", body["email"])
		assert.Equal(t, "hunter2", body["password"])
		assert.Equal(t, false, body["is_admin"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": int64(9), "email": "new@example.com"})
	}))

	identity, err := client.Register(context.Background(), ports.RegisterInput{
		Email:    "new@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), identity.ID)
}

func TestBookPostsToEventPath(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/events/5/book", r.URL.Path)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))

		var body model.BookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 3, body.NumberOfTickets)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(model.BookingResponse{ID: 1, EventID: 5, NumberOfTickets: 3})
	}))

	booked, err := client.Book(context.Background(), "tok-abc", model.BookingRequest{NumberOfTickets: 3, EventID: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(1), booked.ID)
}

func TestCancelBookingUsesDelete(t *testing.T) {
	var called bool
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/events/8/cancel", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.CancelBooking(context.Background(), "tok-abc", 8))
	assert.True(t, called)
}

func TestBookingHistoryIsEmptyBodyPost(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/events/history", r.URL.Path)
		assert.Empty(t, r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]model.Booking{{ID: 2, EventID: 5}})
	}))

	bookings, err := client.BookingHistory(context.Background(), "tok-abc")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, int64(5), bookings[0].EventID)
}

func TestErrorResponsesBecomeAPIErrors(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Event not found"}`))
	}))

	_, err := client.AvailableEvents(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Contains(t, apiErr.Body, "Event not found")
	assert.True(t, IsNotFoundOrConflict(err))
	assert.False(t, IsAuthFailure(err))
}

func TestErrorClassification(t *testing.T) {
	unauthorized := &APIError{Status: http.StatusUnauthorized}
	unprocessable := &APIError{Status: http.StatusUnprocessableEntity}

	assert.True(t, IsAuthFailure(unauthorized))
	assert.True(t, IsValidationFailure(unprocessable))
	assert.False(t, IsValidationFailure(unauthorized))
	assert.False(t, IsAuthFailure(errors.New("connection refused")))
}
