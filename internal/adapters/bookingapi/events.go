package bookingapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/evently/evently-ui/internal/domain/model"
	"github.com/evently/evently-ui/internal/ports"
)

// Compile-time conformance to the catalog ports.
var (
	_ ports.EventAPI = (*Client)(nil)
	_ ports.AdminAPI = (*Client)(nil)
)

// AvailableEvents lists publicly visible events via GET /events.
func (c *Client) AvailableEvents(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := c.do(ctx, apiRequest{Method: http.MethodGet, Path: "/events"}, &events); err != nil {
		return nil, fmt.Errorf("list available events: %w", err)
	}
	return events, nil
}

// Book submits a booking via POST /events/{id}/book.
func (c *Client) Book(ctx context.Context, token string, req model.BookingRequest) (model.BookingResponse, error) {
	var booked model.BookingResponse
	err := c.do(ctx, apiRequest{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/events/%d/book", req.EventID),
		Token:  token,
		Body:   req,
	}, &booked)
	if err != nil {
		return model.BookingResponse{}, fmt.Errorf("book event %d: %w", req.EventID, err)
	}
	return booked, nil
}

// CancelBooking cancels the caller's booking via DELETE /events/{id}/cancel.
func (c *Client) CancelBooking(ctx context.Context, token string, eventID int64) error {
	err := c.do(ctx, apiRequest{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/events/%d/cancel", eventID),
		Token:  token,
	}, nil)
	if err != nil {
		return fmt.Errorf("cancel booking for event %d: %w", eventID, err)
	}
	return nil
}

// BookingHistory returns the caller's bookings via POST /events/history.
// The endpoint is a POST with an empty body; that is the API's contract.
func (c *Client) BookingHistory(ctx context.Context, token string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := c.do(ctx, apiRequest{
		Method: http.MethodPost,
		Path:   "/events/history",
		Token:  token,
	}, &bookings)
	if err != nil {
		return nil, fmt.Errorf("booking history: %w", err)
	}
	return bookings, nil
}

// ListEvents lists all events (including sold out) via GET /admin/events.
func (c *Client) ListEvents(ctx context.Context, token string) ([]model.Event, error) {
	var events []model.Event
	err := c.do(ctx, apiRequest{
		Method: http.MethodGet,
		Path:   "/admin/events",
		Token:  token,
	}, &events)
	if err != nil {
		return nil, fmt.Errorf("list admin events: %w", err)
	}
	return events, nil
}

// CreateEvent creates an event via POST /admin/events.
func (c *Client) CreateEvent(ctx context.Context, token string, req model.CreateEventRequest) (model.Event, error) {
	var event model.Event
	err := c.do(ctx, apiRequest{
		Method: http.MethodPost,
		Path:   "/admin/events",
		Token:  token,
		Body:   req,
	}, &event)
	if err != nil {
		return model.Event{}, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// UpdateEvent updates an event via PUT /admin/events/{id}.
func (c *Client) UpdateEvent(ctx context.Context, token string, in ports.UpdateEventInput) (model.Event, error) {
	var event model.Event
	err := c.do(ctx, apiRequest{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/admin/events/%d", in.EventID),
		Token:  token,
		Body:   in.Changes,
	}, &event)
	if err != nil {
		return model.Event{}, fmt.Errorf("update event %d: %w", in.EventID, err)
	}
	return event, nil
}

// DeleteEvent deletes an event via DELETE /admin/events/{id}.
func (c *Client) DeleteEvent(ctx context.Context, token string, eventID int64) error {
	err := c.do(ctx, apiRequest{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/admin/events/%d", eventID),
		Token:  token,
	}, nil)
	if err != nil {
		return fmt.Errorf("delete event %d: %w", eventID, err)
	}
	return nil
}

// ListBookings lists every booking via GET /admin/booking.
func (c *Client) ListBookings(ctx context.Context, token string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := c.do(ctx, apiRequest{
		Method: http.MethodGet,
		Path:   "/admin/booking",
		Token:  token,
	}, &bookings)
	if err != nil {
		return nil, fmt.Errorf("list all bookings: %w", err)
	}
	return bookings, nil
}
