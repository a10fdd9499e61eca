package ports

import (
	"context"

	"github.com/evently/evently-ui/internal/domain/model"
)

// EventAPI is the user-facing slice of the booking API. Calls that act on
// behalf of a user take the session's bearer token explicitly; attaching
// it to the wire request is the adapter's concern.
type EventAPI interface {
	// AvailableEvents lists publicly visible events with open inventory.
	AvailableEvents(ctx context.Context) ([]model.Event, error)

	// Book submits a booking. The quantity guard runs before this call.
	Book(ctx context.Context, token string, req model.BookingRequest) (model.BookingResponse, error)

	// CancelBooking cancels the caller's booking for the given event.
	CancelBooking(ctx context.Context, token string, eventID int64) error

	// BookingHistory returns the caller's bookings.
	BookingHistory(ctx context.Context, token string) ([]model.Booking, error)
}

// UpdateEventInput groups parameters for an event update.
type UpdateEventInput struct {
	EventID int64
	Changes model.UpdateEventRequest
}

// AdminAPI is the admin slice of the booking API. Every call requires a
// bearer token belonging to an admin identity; the API enforces this.
type AdminAPI interface {
	ListEvents(ctx context.Context, token string) ([]model.Event, error)
	CreateEvent(ctx context.Context, token string, req model.CreateEventRequest) (model.Event, error)
	UpdateEvent(ctx context.Context, token string, in UpdateEventInput) (model.Event, error)
	DeleteEvent(ctx context.Context, token string, eventID int64) error
	ListBookings(ctx context.Context, token string) ([]model.Booking, error)
}
