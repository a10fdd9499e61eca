package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/evently/evently-ui/internal/domain/model"
	"github.com/evently/evently-ui/internal/ports"
)

// ErrEventNotFound indicates a booking targeted an event that is no longer
// listed.
var ErrEventNotFound = errors.New("event not found")

// CatalogServiceOptions groups dependencies for CatalogService.
type CatalogServiceOptions struct {
	Events ports.EventAPI // Required: booking API event client
	Admin  ports.AdminAPI // Required: booking API admin client
	Logger *slog.Logger   // Optional: structured logger
}

// CatalogService fronts the booking API's event and booking endpoints and
// enforces the local checks that must happen before a request leaves the
// process.
type CatalogService struct {
	events ports.EventAPI
	admin  ports.AdminAPI
	logger *slog.Logger
}

// NewCatalogService constructs a new CatalogService.
func NewCatalogService(opts CatalogServiceOptions) *CatalogService {
	if opts.Events == nil {
		//nolint:forbidigo // Service construction must fail fast during wiring when dependencies are missing
		panic("EventAPI is required")
	}
	if opts.Admin == nil {
		//nolint:forbidigo // Service construction must fail fast during wiring when dependencies are missing
		panic("AdminAPI is required")
	}

	return &CatalogService{
		events: opts.Events,
		admin:  opts.Admin,
		logger: opts.Logger,
	}
}

// AvailableEvents lists events open for booking.
func (s *CatalogService) AvailableEvents(ctx context.Context) ([]model.Event, error) {
	return s.events.AvailableEvents(ctx)
}

// Book validates the requested quantity against current availability and
// only then submits the booking. A quantity below one or above the event's
// remaining tickets never reaches the API.
func (s *CatalogService) Book(ctx context.Context, token string, req model.BookingRequest) (model.BookingResponse, error) {
	events, err := s.events.AvailableEvents(ctx)
	if err != nil {
		return model.BookingResponse{}, fmt.Errorf("check availability: %w", err)
	}

	available := -1
	for _, event := range events {
		if event.ID == req.EventID {
			available = event.AvailableTickets
			break
		}
	}
	if available < 0 {
		return model.BookingResponse{}, fmt.Errorf("%w: %d", ErrEventNotFound, req.EventID)
	}

	if err := req.Validate(available); err != nil {
		return model.BookingResponse{}, err
	}

	booked, err := s.events.Book(ctx, token, req)
	if err != nil {
		return model.BookingResponse{}, err
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "booking placed",
			"event_id", req.EventID, "tickets", req.NumberOfTickets)
	}
	return booked, nil
}

// CancelBooking cancels the caller's booking for the event. Handlers only
// call this after the user confirmed the cancellation.
func (s *CatalogService) CancelBooking(ctx context.Context, token string, eventID int64) error {
	if err := s.events.CancelBooking(ctx, token, eventID); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "booking cancelled", "event_id", eventID)
	}
	return nil
}

// BookingHistory returns the caller's bookings.
func (s *CatalogService) BookingHistory(ctx context.Context, token string) ([]model.Booking, error) {
	return s.events.BookingHistory(ctx, token)
}

// AllEvents lists every event, including sold-out ones, for the admin
// console.
func (s *CatalogService) AllEvents(ctx context.Context, token string) ([]model.Event, error) {
	return s.admin.ListEvents(ctx, token)
}

// CreateEvent validates the form and creates the event.
func (s *CatalogService) CreateEvent(ctx context.Context, token string, req model.CreateEventRequest) (model.Event, error) {
	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		return model.Event{}, &model.ValidationError{Fields: fieldErrs}
	}

	event, err := s.admin.CreateEvent(ctx, token, req)
	if err != nil {
		return model.Event{}, err
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "event created", "event_id", event.ID, "title", event.Title)
	}
	return event, nil
}

// UpdateEvent applies a partial update to an event.
func (s *CatalogService) UpdateEvent(ctx context.Context, token string, in ports.UpdateEventInput) (model.Event, error) {
	event, err := s.admin.UpdateEvent(ctx, token, in)
	if err != nil {
		return model.Event{}, err
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "event updated", "event_id", event.ID)
	}
	return event, nil
}

// DeleteEvent removes an event.
func (s *CatalogService) DeleteEvent(ctx context.Context, token string, eventID int64) error {
	if err := s.admin.DeleteEvent(ctx, token, eventID); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "event deleted", "event_id", eventID)
	}
	return nil
}

// AllBookings lists every booking for the admin console.
func (s *CatalogService) AllBookings(ctx context.Context, token string) ([]model.Booking, error) {
	return s.admin.ListBookings(ctx, token)
}
