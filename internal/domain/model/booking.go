package model

import (
	"errors"
	"time"
)

// Booking is a booking record as served by the booking API, used both in
// the admin console listing and in a user's booking history.
type Booking struct {
	ID          int64     `json:"id"`
	EventID     int64     `json:"event_id"`
	UserID      int64     `json:"user_id"`
	UserEmail   string    `json:"user_email"`
	NumTickets  int       `json:"num_tickets"`
	TotalPrice  float64   `json:"total_price"`
	BookingDate time.Time `json:"booking_date"`
	Event       *Event    `json:"event,omitempty"`
}

// BookingRequest is the body for POST /events/{id}/book.
type BookingRequest struct {
	NumberOfTickets int   `json:"number_of_tickets"`
	EventID         int64 `json:"event_id"`
}

// BookingResponse is the record returned for a successful booking.
type BookingResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	EventID         int64     `json:"event_id"`
	NumberOfTickets int       `json:"number_of_tickets"`
	BookingDate     time.Time `json:"booking_date"`
}

var (
	// ErrTooFewTickets rejects a booking request below the minimum of one ticket.
	ErrTooFewTickets = errors.New("at least one ticket must be requested")

	// ErrTooManyTickets rejects a booking request exceeding the tickets
	// available at the time the form was rendered.
	ErrTooManyTickets = errors.New("not enough tickets available")
)

// Validate enforces the quantity guard against the available count from
// the most recent event fetch. The server remains authoritative about
// whether tickets are truly available at booking time.
func (r BookingRequest) Validate(available int) error {
	if r.NumberOfTickets < 1 {
		return ErrTooFewTickets
	}
	if r.NumberOfTickets > available {
		return ErrTooManyTickets
	}
	return nil
}
