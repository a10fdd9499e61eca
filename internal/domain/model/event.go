package model

// Package model contains domain models mirroring the booking API's
// resource shapes. Field names follow the API's JSON contracts.

import (
	"strings"
	"time"
)

// Event is an event listing as served by the booking API.
type Event struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Date             time.Time `json:"date"`
	Venue            string    `json:"venue"`
	TotalTickets     int       `json:"total_tickets"`
	AvailableTickets int       `json:"available_tickets"`
	Price            float64   `json:"price"`
}

// CreateEventRequest is the body for POST /admin/events.
type CreateEventRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	Venue        string    `json:"venue"`
	TotalTickets int       `json:"total_tickets"`
	Price        float64   `json:"price"`
}

// Validate returns field-level errors for the create form. The server
// performs its own validation; this only catches what the form can catch.
func (r CreateEventRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(r.Title) == "" {
		errs["title"] = "Title is required."
	}
	if strings.TrimSpace(r.Venue) == "" {
		errs["venue"] = "Venue is required."
	}
	if r.Date.IsZero() {
		errs["date"] = "Date is required."
	}
	if r.TotalTickets < 1 {
		errs["total_tickets"] = "Total tickets must be at least 1."
	}
	if r.Price < 0 {
		errs["price"] = "Price cannot be negative."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// UpdateEventRequest is the body for PUT /admin/events/{id}.
// Pointer fields distinguish "unchanged" from an explicit zero value.
type UpdateEventRequest struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
	Venue        *string    `json:"venue,omitempty"`
	TotalTickets *int       `json:"total_tickets,omitempty"`
	Price        *float64   `json:"price,omitempty"`
}
