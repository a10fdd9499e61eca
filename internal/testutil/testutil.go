// Package testutil provides testing utilities and helpers for the evently-ui service.
package testutil

import (
	"time"

	domainauth "github.com/evently/evently-ui/internal/domain/auth"
	"github.com/evently/evently-ui/internal/domain/model"
)

// SessionBuilder provides a fluent interface for building Session values for testing.
type SessionBuilder struct {
	sess domainauth.Session
}

// NewSession creates a SessionBuilder with sensible defaults.
func NewSession() *SessionBuilder {
	return &SessionBuilder{
		sess: domainauth.Session{
			ID:        "sess-1",
			Token:     "token-1",
			UserID:    1,
			Email:     "user@example.com",
			Role:      domainauth.RoleUser,
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}
}

// WithID sets the session ID.
func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.sess.ID = id
	return b
}

// WithToken sets the bearer token.
func (b *SessionBuilder) WithToken(token string) *SessionBuilder {
	b.sess.Token = token
	return b
}

// WithRole sets the role.
func (b *SessionBuilder) WithRole(role domainauth.Role) *SessionBuilder {
	b.sess.Role = role
	return b
}

// WithEmail sets the email.
func (b *SessionBuilder) WithEmail(email string) *SessionBuilder {
	b.sess.Email = email
	return b
}

// ExpiredAt sets an explicit expiry.
func (b *SessionBuilder) ExpiredAt(t time.Time) *SessionBuilder {
	b.sess.ExpiresAt = t
	return b
}

// Build returns the session value.
func (b *SessionBuilder) Build() domainauth.Session {
	return b.sess
}

// EventBuilder provides a fluent interface for building Event values for testing.
type EventBuilder struct {
	event model.Event
}

// NewEvent creates an EventBuilder with sensible defaults.
func NewEvent() *EventBuilder {
	return &EventBuilder{
		event: model.Event{
			ID:               1,
			Title:            "Go Conference",
			Description:      "Two days of talks.",
			Date:             time.Now().AddDate(0, 0, 14),
			Venue:            "Harbor Convention Center",
			TotalTickets:     100,
			AvailableTickets: 40,
			Price:            149,
		},
	}
}

// WithID sets the event ID.
func (b *EventBuilder) WithID(id int64) *EventBuilder {
	b.event.ID = id
	return b
}

// WithAvailable sets the available ticket count.
func (b *EventBuilder) WithAvailable(n int) *EventBuilder {
	b.event.AvailableTickets = n
	return b
}

// WithTitle sets the title.
func (b *EventBuilder) WithTitle(title string) *EventBuilder {
	b.event.Title = title
	return b
}

// Build returns the event value.
func (b *EventBuilder) Build() model.Event {
	return b.event
}
