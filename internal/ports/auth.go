package ports

// Package ports defines interfaces (hexagonal ports) for the UI service.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/evently/evently-ui/internal/domain/auth"
)

// ErrSessionNotFound is returned by session stores when no record exists
// for the given ID. All store backends return this same sentinel.
var ErrSessionNotFound = errors.New("session not found")

// RegisterInput carries inputs for creating an account on the booking API.
type RegisterInput struct {
	Email    string
	Password string
	IsAdmin  bool
}

// AuthAPI is the slice of the booking API used to establish and resolve sessions.
type AuthAPI interface {
	// ExchangeCredentials posts the form-urlencoded login body and returns
	// the bearer token from the API's token response.
	ExchangeCredentials(ctx context.Context, username, password string) (string, error)

	// CurrentUser resolves the identity behind a bearer token via GET /auth/me.
	CurrentUser(ctx context.Context, token string) (domainauth.Identity, error)

	// Register creates an account. It does not log the account in.
	Register(ctx context.Context, in RegisterInput) (domainauth.Identity, error)
}

// SessionStore persists and retrieves browser-profile sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
