package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/evently/evently-ui/internal/domain/auth"
	"github.com/evently/evently-ui/internal/ports"
)

// Sentinel errors for the auth flows. Handlers map these onto user-facing
// messages; anything else is logged and rendered as a generic failure.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRegistrationFailed = errors.New("registration failed")
	ErrNoSession          = errors.New("no active session")
)

// DefaultSessionTTL bounds how long a session outlives its login.
const DefaultSessionTTL = 24 * time.Hour

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Store    ports.SessionStore // Required: session persistence
	API      ports.AuthAPI      // Required: booking API auth client
	Notifier *SessionNotifier   // Optional: session lifecycle fan-out
	Logger   *slog.Logger       // Optional: structured logger
	TTL      time.Duration      // Optional: session lifetime, defaults to DefaultSessionTTL
	Now      func() time.Time   // Optional: clock override for tests
}

// AuthService owns the session lifecycle. It is the single writer of the
// session store: login creates, resume refreshes, logout and failed
// resumption delete. Everything else only reads.
type AuthService struct {
	store    ports.SessionStore
	api      ports.AuthAPI
	notifier *SessionNotifier
	logger   *slog.Logger
	ttl      time.Duration
	now      func() time.Time
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Store == nil {
		//nolint:forbidigo // Service construction must fail fast during wiring when dependencies are missing
		panic("SessionStore is required")
	}
	if opts.API == nil {
		//nolint:forbidigo // Service construction must fail fast during wiring when dependencies are missing
		panic("AuthAPI is required")
	}

	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &AuthService{
		store:    opts.Store,
		api:      opts.API,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		ttl:      ttl,
		now:      now,
	}
}

// Login exchanges credentials for a token, resolves the identity behind it,
// and persists a fresh session. Any failure along the way, including a
// token that resolves to nothing, surfaces as ErrInvalidCredentials so the
// login page shows one message for every flavor of rejection.
func (s *AuthService) Login(ctx context.Context, email, password string) (domainauth.Session, error) {
	token, err := s.api.ExchangeCredentials(ctx, email, password)
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "credential exchange rejected", "email", email, "error", err)
		}
		return domainauth.Session{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	identity, err := s.api.CurrentUser(ctx, token)
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "token resolution failed after login", "email", email, "error", err)
		}
		return domainauth.Session{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	sess := domainauth.Session{
		ID:        uuid.NewString(),
		Token:     token,
		UserID:    identity.ID,
		Email:     identity.Email,
		Role:      identity.Role(),
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return domainauth.Session{}, fmt.Errorf("save session: %w", err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "session started", "user_id", sess.UserID, "role", sess.Role)
	}
	s.publish(SessionEvent{Kind: SessionStarted, Session: sess})

	return sess, nil
}

// Register creates an account. The new account is not signed in; callers
// send the user to the login page afterwards.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (domainauth.Identity, error) {
	identity, err := s.api.Register(ctx, in)
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "registration rejected", "email", in.Email, "error", err)
		}
		return domainauth.Identity{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "account registered", "user_id", identity.ID, "email", identity.Email)
	}
	return identity, nil
}

// Resume revalidates a stored session against the API and refreshes the
// identity fields. A session that no longer resolves is deleted and the
// caller gets ErrNoSession; the user lands on the login page with no error
// banner, the same as never having been signed in.
func (s *AuthService) Resume(ctx context.Context, sessionID string) (domainauth.Session, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return domainauth.Session{}, ErrNoSession
		}
		return domainauth.Session{}, fmt.Errorf("load session: %w", err)
	}

	identity, err := s.api.CurrentUser(ctx, sess.Token)
	if err != nil {
		if s.logger != nil {
			s.logger.InfoContext(ctx, "session no longer resolves, signing out",
				"user_id", sess.UserID, "error", err)
		}
		if deleteErr := s.store.Delete(ctx, sessionID); deleteErr != nil && s.logger != nil {
			s.logger.ErrorContext(ctx, "delete dead session", "session_id", sessionID, "error", deleteErr)
		}
		s.publish(SessionEvent{Kind: SessionExpired, Session: sess})
		return domainauth.Session{}, ErrNoSession
	}

	sess.UserID = identity.ID
	sess.Email = identity.Email
	sess.Role = identity.Role()
	if err := s.store.Save(ctx, sess); err != nil {
		return domainauth.Session{}, fmt.Errorf("refresh session: %w", err)
	}

	return sess, nil
}

// GetSession loads the session without touching the network. Route guards
// use this on every request; only Resume pays for an API round trip.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (domainauth.Session, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return domainauth.Session{}, ErrNoSession
		}
		return domainauth.Session{}, fmt.Errorf("load session: %w", err)
	}
	return sess, nil
}

// Logout deletes the session. It is idempotent and purely local: no API
// call is made, and logging out twice is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("load session: %w", err)
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "session ended", "user_id", sess.UserID)
	}
	s.publish(SessionEvent{Kind: SessionEnded, Session: sess})
	return nil
}

func (s *AuthService) publish(event SessionEvent) {
	if s.notifier != nil {
		s.notifier.Publish(event)
	}
}
