package httpx

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	domainauth "github.com/evently/evently-ui/internal/domain/auth"
	"github.com/evently/evently-ui/internal/domain/model"
	"github.com/evently/evently-ui/internal/ports"
)

// stubAuth implements SessionReader with overridable behavior per test.
type stubAuth struct {
	GetSessionFn func(ctx context.Context, sessionID string) (domainauth.Session, error)
	RegisterFn   func(ctx context.Context, in ports.RegisterInput) (domainauth.Identity, error)
	LoginFn      func(ctx context.Context, email, password string) (domainauth.Session, error)
	ResumeFn     func(ctx context.Context, sessionID string) (domainauth.Session, error)
	LogoutFn     func(ctx context.Context, sessionID string) error
}

func (s *stubAuth) GetSession(ctx context.Context, sessionID string) (domainauth.Session, error) {
	if s.GetSessionFn == nil {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return s.GetSessionFn(ctx, sessionID)
}

func (s *stubAuth) Register(ctx context.Context, in ports.RegisterInput) (domainauth.Identity, error) {
	return s.RegisterFn(ctx, in)
}

func (s *stubAuth) Login(ctx context.Context, email, password string) (domainauth.Session, error) {
	return s.LoginFn(ctx, email, password)
}

func (s *stubAuth) Resume(ctx context.Context, sessionID string) (domainauth.Session, error) {
	return s.ResumeFn(ctx, sessionID)
}

func (s *stubAuth) Logout(ctx context.Context, sessionID string) error {
	if s.LogoutFn == nil {
		return nil
	}
	return s.LogoutFn(ctx, sessionID)
}

// stubCatalog implements Catalog with overridable behavior per test.
type stubCatalog struct {
	AvailableEventsFn func(ctx context.Context) ([]model.Event, error)
	BookFn            func(ctx context.Context, token string, req model.BookingRequest) (model.BookingResponse, error)
	CancelBookingFn   func(ctx context.Context, token string, eventID int64) error
	BookingHistoryFn  func(ctx context.Context, token string) ([]model.Booking, error)
}

func (s *stubCatalog) AvailableEvents(ctx context.Context) ([]model.Event, error) {
	return s.AvailableEventsFn(ctx)
}

func (s *stubCatalog) Book(ctx context.Context, token string, req model.BookingRequest) (model.BookingResponse, error) {
	return s.BookFn(ctx, token, req)
}

func (s *stubCatalog) CancelBooking(ctx context.Context, token string, eventID int64) error {
	return s.CancelBookingFn(ctx, token, eventID)
}

func (s *stubCatalog) BookingHistory(ctx context.Context, token string) ([]model.Booking, error) {
	if s.BookingHistoryFn == nil {
		return nil, nil
	}
	return s.BookingHistoryFn(ctx, token)
}

// newTestRenderer parses the real templates so handler tests exercise the
// same layout the server ships.
func newTestRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS("../../frontend/templates"),
	})
	require.NoError(t, err)
	return renderer
}
