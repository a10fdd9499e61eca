package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/evently/evently-ui/internal/domain/auth"
	"github.com/evently/evently-ui/internal/ports"
	"github.com/evently/evently-ui/internal/testutil"
)

func okHandler(sawSession *domainauth.Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess, ok := SessionFromContext(r.Context()); ok && sawSession != nil {
			*sawSession = sess
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireSessionWithoutCookieRedirectsToLogin(t *testing.T) {
	auth := &stubAuth{}
	handler := RequireSession(auth)(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fdashboard", rec.Header().Get("Location"))
}

func TestRequireSessionWithDeadCookieClearsItAndRedirects(t *testing.T) {
	auth := &stubAuth{
		GetSessionFn: func(context.Context, string) (domainauth.Session, error) {
			return domainauth.Session{}, ports.ErrSessionNotFound
		},
	}
	handler := RequireSession(auth)(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "stale"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fevents", rec.Header().Get("Location"))

	cleared := findCookie(t, rec.Result().Cookies(), "session_id")
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

func TestRequireSessionJSONClientGets401(t *testing.T) {
	auth := &stubAuth{}
	handler := RequireSession(auth)(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "authentication_required", body["error"])
}

func TestRequireSessionAdmitsAndInjectsSession(t *testing.T) {
	sess := testutil.NewSession().WithID("sess-1").Build()
	auth := &stubAuth{
		GetSessionFn: func(_ context.Context, id string) (domainauth.Session, error) {
			assert.Equal(t, "sess-1", id)
			return sess, nil
		},
	}

	var seen domainauth.Session
	handler := RequireSession(auth)(okHandler(&seen))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-1"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sess, seen)
}

func TestRequireAdminSendsNonAdminsToUnauthorized(t *testing.T) {
	auth := &stubAuth{
		GetSessionFn: func(context.Context, string) (domainauth.Session, error) {
			return testutil.NewSession().WithRole(domainauth.RoleUser).Build(), nil
		},
	}
	handler := RequireAdmin(auth)(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-1"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/unauthorized", rec.Header().Get("Location"))
}

func TestRequireAdminJSONClientGets403(t *testing.T) {
	auth := &stubAuth{
		GetSessionFn: func(context.Context, string) (domainauth.Session, error) {
			return testutil.NewSession().Build(), nil
		},
	}
	handler := RequireAdmin(auth)(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Accept", "application/json")
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-1"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "insufficient_permissions", body["error"])
}

func TestRequireAdminAdmitsAdmins(t *testing.T) {
	auth := &stubAuth{
		GetSessionFn: func(context.Context, string) (domainauth.Session, error) {
			return testutil.NewSession().WithRole(domainauth.RoleAdmin).Build(), nil
		},
	}
	handler := RequireAdmin(auth)(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-1"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSafeRedirectPath(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: "/"},
		{name: "relative path", raw: "/events", want: "/events"},
		{name: "path with query", raw: "/events?page=2", want: "/events?page=2"},
		{name: "absolute URL", raw: "https://evil.example.com/phish", want: "/"},
		{name: "scheme-relative", raw: "//evil.example.com", want: "/"},
		{name: "no leading slash", raw: "events", want: "/"},
		{name: "unparsable", raw: "://bad", want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, safeRedirectPath(tt.raw))
		})
	}
}

func TestIsBrowserRequest(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   bool
	}{
		{name: "no accept header", accept: "", want: true},
		{name: "html", accept: "text/html,application/xhtml+xml", want: true},
		{name: "json only", accept: "application/json", want: false},
		{name: "wildcard", accept: "*/*", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			assert.Equal(t, tt.want, IsBrowserRequest(req))
		})
	}
}

// findCookie returns the named cookie from a response, failing the test
// when it is absent.
func findCookie(t *testing.T, cookies []*http.Cookie, name string) *http.Cookie {
	t.Helper()
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}
