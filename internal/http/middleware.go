package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/evently/evently-ui/internal/domain/auth"
	"github.com/evently/evently-ui/internal/ports"
	"github.com/evently/evently-ui/internal/service"
)

// sessionCookieName is the browser-side half of a session: an opaque ID
// whose token never leaves the server.
const sessionCookieName = "session_id"

// SessionReader is the slice of the auth service the middleware needs.
type SessionReader interface {
	GetSession(ctx context.Context, sessionID string) (domainauth.Session, error)
	Register(ctx context.Context, in ports.RegisterInput) (domainauth.Identity, error)
	Login(ctx context.Context, email, password string) (domainauth.Session, error)
	Resume(ctx context.Context, sessionID string) (domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession guards routes that need any signed-in user.
func RequireSession(auth SessionReader) func(http.Handler) http.Handler {
	return guard(auth, false)
}

// RequireAdmin guards admin-only routes.
func RequireAdmin(auth SessionReader) func(http.Handler) http.Handler {
	return guard(auth, true)
}

// guard snapshots the caller's session state once, evaluates the route
// decision, and acts on it. The snapshot is taken before the handler runs;
// a session change mid-request does not alter the decision already made.
func guard(auth SessionReader, requireAdmin bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			snap, sess := snapshotRequest(r, auth)

			switch service.Decide(snap, requireAdmin) {
			case service.Admit:
				ctx := SetSessionInContext(r.Context(), sess)
				next.ServeHTTP(w, r.WithContext(ctx))

			case service.RedirectToLogin:
				clearSessionCookie(w, r)
				if IsBrowserRequest(r) {
					redirectToLogin(w, r)
					return
				}
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "authentication_required",
					Err:     errors.New("authentication required"),
				})

			case service.RedirectToUnauthorized:
				if IsBrowserRequest(r) {
					http.Redirect(w, r, "/unauthorized", http.StatusSeeOther)
					return
				}
				WriteError(w, ErrorParams{
					Code:    http.StatusForbidden,
					ErrCode: "insufficient_permissions",
					Err:     errors.New("insufficient permissions"),
				})

			case service.RenderLoading:
				// Resolution is synchronous here, so this arm only fires if
				// an async resolver is wired in later.
				w.Header().Set("Retry-After", "1")
				http.Error(w, "Signing you in...", http.StatusAccepted)
			}
		})
	}
}

// snapshotRequest turns the request's cookie into a guard snapshot plus
// the resolved session when there is one.
func snapshotRequest(r *http.Request, auth SessionReader) (service.Snapshot, domainauth.Session) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return service.Snapshot{}, domainauth.Session{}
	}

	sess, err := auth.GetSession(r.Context(), cookie.Value)
	if err != nil {
		// A cookie that no longer maps to a session counts as a presented
		// credential that failed to resolve.
		return service.Snapshot{HasCredential: true}, domainauth.Session{}
	}
	return service.SnapshotOf(sess, true), sess
}

// IsBrowserRequest reports whether the caller wants HTML. JSON clients set
// an explicit Accept; browsers send text/html or nothing useful.
func IsBrowserRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return true
	}
	if strings.Contains(accept, "text/html") {
		return true
	}
	return !strings.Contains(accept, "application/json")
}

// redirectToLogin sends the browser to the login page, carrying the
// current path so login can return the user where they were headed.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	target := safeRedirectPath(r.URL.RequestURI())
	loginURL := "/login"
	if target != "/" && target != "" {
		loginURL += "?redirect_uri=" + url.QueryEscape(target)
	}
	http.Redirect(w, r, loginURL, http.StatusSeeOther)
}

// safeRedirectPath allows only same-app relative paths. Anything absolute,
// scheme-relative, or unparsable collapses to "/".
func safeRedirectPath(raw string) string {
	if raw == "" {
		return "/"
	}

	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	return u.RequestURI()
}
