package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainauth "github.com/evently/evently-ui/internal/domain/auth"
	"github.com/evently/evently-ui/internal/ports"
	"github.com/evently/evently-ui/internal/service"
)

// User-facing failure messages. One message per flow regardless of the
// underlying cause, so the page never leaks which part was wrong.
const (
	loginFailedMessage    = "Login failed. Please check your credentials and try again."
	registerFailedMessage = "Registration failed. Please try again with a different email."
)

// AuthHandlers provides HTTP handlers for the sign-in, sign-up, and
// sign-out pages.
type AuthHandlers struct {
	Svc          SessionReader
	Renderer     *TemplateRenderer
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// LoginPage renders the login form.
// GET /login.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	// An already signed-in user has nothing to do here.
	if sess, ok := h.sessionFromCookie(r); ok {
		http.Redirect(w, r, homePath(sess), http.StatusSeeOther)
		return
	}

	// Carry the guard's return path into the form so the POST can honor it.
	form := map[string]string{}
	if target := safeRedirectPath(r.URL.Query().Get("redirect_uri")); target != "/" {
		form["redirect_uri"] = target
	}

	_ = h.Renderer.RenderPage(w, "login", PageData{
		Title: "Sign in",
		Flash: PopFlash(w, r),
		Form:  form,
	})
}

// Login handles the login form submission.
// POST /login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	sess, err := h.Svc.Login(r.Context(), email, password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			h.logger().ErrorContext(r.Context(), "login failed", "error", err)
		}
		w.WriteHeader(http.StatusUnauthorized)
		form := map[string]string{"email": email}
		if target := safeRedirectPath(r.PostFormValue("redirect_uri")); target != "/" {
			form["redirect_uri"] = target
		}
		_ = h.Renderer.RenderPage(w, "login", PageData{
			Title: "Sign in",
			Error: loginFailedMessage,
			Form:  form,
		})
		return
	}

	h.setSessionCookie(w, r, sess)

	// A guarded page the user was heading to wins over the role default.
	target := safeRedirectPath(r.PostFormValue("redirect_uri"))
	if target == "/" || target == "" {
		target = homePath(sess)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// RegisterPage renders the registration form.
// GET /register.
func (h *AuthHandlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if sess, ok := h.sessionFromCookie(r); ok {
		http.Redirect(w, r, homePath(sess), http.StatusSeeOther)
		return
	}

	_ = h.Renderer.RenderPage(w, "register", PageData{Title: "Create account"})
}

// Register handles the registration form submission. A new account is not
// signed in; the user lands on the login page with a confirmation notice.
// POST /register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	isAdmin := r.PostFormValue("is_admin") == "on"

	_, err := h.Svc.Register(r.Context(), ports.RegisterInput{
		Email:    email,
		Password: password,
		IsAdmin:  isAdmin,
	})
	if err != nil {
		if !errors.Is(err, service.ErrRegistrationFailed) {
			h.logger().ErrorContext(r.Context(), "registration failed", "error", err)
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = h.Renderer.RenderPage(w, "register", PageData{
			Title: "Create account",
			Error: registerFailedMessage,
			Form:  map[string]string{"email": email},
		})
		return
	}

	SetFlash(w, "Account created. Please sign in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout ends the session. Purely local and idempotent: no upstream call,
// and logging out while signed out is not an error.
// POST /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), cookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}

	clearSessionCookie(w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Status returns the current authentication state as JSON, for scripts
// that poll instead of navigating.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.sessionFromCookie(r)
	if !ok {
		clearSessionCookie(w, r)
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user": map[string]any{
			"id":    sess.UserID,
			"email": sess.Email,
			"role":  sess.Role,
		},
		"expires_at": sess.ExpiresAt,
	})
}

// Unauthorized renders the access-denied page for signed-in non-admins.
// GET /unauthorized.
func (h *AuthHandlers) Unauthorized(w http.ResponseWriter, r *http.Request) {
	data := PageData{Title: "Access denied"}
	if sess, ok := h.sessionFromCookie(r); ok {
		data = data.withSession(sess)
	}
	_ = h.Renderer.RenderPageStatus(w, http.StatusForbidden, "unauthorized", data)
}

func (h *AuthHandlers) sessionFromCookie(r *http.Request) (domainauth.Session, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return domainauth.Session{}, false
	}
	sess, err := h.Svc.GetSession(r.Context(), cookie.Value)
	if err != nil {
		return domainauth.Session{}, false
	}
	return sess, true
}

// homePath picks the post-login landing page by role.
func homePath(sess domainauth.Session) string {
	if sess.IsAdmin() {
		return "/admin"
	}
	return "/dashboard"
}

// setSessionCookie installs the session ID cookie; its lifetime tracks the
// server-side session's expiry.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, sess domainauth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		Expires:  sess.ExpiresAt,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie clears the session cookie by setting it to expire
// immediately. It mirrors the attributes used when setting the cookie to
// maximize compatibility across browsers during deletion.
func clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
