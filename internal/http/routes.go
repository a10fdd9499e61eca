package httpx

import (
	"log/slog"
	"net/http"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth         SessionReader
	Catalog      Catalog
	AdminCatalog AdminCatalog
	Renderer     *TemplateRenderer
	CookieDomain string
	Logger       *slog.Logger // Logger for HTTP and template errors (optional)
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		Renderer:     services.Renderer,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}
	eventHandlers := &EventHandlers{
		Auth:     services.Auth,
		Catalog:  services.Catalog,
		Renderer: services.Renderer,
		Logger:   services.Logger,
	}
	adminHandlers := &AdminHandlers{
		Catalog:  services.AdminCatalog,
		Renderer: services.Renderer,
		Logger:   services.Logger,
	}

	requireSession := RequireSession(services.Auth)
	requireAdmin := RequireAdmin(services.Auth)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Public pages.
	mux.HandleFunc("GET /login", authHandlers.LoginPage)
	mux.HandleFunc("POST /login", authHandlers.Login)
	mux.HandleFunc("GET /register", authHandlers.RegisterPage)
	mux.HandleFunc("POST /register", authHandlers.Register)
	mux.HandleFunc("POST /logout", authHandlers.Logout)
	mux.HandleFunc("GET /auth/status", authHandlers.Status)
	mux.HandleFunc("GET /unauthorized", authHandlers.Unauthorized)

	// Signed-in pages.
	mux.Handle("GET /dashboard", requireSession(http.HandlerFunc(eventHandlers.Dashboard)))
	mux.Handle("GET /events", requireSession(http.HandlerFunc(eventHandlers.Events)))
	mux.Handle("POST /events/{id}/book", requireSession(http.HandlerFunc(eventHandlers.Book)))
	mux.Handle("GET /bookings", requireSession(http.HandlerFunc(eventHandlers.Bookings)))
	mux.Handle("GET /events/{id}/cancel", requireSession(http.HandlerFunc(eventHandlers.CancelConfirm)))
	mux.Handle("POST /events/{id}/cancel", requireSession(http.HandlerFunc(eventHandlers.Cancel)))

	// Admin console.
	mux.Handle("GET /admin", requireAdmin(http.HandlerFunc(adminHandlers.Console)))
	mux.Handle("GET /admin/events/new", requireAdmin(http.HandlerFunc(adminHandlers.NewEventForm)))
	mux.Handle("POST /admin/events", requireAdmin(http.HandlerFunc(adminHandlers.CreateEvent)))
	mux.Handle("GET /admin/events/{id}/edit", requireAdmin(http.HandlerFunc(adminHandlers.EditEventForm)))
	mux.Handle("POST /admin/events/{id}", requireAdmin(http.HandlerFunc(adminHandlers.UpdateEvent)))
	mux.Handle("POST /admin/events/{id}/delete", requireAdmin(http.HandlerFunc(adminHandlers.DeleteEvent)))
	mux.Handle("GET /admin/bookings", requireAdmin(http.HandlerFunc(adminHandlers.Bookings)))

	// The root goes to the dashboard; the session guard sorts out who may
	// actually see it.
	mux.Handle("GET /{$}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}))

	// Anything else is a styled 404.
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notFound(services.Renderer, w, r)
	}))

	return mux
}

func notFound(renderer *TemplateRenderer, w http.ResponseWriter, r *http.Request) {
	if renderer == nil || !IsBrowserRequest(r) {
		http.NotFound(w, r)
		return
	}
	_ = renderer.RenderPageStatus(w, http.StatusNotFound, "notfound", PageData{Title: "Not found"})
}
