package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/evently/evently-ui/internal/adapters/bookingapi"
	"github.com/evently/evently-ui/internal/domain/model"
	"github.com/evently/evently-ui/internal/ports"
)

// eventDateLayout matches the value format of an HTML datetime-local input.
const eventDateLayout = "2006-01-02T15:04"

// AdminCatalog is the slice of the catalog service the admin console needs.
type AdminCatalog interface {
	AllEvents(ctx context.Context, token string) ([]model.Event, error)
	CreateEvent(ctx context.Context, token string, req model.CreateEventRequest) (model.Event, error)
	UpdateEvent(ctx context.Context, token string, in ports.UpdateEventInput) (model.Event, error)
	DeleteEvent(ctx context.Context, token string, eventID int64) error
	AllBookings(ctx context.Context, token string) ([]model.Booking, error)
}

// AdminHandlers provides HTTP handlers for the admin console. Every route
// here sits behind the admin guard.
type AdminHandlers struct {
	Catalog  AdminCatalog
	Renderer *TemplateRenderer
	Logger   *slog.Logger
}

func (h *AdminHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Console lists every event, including sold-out ones.
// GET /admin.
func (h *AdminHandlers) Console(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())

	events, err := h.Catalog.AllEvents(r.Context(), sess.Token)
	if err != nil {
		if bookingapi.IsAuthFailure(err) {
			// The token died upstream mid-session; sign the browser out.
			clearSessionCookie(w, r)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.logger().ErrorContext(r.Context(), "load admin events", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := PageData{
		Title:  "Admin console",
		Flash:  PopFlash(w, r),
		Events: events,
	}
	_ = h.Renderer.RenderPage(w, "admin_console", data.withSession(sess))
}

// NewEventForm renders an empty event creation form.
// GET /admin/events/new.
func (h *AdminHandlers) NewEventForm(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())
	data := PageData{Title: "New event"}
	_ = h.Renderer.RenderPage(w, "admin_event_form", data.withSession(sess))
}

// CreateEvent handles the creation form submission.
// POST /admin/events.
func (h *AdminHandlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	req, form := createRequestFromForm(r)

	_, err := h.Catalog.CreateEvent(r.Context(), sess.Token, req)
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			data := PageData{
				Title:       "New event",
				Form:        form,
				FieldErrors: validationErr.Fields,
			}
			_ = h.Renderer.RenderPage(w, "admin_event_form", data.withSession(sess))
			return
		}
		h.logger().ErrorContext(r.Context(), "create event failed", "error", err)
		SetFlash(w, "Could not create the event.")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	SetFlash(w, "Event created.")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// EditEventForm renders the edit form pre-filled with the event's data.
// GET /admin/events/{id}/edit.
func (h *AdminHandlers) EditEventForm(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())

	eventID, err := pathID(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	event, err := h.findEvent(r.Context(), sess.Token, eventID)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "load event for edit", "event_id", eventID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if event == nil {
		http.NotFound(w, r)
		return
	}

	data := PageData{Title: "Edit event", Event: event}
	_ = h.Renderer.RenderPage(w, "admin_event_form", data.withSession(sess))
}

// UpdateEvent handles the edit form submission. Only submitted fields are
// sent upstream; blanks mean "leave unchanged".
// POST /admin/events/{id}.
func (h *AdminHandlers) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())

	eventID, err := pathID(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	_, err = h.Catalog.UpdateEvent(r.Context(), sess.Token, ports.UpdateEventInput{
		EventID: eventID,
		Changes: updateRequestFromForm(r),
	})
	if err != nil {
		if bookingapi.IsNotFoundOrConflict(err) {
			SetFlash(w, "That event no longer exists.")
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		h.logger().ErrorContext(r.Context(), "update event failed", "event_id", eventID, "error", err)
		SetFlash(w, "Could not update the event.")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	SetFlash(w, "Event updated.")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// DeleteEvent removes an event.
// POST /admin/events/{id}/delete.
func (h *AdminHandlers) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())

	eventID, err := pathID(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.Catalog.DeleteEvent(r.Context(), sess.Token, eventID); err != nil {
		if bookingapi.IsNotFoundOrConflict(err) {
			// Double-submit or a concurrent delete; the end state is what
			// the admin wanted.
			SetFlash(w, "Event was already deleted.")
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		h.logger().ErrorContext(r.Context(), "delete event failed", "event_id", eventID, "error", err)
		SetFlash(w, "Could not delete the event.")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	SetFlash(w, "Event deleted.")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Bookings lists every booking across all users.
// GET /admin/bookings.
func (h *AdminHandlers) Bookings(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())

	bookings, err := h.Catalog.AllBookings(r.Context(), sess.Token)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "load all bookings", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := PageData{Title: "All bookings", Bookings: bookings}
	_ = h.Renderer.RenderPage(w, "admin_bookings", data.withSession(sess))
}

func (h *AdminHandlers) findEvent(ctx context.Context, token string, eventID int64) (*model.Event, error) {
	events, err := h.Catalog.AllEvents(ctx, token)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID == eventID {
			return &events[i], nil
		}
	}
	return nil, nil
}

// createRequestFromForm builds the create request plus an echo map for
// re-rendering the form on validation failure.
func createRequestFromForm(r *http.Request) (model.CreateEventRequest, map[string]string) {
	form := map[string]string{
		"title":         strings.TrimSpace(r.PostFormValue("title")),
		"description":   strings.TrimSpace(r.PostFormValue("description")),
		"date":          r.PostFormValue("date"),
		"venue":         strings.TrimSpace(r.PostFormValue("venue")),
		"total_tickets": r.PostFormValue("total_tickets"),
		"price":         r.PostFormValue("price"),
	}

	req := model.CreateEventRequest{
		Title:       form["title"],
		Description: form["description"],
		Venue:       form["venue"],
	}
	if date, err := time.Parse(eventDateLayout, form["date"]); err == nil {
		req.Date = date
	}
	if total, err := strconv.Atoi(form["total_tickets"]); err == nil {
		req.TotalTickets = total
	}
	if price, err := strconv.ParseFloat(form["price"], 64); err == nil {
		req.Price = price
	}
	return req, form
}

// updateRequestFromForm maps only the submitted, non-empty fields into the
// partial update body.
func updateRequestFromForm(r *http.Request) model.UpdateEventRequest {
	var req model.UpdateEventRequest

	if title := strings.TrimSpace(r.PostFormValue("title")); title != "" {
		req.Title = &title
	}
	if description := strings.TrimSpace(r.PostFormValue("description")); description != "" {
		req.Description = &description
	}
	if venue := strings.TrimSpace(r.PostFormValue("venue")); venue != "" {
		req.Venue = &venue
	}
	if raw := r.PostFormValue("date"); raw != "" {
		if date, err := time.Parse(eventDateLayout, raw); err == nil {
			req.Date = &date
		}
	}
	if raw := r.PostFormValue("total_tickets"); raw != "" {
		if total, err := strconv.Atoi(raw); err == nil {
			req.TotalTickets = &total
		}
	}
	if raw := r.PostFormValue("price"); raw != "" {
		if price, err := strconv.ParseFloat(raw, 64); err == nil {
			req.Price = &price
		}
	}
	return req
}
