package httpx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/evently/evently-ui/internal/adapters/bookingapi"
	"github.com/evently/evently-ui/internal/domain/model"
	"github.com/evently/evently-ui/internal/service"
)

// Catalog is the slice of the catalog service the user-facing handlers need.
type Catalog interface {
	AvailableEvents(ctx context.Context) ([]model.Event, error)
	Book(ctx context.Context, token string, req model.BookingRequest) (model.BookingResponse, error)
	CancelBooking(ctx context.Context, token string, eventID int64) error
	BookingHistory(ctx context.Context, token string) ([]model.Booking, error)
}

// EventHandlers provides HTTP handlers for the signed-in user pages:
// dashboard, event browsing, booking, and booking history.
type EventHandlers struct {
	Auth     SessionReader
	Catalog  Catalog
	Renderer *TemplateRenderer
	Logger   *slog.Logger
}

func (h *EventHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Dashboard is the post-login landing page. It is the one route that
// revalidates the stored session against the API, so a token revoked
// upstream turns into a clean sign-out here rather than a broken page.
// GET /dashboard.
func (h *EventHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		redirectToLogin(w, r)
		return
	}

	refreshed, err := h.Auth.Resume(r.Context(), sess.ID)
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			clearSessionCookie(w, r)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.logger().ErrorContext(r.Context(), "session refresh failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	bookings, err := h.Catalog.BookingHistory(r.Context(), refreshed.Token)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "load booking history", "error", err)
		// The dashboard still renders without the bookings panel.
		bookings = nil
	}

	data := PageData{
		Title:    "Dashboard",
		Flash:    PopFlash(w, r),
		Bookings: bookings,
	}
	_ = h.Renderer.RenderPage(w, "dashboard", data.withSession(refreshed))
}

// Events lists bookable events.
// GET /events.
func (h *EventHandlers) Events(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())

	events, err := h.Catalog.AvailableEvents(r.Context())
	if err != nil {
		if bookingapi.IsAuthFailure(err) {
			// The token died upstream mid-session; sign the browser out.
			clearSessionCookie(w, r)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.logger().ErrorContext(r.Context(), "load events", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := PageData{
		Title:  "Events",
		Flash:  PopFlash(w, r),
		Events: events,
	}
	_ = h.Renderer.RenderPage(w, "events", data.withSession(sess))
}

// Book submits a booking for an event. Success or failure, the user lands
// back on the events page, which re-fetches availability.
// POST /events/{id}/book.
func (h *EventHandlers) Book(w http.ResponseWriter, r *http.Request) {
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
	quantity, err := strconv.Atoi(r.PostFormValue("number_of_tickets"))
	if err != nil {
		quantity = 0 // let the validation path produce the user-facing message
	}

	booked, err := h.Catalog.Book(r.Context(), sess.Token, model.BookingRequest{
		NumberOfTickets: quantity,
		EventID:         eventID,
	})
	if err != nil {
		SetFlash(w, bookingFailureMessage(err))
		http.Redirect(w, r, "/events", http.StatusSeeOther)
		return
	}

	SetFlash(w, fmt.Sprintf("Booked %d ticket(s).", booked.NumberOfTickets))
	http.Redirect(w, r, "/events", http.StatusSeeOther)
}

// Bookings shows the caller's booking history.
// GET /bookings.
func (h *EventHandlers) Bookings(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())

	bookings, err := h.Catalog.BookingHistory(r.Context(), sess.Token)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "load booking history", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := PageData{
		Title:    "My bookings",
		Flash:    PopFlash(w, r),
		Bookings: bookings,
	}
	_ = h.Renderer.RenderPage(w, "bookings", data.withSession(sess))
}

// CancelConfirm renders the cancellation confirmation page. Nothing is
// cancelled until the user confirms on the POST.
// GET /events/{id}/cancel.
func (h *EventHandlers) CancelConfirm(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())

	eventID, err := pathID(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	data := PageData{Title: "Cancel booking"}
	if event := h.findBookedEvent(r.Context(), sess.Token, eventID); event != nil {
		data.Event = event
	} else {
		data.Event = &model.Event{ID: eventID}
	}
	_ = h.Renderer.RenderPage(w, "cancel", data.withSession(sess))
}

// Cancel performs the cancellation, but only when the form confirms it.
// Declining makes no API call at all.
// POST /events/{id}/cancel.
func (h *EventHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
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

	if r.PostFormValue("confirm") != "yes" {
		http.Redirect(w, r, "/bookings", http.StatusSeeOther)
		return
	}

	if err := h.Catalog.CancelBooking(r.Context(), sess.Token, eventID); err != nil {
		if bookingapi.IsNotFoundOrConflict(err) {
			// The booking is already gone upstream; nothing left to undo.
			SetFlash(w, "That booking was already cancelled.")
			http.Redirect(w, r, "/bookings", http.StatusSeeOther)
			return
		}
		h.logger().WarnContext(r.Context(), "cancel booking failed", "event_id", eventID, "error", err)
		SetFlash(w, "Could not cancel the booking. Please try again.")
		http.Redirect(w, r, "/bookings", http.StatusSeeOther)
		return
	}

	SetFlash(w, "Booking cancelled.")
	http.Redirect(w, r, "/bookings", http.StatusSeeOther)
}

// findBookedEvent looks the event up in the caller's history so the
// confirmation page can name what is being cancelled.
func (h *EventHandlers) findBookedEvent(ctx context.Context, token string, eventID int64) *model.Event {
	bookings, err := h.Catalog.BookingHistory(ctx, token)
	if err != nil {
		return nil
	}
	for _, booking := range bookings {
		if booking.EventID == eventID && booking.Event != nil {
			return booking.Event
		}
	}
	return nil
}

// bookingFailureMessage maps booking errors onto the notices the events
// page shows.
func bookingFailureMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrTooFewTickets):
		return "Please request at least one ticket."
	case errors.Is(err, model.ErrTooManyTickets):
		return "Not enough tickets available for that request."
	case errors.Is(err, service.ErrEventNotFound), bookingapi.IsNotFoundOrConflict(err):
		return "That event is no longer available."
	case bookingapi.IsValidationFailure(err):
		return "The booking request was rejected. Please check the ticket quantity."
	default:
		return "Booking failed. Please try again."
	}
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
