package httpx

import (
	domainauth "github.com/evently/evently-ui/internal/domain/auth"
	"github.com/evently/evently-ui/internal/domain/model"
)

// PageData is the view model shared by every page template. Pages read
// only the fields they need; everything else stays zero.
type PageData struct {
	Title string

	// Session is set for signed-in pages; the layout uses it to pick
	// navigation links. Signed-out pages leave it nil.
	Session *domainauth.Session

	// Flash is a one-shot notice carried across a redirect.
	Flash string
	// Error is an inline failure message rendered above the page's form.
	Error string

	// Form echoes submitted values back into a failed form.
	Form map[string]string
	// FieldErrors maps form field names to validation messages.
	FieldErrors map[string]string

	Events   []model.Event
	Bookings []model.Booking
	Event    *model.Event
}

// withSession attaches the request's session to the page data.
func (d PageData) withSession(sess domainauth.Session) PageData {
	d.Session = &sess
	return d
}
