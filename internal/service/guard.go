package service

import domainauth "github.com/evently/evently-ui/internal/domain/auth"

// Decision is the outcome of evaluating a guarded route against the
// caller's session state.
type Decision int

const (
	// Admit lets the request through to the handler.
	Admit Decision = iota
	// RedirectToLogin sends the caller to the login page.
	RedirectToLogin
	// RedirectToUnauthorized sends an authenticated non-admin away from
	// an admin-only route.
	RedirectToUnauthorized
	// RenderLoading asks the caller to wait while identity resolution is
	// still in flight. Synchronous resolution never yields it, but the
	// decision table keeps the state so async resolvers can reuse it.
	RenderLoading
)

func (d Decision) String() string {
	switch d {
	case Admit:
		return "admit"
	case RedirectToLogin:
		return "redirect_to_login"
	case RedirectToUnauthorized:
		return "redirect_to_unauthorized"
	case RenderLoading:
		return "render_loading"
	default:
		return "unknown"
	}
}

// Snapshot is the session state a guard decision is computed from. It is
// taken once per request; a session change mid-request does not alter the
// decision already made.
type Snapshot struct {
	// HasCredential is true when the caller presented a session cookie,
	// regardless of whether it resolves to a live session.
	HasCredential bool
	// Resolving is true while identity resolution has started but not
	// finished. Resolution only starts after a credential was presented,
	// so Resolving implies HasCredential; a snapshot with Resolving set
	// and no credential is treated as unauthenticated.
	Resolving bool
	// Authenticated is true only after the credential resolved to a live
	// session.
	Authenticated bool
	// IsAdmin is meaningful only when Authenticated is true.
	IsAdmin bool
}

// SnapshotOf builds a resolved snapshot from a session lookup result.
func SnapshotOf(sess domainauth.Session, found bool) Snapshot {
	if !found {
		return Snapshot{}
	}
	return Snapshot{
		HasCredential: true,
		Authenticated: true,
		IsAdmin:       sess.IsAdmin(),
	}
}

// Decide evaluates the guard for a route. Order matters: resolution in
// flight defers the decision, a missing or dead credential redirects to
// login, and only an authenticated non-admin on an admin route is sent to
// the unauthorized page.
func Decide(snap Snapshot, requireAdmin bool) Decision {
	if snap.HasCredential && snap.Resolving {
		return RenderLoading
	}
	if !snap.Authenticated {
		return RedirectToLogin
	}
	if requireAdmin && !snap.IsAdmin {
		return RedirectToUnauthorized
	}
	return Admit
}
