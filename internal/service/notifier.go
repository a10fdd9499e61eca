package service

import (
	"sync"

	domainauth "github.com/evently/evently-ui/internal/domain/auth"
)

// SessionEventKind classifies a change in session state.
type SessionEventKind string

const (
	// SessionStarted fires after a successful login.
	SessionStarted SessionEventKind = "started"
	// SessionEnded fires after an explicit logout.
	SessionEnded SessionEventKind = "ended"
	// SessionExpired fires when a session fails to resume.
	SessionExpired SessionEventKind = "expired"
)

// SessionEvent describes a session state transition.
type SessionEvent struct {
	Kind    SessionEventKind
	Session domainauth.Session
}

// SessionNotifier fans session state transitions out to subscribers. The
// auth service publishes on login, logout, and failed resume; subscribing
// is optional and no component has to listen. Delivery is best effort: a
// subscriber that is not draining its channel misses events rather than
// blocking the publisher.
type SessionNotifier struct {
	mu   sync.Mutex
	subs map[chan SessionEvent]struct{}
}

// NewSessionNotifier constructs an empty notifier.
func NewSessionNotifier() *SessionNotifier {
	return &SessionNotifier{subs: make(map[chan SessionEvent]struct{})}
}

// Subscribe registers a subscriber and returns its channel plus an
// unsubscribe func. Unsubscribe is idempotent and closes the channel.
func (n *SessionNotifier) Subscribe() (func(), <-chan SessionEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()

	ch := make(chan SessionEvent, 8)
	n.subs[ch] = struct{}{}

	unsub := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if _, ok := n.subs[ch]; !ok {
			return
		}
		delete(n.subs, ch)
		drainAndClose(ch)
	}

	return unsub, ch
}

// Publish delivers the event to every subscriber without blocking.
func (n *SessionNotifier) Publish(event SessionEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for ch := range n.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// StopAll unsubscribes everyone and closes their channels.
func (n *SessionNotifier) StopAll() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for ch := range n.subs {
		drainAndClose(ch)
		delete(n.subs, ch)
	}
}

// drainAndClose removes buffered events before closing the channel so
// receivers observe a closed channel immediately.
func drainAndClose(ch chan SessionEvent) {
	for {
		select {
		case <-ch:
		default:
			close(ch)
			return
		}
	}
}
