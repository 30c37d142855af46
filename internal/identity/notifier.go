// Package identity turns auth-provider callbacks into an ordered stream of
// identity events the sync layer can react to. The identifier is opaque;
// consumers may only compare it and test it for presence.
package identity

import (
	"log/slog"
	"sync"
)

// Event reports the current identity. An empty UID means signed out.
type Event struct {
	UID string
}

// Notifier buffers identity transitions onto a channel. Events emitted
// before the provider has resolved its initial state are suppressed, which
// keeps all sync activity quiet until Resolve is called.
type Notifier struct {
	log    *slog.Logger
	mu     sync.Mutex
	ready  bool
	events chan Event
}

func NewNotifier(log *slog.Logger) *Notifier {
	return &Notifier{
		log: log,
		// enough headroom that an auth callback never blocks on the
		// sync loop draining a previous load
		events: make(chan Event, 16),
	}
}

// Resolve marks the provider's initial state as known and emits it as the
// first event.
func (n *Notifier) Resolve(uid string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.ready {
		return
	}
	n.ready = true
	n.events <- Event{UID: uid}
}

func (n *Notifier) Login(uid string) {
	n.emit(Event{UID: uid})
}

func (n *Notifier) Logout() {
	n.emit(Event{})
}

func (n *Notifier) Events() <-chan Event {
	return n.events
}

func (n *Notifier) emit(ev Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.ready {
		return
	}
	select {
	case n.events <- ev:
	default:
		// a full buffer means the sync loop stopped draining; don't block
		// the auth callback, but the identity stream is no longer complete
		n.log.Error("identity event dropped, sync may track a stale identity",
			"signed_in", ev.UID != "")
	}
}
