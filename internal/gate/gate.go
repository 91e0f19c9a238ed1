package gate

import "sync"

// Status is the authentication-resolution state for the current page load.
// It is a closed tagged value: exactly one of loading, failed, or resolved
// holds at any observation point.
type Status struct {
	kind    statusKind
	message string
	user    any
}

type statusKind int

const (
	statusLoading statusKind = iota
	statusFailed
	statusResolved
)

// Loading is the initial status while session resolution is in flight.
func Loading() Status { return Status{kind: statusLoading} }

// Failed reports that session resolution failed with a human-readable
// message.
func Failed(message string) Status {
	return Status{kind: statusFailed, message: message}
}

// Resolved reports a finished resolution. A nil user means the visitor is
// anonymous; the gate only ever consumes the user's presence, not its fields.
func Resolved(user any) Status {
	return Status{kind: statusResolved, user: user}
}

// Message returns the failure description; empty unless the status failed.
func (s Status) Message() string { return s.message }

// User returns the resolved identity, or nil for an anonymous visitor.
func (s Status) User() any { return s.user }

// Terminal reports whether resolution has finished, either way.
func (s Status) Terminal() bool { return s.kind != statusLoading }

// View is what the visitor sees for the current page load.
type View int

const (
	ViewLoading View = iota
	ViewError
	ViewMarketing
	ViewRedirecting
)

// Navigator sends the visitor to the application's home surface.
// Fire-and-forget; the gate consumes no result.
type Navigator interface {
	NavigateHome()
}

// Provider owns and publishes the Session Status. The gate only reads it.
type Provider interface {
	Status() Status
	Subscribe(notify func(Status)) (cancel func())
}

// Gate maps the Session Status to a view and issues the home navigation
// exactly once when an authenticated visitor is resolved. It holds no state
// beyond the current page load.
type Gate struct {
	nav Navigator

	mu         sync.Mutex
	view       View
	errMessage string
	settled    chan struct{}
}

func New(nav Navigator) *Gate {
	return &Gate{nav: nav, settled: make(chan struct{})}
}

// Observe applies a status delivery and returns the resulting view. Once the
// gate has left the loading view it stays there for the rest of the page
// load: the redirect cannot re-fire and an error cannot be displaced.
func (g *Gate) Observe(s Status) View {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.view != ViewLoading {
		return g.view
	}

	switch s.kind {
	case statusLoading:
		return g.view
	case statusFailed:
		g.view = ViewError
		g.errMessage = s.message
	case statusResolved:
		if s.user != nil {
			g.view = ViewRedirecting
			g.nav.NavigateHome()
		} else {
			g.view = ViewMarketing
		}
	}
	close(g.settled)
	return g.view
}

// Attach observes the provider's current status and subscribes to future
// deliveries. The returned cancel detaches the subscription.
func (g *Gate) Attach(p Provider) (cancel func()) {
	g.Observe(p.Status())
	cancel = p.Subscribe(func(s Status) { g.Observe(s) })
	// Catch a transition delivered between the first observation and the
	// subscription taking effect.
	g.Observe(p.Status())
	return cancel
}

// View returns the currently selected view.
func (g *Gate) View() View {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.view
}

// ErrorMessage returns the failure message surfaced by the error view.
func (g *Gate) ErrorMessage() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.errMessage
}

// Settled returns a channel that is closed once the gate has left the
// loading view. A resolution that never arrives leaves it open; the caller
// decides how long to wait.
func (g *Gate) Settled() <-chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.settled
}
