package session

import (
	"errors"
	"net/http"
	"sync"

	"pitchmatch/internal/auth"
	"pitchmatch/internal/gate"
)

// Provider owns the Session Status for one page load. It starts out loading
// and transitions at most once, to either a failure or a resolution; any
// publication after the first terminal status is dropped. Subscribers are
// notified sequentially on each transition.
type Provider struct {
	mu     sync.Mutex
	status gate.Status
	subs   map[int]func(gate.Status)
	nextID int
}

func NewProvider() *Provider {
	return &Provider{
		status: gate.Loading(),
		subs:   make(map[int]func(gate.Status)),
	}
}

// Status returns the current Session Status.
func (p *Provider) Status() gate.Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Subscribe registers a notification callback for status transitions. The
// returned cancel removes it.
func (p *Provider) Subscribe(notify func(gate.Status)) (cancel func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = notify
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}

// Resolve publishes a successful resolution. A nil user marks the visitor
// as anonymous.
func (p *Provider) Resolve(user any) {
	p.publish(gate.Resolved(user))
}

// Fail publishes a failed resolution.
func (p *Provider) Fail(message string) {
	p.publish(gate.Failed(message))
}

func (p *Provider) publish(s gate.Status) {
	p.mu.Lock()
	if p.status.Terminal() {
		p.mu.Unlock()
		return
	}
	p.status = s
	notify := make([]func(gate.Status), 0, len(p.subs))
	for _, fn := range p.subs {
		notify = append(notify, fn)
	}
	p.mu.Unlock()

	for _, fn := range notify {
		fn(s)
	}
}

// ResolveRequest inspects the request's cookie session and publishes the
// outcome. An absent cookie resolves to an anonymous visitor; a cookie that
// exists but cannot be decoded is a resolution failure.
func (p *Provider) ResolveRequest(r *http.Request, google *auth.GoogleAuth) {
	sess, err := google.GetSession(r)
	switch {
	case err == nil:
		p.Resolve(&sess.User)
	case errors.Is(err, auth.ErrNoSession):
		p.Resolve(nil)
	default:
		p.Fail(err.Error())
	}
}
