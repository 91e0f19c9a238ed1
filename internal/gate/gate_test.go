package gate

import "testing"

type fakeNavigator struct {
	calls int
}

func (n *fakeNavigator) NavigateHome() { n.calls++ }

type fakeProvider struct {
	status Status
	subs   []func(Status)
}

func (p *fakeProvider) Status() Status { return p.status }

func (p *fakeProvider) Subscribe(notify func(Status)) (cancel func()) {
	p.subs = append(p.subs, notify)
	return func() {}
}

func (p *fakeProvider) publish(s Status) {
	p.status = s
	for _, fn := range p.subs {
		fn(s)
	}
}

func attached(t *testing.T) (*Gate, *fakeProvider, *fakeNavigator) {
	t.Helper()
	nav := &fakeNavigator{}
	provider := &fakeProvider{status: Loading()}
	g := New(nav)
	g.Attach(provider)
	return g, provider, nav
}

func TestLoadingShowsIndicatorWithoutNavigation(t *testing.T) {
	g, _, nav := attached(t)

	if got := g.View(); got != ViewLoading {
		t.Fatalf("view = %v, want ViewLoading", got)
	}
	if nav.calls != 0 {
		t.Fatalf("navigations = %d, want 0", nav.calls)
	}
	select {
	case <-g.Settled():
		t.Fatal("gate settled while still loading")
	default:
	}
}

func TestFailureSurfacesMessageVerbatim(t *testing.T) {
	g, provider, nav := attached(t)

	provider.publish(Failed("network unavailable"))

	if got := g.View(); got != ViewError {
		t.Fatalf("view = %v, want ViewError", got)
	}
	if got := g.ErrorMessage(); got != "network unavailable" {
		t.Fatalf("error message = %q, want %q", got, "network unavailable")
	}
	if nav.calls != 0 {
		t.Fatalf("navigations = %d, want 0", nav.calls)
	}
}

func TestAnonymousVisitorSeesMarketing(t *testing.T) {
	g, provider, nav := attached(t)

	provider.publish(Resolved(nil))

	if got := g.View(); got != ViewMarketing {
		t.Fatalf("view = %v, want ViewMarketing", got)
	}
	if nav.calls != 0 {
		t.Fatalf("navigations = %d, want 0", nav.calls)
	}
}

func TestAuthenticatedVisitorIsRedirectedOnce(t *testing.T) {
	g, provider, nav := attached(t)

	provider.publish(Resolved("user-1"))

	if got := g.View(); got != ViewRedirecting {
		t.Fatalf("view = %v, want ViewRedirecting", got)
	}
	if nav.calls != 1 {
		t.Fatalf("navigations = %d, want 1", nav.calls)
	}
}

func TestRepeatedResolvedDeliveriesDoNotRenavigate(t *testing.T) {
	g, provider, nav := attached(t)

	for i := 0; i < 5; i++ {
		provider.publish(Resolved("user-1"))
	}

	if nav.calls != 1 {
		t.Fatalf("navigations = %d, want 1", nav.calls)
	}
	if got := g.View(); got != ViewRedirecting {
		t.Fatalf("view = %v, want ViewRedirecting", got)
	}
}

func TestNoTransitionOutOfTerminalViews(t *testing.T) {
	g, provider, nav := attached(t)

	provider.publish(Failed("boom"))
	provider.publish(Resolved("user-1"))

	if got := g.View(); got != ViewError {
		t.Fatalf("view = %v, want ViewError after terminal failure", got)
	}
	if nav.calls != 0 {
		t.Fatalf("navigations = %d, want 0", nav.calls)
	}
}

func TestAttachObservesAlreadyResolvedStatus(t *testing.T) {
	nav := &fakeNavigator{}
	provider := &fakeProvider{status: Resolved("user-1")}
	g := New(nav)
	g.Attach(provider)

	if got := g.View(); got != ViewRedirecting {
		t.Fatalf("view = %v, want ViewRedirecting", got)
	}
	if nav.calls != 1 {
		t.Fatalf("navigations = %d, want 1", nav.calls)
	}
}

func TestSettledClosesOnTerminalStatus(t *testing.T) {
	g, provider, _ := attached(t)

	provider.publish(Resolved(nil))

	select {
	case <-g.Settled():
	default:
		t.Fatal("gate did not settle after terminal status")
	}
}

func TestLoadingDeliveryDoesNotSettle(t *testing.T) {
	g, provider, _ := attached(t)

	provider.publish(Loading())

	if got := g.View(); got != ViewLoading {
		t.Fatalf("view = %v, want ViewLoading", got)
	}
	select {
	case <-g.Settled():
		t.Fatal("gate settled on a loading delivery")
	default:
	}
}

func TestStatusShape(t *testing.T) {
	if Loading().Terminal() {
		t.Fatal("loading status reported terminal")
	}
	if !Failed("x").Terminal() || !Resolved(nil).Terminal() {
		t.Fatal("terminal status reported in flight")
	}
	if got := Failed("x").Message(); got != "x" {
		t.Fatalf("message = %q, want %q", got, "x")
	}
	if Resolved(nil).User() != nil {
		t.Fatal("anonymous resolution carries a user")
	}
	if Resolved("id").User() == nil {
		t.Fatal("authenticated resolution lost its user")
	}
}
