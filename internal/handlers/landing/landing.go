package landing

import (
	"net/http"
	"sync/atomic"

	"github.com/a-h/templ"

	"pitchmatch/internal/auth"
	"pitchmatch/internal/gate"
	"pitchmatch/internal/session"
	"pitchmatch/web/templates/pages/landing"
)

// homeNavigator records the gate's one-shot navigation command. The resolver
// delivers statuses on its own goroutine, so the navigator must not touch the
// ResponseWriter; the handler goroutine writes the actual redirect.
type homeNavigator struct {
	requested atomic.Bool
}

func (n *homeNavigator) NavigateHome() {
	n.requested.Store(true)
}

// Handler serves the landing page behind the session gate: authenticated
// visitors are redirected to /home, anonymous visitors get the marketing
// page, and a session that cannot be resolved surfaces its failure message.
func Handler(google *auth.GoogleAuth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		provider := session.NewProvider()
		g := gate.New(&homeNavigator{})
		cancel := g.Attach(provider)
		defer cancel()

		go provider.ResolveRequest(r, google)

		select {
		case <-g.Settled():
		case <-r.Context().Done():
		}

		switch g.View() {
		case gate.ViewRedirecting:
			http.Redirect(w, r, "/home", http.StatusTemporaryRedirect)
		case gate.ViewError:
			templ.Handler(landing.ResolutionError(g.ErrorMessage())).ServeHTTP(w, r)
		case gate.ViewMarketing:
			templ.Handler(landing.Marketing()).ServeHTTP(w, r)
		default:
			templ.Handler(landing.Loading()).ServeHTTP(w, r)
		}
	}
}
