package home

import (
	"net/http"

	"github.com/markbates/goth"

	"pitchmatch/web/templates/pages/home"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	// Set by the user-context middleware for authenticated requests.
	user, ok := r.Context().Value("user").(*goth.User)
	if !ok {
		user = nil
	}

	w.Header().Set("Content-Type", "text/html")
	home.Home(user).Render(r.Context(), w)
}
