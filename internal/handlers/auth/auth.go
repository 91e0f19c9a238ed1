package auth

import (
	"net/http"

	"pitchmatch/internal/auth"
)

type AuthHandler struct {
	googleAuth *auth.GoogleAuth
}

func NewAuthHandler(googleAuth *auth.GoogleAuth) *AuthHandler {
	return &AuthHandler{
		googleAuth: googleAuth,
	}
}

func (h *AuthHandler) BeginAuthHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := h.googleAuth.GetSession(r); err == nil {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}
	h.googleAuth.BeginAuthHandler(w, r)
}

func (h *AuthHandler) AuthCallbackHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.googleAuth.CompleteUserAuth(w, r)
	if err != nil {
		http.Error(w, "Authentication failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.googleAuth.StoreSession(w, r, user); err != nil {
		http.Error(w, "Session creation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	h.googleAuth.LogoutHandler(w, r)
	h.googleAuth.ClearSession(w, r)
	http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
}
