package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
)

const sessionName = "pitchmatch-session"

// ErrNoSession means the request carries no session cookie at all. It is
// distinct from a cookie that exists but cannot be decoded.
var ErrNoSession = errors.New("no session")

type Config struct {
	GoogleKey       string
	GoogleSecret    string
	CallbackURL     string
	SecretKey       []byte
	SessionDuration time.Duration
}

// Session is the decoded cookie session for an authenticated visitor.
type Session struct {
	User      goth.User
	ExpiresAt time.Time
}

// GoogleAuth handles the Google OAuth flow and the cookie session that
// results from it.
type GoogleAuth struct {
	config *Config
	store  *sessions.CookieStore
}

func NewGoogleAuth(config *Config) *GoogleAuth {
	store := sessions.NewCookieStore(config.SecretKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(config.SessionDuration.Seconds()),
		HttpOnly: true,
	}
	gothic.Store = store

	goth.UseProviders(
		google.New(config.GoogleKey, config.GoogleSecret, config.CallbackURL, "email", "profile"),
	)

	return &GoogleAuth{config: config, store: store}
}

// withProvider pins the goth provider so gothic does not need a provider
// query parameter on every route.
func (a *GoogleAuth) withProvider(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), gothic.ProviderParamKey, "google"))
}

func (a *GoogleAuth) BeginAuthHandler(w http.ResponseWriter, r *http.Request) {
	gothic.BeginAuthHandler(w, a.withProvider(r))
}

func (a *GoogleAuth) CompleteUserAuth(w http.ResponseWriter, r *http.Request) (goth.User, error) {
	return gothic.CompleteUserAuth(w, a.withProvider(r))
}

func (a *GoogleAuth) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	_ = gothic.Logout(w, a.withProvider(r))
}

// StoreSession writes the authenticated user into the cookie session.
func (a *GoogleAuth) StoreSession(w http.ResponseWriter, r *http.Request, user goth.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	// store.New still returns a usable fresh session when an old cookie is
	// unreadable.
	sess, _ := a.store.New(r, sessionName)
	sess.Values["user"] = string(payload)
	sess.Values["expires_at"] = time.Now().Add(a.config.SessionDuration).Unix()

	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// GetSession decodes the request's cookie session. It returns ErrNoSession
// when no cookie is present or the session has expired, and a decode error
// when a cookie exists but cannot be read.
func (a *GoogleAuth) GetSession(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(sessionName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}

	sess, err := a.store.Get(r, sessionName)
	if err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	raw, ok := sess.Values["user"].(string)
	if !ok || raw == "" {
		return nil, ErrNoSession
	}

	expiresAt := time.Time{}
	if unix, ok := sess.Values["expires_at"].(int64); ok {
		expiresAt = time.Unix(unix, 0)
		if time.Now().After(expiresAt) {
			return nil, ErrNoSession
		}
	}

	var user goth.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}

	return &Session{User: user, ExpiresAt: expiresAt}, nil
}

// ClearSession expires the cookie session.
func (a *GoogleAuth) ClearSession(w http.ResponseWriter, r *http.Request) {
	sess, _ := a.store.New(r, sessionName)
	sess.Values = make(map[interface{}]interface{})
	sess.Options.MaxAge = -1
	_ = sess.Save(r, w)
}

// WithGoogleAuth admits only authenticated visitors; everyone else is sent
// to the login entry point.
func (a *GoogleAuth) WithGoogleAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := a.GetSession(r); err != nil {
			http.Redirect(w, r, "/auth/google", http.StatusTemporaryRedirect)
			return
		}
		next(w, r)
	}
}
