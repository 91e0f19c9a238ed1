package server

import (
	"context"
	"net/http"

	"pitchmatch/internal/auth"
	"pitchmatch/internal/config"
	appAuth "pitchmatch/internal/handlers/auth"
	"pitchmatch/internal/handlers/health"
	"pitchmatch/internal/handlers/home"
	interviewapi "pitchmatch/internal/handlers/interview"
	"pitchmatch/internal/handlers/landing"
	"pitchmatch/internal/services"
)

type Server struct {
	config      config.Config
	googleAuth  *auth.GoogleAuth
	authHandler *appAuth.AuthHandler
	services    *services.Services
}

func New(cfg config.Config) *Server {
	googleAuth := auth.NewGoogleAuth(&auth.Config{
		GoogleKey:       cfg.GoogleKey,
		GoogleSecret:    cfg.GoogleSecret,
		CallbackURL:     cfg.CallbackURL(),
		SecretKey:       []byte(cfg.SessionSecret),
		SessionDuration: cfg.SessionDuration,
	})

	return &Server{
		config:      cfg,
		googleAuth:  googleAuth,
		authHandler: appAuth.NewAuthHandler(googleAuth),
		services:    services.New(cfg),
	}
}

func (s *Server) createHandler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/static/", http.StripPrefix("/static/",
		http.FileServer(http.Dir("./web/static"))))

	// Health check endpoint
	mux.HandleFunc("/health", health.Handler)

	// Authentication routes
	mux.HandleFunc("/auth/google", s.authHandler.BeginAuthHandler)
	mux.HandleFunc("/auth/google/callback", s.authHandler.AuthCallbackHandler)
	mux.HandleFunc("/logout/google", s.authHandler.LogoutHandler)

	// The landing page sits behind the session gate
	mux.HandleFunc("/", landing.Handler(s.googleAuth))
	mux.Handle("/home", s.withUserContext(s.googleAuth.WithGoogleAuth(home.Handler)))

	// API routes
	mux.Handle("/api/interview/turn",
		s.withUserContext(s.googleAuth.WithGoogleAuth(
			interviewapi.TurnHandler(s.services.InterviewClient))))

	return mux
}

// Middleware to add user to context
func (s *Server) withUserContext(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := s.googleAuth.GetSession(r)
		if err == nil && session != nil {
			ctx := context.WithValue(r.Context(), "user", &session.User)
			r = r.WithContext(ctx)
		}
		next(w, r)
	}
}

func (s *Server) ListenAndServe() error {
	server := &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      s.createHandler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	return server.ListenAndServe()
}
