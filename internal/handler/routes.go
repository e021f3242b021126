package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/msomdec/pitchside/internal/auth"
	"github.com/msomdec/pitchside/internal/middleware"
	"github.com/msomdec/pitchside/internal/service"
)

// RouterDeps bundles everything NewRouter needs.
type RouterDeps struct {
	Auth    *service.AuthService
	Players *service.PlayerService
	Teams   *service.TeamService
	Matches *service.MatchService

	// Verifier gates mutating resource routes. It is an interface so a
	// revocation-aware implementation can be swapped in without touching
	// the routes.
	Verifier auth.TokenVerifier

	CORSAllowedOrigin string
	RequestRecorder   middleware.RequestRecorder

	// MetricsHandler serves the Prometheus exposition endpoint.
	MetricsHandler http.Handler
	// Static serves the embedded single-page admin client.
	Static http.Handler
}

// NewRouter builds the chi router with the full middleware stack. Reads on
// resource collections are public; creates, updates, and deletes require a
// valid bearer token carrying the admin flag, in that order: the
// authentication gate always runs before the authorization gate.
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.CORS(deps.CORSAllowedOrigin))
	r.Use(middleware.RequestLogger)
	if deps.RequestRecorder != nil {
		r.Use(middleware.Metrics(deps.RequestRecorder))
	}

	authHandler := NewAuthHandler(deps.Auth)
	playerHandler := NewPlayerHandler(deps.Players)
	teamHandler := NewTeamHandler(deps.Teams)
	matchHandler := NewMatchHandler(deps.Matches)

	requireAdmin := func(next http.Handler) http.Handler {
		return RequireAuth(deps.Verifier, RequireAdmin(next))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.HandleRegister)
			r.Post("/login", authHandler.HandleLogin)
		})

		r.Route("/players", func(r chi.Router) {
			r.Get("/", playerHandler.HandleList)
			r.With(requireAdmin).Post("/", playerHandler.HandleCreate)
			r.With(requireAdmin).Put("/{id}", playerHandler.HandleUpdate)
			r.With(requireAdmin).Delete("/{id}", playerHandler.HandleDelete)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", teamHandler.HandleList)
			r.With(requireAdmin).Post("/", teamHandler.HandleCreate)
			r.With(requireAdmin).Put("/{id}", teamHandler.HandleUpdate)
			r.With(requireAdmin).Delete("/{id}", teamHandler.HandleDelete)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", matchHandler.HandleList)
			r.With(requireAdmin).Post("/", matchHandler.HandleCreate)
			r.With(requireAdmin).Put("/{id}", matchHandler.HandleUpdate)
			r.With(requireAdmin).Delete("/{id}", matchHandler.HandleDelete)
		})
	})

	r.Get("/healthz", HandleHealthz)
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}
	if deps.Static != nil {
		r.Handle("/*", deps.Static)
	}

	return r
}
