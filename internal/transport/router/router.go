// Package router wires the HTTP surface: middleware stack, public auth
// routes, the admin-guarded API, metrics, health probes, and static uploads.
package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhandler "dotback/internal/auth/handler"
	"dotback/internal/levels"
	"dotback/internal/platform/health"
	"dotback/internal/platform/middleware"
	"dotback/internal/uploads"
)

// Deps collects everything the router mounts.
type Deps struct {
	Auth    *authhandler.Handler
	Levels  *levels.Handler
	Uploads *uploads.Handler
	Health  *health.Handler

	Sessions  middleware.SessionReader
	Verifier  middleware.IdentityVerifier
	Logger    *slog.Logger
	UploadDir string
	Origin    string
}

// New builds the chi router.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{d.Origin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Handle("/metrics", promhttp.Handler())
	d.Health.Register(r)

	r.Handle("/uploads/*", uploads.FileServer(d.UploadDir))

	r.Route("/api", func(api chi.Router) {
		d.Auth.Register(api)

		api.Group(func(guarded chi.Router) {
			guarded.Use(middleware.RequireAdmin(d.Sessions, d.Verifier, d.Logger))

			guarded.Get("/auth/me", d.Auth.HandleMe)
			d.Levels.Register(guarded)
			guarded.Post("/upload", d.Uploads.HandleUpload)
		})
	})

	return r
}
