package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/christian-keitri/my-app/internal/infrastructure/http/handlers"
	"github.com/christian-keitri/my-app/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	AuthHandler          *handlers.AuthHandler
	HealthHandler        *handlers.HealthHandler
	UsersHandler         *handlers.UsersHandler
	OrganizationsHandler *handlers.OrganizationsHandler
	BranchesHandler      *handlers.BranchesHandler
	PortalCodesHandler   *handlers.PortalCodesHandler
	RequireSession       func(http.Handler) http.Handler // session cookie auth for /api/me
	CORS                 func(http.Handler) http.Handler
	Secure               func(http.Handler) http.Handler
	IPRateLimit          func(http.Handler) http.Handler
	RequestTimeout       time.Duration
	Log                  zerolog.Logger
	Metrics              bool // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(chimid.Timeout(cfg.RequestTimeout))
	}
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.IPRateLimit != nil {
		r.Use(cfg.IPRateLimit)
	}

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
		r.Post("/logout", cfg.AuthHandler.Logout)
		if cfg.RequireSession != nil {
			r.Group(func(r chi.Router) {
				r.Use(cfg.RequireSession)
				r.Get("/me", cfg.AuthHandler.Me)
			})
		}

		r.Route("/users", func(r chi.Router) {
			r.Get("/", cfg.UsersHandler.List)
			r.Post("/", cfg.UsersHandler.Create)
			r.Put("/{id}", cfg.UsersHandler.Update)
		})

		r.Route("/organizations", func(r chi.Router) {
			r.Get("/", cfg.OrganizationsHandler.List)
			r.Post("/", cfg.OrganizationsHandler.Create)
			r.Put("/{id}", cfg.OrganizationsHandler.Update)
			r.Put("/{id}/toggle", cfg.OrganizationsHandler.Toggle)
		})
		r.Get("/clients", cfg.OrganizationsHandler.Clients)

		r.Route("/branches", func(r chi.Router) {
			r.Get("/", cfg.BranchesHandler.List)
			r.Post("/", cfg.BranchesHandler.Create)
			r.Put("/{id}", cfg.BranchesHandler.Update)
			r.Put("/{id}/toggle", cfg.BranchesHandler.Toggle)
		})

		r.Route("/branch-portal-codes", func(r chi.Router) {
			r.Get("/", cfg.PortalCodesHandler.List)
			r.Post("/", cfg.PortalCodesHandler.Create)
			r.Put("/{id}/toggle", cfg.PortalCodesHandler.Toggle)
			r.Delete("/{id}", cfg.PortalCodesHandler.Delete)
		})
	})

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
