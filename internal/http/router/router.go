package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"direct-transport-es/internal/http/handlers"
	obs "direct-transport-es/internal/http/middleware"
	"direct-transport-es/internal/logx"
	"direct-transport-es/internal/metrics"
)

const defaultTimeout = 5 * time.Second

// Options configures the shared middleware chain.
type Options struct {
	Logger    logx.Logger
	Metrics   *metrics.HTTP
	RateLimit func(http.Handler) http.Handler
	Timeout   time.Duration
}

// Endpoints groups the resource handlers mounted under /api.
type Endpoints struct {
	Users    *handlers.UserHandler
	Requests *handlers.RequestHandler
	Bookings *handlers.BookingHandler
	Links    *handlers.LinkHandler
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(opts Options, h *handlers.Handlers, ep Endpoints) http.Handler {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(obs.Observability(opts.Logger, opts.Metrics))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))
	if opts.RateLimit != nil {
		r.Use(opts.RateLimit)
	}
	r.Use(middleware.Timeout(opts.Timeout))

	r.Get("/", h.Root)
	r.Get("/test", h.Diagnostics)
	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", ep.Users.Create)
		r.Get("/transportistas", ep.Users.ListCarriers)

		r.Route("/requests", func(r chi.Router) {
			r.Post("/", ep.Requests.Create)
			r.Get("/", ep.Requests.List)
			r.Patch("/{request_id}/status", ep.Requests.UpdateStatus)
		})

		r.Post("/bookings/intent", ep.Bookings.CreateIntent)
		r.Get("/whatsapp-link", ep.Links.WhatsApp)
	})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
