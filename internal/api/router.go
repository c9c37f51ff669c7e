package api

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/catchup-chat/catchup/internal/api/middleware"
	"github.com/catchup-chat/catchup/internal/handlers"
	"github.com/catchup-chat/catchup/internal/tools"
)

// NewRouter creates and configures the HTTP router. gatewayToken guards
// the tool routes; empty disables auth for local deployments.
func NewRouter(logger zerolog.Logger, h *handlers.Handler, gatewayToken string) *chi.Mux {
	r := chi.NewRouter()

	// Metrics middleware (first to capture all requests)
	r.Use(middleware.Metrics)

	// Security middleware (order matters!)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.MaxBodySize(8 * 1024)) // 8KB max body
	r.Use(middleware.ValidateRequest)

	// Standard middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)

	// Tool calls fan out into sequential upstream requests, so keep the
	// number of in-flight requests small rather than queueing deeply.
	r.Use(chimw.Throttle(8))

	// CORS - tools are called from agents and browsers alike
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Metrics endpoint (for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// Public routes
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Get("/tools", h.Catalog)

	// Tool routes (require the gateway token when configured)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireToken(gatewayToken))

		r.Post("/tools/"+tools.ToolUnreadMessages, h.UnreadMessages)
		r.Post("/tools/"+tools.ToolUnreadConversations, h.UnreadConversations)
		r.Post("/tools/"+tools.ToolFindDM, h.FindDM)
		r.Post("/tools/"+tools.ToolMarkSpaceRead, h.MarkSpaceRead)
		r.Post("/tools/"+tools.ToolSpaceReadState, h.SpaceReadState)
		r.Post("/tools/"+tools.ToolThreadReadState, h.ThreadReadState)
	})

	return r
}
