package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/hotbound-ai/hotbound/internal/middleware"
)

// HandlerSet holds handler functions injected from main.go to avoid import cycles.
type HandlerSet struct {
	// Upload handlers
	UploadImages http.HandlerFunc
	UploadAudio  http.HandlerFunc

	// Profile analysis
	AnalyzeProfile http.HandlerFunc

	// Conversation simulation
	SimulateConversation http.HandlerFunc

	// Context store query
	QueryContext http.HandlerFunc
}

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	CORSAllowedOrigins []string
	MaxUploadBytes     int64

	// StoreHealthy reports whether the context store is usable.
	StoreHealthy func() bool
}

func NewRouter(cfg RouterConfig, h HandlerSet) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(mw.SecurityHeaders)
	r.Use(mw.Metrics)
	r.Use(cors.Handler(mw.CORS(cfg.CORSAllowedOrigins)))

	// Liveness probe — always 200, no dependency checks
	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		JSON(w, http.StatusOK, map[string]string{"status": "alive"})
	})

	// Readiness probe — checks the context store
	readinessHandler := func(w http.ResponseWriter, r *http.Request) {
		health := map[string]string{
			"status": "healthy",
			"store":  "healthy",
		}

		status := http.StatusOK

		if cfg.StoreHealthy != nil && !cfg.StoreHealthy() {
			health["store"] = "unhealthy"
			health["status"] = "degraded"
			status = http.StatusServiceUnavailable
		}

		JSON(w, status, health)
	}

	r.Get("/health/ready", readinessHandler)
	r.Get("/health", readinessHandler)

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.MaxUploadBytes > 0 {
			r.Use(func(next http.Handler) http.Handler {
				return http.MaxBytesHandler(next, cfg.MaxUploadBytes)
			})
		}

		r.Route("/uploads", func(r chi.Router) {
			r.Post("/images", h.UploadImages)
			r.Post("/audio", h.UploadAudio)
		})

		r.Post("/profile/analyze", h.AnalyzeProfile)
		r.Post("/conversation", h.SimulateConversation)
		r.Post("/context/query", h.QueryContext)
	})

	return r
}
