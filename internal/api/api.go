package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"investadvisor/internal/metrics"
	"investadvisor/pkg/advisor"
)

// NewRouter builds the HTTP API router. The metrics collector is optional.
func NewRouter(core *advisor.Core, logger *slog.Logger, collector *metrics.Collector) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(recoveryLoggingMiddleware(logger))
	r.Use(requestLoggingMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	if collector != nil {
		r.Use(collector.InstrumentHandler)
	}

	h := &handler{core: core, logger: logger, metrics: collector}

	r.Get("/api/health", h.health)
	r.Post("/api/recommend", h.recommend)
	r.Get("/api/inference-log", h.getInferenceLog)

	if collector != nil {
		r.Method(http.MethodGet, "/metrics", collector.Handler())
	}

	return r
}

type handler struct {
	core    *advisor.Core
	logger  *slog.Logger
	metrics *metrics.Collector
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
