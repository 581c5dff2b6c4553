package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"campaign-roi/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the ROI use case to answer queries and a logger for structured
// logging. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	svc    port.ROIUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.ROIUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(requestID, h.logRequests, middleware.Recoverer)

	r.Get("/health", h.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/summary", h.handleSummary)
		r.Get("/roi/campaigns", h.handleCampaignROI)
		r.Get("/roi/{dimension}", h.handleROIBy)

		r.Route("/viz", func(r chi.Router) {
			r.Get("/choropleth", h.handleChoropleth)
			r.Get("/scatter", h.handleScatter)
			r.Get("/campaign-bar", h.handleCampaignBar)
			r.Get("/category-bar", h.handleCategoryBar)
			r.Get("/region", h.handleRegionBar)
		})
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
