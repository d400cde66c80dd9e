package rest

import (
	"context"
	"net/http"
	"time"

	"real-estate-agency/internal/contextkeys"
	"real-estate-agency/internal/core/port/usecases_port"
)

type AdminHandler struct {
	statsUC usecases_port.GetDashboardStatsUseCase
}

func NewAdminHandler(statsUC usecases_port.GetDashboardStatsUseCase) *AdminHandler {
	return &AdminHandler{statsUC: statsUC}
}

// Dashboard обрабатывает GET /api/v1/admin/dashboard
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUC.Execute(r.Context())
	if err != nil {
		contextkeys.LoggerFromContext(r.Context()).Error("Dashboard use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve dashboard stats")
		return
	}

	RespondSuccess(w, http.StatusOK, DashboardStatsResponse{
		TotalListings:     stats.TotalListings,
		PublishedListings: stats.PublishedListings,
		FeaturedListings:  stats.FeaturedListings,
		TotalViews:        stats.TotalViews,
		ByStatus:          toCountResponses(stats.ByStatus),
		ByType:            toCountResponses(stats.ByType),
		BlogPosts:         stats.BlogPosts,
	}, nil)
}

// Pinger - зависимость, доступность которой проверяет /healthz
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	pingers []Pinger
}

func NewHealthHandler(pingers ...Pinger) *HealthHandler {
	return &HealthHandler{pingers: pingers}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	for _, p := range h.pingers {
		if err := p.Ping(ctx); err != nil {
			contextkeys.LoggerFromContext(r.Context()).Error("Health check failed", err, nil)
			WriteJSONError(w, http.StatusServiceUnavailable, "unavailable")
			return
		}
	}
	RespondSuccess(w, http.StatusOK, map[string]string{"status": "ok"}, nil)
}
