package rest

import (
	"net/http"

	"real-estate-agency/internal/contextkeys"
	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/port/usecases_port"
	"real-estate-agency/internal/core/search"
)

type FilterHandler struct {
	getFilterOptionsUC usecases_port.GetFilterOptionsUseCase
}

func NewFilterHandler(getFilterOptionsUC usecases_port.GetFilterOptionsUseCase) *FilterHandler {
	return &FilterHandler{getFilterOptionsUC: getFilterOptionsUC}
}

// GetFilterOptions обрабатывает GET /api/v1/properties/filters/options
func (h *FilterHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	access := domain.AccessFor(contextkeys.ClaimsFromContext(r.Context()), search.ParseBool(r.URL.Query().Get("includeUnpublished")))

	result, err := h.getFilterOptionsUC.Execute(r.Context(), access)
	if err != nil {
		contextkeys.LoggerFromContext(r.Context()).Error("Filter options use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve filter options")
		return
	}

	resp := FilterOptionsResponse{
		Filters: make(map[string]FilterOptionResponse, len(result.Options)),
		Count:   result.Count,
	}
	for name, opt := range result.Options {
		resp.Filters[name] = FilterOptionResponse{Options: opt.Options, Min: opt.Min, Max: opt.Max}
	}
	RespondSuccess(w, http.StatusOK, resp, nil)
}
