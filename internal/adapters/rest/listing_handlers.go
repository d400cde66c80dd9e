package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"real-estate-agency/internal/contextkeys"
	"real-estate-agency/internal/contracts"
	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/port"
	"real-estate-agency/internal/core/port/usecases_port"
	"real-estate-agency/internal/core/search"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

// SearchObserver получает общее количество найденного для метрик
type SearchObserver interface {
	ObserveSearch(total int)
}

type ListingUseCases struct {
	Search       usecases_port.SearchListingsUseCase
	Autocomplete usecases_port.AutocompleteUseCase
	Details      usecases_port.GetListingDetailsUseCase
	Featured     usecases_port.GetFeaturedListingsUseCase
	Create       usecases_port.CreateListingUseCase
	Update       usecases_port.UpdateListingUseCase
	Delete       usecases_port.DeleteListingUseCase
}

type ListingHandler struct {
	uc       ListingUseCases
	limits   search.Limits
	observer SearchObserver
}

func NewListingHandler(uc ListingUseCases, limits search.Limits, observer SearchObserver) *ListingHandler {
	if limits.Default <= 0 {
		limits = search.DefaultListingLimits
	}
	return &ListingHandler{uc: uc, limits: limits, observer: observer}
}

// Search обрабатывает GET /api/v1/properties/search
func (h *ListingHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	criteria := search.NormalizeListingQueryWithLimits(query, h.limits)
	claims := contextkeys.ClaimsFromContext(r.Context())
	access := domain.AccessFor(claims, search.ParseBool(query.Get("includeUnpublished")))

	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "SearchProperties",
	})

	page, err := h.uc.Search.Execute(r.Context(), criteria, access)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	if h.observer != nil {
		h.observer.ObserveSearch(page.Pagination.Total)
	}

	RespondSuccess(w, http.StatusOK, toListingResponses(page.Listings), toPaginationResponse(page.Pagination))
}

// Autocomplete обрабатывает GET /api/v1/properties/autocomplete?q=&type=
func (h *ListingHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	scope := domain.ParseSuggestionScope(query.Get("type"))
	access := domain.AccessFor(contextkeys.ClaimsFromContext(r.Context()), search.ParseBool(query.Get("includeUnpublished")))

	items, err := h.uc.Autocomplete.Execute(r.Context(), query.Get("q"), scope, access)
	if err != nil {
		contextkeys.LoggerFromContext(r.Context()).Error("Autocomplete use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Autocomplete failed")
		return
	}

	RespondSuccess(w, http.StatusOK, toSuggestionResponses(items), nil)
}

// Featured обрабатывает GET /api/v1/properties/featured
func (h *ListingHandler) Featured(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	listings, err := h.uc.Featured.Execute(r.Context(), limit)
	if err != nil {
		contextkeys.LoggerFromContext(r.Context()).Error("Featured use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve featured properties")
		return
	}
	RespondSuccess(w, http.StatusOK, toListingResponses(listings), nil)
}

// Details обрабатывает GET /api/v1/properties/{id}
func (h *ListingHandler) Details(w http.ResponseWriter, r *http.Request) {
	id, ok := parseListingID(w, r)
	if !ok {
		return
	}

	listing, err := h.uc.Details.Execute(r.Context(), id, contextkeys.ClaimsFromContext(r.Context()))
	if err != nil {
		writeUseCaseError(w, err, "Failed to retrieve property")
		return
	}
	RespondSuccess(w, http.StatusOK, toListingResponse(*listing), nil)
}

// Create обрабатывает POST /api/v1/properties
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeListingRequest(w, r, contracts.ListingCreatePayload)
	if !ok {
		return
	}

	listing, err := h.uc.Create.Execute(r.Context(), req.toInput(), contextkeys.ClaimsFromContext(r.Context()))
	if err != nil {
		writeUseCaseError(w, err, "Failed to create property")
		return
	}
	RespondSuccess(w, http.StatusCreated, toListingResponse(*listing), nil)
}

// Update обрабатывает PUT /api/v1/properties/{id}
func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseListingID(w, r)
	if !ok {
		return
	}
	req, ok := decodeListingRequest(w, r, contracts.ListingUpdatePayload)
	if !ok {
		return
	}

	listing, err := h.uc.Update.Execute(r.Context(), id, req.toInput(), contextkeys.ClaimsFromContext(r.Context()))
	if err != nil {
		writeUseCaseError(w, err, "Failed to update property")
		return
	}
	RespondSuccess(w, http.StatusOK, toListingResponse(*listing), nil)
}

// Delete обрабатывает DELETE /api/v1/properties/{id}
func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseListingID(w, r)
	if !ok {
		return
	}

	if err := h.uc.Delete.Execute(r.Context(), id, contextkeys.ClaimsFromContext(r.Context())); err != nil {
		writeUseCaseError(w, err, "Failed to delete property")
		return
	}
	RespondSuccess(w, http.StatusOK, DeletedResponse{ID: id}, nil)
}

func parseListingID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid property ID format")
		return uuid.Nil, false
	}
	return id, true
}

// decodeListingRequest проверяет тело по схеме и раскладывает его в ListingRequest
func decodeListingRequest(w http.ResponseWriter, r *http.Request, schemaKey string) (*ListingRequest, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		WriteJSONError(w, http.StatusRequestEntityTooLarge, "Request body is too large")
		return nil, false
	}

	if err := contracts.Validate(schemaKey, body); err != nil {
		contextkeys.LoggerFromContext(r.Context()).Info("Request body rejected", port.Fields{"reason": err.Error()})
		writeUseCaseError(w, err, "Invalid request body")
		return nil, false
	}

	var req ListingRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	return &req, true
}
