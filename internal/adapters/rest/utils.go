package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"real-estate-agency/internal/core/domain"
)

// envelope - общий формат ответов API
type envelope struct {
	Success    bool                `json:"success"`
	Data       interface{}         `json:"data,omitempty"`
	Pagination *PaginationResponse `json:"pagination,omitempty"`
	Error      string              `json:"error,omitempty"`
	Details    []domain.FieldError `json:"details,omitempty"`
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// RespondSuccess: {"success": true, "data": ..., "pagination": ...}
func RespondSuccess(w http.ResponseWriter, code int, data interface{}, pagination *PaginationResponse) {
	RespondWithJSON(w, code, envelope{Success: true, Data: data, Pagination: pagination})
}

// WriteJSONError: {"success": false, "error": message}
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, envelope{Success: false, Error: message})
}

func writeValidationError(w http.ResponseWriter, ve *domain.ValidationError) {
	RespondWithJSON(w, http.StatusBadRequest, envelope{
		Success: false,
		Error:   "Validation failed",
		Details: ve.Fields,
	})
}

// writeUseCaseError переводит ошибку сценария в HTTP-ответ.
// Текст внутренних ошибок клиенту не отдается, вместо него fallback.
func writeUseCaseError(w http.ResponseWriter, err error, fallback string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeValidationError(w, ve)
	case errors.Is(err, domain.ErrListingNotFound):
		WriteJSONError(w, http.StatusNotFound, "Property not found")
	case errors.Is(err, domain.ErrPostNotFound):
		WriteJSONError(w, http.StatusNotFound, "Blog post not found")
	case errors.Is(err, domain.ErrForbidden):
		WriteJSONError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrTokenInvalid):
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
	default:
		WriteJSONError(w, http.StatusInternalServerError, fallback)
	}
}
