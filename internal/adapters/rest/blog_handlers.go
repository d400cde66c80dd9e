package rest

import (
	"net/http"
	"strings"

	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/port/usecases_port"
	"real-estate-agency/internal/core/search"

	"github.com/go-chi/chi/v5"
)

type BlogHandler struct {
	listUC usecases_port.ListBlogPostsUseCase
	getUC  usecases_port.GetBlogPostUseCase
	limits search.Limits
}

// NewBlogHandler; нулевые поля limits заменяются на DefaultBlogLimit и MaxPageSize
func NewBlogHandler(listUC usecases_port.ListBlogPostsUseCase, getUC usecases_port.GetBlogPostUseCase, limits search.Limits) *BlogHandler {
	if limits.Default <= 0 {
		limits.Default = domain.DefaultBlogLimit
	}
	if limits.Max <= 0 {
		limits.Max = domain.MaxPageSize
	}
	return &BlogHandler{
		listUC: listUC,
		getUC:  getUC,
		limits: limits,
	}
}

// List обрабатывает GET /api/v1/blog
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, limit := search.NormalizePaginationWithLimits(query, h.limits)
	filter := domain.BlogFilter{
		Query:    query.Get("query"),
		Category: query.Get("category"),
	}

	result, err := h.listUC.Execute(r.Context(), filter, page, limit)
	if err != nil {
		writeUseCaseError(w, err, "Failed to retrieve blog posts")
		return
	}

	posts := make([]BlogPostResponse, len(result.Posts))
	for i, p := range result.Posts {
		posts[i] = toBlogPostResponse(p, false)
	}
	RespondSuccess(w, http.StatusOK, posts, toPaginationResponse(result.Pagination))
}

// Get обрабатывает GET /api/v1/blog/{slug}
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		WriteJSONError(w, http.StatusBadRequest, "Slug is required")
		return
	}

	post, err := h.getUC.Execute(r.Context(), slug)
	if err != nil {
		writeUseCaseError(w, err, "Failed to retrieve blog post")
		return
	}
	RespondSuccess(w, http.StatusOK, toBlogPostResponse(*post, true), nil)
}
