package rest

import (
	"time"

	"real-estate-agency/internal/core/domain"

	"github.com/google/uuid"
)

type PaginationResponse struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

func toPaginationResponse(p domain.Pagination) *PaginationResponse {
	return &PaginationResponse{
		Page:        p.Page,
		Limit:       p.Limit,
		Total:       p.Total,
		TotalPages:  p.TotalPages,
		HasNextPage: p.HasNextPage,
		HasPrevPage: p.HasPrevPage,
	}
}

type ListingResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Surface     float64   `json:"surface"`
	Rooms       int       `json:"rooms"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	ZipCode     string    `json:"zipCode"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Geohash     string    `json:"geohash,omitempty"`
	Features    []string  `json:"features"`
	Images      []string  `json:"images"`
	IsPublished bool      `json:"isPublished"`
	IsFeatured  bool      `json:"isFeatured"`
	Views       int64     `json:"views"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toListingResponse(l domain.Listing) ListingResponse {
	return ListingResponse{
		ID:          l.ID.String(),
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		Type:        l.Type,
		Category:    l.Category,
		Status:      l.Status,
		Surface:     l.Surface,
		Rooms:       l.Rooms,
		Bedrooms:    l.Bedrooms,
		Bathrooms:   l.Bathrooms,
		Address:     l.Address,
		City:        l.City,
		ZipCode:     l.ZipCode,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
		Geohash:     l.Geohash,
		Features:    orEmpty(l.Features),
		Images:      orEmpty(l.Images),
		IsPublished: l.IsPublished,
		IsFeatured:  l.IsFeatured,
		Views:       l.Views,
		OwnerID:     l.OwnerID.String(),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func toListingResponses(listings []domain.Listing) []ListingResponse {
	result := make([]ListingResponse, len(listings))
	for i, l := range listings {
		result[i] = toListingResponse(l)
	}
	return result
}

// ListingRequest - тело POST/PUT, уже проверенное по JSON-схеме
type ListingRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Type        *string  `json:"type"`
	Category    *string  `json:"category"`
	Status      *string  `json:"status"`
	Surface     *float64 `json:"surface"`
	Rooms       *int     `json:"rooms"`
	Bedrooms    *int     `json:"bedrooms"`
	Bathrooms   *int     `json:"bathrooms"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	ZipCode     *string  `json:"zipCode"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Features    []string `json:"features"`
	Images      []string `json:"images"`
	IsPublished *bool    `json:"isPublished"`
	IsFeatured  *bool    `json:"isFeatured"`
}

func (r ListingRequest) toInput() domain.ListingInput {
	return domain.ListingInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Type:        r.Type,
		Category:    r.Category,
		Status:      r.Status,
		Surface:     r.Surface,
		Rooms:       r.Rooms,
		Bedrooms:    r.Bedrooms,
		Bathrooms:   r.Bathrooms,
		Address:     r.Address,
		City:        r.City,
		ZipCode:     r.ZipCode,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Features:    r.Features,
		Images:      r.Images,
		IsPublished: r.IsPublished,
		IsFeatured:  r.IsFeatured,
	}
}

type SuggestionResponse struct {
	Type     string  `json:"type"`
	Text     string  `json:"text"`
	Subtitle string  `json:"subtitle"`
	Value    string  `json:"value"`
	ID       *string `json:"id,omitempty"`
}

func toSuggestionResponses(items []domain.SuggestionItem) []SuggestionResponse {
	result := make([]SuggestionResponse, len(items))
	for i, s := range items {
		result[i] = SuggestionResponse{
			Type:     string(s.Type),
			Text:     s.Text,
			Subtitle: s.Subtitle,
			Value:    s.Value,
		}
		if s.ID != nil {
			id := s.ID.String()
			result[i].ID = &id
		}
	}
	return result
}

type FilterOptionResponse struct {
	Options []interface{} `json:"options,omitempty"`
	Min     interface{}   `json:"min,omitempty"`
	Max     interface{}   `json:"max,omitempty"`
}

type FilterOptionsResponse struct {
	Filters map[string]FilterOptionResponse `json:"filters"`
	Count   int                             `json:"count"`
}

type BlogPostResponse struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content,omitempty"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	CoverImage  string     `json:"coverImage,omitempty"`
	AuthorID    string     `json:"authorId"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// toBlogPostResponse; в списке контент не отдается
func toBlogPostResponse(p domain.BlogPost, withContent bool) BlogPostResponse {
	resp := BlogPostResponse{
		ID:          p.ID.String(),
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Category:    p.Category,
		Tags:        orEmpty(p.Tags),
		CoverImage:  p.CoverImage,
		AuthorID:    p.AuthorID.String(),
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
	}
	if withContent {
		resp.Content = p.Content
	}
	return resp
}

type CountResponse struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type DashboardStatsResponse struct {
	TotalListings     int             `json:"totalListings"`
	PublishedListings int             `json:"publishedListings"`
	FeaturedListings  int             `json:"featuredListings"`
	TotalViews        int64           `json:"totalViews"`
	ByStatus          []CountResponse `json:"byStatus"`
	ByType            []CountResponse `json:"byType"`
	BlogPosts         int             `json:"blogPosts"`
}

func toCountResponses(items []domain.CountByKey) []CountResponse {
	result := make([]CountResponse, len(items))
	for i, c := range items {
		result[i] = CountResponse{Key: c.Key, Count: c.Count}
	}
	return result
}

type DeletedResponse struct {
	ID uuid.UUID `json:"id"`
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
