package domain

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost - статья блога
type BlogPost struct {
	ID          uuid.UUID
	Slug        string
	Title       string
	Excerpt     string
	Content     string
	Category    string
	Tags        []string
	CoverImage  string
	AuthorID    uuid.UUID
	IsPublished bool
	PublishedAt *time.Time
	CreatedAt   time.Time
}

// BlogFilter - фильтры списка статей
type BlogFilter struct {
	Query    string
	Category string
}

// BlogPage - страница статей
type BlogPage struct {
	Posts      []BlogPost
	Pagination Pagination
}
