package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"real-estate-agency/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const blogColumns = `b.id, b.slug, b.title, b.excerpt, b.content, b.category, b.tags,
	b.cover_image, b.author_id, b.is_published, b.published_at, b.created_at`

type BlogRepository struct {
	pool *pgxpool.Pool
}

func NewBlogRepository(pool *pgxpool.Pool) (*BlogRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &BlogRepository{pool: pool}, nil
}

// blogFilterQuery собирает WHERE для опубликованных статей
func blogFilterQuery(filter domain.BlogFilter) (string, []interface{}) {
	conditions := []string{"b.is_published = true"}
	args := make([]interface{}, 0, 2)
	argId := 1

	if filter.Query != "" {
		p := fmt.Sprintf("$%d", argId)
		conditions = append(conditions, "("+containsCondition("b.title", p)+" OR "+containsCondition("b.excerpt", p)+")")
		args = append(args, containsPattern(filter.Query))
		argId++
	}
	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("b.category = $%d", argId))
		args = append(args, filter.Category)
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *BlogRepository) CountPublished(ctx context.Context, filter domain.BlogFilter) (int, error) {
	where, args := blogFilterQuery(filter)
	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM blog_posts b "+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count blog posts: %w", err)
	}
	return total, nil
}

func (r *BlogRepository) FindPublished(ctx context.Context, filter domain.BlogFilter, limit, offset int) ([]domain.BlogPost, error) {
	where, args := blogFilterQuery(filter)
	query := fmt.Sprintf(`SELECT %s FROM blog_posts b %s
		ORDER BY b.published_at DESC NULLS LAST, b.created_at DESC, b.id ASC
		LIMIT $%d OFFSET $%d`, blogColumns, where, len(args)+1, len(args)+2)

	rows, err := r.pool.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, fmt.Errorf("failed to find blog posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.BlogPost, 0, limit)
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func (r *BlogRepository) GetPublishedBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	query := fmt.Sprintf("SELECT %s FROM blog_posts b WHERE b.slug = $1 AND b.is_published = true", blogColumns)
	p, err := scanBlogPost(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get blog post %q: %w", slug, err)
	}
	return p, nil
}

func scanBlogPost(row pgx.Row) (*domain.BlogPost, error) {
	var p domain.BlogPost
	if err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Content, &p.Category, &p.Tags,
		&p.CoverImage, &p.AuthorID, &p.IsPublished, &p.PublishedAt, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
