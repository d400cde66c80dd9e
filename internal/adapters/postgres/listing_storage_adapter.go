package postgres

import (
	"context"
	"errors"
	"fmt"

	"real-estate-agency/internal/contextkeys"
	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const listingColumns = `l.id, l.title, l.description, l.price, l.type, l.category, l.status,
	l.surface, l.rooms, l.bedrooms, l.bathrooms, l.address, l.city, l.zip_code,
	l.latitude, l.longitude, l.geohash, l.features, l.images,
	l.is_published, l.is_featured, l.views, l.owner_id, l.created_at, l.updated_at`

// ListingStorageAdapter реализует ListingStoragePort для PostgreSQL
type ListingStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewListingStorageAdapter(pool *pgxpool.Pool) (*ListingStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ListingStorageAdapter{pool: pool}, nil
}

func (a *ListingStorageAdapter) Count(ctx context.Context, pred domain.Predicate) (int, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ListingStorageAdapter",
		"method":    "Count",
	})

	qb, err := applyPredicate(pred)
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	query := fmt.Sprintf("SELECT COUNT(*) FROM listings l %s", qb.where())
	var total int64
	if err := a.pool.QueryRow(ctx, query, qb.args...).Scan(&total); err != nil {
		repoLogger.Error("Failed to count listings", err, port.Fields{"query": query})
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return int(total), nil
}

func (a *ListingStorageAdapter) Find(ctx context.Context, pred domain.Predicate, sort domain.Sort, limit, offset int) ([]domain.Listing, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ListingStorageAdapter",
		"method":    "Find",
		"limit":     limit,
		"offset":    offset,
	})

	qb, err := applyPredicate(pred)
	if err != nil {
		return nil, fmt.Errorf("failed to build find query: %w", err)
	}

	where := qb.where()
	query := fmt.Sprintf("SELECT %s FROM listings l %s %s LIMIT %s OFFSET %s",
		listingColumns, where, orderClause(sort), qb.placeholder(limit), qb.placeholder(offset))

	rows, err := a.pool.Query(ctx, query, qb.args...)
	if err != nil {
		repoLogger.Error("Failed to find listings", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find listings: %w", err)
	}
	defer rows.Close()

	listings := make([]domain.Listing, 0, limit)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, *l)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during listings rows iteration", err, nil)
		return nil, err
	}

	repoLogger.Debug("Listings found", port.Fields{"count": len(listings)})
	return listings, nil
}

func (a *ListingStorageAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	query := fmt.Sprintf("SELECT %s FROM listings l WHERE l.id = $1", listingColumns)
	l, err := scanListing(a.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing %s: %w", id, err)
	}
	return l, nil
}

func (a *ListingStorageAdapter) Create(ctx context.Context, l *domain.Listing) error {
	sql := `
		INSERT INTO listings (
			id, title, description, price, type, category, status,
			surface, rooms, bedrooms, bathrooms, address, city, zip_code,
			latitude, longitude, geohash, features, images,
			is_published, is_featured, views, owner_id, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25
		)`
	_, err := a.pool.Exec(ctx, sql,
		l.ID, l.Title, l.Description, l.Price, l.Type, l.Category, l.Status,
		l.Surface, l.Rooms, l.Bedrooms, l.Bathrooms, l.Address, l.City, l.ZipCode,
		l.Latitude, l.Longitude, l.Geohash, nonNil(l.Features), nonNil(l.Images),
		l.IsPublished, l.IsFeatured, l.Views, l.OwnerID, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert listing: %w", err)
	}
	return nil
}

func (a *ListingStorageAdapter) Update(ctx context.Context, l *domain.Listing) error {
	sql := `
		UPDATE listings SET
			title = $2, description = $3, price = $4, type = $5, category = $6, status = $7,
			surface = $8, rooms = $9, bedrooms = $10, bathrooms = $11,
			address = $12, city = $13, zip_code = $14, latitude = $15, longitude = $16, geohash = $17,
			features = $18, images = $19, is_published = $20, is_featured = $21, updated_at = $22
		WHERE id = $1`
	tag, err := a.pool.Exec(ctx, sql,
		l.ID, l.Title, l.Description, l.Price, l.Type, l.Category, l.Status,
		l.Surface, l.Rooms, l.Bedrooms, l.Bathrooms,
		l.Address, l.City, l.ZipCode, l.Latitude, l.Longitude, l.Geohash,
		nonNil(l.Features), nonNil(l.Images), l.IsPublished, l.IsFeatured, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (a *ListingStorageAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := a.pool.Exec(ctx, "DELETE FROM listings WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (a *ListingStorageAdapter) IncrementViews(ctx context.Context, id uuid.UUID) error {
	tag, err := a.pool.Exec(ctx, "UPDATE listings SET views = views + 1 WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var l domain.Listing
	err := row.Scan(
		&l.ID, &l.Title, &l.Description, &l.Price, &l.Type, &l.Category, &l.Status,
		&l.Surface, &l.Rooms, &l.Bedrooms, &l.Bathrooms, &l.Address, &l.City, &l.ZipCode,
		&l.Latitude, &l.Longitude, &l.Geohash, &l.Features, &l.Images,
		&l.IsPublished, &l.IsFeatured, &l.Views, &l.OwnerID, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
