package usecase

import (
	"context"

	"real-estate-agency/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockListingStorage struct{ mock.Mock }

func (m *MockListingStorage) Count(ctx context.Context, pred domain.Predicate) (int, error) {
	args := m.Called(ctx, pred)
	return args.Int(0), args.Error(1)
}
func (m *MockListingStorage) Find(ctx context.Context, pred domain.Predicate, sort domain.Sort, limit, offset int) ([]domain.Listing, error) {
	args := m.Called(ctx, pred, sort, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Listing), args.Error(1)
}
func (m *MockListingStorage) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}
func (m *MockListingStorage) Create(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}
func (m *MockListingStorage) Update(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}
func (m *MockListingStorage) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockListingStorage) IncrementViews(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSuggestionRepository struct{ mock.Mock }

func (m *MockSuggestionRepository) SuggestCities(ctx context.Context, q string, pred domain.Predicate, limit int) ([]domain.CityCount, error) {
	args := m.Called(ctx, q, pred, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CityCount), args.Error(1)
}
func (m *MockSuggestionRepository) SuggestTitles(ctx context.Context, q string, pred domain.Predicate, limit int) ([]domain.ListingRef, error) {
	args := m.Called(ctx, q, pred, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ListingRef), args.Error(1)
}
func (m *MockSuggestionRepository) SuggestAddresses(ctx context.Context, q string, pred domain.Predicate, limit int) ([]domain.ListingRef, error) {
	args := m.Called(ctx, q, pred, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ListingRef), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishListingEvent(ctx context.Context, eventType string, listing *domain.Listing) error {
	args := m.Called(ctx, eventType, listing)
	return args.Error(0)
}

type MockBlogRepository struct{ mock.Mock }

func (m *MockBlogRepository) CountPublished(ctx context.Context, filter domain.BlogFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}
func (m *MockBlogRepository) FindPublished(ctx context.Context, filter domain.BlogFilter, limit, offset int) ([]domain.BlogPost, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlogPost), args.Error(1)
}
func (m *MockBlogRepository) GetPublishedBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}

type MockFilterOptionsRepository struct{ mock.Mock }

func (m *MockFilterOptionsRepository) GetPriceRange(ctx context.Context, pred domain.Predicate) (*domain.RangeResult, error) {
	args := m.Called(ctx, pred)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RangeResult), args.Error(1)
}
func (m *MockFilterOptionsRepository) GetSurfaceRange(ctx context.Context, pred domain.Predicate) (*domain.RangeResult, error) {
	args := m.Called(ctx, pred)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RangeResult), args.Error(1)
}
func (m *MockFilterOptionsRepository) GetDistinctCities(ctx context.Context, pred domain.Predicate) ([]string, error) {
	args := m.Called(ctx, pred)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockFilterOptionsRepository) GetDistinctTypes(ctx context.Context, pred domain.Predicate) ([]string, error) {
	args := m.Called(ctx, pred)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockFilterOptionsRepository) GetDistinctFeatures(ctx context.Context, pred domain.Predicate) ([]string, error) {
	args := m.Called(ctx, pred)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
