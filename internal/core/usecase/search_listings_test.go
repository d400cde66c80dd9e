package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchListings_Execute_Success(t *testing.T) {
	ctx := context.Background()
	storage := new(MockListingStorage)
	uc := NewSearchListingsUseCase(storage)

	criteria := domain.SearchCriteria{City: "Tunis", Sort: domain.DefaultSort, Page: 2, Limit: 10}
	pred := search.BuildListingPredicate(criteria, domain.Access{})
	page := make([]domain.Listing, 5)

	storage.On("Count", mock.Anything, pred).Return(15, nil).Once()
	storage.On("Find", mock.Anything, pred, domain.DefaultSort, 10, 10).Return(page, nil).Once()

	result, err := uc.Execute(ctx, criteria, domain.Access{})

	require.NoError(t, err)
	assert.Len(t, result.Listings, 5)
	assert.Equal(t, domain.NewPagination(2, 10, 15), result.Pagination)
	assert.False(t, result.Pagination.HasNextPage)
	assert.True(t, result.Pagination.HasPrevPage)
	storage.AssertExpectations(t)
}

func TestSearchListings_Execute_EmptyResultIsNotNil(t *testing.T) {
	storage := new(MockListingStorage)
	uc := NewSearchListingsUseCase(storage)

	storage.On("Count", mock.Anything, mock.Anything).Return(0, nil)
	storage.On("Find", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	result, err := uc.Execute(context.Background(), domain.SearchCriteria{Page: 1, Limit: 12}, domain.Access{})

	require.NoError(t, err)
	assert.NotNil(t, result.Listings)
	assert.Empty(t, result.Listings)
	assert.Equal(t, 0, result.Pagination.TotalPages)
}

func TestSearchListings_Execute_StorageError(t *testing.T) {
	storage := new(MockListingStorage)
	uc := NewSearchListingsUseCase(storage)
	dbErr := errors.New("connection reset")

	storage.On("Count", mock.Anything, mock.Anything).Return(0, dbErr)
	storage.On("Find", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]domain.Listing{}, nil).Maybe()

	result, err := uc.Execute(context.Background(), domain.SearchCriteria{Page: 1, Limit: 12}, domain.Access{})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, dbErr)
}

// Count и Find ждут друг друга: при последовательном выполнении тест зависнет до таймаута
func TestSearchListings_Execute_CountAndFindRunConcurrently(t *testing.T) {
	storage := new(MockListingStorage)
	uc := NewSearchListingsUseCase(storage)

	countStarted := make(chan struct{})
	findStarted := make(chan struct{})

	storage.On("Count", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		close(countStarted)
		<-findStarted
	}).Return(1, nil)
	storage.On("Find", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		close(findStarted)
		<-countStarted
	}).Return([]domain.Listing{{Title: "Loft"}}, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		result, err := uc.Execute(context.Background(), domain.SearchCriteria{Page: 1, Limit: 12}, domain.Access{})
		if assert.NoError(t, err) {
			assert.Equal(t, 1, result.Pagination.Total)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("count and find did not run concurrently")
	}
}
