package usecase

import (
	"context"
	"fmt"

	"real-estate-agency/internal/contextkeys"
	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/port"
	"real-estate-agency/internal/core/search"

	"golang.org/x/sync/errgroup"
)

type SearchListingsUseCase struct {
	storage port.ListingStoragePort
}

func NewSearchListingsUseCase(storage port.ListingStoragePort) *SearchListingsUseCase {
	return &SearchListingsUseCase{storage: storage}
}

// Execute считает общее количество и выбирает страницу параллельно по одному предикату.
// Транзакции нет: при параллельной записи total и страница могут слегка расходиться.
func (uc *SearchListingsUseCase) Execute(ctx context.Context, criteria domain.SearchCriteria, access domain.Access) (*domain.ResultPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchListings",
		"page":     criteria.Page,
		"limit":    criteria.Limit,
		"sort_by":  string(criteria.Sort.Field),
	})

	ucLogger.Debug("Use case started", port.Fields{"criteria": criteria})

	pred := search.BuildListingPredicate(criteria, access)

	var (
		total    int
		listings []domain.Listing
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := uc.storage.Count(gctx, pred)
		if err != nil {
			return fmt.Errorf("count listings: %w", err)
		}
		total = n
		return nil
	})
	g.Go(func() error {
		items, err := uc.storage.Find(gctx, pred, criteria.Sort, criteria.Limit, criteria.Offset())
		if err != nil {
			return fmt.Errorf("find listings: %w", err)
		}
		listings = items
		return nil
	})

	if err := g.Wait(); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	if listings == nil {
		listings = []domain.Listing{}
	}

	result := &domain.ResultPage{
		Listings:   listings,
		Pagination: domain.NewPagination(criteria.Page, criteria.Limit, total),
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   total,
		"items_on_page": len(listings),
	})

	return result, nil
}
