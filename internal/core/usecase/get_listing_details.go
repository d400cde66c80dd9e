package usecase

import (
	"context"
	"errors"

	"real-estate-agency/internal/contextkeys"
	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/port"

	"github.com/google/uuid"
)

type GetListingDetailsUseCase struct {
	storage port.ListingStoragePort
}

func NewGetListingDetailsUseCase(storage port.ListingStoragePort) *GetListingDetailsUseCase {
	return &GetListingDetailsUseCase{storage: storage}
}

// Execute возвращает объявление, если оно видно вызывающему.
// Скрытое объявление для постороннего выглядит как отсутствующее.
func (uc *GetListingDetailsUseCase) Execute(ctx context.Context, id uuid.UUID, claims *domain.Claims) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetListingDetails",
		"listing_id": id.String(),
	})

	listing, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			ucLogger.Info("Listing not found", nil)
		} else {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return nil, err
	}

	isOwner := claims != nil && claims.UserID == listing.OwnerID
	if !listing.IsPubliclyVisible() && !isOwner && !claims.IsElevated() {
		ucLogger.Info("Hidden listing requested by outsider", nil)
		return nil, domain.ErrListingNotFound
	}

	if !isOwner {
		if err := uc.storage.IncrementViews(ctx, id); err != nil {
			ucLogger.Warn("Failed to increment views", port.Fields{"error": err.Error()})
		} else {
			listing.Views++
		}
	}

	return listing, nil
}
