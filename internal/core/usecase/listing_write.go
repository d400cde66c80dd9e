package usecase

import (
	"context"
	"errors"
	"time"

	"real-estate-agency/internal/contextkeys"
	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/port"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"
)

// GeohashPrecision - 7 символов, ячейка примерно 150x150 м
const GeohashPrecision = 7

type CreateListingUseCase struct {
	storage   port.ListingStoragePort
	publisher port.ListingEventPublisherPort
}

func NewCreateListingUseCase(storage port.ListingStoragePort, publisher port.ListingEventPublisherPort) *CreateListingUseCase {
	return &CreateListingUseCase{storage: storage, publisher: publisher}
}

// Execute создает объявление от имени агента или администратора.
// Входные данные уже проверены по схеме на границе API.
func (uc *CreateListingUseCase) Execute(ctx context.Context, input domain.ListingInput, claims *domain.Claims) (*domain.Listing, error) {
	if claims == nil {
		return nil, domain.ErrUnauthorized
	}
	if !claims.IsElevated() {
		return nil, domain.ErrForbidden
	}

	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "CreateListing",
		"owner_id": claims.UserID.String(),
	})

	now := time.Now().UTC()
	listing := &domain.Listing{
		ID:        uuid.New(),
		Status:    domain.StatusAvailable,
		Features:  []string{},
		Images:    []string{},
		OwnerID:   claims.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	input.Apply(listing)
	listing.Geohash = computeGeohash(listing)

	if err := uc.storage.Create(ctx, listing); err != nil {
		ucLogger.Error("Failed to create listing", err, nil)
		return nil, err
	}

	ucLogger.Info("Listing created", port.Fields{"listing_id": listing.ID.String()})
	publishBestEffort(ctx, uc.publisher, domain.EventListingCreated, listing, ucLogger)
	return listing, nil
}

type UpdateListingUseCase struct {
	storage   port.ListingStoragePort
	publisher port.ListingEventPublisherPort
}

func NewUpdateListingUseCase(storage port.ListingStoragePort, publisher port.ListingEventPublisherPort) *UpdateListingUseCase {
	return &UpdateListingUseCase{storage: storage, publisher: publisher}
}

// Execute применяет частичное обновление. Менять может владелец или администратор.
func (uc *UpdateListingUseCase) Execute(ctx context.Context, id uuid.UUID, input domain.ListingInput, claims *domain.Claims) (*domain.Listing, error) {
	if claims == nil {
		return nil, domain.ErrUnauthorized
	}

	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "UpdateListing",
		"listing_id": id.String(),
		"user_id":    claims.UserID.String(),
	})

	listing, err := loadManageable(ctx, uc.storage, id, claims)
	if err != nil {
		logWriteError(ucLogger, err)
		return nil, err
	}

	input.Apply(listing)
	listing.Geohash = computeGeohash(listing)
	listing.UpdatedAt = time.Now().UTC()

	if err := uc.storage.Update(ctx, listing); err != nil {
		logWriteError(ucLogger, err)
		return nil, err
	}

	ucLogger.Info("Listing updated", nil)
	publishBestEffort(ctx, uc.publisher, domain.EventListingUpdated, listing, ucLogger)
	return listing, nil
}

type DeleteListingUseCase struct {
	storage   port.ListingStoragePort
	publisher port.ListingEventPublisherPort
}

func NewDeleteListingUseCase(storage port.ListingStoragePort, publisher port.ListingEventPublisherPort) *DeleteListingUseCase {
	return &DeleteListingUseCase{storage: storage, publisher: publisher}
}

func (uc *DeleteListingUseCase) Execute(ctx context.Context, id uuid.UUID, claims *domain.Claims) error {
	if claims == nil {
		return domain.ErrUnauthorized
	}

	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "DeleteListing",
		"listing_id": id.String(),
		"user_id":    claims.UserID.String(),
	})

	listing, err := loadManageable(ctx, uc.storage, id, claims)
	if err != nil {
		logWriteError(ucLogger, err)
		return err
	}

	if err := uc.storage.Delete(ctx, id); err != nil {
		logWriteError(ucLogger, err)
		return err
	}

	ucLogger.Info("Listing deleted", nil)
	publishBestEffort(ctx, uc.publisher, domain.EventListingDeleted, listing, ucLogger)
	return nil
}

func loadManageable(ctx context.Context, storage port.ListingStoragePort, id uuid.UUID, claims *domain.Claims) (*domain.Listing, error) {
	listing, err := storage.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !claims.CanManage(listing) {
		return nil, domain.ErrForbidden
	}
	return listing, nil
}

func logWriteError(logger port.LoggerPort, err error) {
	switch {
	case errors.Is(err, domain.ErrListingNotFound), errors.Is(err, domain.ErrForbidden):
		logger.Info("Write rejected", port.Fields{"reason": err.Error()})
	default:
		logger.Error("Storage returned an error", err, nil)
	}
}

func computeGeohash(l *domain.Listing) string {
	if l.Latitude == nil || l.Longitude == nil {
		return ""
	}
	return geohash.EncodeWithPrecision(*l.Latitude, *l.Longitude, GeohashPrecision)
}

// publishBestEffort: сбой отправки события не отменяет уже выполненную запись
func publishBestEffort(ctx context.Context, publisher port.ListingEventPublisherPort, eventType string, listing *domain.Listing, logger port.LoggerPort) {
	if publisher == nil {
		return
	}
	if err := publisher.PublishListingEvent(ctx, eventType, listing); err != nil {
		logger.Warn("Failed to publish listing event", port.Fields{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}
