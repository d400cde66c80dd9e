package usecases_port

import (
	"context"

	"real-estate-agency/internal/core/domain"
)

type GetFilterOptionsUseCase interface {
	Execute(ctx context.Context, access domain.Access) (*domain.FilterOptionsResult, error)
}
