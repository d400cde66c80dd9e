package usecases_port

import (
	"context"

	"real-estate-agency/internal/core/domain"
)

type SearchListingsUseCase interface {
	Execute(ctx context.Context, criteria domain.SearchCriteria, access domain.Access) (*domain.ResultPage, error)
}
