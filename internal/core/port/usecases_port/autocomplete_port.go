package usecases_port

import (
	"context"

	"real-estate-agency/internal/core/domain"
)

type AutocompleteUseCase interface {
	Execute(ctx context.Context, q string, scope domain.SuggestionScope, access domain.Access) ([]domain.SuggestionItem, error)
}
