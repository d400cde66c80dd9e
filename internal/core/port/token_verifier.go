package port

import (
	"context"

	"real-estate-agency/internal/core/domain"
)

// TokenVerifierPort проверяет bearer-токен, выпущенный сервисом аутентификации
type TokenVerifierPort interface {
	Verify(ctx context.Context, token string) (*domain.Claims, error)
}
