package usecases_port

import (
	"context"

	"real-estate-agency/internal/core/domain"
)

type GetDashboardStatsUseCase interface {
	Execute(ctx context.Context) (*domain.DashboardStats, error)
}
