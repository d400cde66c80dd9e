package port

import (
	"context"

	"real-estate-agency/internal/core/domain"
)

type StatsRepositoryPort interface {
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
