package usecase

import (
	"context"

	"real-estate-agency/internal/contextkeys"
	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/port"
)

type GetDashboardStatsUseCase struct {
	storage port.StatsRepositoryPort
}

func NewGetDashboardStatsUseCase(storage port.StatsRepositoryPort) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{storage: storage}
}

func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context) (*domain.DashboardStats, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetDashboardStats",
	})

	ucLogger.Info("Use case started", nil)

	result, err := uc.storage.GetDashboardStats(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return result, nil
}
