package services

import (
	"context"

	"github.com/NgurahFajar/damar-exchange-backend/internal/dto"
)

// DashboardSvcFacade aggregates the admin dashboard statistics.
type DashboardSvcFacade interface {
	// GetStats returns catalog and gallery counts plus the last rate update.
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}
