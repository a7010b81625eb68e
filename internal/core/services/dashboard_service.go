package services

import (
	"context"
	"fmt"

	portsrepo "github.com/NgurahFajar/damar-exchange-backend/internal/core/ports/repositories"
	"github.com/NgurahFajar/damar-exchange-backend/internal/dto"
)

// DashboardService aggregates the admin landing statistics.
type DashboardService struct {
	currencyRepo portsrepo.CurrencyReader
	imageRepo    portsrepo.ImageReader
}

func NewDashboardService(currencyRepo portsrepo.CurrencyReader, imageRepo portsrepo.ImageReader) *DashboardService {
	return &DashboardService{currencyRepo: currencyRepo, imageRepo: imageRepo}
}

func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	currencyCount, err := s.currencyRepo.CountCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count currencies: %w", err)
	}

	imageCount, err := s.imageRepo.CountImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count images: %w", err)
	}

	lastUpdate, err := s.currencyRepo.LatestRateUpdate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read latest rate update: %w", err)
	}

	return &dto.DashboardStatsResponse{
		CurrencyCount:  currencyCount,
		ImageCount:     imageCount,
		LastRateUpdate: lastUpdate,
	}, nil
}
