package services

import (
	"github.com/NgurahFajar/damar-exchange-backend/internal/core/conversion"
	portsrepo "github.com/NgurahFajar/damar-exchange-backend/internal/core/ports/repositories"
	portssvc "github.com/NgurahFajar/damar-exchange-backend/internal/core/ports/services"
	"github.com/NgurahFajar/damar-exchange-backend/internal/platform/config"
	"github.com/NgurahFajar/damar-exchange-backend/internal/platform/storage"
)

// NewServiceContainer wires repositories, the snapshot cache and display
// configuration into the full service set used by the handlers.
func NewServiceContainer(repos portsrepo.RepositoryProvider, files storage.FileStore, cfg *config.Config) *portssvc.ServiceContainer {
	snapshots := NewRateSnapshotCache(repos.CurrencyRepo, cfg.RateSnapshotTTL)
	symbols := conversion.SymbolTable(cfg.CurrencySymbols)

	userService := NewUserService(repos.UserRepo)

	return &portssvc.ServiceContainer{
		Currency:     NewCurrencyService(repos.CurrencyRepo, snapshots),
		RateSnapshot: snapshots,
		Conversion:   NewConversionService(snapshots, symbols, cfg.DisplayLocale),
		Image:        NewImageService(repos.ImageRepo, files, cfg.ImageBaseURL),
		User:         userService,
		Token:        NewTokenService(cfg, userService),
		Dashboard:    NewDashboardService(repos.CurrencyRepo, repos.ImageRepo),
	}
}
