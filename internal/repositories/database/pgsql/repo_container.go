package pgsql

import (
	portsrepo "github.com/NgurahFajar/damar-exchange-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo: newPgxCurrencyRepository(dbPool),
		ImageRepo:    newPgxImageRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
	}
}
