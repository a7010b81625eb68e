package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NgurahFajar/damar-exchange-backend/internal/apperrors"
	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
	portsrepo "github.com/NgurahFajar/damar-exchange-backend/internal/core/ports/repositories"
	"github.com/NgurahFajar/damar-exchange-backend/internal/models"
	"github.com/NgurahFajar/damar-exchange-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency rate data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// SaveCurrency inserts a new currency rate row.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.CurrencyRate) error {
	modelCurr := mapping.ToModelCurrencyRate(currency)

	query := `
		INSERT INTO currencies (currency_code, name, buy_rate, sell_rate, icon_url, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelCurr.CurrencyCode,
		modelCurr.Name,
		modelCurr.BuyRate,
		modelCurr.SellRate,
		modelCurr.IconURL,
		modelCurr.CreatedAt,
		modelCurr.CreatedBy,
		modelCurr.LastUpdatedAt,
		modelCurr.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save currency %s: %w", modelCurr.CurrencyCode, err)
	}
	return nil
}

// UpdateCurrency updates the rates and metadata of an existing currency row.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.CurrencyRate) error {
	modelCurr := mapping.ToModelCurrencyRate(currency)

	query := `
		UPDATE currencies
		SET name = $2, buy_rate = $3, sell_rate = $4, icon_url = $5, last_updated_at = $6, last_updated_by = $7
		WHERE currency_code = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelCurr.CurrencyCode,
		modelCurr.Name,
		modelCurr.BuyRate,
		modelCurr.SellRate,
		modelCurr.IconURL,
		modelCurr.LastUpdatedAt,
		modelCurr.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update currency %s: %w", modelCurr.CurrencyCode, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCurrency removes a currency row by code.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, currencyCode string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM currencies WHERE currency_code = $1;`, currencyCode)
	if err != nil {
		return fmt.Errorf("failed to delete currency %s: %w", currencyCode, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCurrencyByCode retrieves a currency by its code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error) {
	query := `
		SELECT currency_code, name, buy_rate, sell_rate, icon_url, created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		WHERE currency_code = $1;
	`
	var modelCurr models.CurrencyRate
	err := r.Pool.QueryRow(ctx, query, currencyCode).Scan(
		&modelCurr.CurrencyCode,
		&modelCurr.Name,
		&modelCurr.BuyRate,
		&modelCurr.SellRate,
		&modelCurr.IconURL,
		&modelCurr.CreatedAt,
		&modelCurr.CreatedBy,
		&modelCurr.LastUpdatedAt,
		&modelCurr.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", currencyCode, err)
	}

	domainCurr := mapping.ToDomainCurrencyRate(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.CurrencyRate, error) {
	query := `
		SELECT currency_code, name, buy_rate, sell_rate, icon_url, created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		ORDER BY currency_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CurrencyRate, error) {
		var currency models.CurrencyRate
		err := row.Scan(
			&currency.CurrencyCode,
			&currency.Name,
			&currency.BuyRate,
			&currency.SellRate,
			&currency.IconURL,
			&currency.CreatedAt,
			&currency.CreatedBy,
			&currency.LastUpdatedAt,
			&currency.LastUpdatedBy,
		)
		return currency, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect currency rows: %w", err)
	}

	return mapping.ToDomainCurrencyRateSlice(modelCurrencies), nil
}

// CountCurrencies returns the number of tradable currencies.
func (r *PgxCurrencyRepository) CountCurrencies(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM currencies;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count currencies: %w", err)
	}
	return count, nil
}

// LatestRateUpdate returns the most recent rate modification time, or nil
// when the catalog is empty.
func (r *PgxCurrencyRepository) LatestRateUpdate(ctx context.Context) (*time.Time, error) {
	var latest *time.Time
	if err := r.Pool.QueryRow(ctx, `SELECT MAX(last_updated_at) FROM currencies;`).Scan(&latest); err != nil {
		return nil, fmt.Errorf("failed to query latest rate update: %w", err)
	}
	return latest, nil
}
