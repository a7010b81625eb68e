package mapping

import (
	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
	"github.com/NgurahFajar/damar-exchange-backend/internal/models"
)

// ToModelCurrencyRate converts a domain CurrencyRate to a model CurrencyRate
func ToModelCurrencyRate(d domain.CurrencyRate) models.CurrencyRate {
	return models.CurrencyRate{
		CurrencyCode: d.CurrencyCode,
		Name:         d.Name,
		BuyRate:      d.BuyRate,
		SellRate:     d.SellRate,
		IconURL:      d.IconURL,
		AuditFields:  toModelAudit(d.AuditFields),
	}
}

// ToDomainCurrencyRate converts a model CurrencyRate to a domain CurrencyRate
func ToDomainCurrencyRate(m models.CurrencyRate) domain.CurrencyRate {
	return domain.CurrencyRate{
		CurrencyCode: m.CurrencyCode,
		Name:         m.Name,
		BuyRate:      m.BuyRate,
		SellRate:     m.SellRate,
		IconURL:      m.IconURL,
		AuditFields:  toDomainAudit(m.AuditFields),
	}
}

// ToDomainCurrencyRateSlice converts a slice of model CurrencyRates to domain CurrencyRates
func ToDomainCurrencyRateSlice(ms []models.CurrencyRate) []domain.CurrencyRate {
	ds := make([]domain.CurrencyRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrencyRate(m)
	}
	return ds
}
