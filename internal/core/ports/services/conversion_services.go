package services

import (
	"context"

	"github.com/NgurahFajar/damar-exchange-backend/internal/dto"
)

// ConversionSvcFacade exposes the conversion engine over a rate snapshot.
type ConversionSvcFacade interface {
	// ConvertCurrency validates and performs a single conversion. Failures
	// of the engine are returned as *conversion.Error values inside the
	// error chain so transports can map kinds to status codes.
	ConvertCurrency(ctx context.Context, req dto.ConvertRequest) (*dto.ConversionResultResponse, error)

	// ConversionTable builds the fixed reference-amount ladder for a pair.
	ConversionTable(ctx context.Context, fromCode, toCode string) (*dto.ConversionTableResponse, error)
}
