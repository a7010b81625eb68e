package services

import (
	"context"
	"fmt"

	"github.com/NgurahFajar/damar-exchange-backend/internal/core/conversion"
	portssvc "github.com/NgurahFajar/damar-exchange-backend/internal/core/ports/services"
	"github.com/NgurahFajar/damar-exchange-backend/internal/dto"
	"golang.org/x/text/language"
)

// ConversionService runs the pure conversion engine over cached rate
// snapshots and shapes the results for transport. All arithmetic lives in
// the conversion package; this service only fetches the snapshot and maps
// results to DTOs.
type ConversionService struct {
	snapshots portssvc.RateSnapshotSvc
	symbols   conversion.SymbolTable
	locale    language.Tag
}

// NewConversionService creates a new ConversionService. The symbol table and
// locale are injected at startup; they are display configuration, not logic.
func NewConversionService(snapshots portssvc.RateSnapshotSvc, symbols conversion.SymbolTable, locale language.Tag) *ConversionService {
	if locale == (language.Tag{}) {
		locale = conversion.DefaultLocale
	}
	return &ConversionService{snapshots: snapshots, symbols: symbols, locale: locale}
}

// ConvertCurrency validates the raw request, performs the conversion over
// the current snapshot and derives display rates. Engine failures come back
// as *conversion.Error inside the error chain.
func (s *ConversionService) ConvertCurrency(ctx context.Context, req dto.ConvertRequest) (*dto.ConversionResultResponse, error) {
	amount, convErr := conversion.Validate(req.Amount, req.From, req.To)
	if convErr != nil {
		return nil, convErr
	}

	rates, err := s.snapshots.Snapshot(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate snapshot: %w", err)
	}

	fromCode := conversion.NormalizeCode(req.From)
	toCode := conversion.NormalizeCode(req.To)

	converted, convErr := conversion.Convert(amount, fromCode, toCode, rates)
	if convErr != nil {
		return nil, convErr
	}

	ratePair, convErr := conversion.ExchangeRates(amount, converted)
	if convErr != nil {
		return nil, convErr
	}

	return &dto.ConversionResultResponse{
		Amount:             amount,
		FromCurrency:       fromCode,
		ToCurrency:         toCode,
		ConvertedAmount:    converted.Round(conversion.AmountPrecision),
		FormattedAmount:    conversion.FormatAmount(amount, fromCode, s.symbols, s.locale),
		FormattedConverted: conversion.FormatAmount(converted, toCode, s.symbols, s.locale),
		ForwardRate:        ratePair.Forward,
		ReverseRate:        ratePair.Reverse,
	}, nil
}

// ConversionTable builds the fixed reference-amount ladder for a pair. Rows
// that cannot be quoted carry their error kind; the rest still render.
func (s *ConversionService) ConversionTable(ctx context.Context, fromCode, toCode string) (*dto.ConversionTableResponse, error) {
	fromCode = conversion.NormalizeCode(fromCode)
	toCode = conversion.NormalizeCode(toCode)
	if fromCode == "" || toCode == "" {
		return nil, &conversion.Error{Kind: conversion.KindMissingField, Detail: "both currencies are required"}
	}
	if fromCode == toCode {
		return nil, &conversion.Error{Kind: conversion.KindIdenticalCurrencies, Detail: fromCode}
	}

	rates, err := s.snapshots.Snapshot(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate snapshot: %w", err)
	}

	ladder := conversion.BuildLadder(fromCode, toCode, rates)
	rows := make([]dto.ConversionTableRow, len(ladder))
	for i, row := range ladder {
		rows[i] = dto.ToConversionTableRow(row)
	}

	return &dto.ConversionTableResponse{
		FromCurrency: fromCode,
		ToCurrency:   toCode,
		Rows:         rows,
	}, nil
}
