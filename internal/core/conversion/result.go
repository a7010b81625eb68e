// Package conversion implements the pivot-through-IDR currency conversion
// engine: input validation, the conversion arithmetic itself, display rate
// derivation and the fixed reference-amount ladder. Every function is a pure
// function of its arguments; the rate snapshot is handed in per call and
// never retained or mutated. Failures are returned as tagged values so
// callers can switch on the kind.
package conversion

import (
	"errors"
	"fmt"
)

// Kind identifies one failure class of the conversion pipeline.
type Kind string

const (
	// Validation-stage kinds, recoverable by the user correcting input.
	KindMissingField        Kind = "MISSING_FIELD"
	KindInvalidAmount       Kind = "INVALID_AMOUNT"
	KindNonPositiveAmount   Kind = "NON_POSITIVE_AMOUNT"
	KindAmountTooLarge      Kind = "AMOUNT_TOO_LARGE"
	KindIdenticalCurrencies Kind = "IDENTICAL_CURRENCIES"

	// Calculation-stage kinds, indicating a catalog or selection problem.
	KindCurrencyNotFound    Kind = "CURRENCY_NOT_FOUND"
	KindCurrencyNotSellable Kind = "CURRENCY_NOT_SELLABLE"
	KindUnsupportedPair     Kind = "UNSUPPORTED_PAIR"

	// Boundary condition when a rate or converted amount of zero would
	// require dividing by it.
	KindDivisionByZero Kind = "DIVISION_BY_ZERO"
)

// Error is a tagged conversion failure. Detail carries machine context such
// as the offending currency code; translating a kind into user-facing prose
// is the transport layer's job, never this package's.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// UserInput reports whether the kind belongs to the validation stage,
// i.e. the user can recover by correcting the submitted form.
func (e *Error) UserInput() bool {
	switch e.Kind {
	case KindMissingField, KindInvalidAmount, KindNonPositiveAmount, KindAmountTooLarge, KindIdenticalCurrencies:
		return true
	}
	return false
}

func newError(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// AsError unwraps a conversion Error from an error chain.
func AsError(err error) (*Error, bool) {
	var convErr *Error
	if errors.As(err, &convErr) {
		return convErr, true
	}
	return nil, false
}
