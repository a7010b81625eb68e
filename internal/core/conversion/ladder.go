package conversion

import (
	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LadderAmounts is the fixed set of reference amounts shown in the
// comparison table.
var LadderAmounts = []int64{1, 5, 10, 25, 50, 100, 500, 1000, 5000, 10000}

// LadderRow is one reference amount converted in both directions. A row
// carries its own error so one unsellable currency does not blank the whole
// table; callers check ForwardErr/ReverseErr per cell.
type LadderRow struct {
	Amount     decimal.Decimal
	Forward    decimal.Decimal
	ForwardErr *Error
	Reverse    decimal.Decimal
	ReverseErr *Error
}

// BuildLadder converts every ladder amount from->to and to->from over the
// given snapshot. Rows are computed independently: unlike the single
// conversion path, which fails atomically, a per-row failure leaves the
// remaining rows intact.
func BuildLadder(fromCode, toCode string, rates []domain.CurrencyRate) []LadderRow {
	rows := make([]LadderRow, len(LadderAmounts))
	for i, a := range LadderAmounts {
		amount := decimal.NewFromInt(a)
		row := LadderRow{Amount: amount}
		row.Forward, row.ForwardErr = Convert(amount, fromCode, toCode, rates)
		row.Reverse, row.ReverseErr = Convert(amount, toCode, fromCode, rates)
		rows[i] = row
	}
	return rows
}
