package quote

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a single price observation for a symbol.
type Quote struct {
	Symbol string
	Price  decimal.Decimal
	Time   time.Time
}

// Service fetches the latest price for a symbol. The bool result reports
// whether a quote was available: a provider answering without a price for
// the symbol is a valid outcome, not an error. Errors are reserved for
// transport failures after the provider's own retries are exhausted.
type Service interface {
	GetPrice(ctx context.Context, symbol string) (Quote, bool, error)
}
