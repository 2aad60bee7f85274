package monitor

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Target is a monitored security with its sell/buy thresholds. The two
// thresholds are independent: a target with buy above sell is accepted
// and simply never fires. Immutable for the process lifetime.
type Target struct {
	Symbol    string
	SellPrice decimal.Decimal
	BuyPrice  decimal.Decimal
}

// NewTarget normalizes the symbol to uppercase and rejects an empty one.
// Threshold sanity is the caller's responsibility.
func NewTarget(symbol string, sellPrice, buyPrice decimal.Decimal) (Target, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return Target{}, fmt.Errorf("empty target symbol")
	}
	return Target{
		Symbol:    symbol,
		SellPrice: sellPrice,
		BuyPrice:  buyPrice,
	}, nil
}

type Direction string

const (
	DirectionNone Direction = "none"
	DirectionSell Direction = "sell"
	DirectionBuy  Direction = "buy"
)

// AlertEvent is one threshold breach, composed once per firing cycle.
type AlertEvent struct {
	Symbol    string
	Direction Direction
	Price     decimal.Decimal
	Threshold decimal.Decimal
	Title     string
	Body      string
}

type CycleOutcome string

const (
	OutcomeMarketClosed     CycleOutcome = "market_closed"
	OutcomeQuoteUnavailable CycleOutcome = "quote_unavailable"
	OutcomeNoAlert          CycleOutcome = "no_alert"
	OutcomeAlerted          CycleOutcome = "alerted"
)

// CycleResult is what a single monitoring pass produced. Direction is
// set only when Outcome is OutcomeAlerted.
type CycleResult struct {
	Outcome   CycleOutcome
	Direction Direction
}
