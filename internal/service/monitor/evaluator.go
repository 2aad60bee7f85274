package monitor

import (
	"fmt"

	"github.com/b3watch/stock-alert/internal/service/quote"
)

// Evaluate compares a quote against the target's thresholds and composes
// the alert for a breach. The neutral band [buy, sell] is inclusive on
// both ends: a price exactly at a threshold does not trigger. Sell is
// checked before buy, so with inverted thresholds sell wins.
func Evaluate(target Target, q quote.Quote, found bool) (AlertEvent, bool) {
	if !found {
		return AlertEvent{}, false
	}

	if q.Price.GreaterThan(target.SellPrice) {
		return composeEvent(target, q, DirectionSell), true
	}
	if q.Price.LessThan(target.BuyPrice) {
		return composeEvent(target, q, DirectionBuy), true
	}
	return AlertEvent{}, false
}

func composeEvent(target Target, q quote.Quote, direction Direction) AlertEvent {
	event := AlertEvent{
		Symbol:    target.Symbol,
		Direction: direction,
		Price:     q.Price,
	}
	switch direction {
	case DirectionSell:
		event.Threshold = target.SellPrice
		event.Title = fmt.Sprintf("[SELL] Alert for %s", target.Symbol)
		event.Body = fmt.Sprintf("We advise selling %s.\nCurrent price: %s\nSell target: %s",
			target.Symbol, q.Price.StringFixed(2), target.SellPrice.StringFixed(2))
	case DirectionBuy:
		event.Threshold = target.BuyPrice
		event.Title = fmt.Sprintf("[BUY] Alert for %s", target.Symbol)
		event.Body = fmt.Sprintf("We advise buying %s.\nCurrent price: %s\nBuy target: %s",
			target.Symbol, q.Price.StringFixed(2), target.BuyPrice.StringFixed(2))
	}
	return event
}
