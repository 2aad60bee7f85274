package monitor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/b3watch/stock-alert/internal/entity"
	"github.com/b3watch/stock-alert/internal/repo"
	"github.com/b3watch/stock-alert/internal/service/market"
	"github.com/b3watch/stock-alert/internal/service/notification"
	"github.com/b3watch/stock-alert/internal/service/quote"
	"github.com/b3watch/stock-alert/pkg/clockx"
)

// StockMonitor runs one evaluation pass per call: market-hours gate,
// price fetch, threshold evaluation, dedup check, notification fan-out.
type StockMonitor struct {
	quoteSvc  quote.Service
	statusSvc market.StatusService
	ledger    *NotificationLedger
	notifiers []notification.Notifier
	alertRepo repo.AlertRepo
	clock     clockx.Clock
}

type Option func(m *StockMonitor)

func WithNotifiers(notifiers ...notification.Notifier) Option {
	return func(m *StockMonitor) {
		m.notifiers = notifiers
	}
}

// WithAlertRepo enables persisting fired alerts as an audit trail.
func WithAlertRepo(alertRepo repo.AlertRepo) Option {
	return func(m *StockMonitor) {
		m.alertRepo = alertRepo
	}
}

func WithClock(clock clockx.Clock) Option {
	return func(m *StockMonitor) {
		m.clock = clock
	}
}

func NewStockMonitor(quoteSvc quote.Service, statusSvc market.StatusService, ledger *NotificationLedger, opts ...Option) *StockMonitor {
	m := &StockMonitor{
		quoteSvc:  quoteSvc,
		statusSvc: statusSvc,
		ledger:    ledger,
		notifiers: []notification.Notifier{notification.NewConsoleNotifier()},
		clock:     clockx.System(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RunOnce performs a single monitoring cycle for the target. A closed
// market short-circuits before the price source is touched, and a
// suppressed alert short-circuits before any sink is invoked. Only a
// transport failure of the price fetch is returned as an error; the
// scheduler logs it and waits for the next interval.
func (m *StockMonitor) RunOnce(ctx context.Context, target Target) (CycleResult, error) {
	if !m.statusSvc.IsOpen(m.clock.Now()) {
		slog.Info("market closed, skipping cycle", "symbol", target.Symbol)
		return CycleResult{Outcome: OutcomeMarketClosed, Direction: DirectionNone}, nil
	}

	q, found, err := m.quoteSvc.GetPrice(ctx, target.Symbol)
	if err != nil {
		return CycleResult{}, fmt.Errorf("fetch price for %s: %w", target.Symbol, err)
	}
	if !found {
		slog.Warn("quote unavailable", "symbol", target.Symbol)
		return CycleResult{Outcome: OutcomeQuoteUnavailable, Direction: DirectionNone}, nil
	}
	slog.Info("quote received", "symbol", target.Symbol, "price", q.Price)

	event, fired := Evaluate(target, q, found)
	if !fired {
		return CycleResult{Outcome: OutcomeNoAlert, Direction: DirectionNone}, nil
	}

	if !m.ledger.ShouldNotify(target.Symbol, event.Price) {
		return CycleResult{Outcome: OutcomeNoAlert, Direction: DirectionNone}, nil
	}

	m.dispatch(ctx, event)
	m.ledger.Record(target.Symbol, event.Price)
	m.persist(ctx, event)

	return CycleResult{Outcome: OutcomeAlerted, Direction: event.Direction}, nil
}

// dispatch sends the alert through every configured notifier in order.
// One channel failing must not keep the others from being attempted.
func (m *StockMonitor) dispatch(ctx context.Context, event AlertEvent) {
	msg := notification.Message{Title: event.Title, Body: event.Body}
	delivered := 0
	for _, n := range m.notifiers {
		if err := n.Send(ctx, msg); err != nil {
			slog.Error("notifier send failed", "notifier", n.Name(),
				"symbol", event.Symbol, "error", err)
			continue
		}
		delivered++
	}
	slog.Info("alert dispatched", "symbol", event.Symbol, "direction", event.Direction,
		"delivered", delivered, "failed", len(m.notifiers)-delivered)
}

func (m *StockMonitor) persist(ctx context.Context, event AlertEvent) {
	if m.alertRepo == nil {
		return
	}
	_, err := m.alertRepo.Create(ctx, entity.Alert{
		Symbol:    event.Symbol,
		Direction: string(event.Direction),
		Price:     event.Price.StringFixed(2),
		Threshold: event.Threshold.StringFixed(2),
		Title:     event.Title,
		CreatedAt: m.clock.Now(),
	})
	if err != nil {
		slog.Error("failed to save alert history", "symbol", event.Symbol, "error", err)
	}
}
