package monitor

import (
	"log/slog"
	"sync"
	"time"

	"github.com/b3watch/stock-alert/pkg/clockx"
	"github.com/shopspring/decimal"
)

// reminderInterval is how long an unchanged price stays suppressed
// before a reminder alert fires again.
const reminderInterval = 10 * time.Minute

type notificationRecord struct {
	lastNotifiedPrice decimal.Decimal
	lastNotifiedAt    time.Time
}

// NotificationLedger tracks, per symbol, the last alerted price and when,
// and decides whether a new alert is worth sending. State lives only in
// memory; a restart resets all suppression history.
//
// ShouldNotify followed by Record is not atomic. The scheduler drives at
// most one cycle at a time per symbol, so there is a single writer per
// key; the map itself is guarded so cycles for different symbols may run
// in parallel.
type NotificationLedger struct {
	mu      sync.Mutex
	records map[string]notificationRecord
	clock   clockx.Clock
}

func NewNotificationLedger(clock clockx.Clock) *NotificationLedger {
	return &NotificationLedger{
		records: make(map[string]notificationRecord),
		clock:   clock,
	}
}

// ShouldNotify reports whether an alert at currentPrice should go out.
// The first alert for a symbol always fires. A changed price always
// fires. An unchanged price fires again once the reminder interval has
// elapsed.
func (l *NotificationLedger) ShouldNotify(symbol string, currentPrice decimal.Decimal) bool {
	l.mu.Lock()
	record, ok := l.records[symbol]
	l.mu.Unlock()

	if !ok {
		return true
	}
	if !record.lastNotifiedPrice.Equal(currentPrice) {
		slog.Info("price moved since last alert, notifying",
			"symbol", symbol, "old", record.lastNotifiedPrice, "new", currentPrice)
		return true
	}
	if l.clock.Now().Sub(record.lastNotifiedAt) >= reminderInterval {
		slog.Info("reminder interval elapsed since last alert, notifying", "symbol", symbol)
		return true
	}
	slog.Info("alert suppressed, price unchanged within reminder interval", "symbol", symbol)
	return false
}

// Record upserts the symbol's record with the given price and the
// current time.
func (l *NotificationLedger) Record(symbol string, price decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records[symbol] = notificationRecord{
		lastNotifiedPrice: price,
		lastNotifiedAt:    l.clock.Now(),
	}
}
