package monitor

import (
	"testing"
	"time"

	"github.com/b3watch/stock-alert/pkg/clockx"
	"github.com/b3watch/stock-alert/pkg/decimalx"
	"github.com/stretchr/testify/assert"
)

func TestNotificationLedger_FirstAlertAlwaysFires(t *testing.T) {
	ledger := NewNotificationLedger(clockx.System())
	assert.True(t, ledger.ShouldNotify("PETR4", decimalx.MustFromString("35.00")))
}

func TestNotificationLedger_UnchangedPriceSuppressed(t *testing.T) {
	ledger := NewNotificationLedger(clockx.System())
	price := decimalx.MustFromString("35.00")

	ledger.Record("PETR4", price)
	assert.False(t, ledger.ShouldNotify("PETR4", price))
}

func TestNotificationLedger_ChangedPriceFiresImmediately(t *testing.T) {
	ledger := NewNotificationLedger(clockx.System())

	ledger.Record("PETR4", decimalx.MustFromString("35.00"))
	assert.True(t, ledger.ShouldNotify("PETR4", decimalx.MustFromString("35.01")))
}

func TestNotificationLedger_ReminderInterval(t *testing.T) {
	now := time.Date(2025, time.June, 2, 14, 0, 0, 0, time.UTC)
	clock := clockx.Func(func() time.Time { return now })
	ledger := NewNotificationLedger(clock)
	price := decimalx.MustFromString("35.00")

	ledger.Record("PETR4", price)

	now = now.Add(9 * time.Minute)
	assert.False(t, ledger.ShouldNotify("PETR4", price))

	now = now.Add(1 * time.Minute)
	assert.True(t, ledger.ShouldNotify("PETR4", price))

	now = now.Add(5 * time.Minute)
	assert.True(t, ledger.ShouldNotify("PETR4", price))
}

func TestNotificationLedger_SymbolsAreIndependent(t *testing.T) {
	ledger := NewNotificationLedger(clockx.System())
	price := decimalx.MustFromString("35.00")

	ledger.Record("PETR4", price)
	assert.False(t, ledger.ShouldNotify("PETR4", price))
	assert.True(t, ledger.ShouldNotify("VALE3", price))
}

func TestNotificationLedger_RecordOverwrites(t *testing.T) {
	now := time.Date(2025, time.June, 2, 14, 0, 0, 0, time.UTC)
	clock := clockx.Func(func() time.Time { return now })
	ledger := NewNotificationLedger(clock)

	ledger.Record("PETR4", decimalx.MustFromString("35.00"))
	now = now.Add(9 * time.Minute)
	ledger.Record("PETR4", decimalx.MustFromString("36.00"))

	// the reminder window restarts from the second record
	now = now.Add(9 * time.Minute)
	assert.False(t, ledger.ShouldNotify("PETR4", decimalx.MustFromString("36.00")))
	now = now.Add(1 * time.Minute)
	assert.True(t, ledger.ShouldNotify("PETR4", decimalx.MustFromString("36.00")))
}
