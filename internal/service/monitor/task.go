package monitor

import (
	"context"
	"fmt"

	"github.com/b3watch/stock-alert/internal/schedule"
)

// MonitorTask adapts a StockMonitor to the scheduler's Task interface.
type MonitorTask struct {
	monitor *StockMonitor
	target  Target
}

func NewMonitorTask(monitor *StockMonitor, target Target) schedule.Task {
	return &MonitorTask{
		monitor: monitor,
		target:  target,
	}
}

func (t *MonitorTask) Run(ctx context.Context) error {
	_, err := t.monitor.RunOnce(ctx, t.target)
	return err
}

func (t *MonitorTask) Name() string {
	return fmt.Sprintf("quote monitor %s", t.target.Symbol)
}
