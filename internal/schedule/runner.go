package schedule

import (
	"context"
	"log/slog"
	"time"
)

// IntervalRunner drives a task sequentially on a fixed interval: run,
// wait, run again. A failing run is logged and the runner keeps going.
// Cancelling the context interrupts the wait promptly.
type IntervalRunner struct {
	task     Task
	interval time.Duration
}

func NewIntervalRunner(task Task, interval time.Duration) *IntervalRunner {
	return &IntervalRunner{
		task:     task,
		interval: interval,
	}
}

func (r *IntervalRunner) Start(ctx context.Context) {
	slog.Info("runner started", "task", r.task.Name(), "interval", r.interval)
	timer := time.NewTimer(r.interval)
	defer timer.Stop()

	for {
		if err := r.task.Run(ctx); err != nil {
			slog.Error("task run failed", "task", r.task.Name(), "error", err)
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(r.interval)

		select {
		case <-ctx.Done():
			slog.Info("runner stopped", "task", r.task.Name())
			return
		case <-timer.C:
		}
	}
}
