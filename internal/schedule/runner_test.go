package schedule

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingTask struct {
	runs atomic.Int32
	err  error
}

func (t *countingTask) Run(_ context.Context) error {
	t.runs.Add(1)
	return t.err
}

func (t *countingTask) Name() string {
	return "counting task"
}

func TestIntervalRunner_RunsUntilCancelled(t *testing.T) {
	task := &countingTask{}
	runner := NewIntervalRunner(task, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		runner.Start(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runner did not stop after cancellation")
	}
	assert.GreaterOrEqual(t, task.runs.Load(), int32(2))
}

func TestIntervalRunner_KeepsRunningAfterTaskError(t *testing.T) {
	task := &countingTask{err: errors.New("boom")}
	runner := NewIntervalRunner(task, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		runner.Start(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()
	<-done

	assert.GreaterOrEqual(t, task.runs.Load(), int32(2))
}
