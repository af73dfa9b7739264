package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vperelygin/go-conf-sync/internal/logger"
)

func TestIntervalJob_RunsTaskOnTicker(t *testing.T) {
	var calls atomic.Int32
	job := NewIntervalJob("test", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	}, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	require.Eventually(t, func() bool { return calls.Load() >= 2 },
		time.Second, 5*time.Millisecond)
}

func TestIntervalJob_StopBlocksUntilExit(t *testing.T) {
	var calls atomic.Int32
	job := NewIntervalJob("test", 5*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	}, logger.Nop())

	job.Start(context.Background())
	require.Eventually(t, func() bool { return calls.Load() >= 1 },
		time.Second, time.Millisecond)

	job.Stop()
	after := calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, after, calls.Load(), "no task runs after Stop returns")
}

func TestIntervalJob_TaskErrorsDoNotStopTheJob(t *testing.T) {
	var calls atomic.Int32
	job := NewIntervalJob("test", 5*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return errors.New("transient")
	}, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	require.Eventually(t, func() bool { return calls.Load() >= 3 },
		time.Second, time.Millisecond)
}

func TestIntervalJob_ZeroIntervalDisables(t *testing.T) {
	job := NewIntervalJob("test", 0, func(context.Context) error {
		t.Error("task must never run")
		return nil
	}, logger.Nop())

	job.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	job.Stop()
}

func TestIntervalJob_ContextCancelStops(t *testing.T) {
	var calls atomic.Int32
	job := NewIntervalJob("test", 5*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx)
	require.Eventually(t, func() bool { return calls.Load() >= 1 },
		time.Second, time.Millisecond)

	cancel()
	job.Stop()

	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestWorkers_StartAndStopAll(t *testing.T) {
	var calls atomic.Int32
	makeJob := func() *IntervalJob {
		return NewIntervalJob("test", 5*time.Millisecond, func(context.Context) error {
			calls.Add(1)
			return nil
		}, logger.Nop())
	}

	group := New(makeJob(), makeJob())
	group.StartAll(context.Background())

	require.Eventually(t, func() bool { return calls.Load() >= 2 },
		time.Second, time.Millisecond)

	group.StopAll()
}
