package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobQueueRunsJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := NewJobQueueService(ctx, 10, 3)

	var done int32
	for i := 0; i < 10; i++ {
		require.NoError(t, queue.Enqueue(func(context.Context) {
			atomic.AddInt32(&done, 1)
		}))
	}

	queue.Shutdown()
	assert.Equal(t, int32(10), atomic.LoadInt32(&done))
}

func TestJobQueueIsFull(t *testing.T) {
	queue := NewJobQueueService(context.Background(), 1, 0)

	require.NoError(t, queue.Enqueue(func(context.Context) {}))
	assert.ErrorIs(t, queue.Enqueue(func(context.Context) {}), ErrJobQueueIsFull)
}

func TestJobQueueClosed(t *testing.T) {
	queue := NewJobQueueService(context.Background(), 1, 1)
	queue.Shutdown()

	assert.ErrorIs(t, queue.Enqueue(func(context.Context) {}), ErrJobQueueClosed)
	assert.NotPanics(t, queue.Shutdown)
}

func TestJobQueuePauseAndResume(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := NewJobQueueService(ctx, 1, 1)
	queue.Pause()

	ran := make(chan struct{})
	require.NoError(t, queue.Enqueue(func(context.Context) { close(ran) }))

	select {
	case <-ran:
		t.Fatal("job ran while the queue was paused")
	case <-time.After(50 * time.Millisecond):
	}

	queue.Resume()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("job did not run after resume")
	}
}

func TestJobQueueScheduleJob(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := NewJobQueueService(ctx, 1, 1)

	ran := make(chan struct{})
	queue.ScheduleJob(func(context.Context) { close(ran) }, 10*time.Millisecond)

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("scheduled job did not run")
	}
}
