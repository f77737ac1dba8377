package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Renal37/laundry-service/internal/logger"
)

var (
	ErrJobQueueIsFull = errors.New("job queue is full")
	ErrJobQueueClosed = errors.New("job queue is closed")
)

// Job is a unit of background work.
type Job func(ctx context.Context)

// JobQueueService runs jobs on a fixed number of workers.
type JobQueueService struct {
	jobs    chan Job
	resume  chan struct{} // closed and replaced on every Resume
	paused  int32
	wg      sync.WaitGroup
	mu      sync.Mutex // guards resume and sending on jobs after close
	closing int32
}

// NewJobQueueService starts workers that live until ctx is cancelled or
// Shutdown is called.
func NewJobQueueService(ctx context.Context, capacity, workers int) *JobQueueService {
	service := &JobQueueService{
		jobs:   make(chan Job, capacity),
		resume: make(chan struct{}),
	}
	service.start(ctx, workers)

	return service
}

func (jqs *JobQueueService) start(ctx context.Context, workers int) {
	for i := 0; i < workers; i++ {
		jqs.wg.Add(1)

		go func() {
			defer jqs.wg.Done()

			for {
				select {
				case job, ok := <-jqs.jobs:
					if !ok {
						return
					}

					if atomic.LoadInt32(&jqs.paused) == 1 {
						select {
						case <-jqs.resumeSignal():
						case <-ctx.Done():
							return
						}
					}

					job(ctx)
				case <-ctx.Done():
					return
				}
			}
		}()
	}
}

func (jqs *JobQueueService) resumeSignal() <-chan struct{} {
	jqs.mu.Lock()
	defer jqs.mu.Unlock()
	return jqs.resume
}

// Enqueue adds a job without blocking. It fails when the queue is full or closed.
func (jqs *JobQueueService) Enqueue(job Job) error {
	jqs.mu.Lock()
	defer jqs.mu.Unlock()

	if atomic.LoadInt32(&jqs.closing) == 1 {
		return ErrJobQueueClosed
	}

	select {
	case jqs.jobs <- job:
		return nil
	default:
		return ErrJobQueueIsFull
	}
}

// ScheduleJob enqueues job after delay.
func (jqs *JobQueueService) ScheduleJob(job Job, delay time.Duration) {
	time.AfterFunc(delay, func() {
		if err := jqs.Enqueue(job); err != nil {
			logger.Log.Warn("failed to schedule job", zap.Error(err))
		}
	})
}

func (jqs *JobQueueService) Pause() {
	atomic.StoreInt32(&jqs.paused, 1)
}

func (jqs *JobQueueService) Resume() {
	if atomic.CompareAndSwapInt32(&jqs.paused, 1, 0) {
		jqs.mu.Lock()
		defer jqs.mu.Unlock()
		close(jqs.resume)
		jqs.resume = make(chan struct{})
	}
}

// PauseAndResume holds the workers for delay.
func (jqs *JobQueueService) PauseAndResume(delay time.Duration) {
	jqs.Pause()
	time.AfterFunc(delay, func() {
		jqs.Resume()
	})
}

// Shutdown stops accepting jobs, lets the workers drain the queue and waits for them.
func (jqs *JobQueueService) Shutdown() {
	jqs.mu.Lock()
	if !atomic.CompareAndSwapInt32(&jqs.closing, 0, 1) {
		jqs.mu.Unlock()
		return
	}
	close(jqs.jobs)
	jqs.mu.Unlock()

	jqs.Resume()
	jqs.wg.Wait()
}
