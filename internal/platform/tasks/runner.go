package tasks

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Task is a unit of background work. It must honor the context deadline.
type Task func(ctx context.Context) error

// Runner executes fire-and-forget tasks off the request path. Each task gets
// its own timeout and a single retry; failures are logged, never propagated
// back to the caller.
type Runner struct {
	logger     *slog.Logger
	timeout    time.Duration
	retryDelay time.Duration
	wg         sync.WaitGroup
}

// NewRunner creates a task runner. Zero durations fall back to sane defaults.
func NewRunner(logger *slog.Logger, timeout, retryDelay time.Duration) *Runner {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if retryDelay <= 0 {
		retryDelay = 2 * time.Second
	}
	return &Runner{
		logger:     logger,
		timeout:    timeout,
		retryDelay: retryDelay,
	}
}

// Submit schedules a task for background execution and returns immediately.
func (r *Runner) Submit(name string, task Task) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(name, task)
	}()
}

func (r *Runner) run(name string, task Task) {
	if err := r.attempt(task); err != nil {
		r.logger.Warn("Background task failed, retrying once",
			slog.String("task", name),
			slog.String("error", err.Error()),
		)
		time.Sleep(r.retryDelay)
		if err := r.attempt(task); err != nil {
			r.logger.Error("Background task failed after retry",
				slog.String("task", name),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (r *Runner) attempt(task Task) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	return task(ctx)
}

// Wait blocks until every submitted task has finished. Used on shutdown and
// in tests.
func (r *Runner) Wait() {
	r.wg.Wait()
}
