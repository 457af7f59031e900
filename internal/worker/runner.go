// Package worker runs the periodic background jobs: expiry sweeps and
// ledger/history reconciliation.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"parking-reservation/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// Task is one periodic job. A failed run is logged and retried on the next tick.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

type Runner struct {
	tasks  []Task
	logger *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	group  *errgroup.Group
}

func NewRunner(logger *slog.Logger, tasks ...Task) *Runner {
	return &Runner{tasks: tasks, logger: logger}
}

// Start launches every task loop and returns immediately. Calling Start on
// a running Runner is a no-op.
func (r *Runner) Start(parent context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))
	g, ctx := errgroup.WithContext(ctx)
	for _, task := range r.tasks {
		g.Go(func() error {
			r.loop(ctx, task)
			return nil
		})
	}
	r.cancel = cancel
	r.group = g
	r.logger.Info("background workers started", slog.Int("tasks", len(r.tasks)))
}

// Stop cancels the loops and waits for in-flight runs, up to ctx's deadline.
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel, g := r.cancel, r.group
	r.cancel, r.group = nil, nil
	r.mu.Unlock()
	if cancel == nil {
		return nil
	}

	cancel()
	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case err := <-done:
		r.logger.Info("background workers stopped")
		return err
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "waiting for background workers")
	}
}

func (r *Runner) loop(ctx context.Context, task Task) {
	ticker := time.NewTicker(task.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.runOnce(ctx, task)
		}
	}
}

func (r *Runner) runOnce(ctx context.Context, task Task) {
	start := time.Now()
	if err := task.Run(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		r.logger.Error("background task failed",
			slog.String("task", task.Name),
			slog.String("error", err.Error()),
		)
		return
	}
	r.logger.Debug("background task finished",
		slog.String("task", task.Name),
		slog.Duration("took", time.Since(start)),
	)
}
