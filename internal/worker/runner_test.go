//go:build unit

package worker_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"parking-reservation/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRunner_RunsTasksUntilStopped(t *testing.T) {
	var ok, failing atomic.Int32
	r := worker.NewRunner(quiet,
		worker.Task{Name: "ok", Interval: 5 * time.Millisecond, Run: func(context.Context) error {
			ok.Add(1)
			return nil
		}},
		worker.Task{Name: "failing", Interval: 5 * time.Millisecond, Run: func(context.Context) error {
			failing.Add(1)
			return errors.New("boom")
		}},
	)

	r.Start(context.Background())
	require.Eventually(t, func() bool {
		return ok.Load() >= 3 && failing.Load() >= 3
	}, time.Second, 5*time.Millisecond, "a failing task keeps being scheduled")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, r.Stop(ctx))

	stopped := ok.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, ok.Load(), "no runs after Stop")
}

func TestRunner_StopWithoutStart(t *testing.T) {
	r := worker.NewRunner(quiet)
	assert.NoError(t, r.Stop(context.Background()))
}

func TestRunner_StartIgnoresParentCancellation(t *testing.T) {
	var runs atomic.Int32
	r := worker.NewRunner(quiet, worker.Task{Name: "tick", Interval: 5 * time.Millisecond, Run: func(context.Context) error {
		runs.Add(1)
		return nil
	}})

	parent, cancel := context.WithCancel(context.Background())
	r.Start(parent)
	cancel()

	require.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, r.Stop(context.Background()))
}

func TestRunner_StopHonorsDeadline(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	r := worker.NewRunner(quiet, worker.Task{Name: "stuck", Interval: time.Millisecond, Run: func(context.Context) error {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
		return nil
	}})
	defer close(release)

	r.Start(context.Background())
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := r.Stop(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
