package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// runner calls task once on Start and then every interval until Stop.
type runner struct {
	name     string
	interval time.Duration
	timeout  time.Duration
	task     func(ctx context.Context) error

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func newRunner(name string, interval time.Duration, task func(ctx context.Context) error) *runner {
	if interval <= 0 {
		interval = time.Minute
	}
	return &runner{
		name:     name,
		interval: interval,
		timeout:  2 * time.Minute,
		task:     task,
	}
}

func (r *runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.running = true

	r.wg.Add(1)
	go r.loop(ctx)
	slog.Info("Job started", "job", r.name, "interval", r.interval.String())
}

// Stop cancels an in-flight run and waits for the loop to exit.
func (r *runner) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.cancel()
	r.mu.Unlock()

	r.wg.Wait()
	slog.Info("Job stopped", "job", r.name)
}

func (r *runner) loop(ctx context.Context) {
	defer r.wg.Done()

	r.runOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.runOnce(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (r *runner) runOnce(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, r.timeout)
	defer cancel()

	started := time.Now()
	if err := r.task(ctx); err != nil {
		if parent.Err() != nil {
			return
		}
		slog.Error("Job run failed", "job", r.name, "error", err.Error())
		return
	}
	slog.Debug("Job run finished", "job", r.name, "duration", time.Since(started).String())
}
