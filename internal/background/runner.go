package background

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"aivanta-site/pkg/logger"
)

type Job struct {
	Name    string
	Run     func(ctx context.Context) error
	Timeout time.Duration
	// Retries is how many extra attempts a failing job gets, Backoff apart.
	Retries int
	Backoff time.Duration
}

var ErrRunnerNotStarted = errors.New("background: runner not started")

var (
	metricsOnce        sync.Once
	jobRunsTotal       *prometheus.CounterVec
	jobDurationSeconds *prometheus.HistogramVec
)

func initMetrics() {
	metricsOnce.Do(func() {
		jobRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aivanta",
			Subsystem: "background",
			Name:      "job_runs_total",
			Help:      "Background job attempts by outcome.",
		}, []string{"job", "status"})

		jobDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "aivanta",
			Subsystem: "background",
			Name:      "job_duration_seconds",
			Help:      "Duration of background job attempts.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"job"})
	})
}

// Runner runs jobs on their own goroutines and waits for them on shutdown.
type Runner struct {
	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	started bool
	wg      sync.WaitGroup
}

func NewRunner() *Runner {
	initMetrics()
	return &Runner{}
}

func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		return
	}
	r.ctx, r.cancel = context.WithCancel(ctx)
	r.started = true
}

// Go starts job in the background.
func (r *Runner) Go(job Job) error {
	if job.Name == "" {
		return errors.New("job name is required")
	}
	if job.Run == nil {
		return errors.New("job runner is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.started {
		return ErrRunnerNotStarted
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(r.ctx, job)
	}()
	return nil
}

func (r *Runner) run(ctx context.Context, job Job) {
	fields := map[string]interface{}{"job": job.Name}

	for attempt := 1; ; attempt++ {
		err := r.attempt(ctx, job)
		if err == nil {
			logger.Info("Background job completed", fields)
			return
		}
		if errors.Is(err, context.Canceled) {
			logger.Warn("Background job canceled", fields)
			return
		}
		if attempt > job.Retries {
			logger.Error(err, "Background job failed", fields)
			return
		}

		logger.Debug(fmt.Sprintf("Background job attempt %d failed, retrying", attempt), fields)
		timer := time.NewTimer(job.Backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Warn("Background job canceled", fields)
			return
		case <-timer.C:
		}
	}
}

func (r *Runner) attempt(ctx context.Context, job Job) (err error) {
	start := time.Now()
	status := "success"

	if job.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, job.Timeout)
		defer cancel()
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
		switch {
		case err == nil:
		case errors.Is(err, context.Canceled):
			status = "canceled"
		default:
			status = "failure"
		}
		jobDurationSeconds.WithLabelValues(job.Name).Observe(time.Since(start).Seconds())
		jobRunsTotal.WithLabelValues(job.Name, status).Inc()
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	return job.Run(ctx)
}

// Shutdown cancels running jobs and waits for them until ctx expires.
func (r *Runner) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	if !r.started {
		r.mu.Unlock()
		return nil
	}
	cancel := r.cancel
	r.mu.Unlock()

	cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
