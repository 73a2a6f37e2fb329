package duration

import (
	"context"
	"log/slog"
	"time"

	"github.com/lucrnz/qakit/internal/progress"
)

type waitConfig struct {
	logger   *slog.Logger
	interval time.Duration
}

// WaitOption configures Wait.
type WaitOption func(*waitConfig)

// WithProgress logs wait_progress events to logger every interval while waiting.
func WithProgress(logger *slog.Logger, interval time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.logger = logger
		c.interval = interval
	}
}

// Wait blocks for d. It returns ctx.Err() if the context ends first, and
// returns immediately for d <= 0.
func Wait(ctx context.Context, d time.Duration, opts ...WaitOption) error {
	if d <= 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var cfg waitConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger != nil {
		bar := progress.New(d, cfg.interval, cfg.logger, false)
		bar.Start()
		defer bar.Stop()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WaitMillis blocks for ms milliseconds.
func WaitMillis(ctx context.Context, ms int64, opts ...WaitOption) error {
	d, err := FromMillis(ms)
	if err != nil {
		return err
	}
	return Wait(ctx, d, opts...)
}

// WaitFor parses s with ParseMillis and blocks for the result. Parse errors
// are returned before any waiting happens.
func WaitFor(ctx context.Context, s string, opts ...WaitOption) error {
	d, err := Parse(s)
	if err != nil {
		return err
	}
	return Wait(ctx, d, opts...)
}
