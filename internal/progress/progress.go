package progress

import (
	"log/slog"
	"sync"
	"time"
)

// Bar emits structured progress logs while a fixed-length wait is running.
type Bar struct {
	Total          time.Duration
	RenderInterval time.Duration // interval between wait_progress events
	Logger         *slog.Logger
	Quiet          bool

	started     time.Time
	lastPercent int
	done        chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
	now         func() time.Time
}

// New creates a progress bar for a wait of the given total length.
func New(total, interval time.Duration, logger *slog.Logger, quiet bool) *Bar {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Bar{
		Total:          total,
		RenderInterval: interval,
		Logger:         logger,
		Quiet:          quiet,
		lastPercent:    -1,
		done:           make(chan struct{}),
		now:            time.Now,
	}
}

// Start records the start time and begins interval-based logging in a goroutine.
func (b *Bar) Start() {
	b.started = b.now()
	if b.Quiet || b.Logger == nil || b.RenderInterval <= 0 {
		return
	}
	b.Logger.Info("wait_started", "total", b.Total.String(), "total_ms", b.Total.Milliseconds())

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		ticker := time.NewTicker(b.RenderInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				b.logCurrentProgress()
			case <-b.done:
				return
			}
		}
	}()
}

// Stop ends interval-based logging and emits a final wait_done event.
// It is safe to call more than once.
func (b *Bar) Stop() {
	b.stopOnce.Do(func() {
		close(b.done)
		b.wg.Wait()
		if b.Quiet || b.Logger == nil {
			return
		}
		elapsed := b.Elapsed()
		b.Logger.Info("wait_done",
			"elapsed", elapsed.Round(time.Millisecond).String(),
			"elapsed_ms", elapsed.Milliseconds(),
			"completed", elapsed >= b.Total,
		)
	})
}

// Elapsed returns the time since Start.
func (b *Bar) Elapsed() time.Duration {
	if b.started.IsZero() {
		return 0
	}
	return b.now().Sub(b.started)
}

// Remaining returns the time left until Total, never negative.
func (b *Bar) Remaining() time.Duration {
	r := b.Total - b.Elapsed()
	if r < 0 {
		return 0
	}
	return r
}

func (b *Bar) logCurrentProgress() {
	pct := int(b.percent())
	// Throttle: skip if the whole percentage has not moved since the last event
	if pct == b.lastPercent {
		return
	}
	b.lastPercent = pct

	b.Logger.Info("wait_progress",
		"percent", pct,
		"elapsed", b.Elapsed().Round(time.Second).String(),
		"remaining", b.Remaining().Round(time.Second).String(),
		"remaining_ms", b.Remaining().Milliseconds(),
	)
}

func (b *Bar) percent() float64 {
	if b.Total <= 0 {
		return 100
	}
	p := (float64(b.Elapsed()) / float64(b.Total)) * 100
	if p > 100 {
		return 100
	}
	return p
}
