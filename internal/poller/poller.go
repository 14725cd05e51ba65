// Package poller runs a check on a fixed interval until it reports done,
// a time window closes, or the context is cancelled.
package poller

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

var ErrWindowElapsed = errors.New("poller: window elapsed")

type Config struct {
	Interval time.Duration
	Window   time.Duration
}

// DefaultConfig follows a dispatch in flight.
var DefaultConfig = Config{Interval: 5 * time.Second, Window: 10 * time.Minute}

// LogsConfig refreshes the log table while it is open.
var LogsConfig = Config{Interval: 3 * time.Second, Window: 10 * time.Minute}

// Tick reports done once there is nothing left to wait for.
type Tick func(ctx context.Context) (done bool, err error)

type Poller struct {
	cfg    Config
	logger *zap.Logger
}

func New(cfg Config, logger ...*zap.Logger) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultConfig.Interval
	}
	l := zap.L().Named("poller")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("poller")
	}
	return &Poller{cfg: cfg, logger: l}
}

// Run calls tick right away and then on every interval. Tick errors are
// logged and the loop keeps going. A zero Window never elapses.
func (p *Poller) Run(ctx context.Context, tick Tick) error {
	var deadline <-chan time.Time
	if p.cfg.Window > 0 {
		timer := time.NewTimer(p.cfg.Window)
		defer timer.Stop()
		deadline = timer.C
	}

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		done, err := tick(ctx)
		if err != nil {
			p.logger.Warn("poll tick failed", zap.Error(err))
		}
		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline:
			return ErrWindowElapsed
		case <-ticker.C:
		}
	}
}
