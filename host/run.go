package host

import (
	"context"
	"time"
)

// TickHook runs before each tick with the 1-based tick number.
type TickHook func(ctx context.Context, tick uint64) error

type runConfig struct {
	interval   func() time.Duration
	beforeTick TickHook
	ticks      uint64
}

// RunOption configures Instance.Run.
type RunOption func(*runConfig)

// WithTicks stops the loop after n ticks. Zero runs until ctx is done.
func WithTicks(n uint64) RunOption {
	return func(c *runConfig) {
		c.ticks = n
	}
}

// WithInterval paces ticks in real time. interval is consulted before every
// tick so tick rate changes made by the autosplitter take effect.
func WithInterval(interval func() time.Duration) RunOption {
	return func(c *runConfig) {
		c.interval = interval
	}
}

// WithBeforeTick installs a hook that runs before every tick.
func WithBeforeTick(hook TickHook) RunOption {
	return func(c *runConfig) {
		c.beforeTick = hook
	}
}

// Run drives Update until the tick budget is spent, ctx is done or a tick
// fails. Without WithInterval ticks run back to back.
func (i *Instance) Run(ctx context.Context, opts ...RunOption) error {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for tick := uint64(1); cfg.ticks == 0 || tick <= cfg.ticks; tick++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if cfg.beforeTick != nil {
			if err := cfg.beforeTick(ctx, tick); err != nil {
				return err
			}
		}
		if err := i.Update(ctx); err != nil {
			return err
		}

		if cfg.interval == nil {
			continue
		}
		wait := cfg.interval()
		if timer == nil {
			timer = time.NewTimer(wait)
		} else {
			timer.Reset(wait)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}
