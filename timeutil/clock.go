package timeutil

import (
	"context"
	"sync"
	"time"
)

// Clock abstracts a time source.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// Since is a convenience wrapper over Now().Sub(t).
	Since(t time.Time) time.Duration
	// Sleep waits for d and supports cancellation via ctx.
	Sleep(ctx context.Context, d time.Duration) error
}

// ===== Implementations =====

// UTCClock uses system time in UTC.
type UTCClock struct{}

func (UTCClock) Now() time.Time { return time.Now().UTC() }

// Important: use Clock.Now() for consistency with custom clocks.
func (c UTCClock) Since(t time.Time) time.Duration { return c.Now().Sub(t) }

func (UTCClock) Sleep(ctx context.Context, d time.Duration) error {
	return sleep(ctx, d)
}

// LocalClock uses system time in the process-local zone. Calendar-driven
// code (the period grammar tests local weekdays and hours) wants this one
// rather than UTCClock.
type LocalClock struct{}

func (LocalClock) Now() time.Time { return time.Now() }

func (c LocalClock) Since(t time.Time) time.Duration { return c.Now().Sub(t) }

func (LocalClock) Sleep(ctx context.Context, d time.Duration) error {
	return sleep(ctx, d)
}

// OffsetClock applies a fixed offset relative to Base.
// When Base is nil it falls back to UTCClock, never to the global default,
// so a misconfigured global cannot recurse.
type OffsetClock struct {
	Base   Clock
	Offset time.Duration
}

func (c OffsetClock) base() Clock {
	if c.Base != nil {
		return c.Base
	}
	return UTCClock{}
}

func (c OffsetClock) Now() time.Time { return c.base().Now().Add(c.Offset) }

func (c OffsetClock) Since(t time.Time) time.Duration { return c.Now().Sub(t) }

func (c OffsetClock) Sleep(ctx context.Context, d time.Duration) error {
	return c.base().Sleep(ctx, d)
}

// FrozenClock keeps a fixed time with manual advancement, for tests.
type FrozenClock struct {
	mu sync.RWMutex
	t  time.Time
}

func NewFrozenClock(t time.Time) *FrozenClock { return &FrozenClock{t: t} }

func (c *FrozenClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.t
}

func (c *FrozenClock) Since(t time.Time) time.Duration { return c.Now().Sub(t) }

// Sleep does not block; it advances the frozen time instead.
func (c *FrozenClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d > 0 {
		c.Advance(d)
	}
	return nil
}

func (c *FrozenClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func (c *FrozenClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
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

// ===== Global helpers (thread-safe) =====

var (
	defaultMu    sync.RWMutex
	defaultClock Clock = UTCClock{}
)

func DefaultClock() Clock {
	defaultMu.RLock()
	c := defaultClock
	defaultMu.RUnlock()
	return c
}

// SetDefault sets the global clock and returns the previous value.
func SetDefault(c Clock) (prev Clock) {
	if c == nil {
		c = UTCClock{}
	}

	defaultMu.Lock()
	prev = defaultClock
	defaultClock = c
	defaultMu.Unlock()
	return prev
}

// WithDefault sets a clock and returns a restore function.
func WithDefault(c Clock) (restore func()) {
	prev := SetDefault(c)
	return func() { SetDefault(prev) }
}

// Now is an alias for DefaultClock().Now().
func Now() time.Time { return DefaultClock().Now() }

// Since is a convenience wrapper over DefaultClock().Since(t).
func Since(t time.Time) time.Duration { return DefaultClock().Since(t) }

// Sleep is a convenience wrapper over DefaultClock().Sleep(ctx, d).
func Sleep(ctx context.Context, d time.Duration) error { return DefaultClock().Sleep(ctx, d) }
