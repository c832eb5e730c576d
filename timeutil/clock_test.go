package timeutil_test

import (
	"context"
	"testing"
	"time"

	"github.com/vortex-fintech/period-lib/timeutil"
)

func TestUTCClock_NowIsUTC(t *testing.T) {
	var c timeutil.UTCClock
	if got := c.Now(); got.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %v", got.Location())
	}
}

func TestLocalClock_NowIsLocal(t *testing.T) {
	var c timeutil.LocalClock
	if got := c.Now(); got.Location() != time.Local {
		t.Fatalf("expected local location, got %v", got.Location())
	}
}

func TestUTCClock_Sleep_Cancelled(t *testing.T) {
	var c timeutil.UTCClock

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Sleep(ctx, time.Hour)
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestUTCClock_Sleep_NonPositive(t *testing.T) {
	var c timeutil.UTCClock

	ctx := context.Background()
	if err := c.Sleep(ctx, 0); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := c.Sleep(ctx, -time.Second); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestOffsetClock_AppliesOffset(t *testing.T) {
	base := timeutil.NewFrozenClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	c := timeutil.OffsetClock{Base: base, Offset: 2 * time.Hour}

	got := c.Now()
	want := time.Date(2025, 1, 1, 14, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFrozenClock_SetAndAdvance(t *testing.T) {
	c := timeutil.NewFrozenClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	c.Advance(90 * time.Minute)
	if got := c.Now(); got.Hour() != 1 || got.Minute() != 30 {
		t.Fatalf("unexpected time after advance: %v", got)
	}

	c.Set(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	if got := c.Now(); got.Year() != 2026 {
		t.Fatalf("unexpected time after set: %v", got)
	}
}

func TestFrozenClock_SleepAdvancesTime(t *testing.T) {
	restore := timeutil.WithDefault(timeutil.NewFrozenClock(time.Date(2025, 12, 13, 0, 0, 0, 0, time.UTC)))
	t.Cleanup(restore)

	start := timeutil.Now()

	if err := timeutil.Sleep(context.Background(), 10*time.Second); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	if got := timeutil.Now().Sub(start); got != 10*time.Second {
		t.Fatalf("expected frozen clock to advance 10s, got %v", got)
	}
}

func TestDefaultClock_SetAndRestore(t *testing.T) {
	frozen := timeutil.NewFrozenClock(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	restore := timeutil.WithDefault(frozen)
	if got := timeutil.Now(); !got.Equal(frozen.Now()) {
		t.Fatalf("expected frozen time, got %v", got)
	}

	restore()
	if _, ok := timeutil.DefaultClock().(*timeutil.FrozenClock); ok {
		t.Fatalf("expected default clock to be restored")
	}
}

func TestSetDefault_NilFallsBackToUTC(t *testing.T) {
	prev := timeutil.SetDefault(nil)
	t.Cleanup(func() { timeutil.SetDefault(prev) })

	if _, ok := timeutil.DefaultClock().(timeutil.UTCClock); !ok {
		t.Fatalf("expected UTCClock, got %T", timeutil.DefaultClock())
	}
}
