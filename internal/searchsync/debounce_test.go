package searchsync

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerRunsOnlyLastCallback(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var first, last atomic.Int64
	d.Schedule(func() { first.Add(1) })
	d.Schedule(func() { last.Add(1) })

	time.Sleep(150 * time.Millisecond)

	if first.Load() != 0 {
		t.Fatalf("first callback ran %d times, want 0", first.Load())
	}
	if last.Load() != 1 {
		t.Fatalf("last callback ran %d times, want 1", last.Load())
	}
}

func TestDebouncerStopPreventsPendingCallback(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(20 * time.Millisecond)

	var fired atomic.Int64
	d.Schedule(func() { fired.Add(1) })
	d.Stop()

	time.Sleep(150 * time.Millisecond)

	if fired.Load() != 0 {
		t.Fatalf("callback ran %d times after Stop, want 0", fired.Load())
	}
}

func TestDebouncerScheduleAfterStopIsNoop(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(20 * time.Millisecond)
	d.Stop()

	var fired atomic.Int64
	d.Schedule(func() { fired.Add(1) })

	time.Sleep(150 * time.Millisecond)

	if fired.Load() != 0 {
		t.Fatalf("callback ran %d times, want 0", fired.Load())
	}
}

func TestDebouncerStopIsABarrier(t *testing.T) {
	t.Parallel()

	// Race Stop against the timer firing: whatever has fired by the
	// time Stop returns is final.
	for i := 0; i < 200; i++ {
		d := NewDebouncer(time.Millisecond)

		var fired atomic.Int64
		d.Schedule(func() { fired.Add(1) })
		time.Sleep(time.Millisecond)
		d.Stop()
		settled := fired.Load()

		time.Sleep(5 * time.Millisecond)
		if got := fired.Load(); got != settled {
			t.Fatalf("callback ran after Stop returned (before=%d after=%d)", settled, got)
		}
	}
}

func TestDebouncerEachSettledBurstFiresOnce(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var fired atomic.Int64
	d.Schedule(func() { fired.Add(1) })
	time.Sleep(150 * time.Millisecond)
	d.Schedule(func() { fired.Add(1) })
	time.Sleep(150 * time.Millisecond)

	if fired.Load() != 2 {
		t.Fatalf("callbacks ran %d times, want 2", fired.Load())
	}
}
