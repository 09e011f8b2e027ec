// Package clock provides the suspension points used for output pacing.
package clock

import (
	"context"
	"sync"
	"time"
)

// Sleeper pauses the caller. Sleep returns ctx.Err() if the context is done
// before or during the pause.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Real sleeps on the wall clock.
type Real struct{}

func (Real) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Fake records requested pauses without waiting. OnSleep, if set, runs
// before each pause with its 1-based index; tests use it to cancel a context
// at a chosen suspension point.
type Fake struct {
	mu      sync.Mutex
	slept   []time.Duration
	OnSleep func(n int)
}

func (f *Fake) Sleep(ctx context.Context, d time.Duration) error {
	f.mu.Lock()
	f.slept = append(f.slept, d)
	n := len(f.slept)
	hook := f.OnSleep
	f.mu.Unlock()

	if hook != nil {
		hook(n)
	}
	return ctx.Err()
}

// Calls returns the number of pauses requested so far.
func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.slept)
}

// Durations returns a copy of every requested pause, in order.
func (f *Fake) Durations() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Duration(nil), f.slept...)
}
