package engine

import (
	"context"
	"time"
)

const defaultFPS = 60

// Run drives frames from the given source until the run ends.
//
// Cancellation is checked before every frame. Run returns nil when the run
// reaches Over, ctx.Err() when the context is cancelled, ErrStopped after
// Stop, and ErrNoFrames when the source closes first.
func (d *Driver) Run(ctx context.Context, frames <-chan time.Time) error {
	switch {
	case d.phase == PhaseOver:
		return nil
	case d.phase != PhaseRunning:
		return ErrNotRunning
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.stopped {
			return ErrStopped
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-frames:
			if !ok {
				return ErrNoFrames
			}
		}

		if !d.Frame() {
			if d.phase == PhaseOver {
				return nil
			}
			return ErrStopped
		}
	}
}

// Ticker emits frames at fps until ctx is done. Cancel ctx to release it.
func Ticker(ctx context.Context, fps int) <-chan time.Time {
	if fps <= 0 {
		fps = defaultFPS
	}
	out := make(chan time.Time)
	go func() {
		defer close(out)
		t := time.NewTicker(time.Second / time.Duration(fps))
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-t.C:
				select {
				case out <- now:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// Burst emits n frames as fast as they are consumed, then closes.
// Cancel ctx to release it early.
func Burst(ctx context.Context, n int) <-chan time.Time {
	out := make(chan time.Time)
	go func() {
		defer close(out)
		for i := 0; i < n; i++ {
			select {
			case out <- time.Time{}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
