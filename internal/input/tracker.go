package input

import (
	"context"
	"sync"
	"time"
)

// Tracker samples the live pointer position at a fixed cadence and
// forwards it to a callback. It is purely informational: it never gates
// script execution and shares only the injector's position read with the
// interpreter.
type Tracker struct {
	inj      Injector
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewTracker creates a tracker that samples every interval.
func NewTracker(inj Injector, interval time.Duration) *Tracker {
	return &Tracker{inj: inj, interval: interval}
}

// Start begins sampling and reporting positions to report. Calling Start
// while already running is a no-op. The tracker can be restarted after
// Stop.
func (t *Tracker) Start(report func(x, y int)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	t.cancel = cancel
	t.done = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p := t.inj.Location()
				report(p.X, p.Y)
			}
		}
	}()
}

// Stop halts sampling and waits for the sampling goroutine to exit, so
// no report is delivered after Stop returns. Safe to call when the
// tracker was never started.
func (t *Tracker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
