package clock

import (
	"context"
	"time"
)

// DefaultFrameRate is the loop rate used when none is configured.
const DefaultFrameRate = 30

// Pacer holds a loop to a fixed frame rate.
type Pacer struct {
	clock    Clock
	rate     int
	interval time.Duration
	last     time.Time
	frames   int
}

// NewPacer creates a pacer for fps frames per second.
// Non-positive rates fall back to DefaultFrameRate.
func NewPacer(c Clock, fps int) *Pacer {
	p := &Pacer{clock: c}
	p.SetFrameRate(fps)
	return p
}

// SetFrameRate changes the target rate.
func (p *Pacer) SetFrameRate(fps int) {
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	p.rate = fps
	p.interval = time.Second / time.Duration(fps)
}

// FrameRate returns the target rate.
func (p *Pacer) FrameRate() int {
	return p.rate
}

// Interval returns the time budget of one frame.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Frames returns how many times Tick has returned.
func (p *Pacer) Frames() int {
	return p.frames
}

// Tick blocks until a frame interval has passed since the previous Tick and
// returns the time since that Tick. The first call returns immediately with 0.
// A done ctx cuts the wait short.
func (p *Pacer) Tick(ctx context.Context) time.Duration {
	now := p.clock.Now()
	var dt time.Duration

	if p.frames > 0 {
		if wait := p.interval - now.Sub(p.last); wait > 0 {
			//nolint:errcheck // Cancellation is observed by the caller's loop
			p.clock.Sleep(ctx, wait)
			now = p.clock.Now()
		}
		dt = now.Sub(p.last)
	}

	p.last = now
	p.frames++
	return dt
}
