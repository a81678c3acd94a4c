package clock

import "time"

// Stopwatch measures how long something has been running.
type Stopwatch struct {
	clock   Clock
	start   time.Time
	elapsed time.Duration
	running bool
}

// NewStopwatch creates a stopped stopwatch reading zero.
func NewStopwatch(c Clock) *Stopwatch {
	return &Stopwatch{clock: c}
}

// Start starts timing from now. Starting a running stopwatch restarts it.
func (s *Stopwatch) Start() {
	s.start = s.clock.Now()
	s.running = true
}

// Stop freezes the stopwatch and returns the elapsed time.
func (s *Stopwatch) Stop() time.Duration {
	if s.running {
		s.elapsed = s.clock.Now().Sub(s.start)
		s.running = false
	}
	return s.elapsed
}

// Elapsed returns the time between the last Start and Stop.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.elapsed
}

// Current returns the time since Start while running, or the elapsed time
// once stopped.
func (s *Stopwatch) Current() time.Duration {
	if !s.running {
		return s.elapsed
	}
	return s.clock.Now().Sub(s.start)
}

// Running reports whether the stopwatch is running.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Reset stops the stopwatch and clears it to zero.
func (s *Stopwatch) Reset() {
	s.start = time.Time{}
	s.elapsed = 0
	s.running = false
}
