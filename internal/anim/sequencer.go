// Package anim advances named frame sequences on a tick cadence.
//
// The cadence is deliberately threshold-plus-one: with threshold N the
// current frame advances once every N+1 ticks. The tick counter is compared
// against the threshold before it is incremented and only resets once it
// exceeds the threshold.
package anim

import "image"

// DefaultName is the animation every sequencer starts with.
const DefaultName = "default"

// Sequencer holds an actor's animations and playback state.
type Sequencer struct {
	animations map[string][]image.Image
	current    string
	frame      int
	ticks      int
	threshold  int
	step       int
	playing    bool
}

// New creates a sequencer whose default animation is the single image base.
func New(base image.Image) *Sequencer {
	return &Sequencer{
		animations: map[string][]image.Image{DefaultName: {base}},
		current:    DefaultName,
		threshold:  1,
		step:       1,
	}
}

// Register adds or replaces a named animation. Empty sequences are ignored.
func (s *Sequencer) Register(name string, frames []image.Image) {
	if len(frames) == 0 {
		return
	}
	s.animations[name] = frames
}

// Has returns true if an animation with the given name is registered.
func (s *Sequencer) Has(name string) bool {
	_, ok := s.animations[name]
	return ok
}

// SetCurrent switches to the named animation. Unknown names are ignored.
func (s *Sequencer) SetCurrent(name string) {
	if _, ok := s.animations[name]; ok {
		s.current = name
	}
}

// Current returns the name of the current animation.
func (s *Sequencer) Current() string {
	return s.current
}

// SetCadence sets how many ticks to wait (threshold) and how many frames to
// move per advance (step). Negative thresholds become 0; steps below 1 become 1.
func (s *Sequencer) SetCadence(threshold, step int) {
	if threshold < 0 {
		threshold = 0
	}
	if step < 1 {
		step = 1
	}
	s.threshold = threshold
	s.step = step
}

// Cadence returns the current threshold and step.
func (s *Sequencer) Cadence() (threshold, step int) {
	return s.threshold, s.step
}

// Play starts advancing frames on Tick.
func (s *Sequencer) Play() {
	s.playing = true
}

// Pause stops advancing frames; the current frame is kept.
func (s *Sequencer) Pause() {
	s.playing = false
}

// Playing returns true while the sequencer advances on Tick.
func (s *Sequencer) Playing() bool {
	return s.playing
}

// Reset rewinds the current animation to its first frame.
func (s *Sequencer) Reset() {
	s.frame = 0
}

// FrameIndex returns the index of the frame shown next.
func (s *Sequencer) FrameIndex() int {
	return s.frame
}

// TickCount returns the internal tick counter.
func (s *Sequencer) TickCount() int {
	return s.ticks
}

// Frame returns the image at the current index of the current animation.
// An index past the end (after switching to a shorter animation) wraps.
func (s *Sequencer) Frame() image.Image {
	frames := s.animations[s.current]
	if len(frames) == 0 {
		return nil
	}
	if s.frame < 0 || s.frame >= len(frames) {
		s.frame = mod(s.frame, len(frames))
	}
	return frames[s.frame]
}

// Tick runs one animation step and returns the frame to display this tick,
// or nil when paused. The returned frame is selected before advancing.
func (s *Sequencer) Tick() image.Image {
	if !s.playing {
		return nil
	}

	frame := s.Frame()
	n := len(s.animations[s.current])

	if s.ticks >= s.threshold {
		s.frame = mod(s.frame+s.step, n)
	}

	s.ticks++
	if s.ticks > s.threshold {
		s.ticks = 0
	}
	return frame
}

func mod(a, n int) int {
	if n <= 0 {
		return 0
	}
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
