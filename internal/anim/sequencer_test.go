package anim

import (
	"image"
	"testing"
)

func frames(n int) []image.Image {
	out := make([]image.Image, n)
	for i := range out {
		out[i] = image.NewRGBA(image.Rect(0, 0, i+1, 1))
	}
	return out
}

func TestCadenceThresholdPlusOne(t *testing.T) {
	s := New(nil)
	s.Register("walk", frames(4))
	s.SetCurrent("walk")
	s.SetCadence(2, 1)
	s.Play()

	// Frame index after each of 15 ticks
	expected := []int{0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3, 0, 0, 0, 1}
	for i, want := range expected {
		s.Tick()
		if got := s.FrameIndex(); got != want {
			t.Fatalf("after tick %d: frame = %d, expected %d", i+1, got, want)
		}
	}
}

func TestTickReturnsFrameBeforeAdvance(t *testing.T) {
	f := frames(2)
	s := New(nil)
	s.Register("blink", f)
	s.SetCurrent("blink")
	s.SetCadence(0, 1)
	s.Play()

	// Threshold 0 advances every tick; each tick shows the pre-advance frame
	if got := s.Tick(); got != f[0] {
		t.Error("tick 1 should display frame 0")
	}
	if got := s.Tick(); got != f[1] {
		t.Error("tick 2 should display frame 1")
	}
	if got := s.Tick(); got != f[0] {
		t.Error("tick 3 should wrap to frame 0")
	}
}

func TestStepLargerThanOneWraps(t *testing.T) {
	s := New(nil)
	s.Register("skip", frames(4))
	s.SetCurrent("skip")
	s.SetCadence(0, 3)
	s.Play()

	expected := []int{3, 2, 1, 0}
	for i, want := range expected {
		s.Tick()
		if got := s.FrameIndex(); got != want {
			t.Errorf("after tick %d: frame = %d, expected %d", i+1, got, want)
		}
	}
}

func TestPausedDoesNotAdvance(t *testing.T) {
	s := New(nil)
	s.Register("walk", frames(3))
	s.SetCurrent("walk")
	s.SetCadence(0, 1)

	if s.Tick() != nil {
		t.Error("paused sequencer should return nil")
	}
	if s.FrameIndex() != 0 || s.TickCount() != 0 {
		t.Error("paused sequencer should not change state")
	}

	s.Play()
	s.Tick()
	s.Pause()
	s.Tick()
	if s.FrameIndex() != 1 {
		t.Errorf("frame = %d, expected 1 after one playing tick", s.FrameIndex())
	}
}

func TestSetCurrentUnknownIgnored(t *testing.T) {
	s := New(nil)
	s.Register("run", frames(2))
	s.SetCurrent("run")
	s.SetCurrent("fly")

	if s.Current() != "run" {
		t.Errorf("Current() = %q, expected run", s.Current())
	}
	if s.Has("fly") {
		t.Error("fly should not be registered")
	}
}

func TestFrameClampsAfterSwitch(t *testing.T) {
	s := New(nil)
	long := frames(5)
	short := frames(2)
	s.Register("long", long)
	s.Register("short", short)
	s.SetCurrent("long")
	s.SetCadence(0, 1)
	s.Play()
	for i := 0; i < 3; i++ {
		s.Tick()
	}

	s.SetCurrent("short")
	if got := s.Frame(); got != short[1] {
		t.Error("index 3 should wrap to frame 1 of a 2-frame animation")
	}
}

func TestSetCadenceCoercesInvalid(t *testing.T) {
	s := New(nil)
	s.SetCadence(-4, 0)

	threshold, step := s.Cadence()
	if threshold != 0 || step != 1 {
		t.Errorf("Cadence() = (%d, %d), expected (0, 1)", threshold, step)
	}
}

func TestRegisterEmptyIgnored(t *testing.T) {
	s := New(nil)
	s.Register("empty", nil)
	if s.Has("empty") {
		t.Error("empty animation should not be registered")
	}

	s.Reset()
	if s.FrameIndex() != 0 {
		t.Error("Reset should rewind to frame 0")
	}
}
