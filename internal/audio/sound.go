package audio

import (
	"fmt"
	"math"
	"os"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"
)

// resampleQuality is the beep.Resample quality used for loaded sounds.
const resampleQuality = 4

// Sound is a fully buffered clip that can be played, stopped and faded out.
type Sound struct {
	dev *Device
	buf *beep.Buffer

	// Guarded by the device.
	ctrl   *beep.Ctrl
	volume *effects.Volume
	level  float64

	gen     atomic.Int64
	playing atomic.Bool
}

// Load decodes a WAV file into a sound for d.
func (d *Device) Load(path string) (*Sound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}

	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer stream.Close()

	return d.NewSound(stream, format), nil
}

// NewSound buffers the finite streamer s, resampling it to the device rate.
func (d *Device) NewSound(s beep.Streamer, format beep.Format) *Sound {
	if format.SampleRate != d.rate {
		s = beep.Resample(resampleQuality, format.SampleRate, d.rate, s)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: d.rate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return &Sound{dev: d, buf: buf, level: 1}
}

// Duration returns the length of the clip.
func (s *Sound) Duration() time.Duration {
	return s.dev.rate.D(s.buf.Len())
}

// Playing reports whether the sound is currently audible.
func (s *Sound) Playing() bool {
	return s.playing.Load()
}

// Play starts the sound from the beginning, restarting it if it is playing.
// On a muted device Play does nothing.
func (s *Sound) Play() {
	s.Stop()
	if s.dev.Muted() {
		return
	}

	gen := s.gen.Load()
	clip := s.buf.Streamer(0, s.buf.Len())
	ctrl := &beep.Ctrl{Streamer: beep.Seq(clip, beep.Callback(func() { s.finish(gen) }))}
	vol := volumeFor(ctrl, s.level)

	s.dev.do(func() {
		s.ctrl, s.volume = ctrl, vol
	})
	s.playing.Store(true)
	s.dev.add(vol)
}

// Stop silences the sound immediately.
func (s *Sound) Stop() {
	s.gen.Add(1)
	s.playing.Store(false)
	s.dev.do(func() {
		if s.ctrl != nil {
			s.ctrl.Streamer = nil // drained streamers leave the mixer
		}
		s.ctrl, s.volume = nil, nil
	})
}

// FadeOut lowers the volume linearly to silence over d, then stops.
func (s *Sound) FadeOut(d time.Duration) {
	n := s.dev.rate.N(d)
	if n <= 0 {
		s.Stop()
		return
	}

	gen := s.gen.Load()
	s.dev.do(func() {
		if s.ctrl == nil || s.ctrl.Streamer == nil {
			return
		}
		s.ctrl.Streamer = newFader(s.ctrl.Streamer, n, func() { s.finish(gen) })
	})
}

// SetVolume sets the playback level, 1 being unchanged and 0 silent.
func (s *Sound) SetVolume(level float64) {
	s.dev.do(func() {
		s.level = level
		if s.volume != nil {
			s.volume.Volume, s.volume.Silent = levelParams(level)
		}
	})
}

func (s *Sound) finish(gen int64) {
	if s.gen.Load() == gen {
		s.playing.Store(false)
	}
}

func volumeFor(st beep.Streamer, level float64) *effects.Volume {
	v, silent := levelParams(level)
	return &effects.Volume{Streamer: st, Base: 2, Volume: v, Silent: silent}
}

// levelParams maps a linear level to effects.Volume's base-2 exponent.
func levelParams(level float64) (float64, bool) {
	if level <= 0 {
		return 0, true
	}
	return math.Log2(level), false
}

// fader ramps its source linearly to zero over total samples, then ends.
type fader struct {
	src   beep.Streamer
	total int
	pos   int
	done  func()
}

func newFader(src beep.Streamer, total int, done func()) *fader {
	return &fader{src: src, total: total, done: done}
}

func (f *fader) Stream(samples [][2]float64) (int, bool) {
	if f.pos >= f.total {
		if f.done != nil {
			f.done()
			f.done = nil
		}
		return 0, false
	}
	if rest := f.total - f.pos; len(samples) > rest {
		samples = samples[:rest]
	}

	n, ok := f.src.Stream(samples)
	for i := range samples[:n] {
		g := 1 - float64(f.pos)/float64(f.total)
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *fader) Err() error {
	return f.src.Err()
}
