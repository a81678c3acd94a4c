// Package audio plays short sounds for scenes.
//
// A Device owns an Output and a mixer every Sound plays through. Scenes get
// their Device from the scene context, which closes it on teardown. The
// system speaker lives in the audio/speaker subpackage so code that only
// simulates never links a sound backend.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
)

// DefaultSampleRate is the device rate; loaded sounds are resampled to it.
const DefaultSampleRate = beep.SampleRate(44100)

// Output is where the device mixer is played.
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Close()
}

// Device mixes sounds into an output.
type Device struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	mixer  *beep.Mixer
	output Output
	open   bool
}

// NewDeviceWithOutput creates a device playing into out at rate. Call Open
// before use.
func NewDeviceWithOutput(out Output, rate beep.SampleRate) *Device {
	return &Device{
		rate:   rate,
		mixer:  &beep.Mixer{},
		output: out,
	}
}

// NewMuted creates a device with no output. Sounds still load, but Play
// does nothing.
func NewMuted() *Device {
	return NewDeviceWithOutput(nil, DefaultSampleRate)
}

// Open initializes the output with a 100ms buffer and starts the mixer.
// Opening an open or muted device does nothing.
func (d *Device) Open() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.open || d.output == nil {
		return nil
	}
	if err := d.output.Init(d.rate, d.rate.N(time.Second/10)); err != nil {
		return err
	}
	d.output.Play(d.mixer)
	d.open = true
	return nil
}

// Close stops every sound and releases the output.
func (d *Device) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.open {
		return
	}
	d.output.Lock()
	d.mixer.Clear()
	d.output.Unlock()
	d.output.Close()
	d.open = false
}

// SampleRate returns the device rate.
func (d *Device) SampleRate() beep.SampleRate {
	return d.rate
}

// Muted reports whether the device has no output.
func (d *Device) Muted() bool {
	return d.output == nil
}

// do runs f while the output is not pulling from the mixer.
func (d *Device) do(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.open {
		f()
		return
	}
	d.output.Lock()
	defer d.output.Unlock()
	f()
}

// add starts streaming s on the mixer. Closed devices drop it.
func (d *Device) add(s beep.Streamer) {
	d.do(func() {
		if d.open {
			d.mixer.Add(s)
		}
	})
}
