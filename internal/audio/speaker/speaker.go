// Package speaker connects audio devices to the system sound card through
// github.com/gopxl/beep/speaker. It needs the platform audio libraries, so
// only the command imports it.
package speaker

import (
	"github.com/gopxl/beep"
	beepspeaker "github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/scenekit/internal/audio"
)

// Output plays a device mixer on the system speaker.
type Output struct{}

var _ audio.Output = Output{}

// Init opens the sound card at rate.
func (Output) Init(rate beep.SampleRate, bufferSize int) error {
	return beepspeaker.Init(rate, bufferSize)
}

func (Output) Play(s beep.Streamer) { beepspeaker.Play(s) }
func (Output) Lock()                { beepspeaker.Lock() }
func (Output) Unlock()              { beepspeaker.Unlock() }
func (Output) Close()               { beepspeaker.Close() }

// NewDevice creates a device for the system speaker. Call Open before use.
func NewDevice() *audio.Device {
	return audio.NewDeviceWithOutput(Output{}, audio.DefaultSampleRate)
}
