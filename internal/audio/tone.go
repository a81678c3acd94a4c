package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Tone returns a finite sine streamer at freq Hz that decays linearly to
// silence over d. Demos use it instead of shipping sound files.
func Tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	return &tone{rate: rate, freq: freq, total: rate.N(d)}
}

// ToneFormat is the format Tone streams in for rate.
func ToneFormat(rate beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
}

type tone struct {
	rate  beep.SampleRate
	freq  float64
	phase float64
	pos   int
	total int
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		env := 1 - float64(t.pos)/float64(t.total)
		v := 0.3 * env * math.Sin(2*math.Pi*t.phase)
		samples[i][0], samples[i][1] = v, v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
