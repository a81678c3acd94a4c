// Package tui runs scenes in a terminal. A Surface rasterizes each frame
// into an RGBA canvas and hands it to the Bubble Tea model as half-block
// cells; the model feeds keyboard and mouse input back through an
// input.Queue.
package tui

import (
	"errors"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/scenekit/internal/core"
)

// ErrClosed is returned by Present after the surface is closed.
var ErrClosed = errors.New("tui: surface closed")

// Surface is a scene.Surface backed by an in-memory canvas. Present
// converts the canvas into a core.Screen and offers it to Frames; a frame
// the model has not picked up yet is replaced by the newer one.
type Surface struct {
	canvas *image.RGBA
	frames chan *core.Screen
	done   chan struct{}
	once   sync.Once
}

// NewSurface creates a w x h pixel surface. Each terminal row shows two
// pixel rows.
func NewSurface(w, h int) *Surface {
	s := &Surface{
		canvas: image.NewRGBA(image.Rect(0, 0, w, h)),
		frames: make(chan *core.Screen, 1),
		done:   make(chan struct{}),
	}
	s.Clear()
	return s
}

// Size returns the canvas size in pixels.
func (s *Surface) Size() (int, int) {
	b := s.canvas.Bounds()
	return b.Dx(), b.Dy()
}

// Clear paints the whole canvas in the default background color.
func (s *Surface) Clear() {
	draw.Draw(s.canvas, s.canvas.Bounds(), image.NewUniform(core.ColorBackground), image.Point{}, draw.Src)
}

// Blit composites img with its top-left corner at at.
func (s *Surface) Blit(img image.Image, at image.Point) {
	b := img.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(b.Size())}
	draw.Draw(s.canvas, r, img, b.Min, draw.Over)
}

// FillRect composites a solid rectangle.
func (s *Surface) FillRect(r image.Rectangle, c color.Color) {
	draw.Draw(s.canvas, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// Present publishes the current canvas as a frame.
func (s *Surface) Present() error {
	select {
	case <-s.done:
		return ErrClosed
	default:
	}

	w, h := s.Size()
	screen := core.NewScreen(w, (h+1)/2)
	screen.DrawImage(s.canvas, 0)

	select {
	case s.frames <- screen:
	default:
		select {
		case <-s.frames:
		default:
		}
		s.frames <- screen
	}
	return nil
}

// Frames delivers presented frames. Only the newest pending frame is kept.
func (s *Surface) Frames() <-chan *core.Screen {
	return s.frames
}

// Canvas returns the pixel canvas. It is only safe to read between ticks.
func (s *Surface) Canvas() *image.RGBA {
	return s.canvas
}

// Close makes further Present calls fail with ErrClosed.
func (s *Surface) Close() {
	s.once.Do(func() { close(s.done) })
}
