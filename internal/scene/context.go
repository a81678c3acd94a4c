package scene

import (
	"image"
	"image/color"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/scenekit/internal/audio"
	"github.com/vovakirdan/scenekit/internal/clock"
	"github.com/vovakirdan/scenekit/internal/core"
)

// Surface receives a scene's draw calls. The scene clears it, blits the
// background, tiles and actors in paint order, then presents the frame.
type Surface interface {
	// Size returns the canvas size in pixels.
	Size() (w, h int)
	Clear()
	// Blit draws img with its top-left corner at at.
	Blit(img image.Image, at image.Point)
	FillRect(r image.Rectangle, c color.Color)
	// Present shows the frame. An error ends the running scene.
	Present() error
}

// EventSource yields the events that arrived since the previous call.
type EventSource interface {
	Poll() []core.Event
}

// Context holds the collaborators scenes share. The application builds one,
// passes it to every scene and closes it when done.
type Context struct {
	Surface Surface
	Events  EventSource
	Clock   clock.Clock
	Audio   *audio.Device
	Log     *log.Logger
}

// NewContext creates a context with the wall clock, a muted audio device
// and a discarding logger. Callers replace fields as needed.
func NewContext(surface Surface, events EventSource) *Context {
	return &Context{
		Surface: surface,
		Events:  events,
		Clock:   clock.Real(),
		Audio:   audio.NewMuted(),
		Log:     log.New(io.Discard),
	}
}

// Close releases the audio device and the event source if it can be closed.
func (c *Context) Close() {
	if c.Audio != nil {
		c.Audio.Close()
	}
	if closer, ok := c.Events.(interface{ Close() }); ok {
		closer.Close()
	}
}

// Logger returns the shared logger, installing a discarding one if unset.
func (c *Context) Logger() *log.Logger {
	if c.Log == nil {
		c.Log = log.New(io.Discard)
	}
	return c.Log
}

func (c *Context) clock() clock.Clock {
	if c.Clock == nil {
		c.Clock = clock.Real()
	}
	return c.Clock
}
