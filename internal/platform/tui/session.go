package tui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/scenekit/internal/audio"
	"github.com/vovakirdan/scenekit/internal/clock"
	"github.com/vovakirdan/scenekit/internal/input"
	"github.com/vovakirdan/scenekit/internal/registry"
	"github.com/vovakirdan/scenekit/internal/scene"
)

// SessionConfig describes one terminal session running a demo.
type SessionConfig struct {
	DemoID  string
	CanvasW int
	CanvasH int
	Options registry.Options
	Logger  *log.Logger
	Audio   *audio.Device // nil means muted
}

// Session is a built demo wired to a terminal surface and input queue.
type Session struct {
	Title   string
	Game    *scene.Game
	Queue   *input.Queue
	Surface *Surface
}

// NewSession builds the demo named in cfg on a fresh surface.
func NewSession(cfg SessionConfig) (*Session, error) {
	surface := NewSurface(cfg.CanvasW, cfg.CanvasH)
	queue := input.NewQueue(clock.Real())

	sctx := scene.NewContext(surface, queue)
	if cfg.Logger != nil {
		sctx.Log = cfg.Logger
	}
	if cfg.Audio != nil {
		sctx.Audio = cfg.Audio
	}

	g := scene.NewGame(sctx)
	demo, err := registry.Build(cfg.DemoID, g, cfg.Options)
	if err != nil {
		sctx.Close()
		return nil, fmt.Errorf("tui: %w", err)
	}

	return &Session{
		Title:   demo.Title(),
		Game:    g,
		Queue:   queue,
		Surface: surface,
	}, nil
}

// Close stops the surface and releases the scene context.
func (s *Session) Close() {
	s.Surface.Close()
	s.Game.Context().Close()
}
