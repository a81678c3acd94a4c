// Package bounce implements the default scene: a text box drifting around
// the canvas under one bound action, the classic "DVD" screensaver.
package bounce

import (
	"fmt"

	"github.com/vovakirdan/scenekit/internal/actor"
	"github.com/vovakirdan/scenekit/internal/config"
	"github.com/vovakirdan/scenekit/internal/core"
	"github.com/vovakirdan/scenekit/internal/gfx"
	"github.com/vovakirdan/scenekit/internal/registry"
	"github.com/vovakirdan/scenekit/internal/scene"
)

const demoID = "bounce"

func init() {
	registry.Register(demoID, func() registry.Demo { return New() })
}

// actionKeys switch the bound action while running.
var actionKeys = map[string]actor.BoundAction{
	"w": actor.Wrap,
	"b": actor.Bounce,
	"s": actor.Stop,
	"h": actor.Hide,
	"c": actor.Continue,
}

// Demo is the bounce demo.
type Demo struct {
	cfg   config.BounceConfig
	box   *actor.Actor
	scene *scene.Scene
}

// New creates the demo with its default configuration.
func New() *Demo {
	return &Demo{cfg: config.DefaultBounceConfig()}
}

// ID returns the demo identifier.
func (d *Demo) ID() string { return demoID }

// Title returns the display name.
func (d *Demo) Title() string { return "Bounce" }

// Box returns the moving actor. Nil before Build.
func (d *Demo) Box() *actor.Actor { return d.box }

// Build loads the configuration and adds the single "bounce" scene.
func (d *Demo) Build(g *scene.Game, opts registry.Options) error {
	cfg, err := config.LoadBounce(opts.ConfigPath)
	if err != nil {
		return err
	}
	d.cfg = cfg

	bg, err := cfg.Scene.BackgroundColor()
	if err != nil {
		return err
	}
	action, err := cfg.Bound()
	if err != nil {
		return err
	}

	w, h := g.Context().Surface.Size()
	m := scene.NewMap(w, h)
	m.SetBackground(gfx.Solid(w, h, bg))

	text := gfx.NewTextBox(cfg.Text)
	text.SetTextColor(gfx.MustColor(cfg.TextColor))
	text.SetBackgroundColor(gfx.MustColor(cfg.BoxColor))

	d.box = actor.New(text)
	d.box.SetName("box")
	d.box.SetBoundAction(action)
	d.reset(w, h)

	s := g.NewScene(demoID, m)
	s.SetFrameRate(frameRate(cfg.Scene.FrameRate, opts.FrameRate))
	s.AddActor(d.box)
	s.SetHooks(scene.Hooks{OnEvent: d.onEvent})
	d.scene = s

	if err := g.SetCurrentScene(demoID); err != nil {
		return fmt.Errorf("bounce: %w", err)
	}
	return nil
}

// reset centers the box and restores the configured motion.
func (d *Demo) reset(w, h int) {
	d.box.Show()
	d.box.SetPosition(float64(w)/2, float64(h)/2)
	d.box.SetMotionVector(d.cfg.Speed, d.cfg.Angle)
}

func (d *Demo) onEvent(s *scene.Scene, ev core.Event) {
	if ev.Type != core.EventKeyDown {
		return
	}
	if action, ok := actionKeys[ev.Key]; ok {
		d.box.SetBoundAction(action)
		return
	}
	if ev.Key == "r" {
		w, h := s.Context().Surface.Size()
		d.reset(w, h)
	}
}

// frameRate picks the CLI override when set.
func frameRate(configured, override int) int {
	if override > 0 {
		return override
	}
	return configured
}
