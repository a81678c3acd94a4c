// Package scene runs the fixed-cadence loop that drives actors.
//
// Every tick runs the same phases in the same order: pace to the frame
// rate, drain events, run the update hook, refresh tiles, update each actor
// once, then draw and present. Stop is cooperative: it is observed at the
// top of the next tick, so the tick in flight always completes.
package scene

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/vovakirdan/scenekit/internal/actor"
	"github.com/vovakirdan/scenekit/internal/clock"
	"github.com/vovakirdan/scenekit/internal/core"
	"github.com/vovakirdan/scenekit/internal/tilemap"
)

// ErrRunning is returned by Start when the scene is already running.
var ErrRunning = errors.New("scene: already running")

// State is the loop state.
type State int

const (
	Stopped State = iota
	Running
)

// String returns the state name.
func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Hooks are optional scene-level callbacks.
type Hooks struct {
	// OnEvent receives every drained event, quit included, after clickable
	// actors have seen it.
	OnEvent func(s *Scene, ev core.Event)
	// OnUpdate runs once per tick before actors are updated.
	OnUpdate func(s *Scene)
}

// Scene owns a map, actor groups and the loop that drives them.
type Scene struct {
	name   string
	ctx    *Context
	bg     *Map
	hooks  Hooks
	pacer  *clock.Pacer
	main   *actor.Group
	groups []*actor.Group

	mainAdded bool
	state     State
	stopReq   bool
	quit      bool
	ticks     int
	pointer   core.Pointer
	updated   map[*actor.Actor]struct{}
}

// New creates a stopped scene drawing on ctx's surface. A nil map gets a
// solid background the size of the surface.
func New(name string, ctx *Context, m *Map) *Scene {
	if m == nil {
		w, h := ctx.Surface.Size()
		m = NewMap(w, h)
	}
	return &Scene{
		name:    name,
		ctx:     ctx,
		bg:      m,
		pacer:   clock.NewPacer(ctx.clock(), clock.DefaultFrameRate),
		main:    actor.NewGroup(name),
		pointer: core.NewPointer(),
		updated: make(map[*actor.Actor]struct{}),
	}
}

// Name returns the scene name.
func (s *Scene) Name() string {
	return s.name
}

// Context returns the shared collaborators.
func (s *Scene) Context() *Context {
	return s.ctx
}

// Map returns the backdrop.
func (s *Scene) Map() *Map {
	return s.bg
}

// SetMap replaces the backdrop.
func (s *Scene) SetMap(m *Map) {
	s.bg = m
}

// SetHooks installs the scene callbacks.
func (s *Scene) SetHooks(h Hooks) {
	s.hooks = h
}

// SetFrameRate sets the loop rate in ticks per second.
func (s *Scene) SetFrameRate(fps int) {
	s.pacer.SetFrameRate(fps)
}

// FrameRate returns the loop rate.
func (s *Scene) FrameRate() int {
	return s.pacer.FrameRate()
}

// AddActor adds actors to the scene's default group. The default group is
// drawn after every group added before the first Start.
func (s *Scene) AddActor(actors ...*actor.Actor) {
	s.main.Add(actors...)
}

// AddGroup registers a group. Groups are updated and drawn in registration
// order.
func (s *Scene) AddGroup(g *actor.Group) {
	s.groups = append(s.groups, g)
}

// CreateGroup creates and registers a group holding actors.
func (s *Scene) CreateGroup(name string, actors ...*actor.Actor) *actor.Group {
	g := actor.NewGroup(name, actors...)
	s.AddGroup(g)
	return g
}

// Groups returns the registered groups in paint order.
func (s *Scene) Groups() []*actor.Group {
	if s.mainAdded {
		return s.groups
	}
	return append(append([]*actor.Group(nil), s.groups...), s.main)
}

// Pointer returns the pointer state seen by this scene.
func (s *Scene) Pointer() core.Pointer {
	return s.pointer
}

// State returns the loop state.
func (s *Scene) State() State {
	return s.state
}

// Ticks returns how many ticks the scene has completed.
func (s *Scene) Ticks() int {
	return s.ticks
}

// QuitRequested reports whether the last run ended on a quit event.
func (s *Scene) QuitRequested() bool {
	return s.quit
}

// Env returns what actors are resolved against this tick.
func (s *Scene) Env() actor.Env {
	w, h := s.ctx.Surface.Size()
	return actor.Env{Width: float64(w), Height: float64(h), Tiles: s.bg.Tiles()}
}

// Stop asks the loop to exit at the top of the next tick.
func (s *Scene) Stop() {
	s.stopReq = true
}

// Start runs the loop until Stop is called, a quit event arrives or ctx is
// done. It returns an error only when presenting a frame fails.
func (s *Scene) Start(ctx context.Context) error {
	if s.state == Running {
		return ErrRunning
	}
	s.state = Running
	s.stopReq = false
	s.quit = false
	defer func() { s.state = Stopped }()

	if !s.mainAdded {
		s.groups = append(s.groups, s.main)
		s.mainAdded = true
	}

	log := s.ctx.Logger()
	log.Info("scene started", "scene", s.name, "fps", s.pacer.FrameRate())

	for !s.stopReq && ctx.Err() == nil {
		if err := s.tick(ctx); err != nil {
			log.Error("scene aborted", "scene", s.name, "tick", s.ticks, "error", err)
			return err
		}
	}

	log.Info("scene stopped", "scene", s.name, "ticks", s.ticks, "quit", s.quit)
	return nil
}

func (s *Scene) tick(ctx context.Context) error {
	s.pacer.Tick(ctx)

	s.handleEvents()

	if s.hooks.OnUpdate != nil {
		s.hooks.OnUpdate(s)
	}

	env := s.Env()

	clear(s.updated)
	for _, g := range s.groups {
		for _, a := range g.Actors() {
			if _, done := s.updated[a]; done {
				continue
			}
			s.updated[a] = struct{}{}
			a.Update(env)
		}
	}

	if err := s.draw(env.Tiles); err != nil {
		return err
	}
	s.ticks++
	return nil
}

func (s *Scene) handleEvents() {
	if s.ctx.Events == nil {
		return
	}
	for _, ev := range s.ctx.Events.Poll() {
		if ev.Type == core.EventQuit {
			s.quit = true
			s.Stop()
		}
		s.pointer.Apply(ev)

		for _, g := range s.groups {
			for _, a := range g.Actors() {
				if a.Clickable() != nil {
					a.HandleEvent(ev)
				}
			}
		}
		if s.hooks.OnEvent != nil {
			s.hooks.OnEvent(s, ev)
		}
	}
}

func (s *Scene) draw(tiles []tilemap.Tile) error {
	surf := s.ctx.Surface
	surf.Clear()

	if bg := s.bg.Image(); bg != nil {
		surf.Blit(bg, s.bg.Position())
	}

	if s.bg.TilesVisible() {
		for _, t := range tiles {
			b := t.Box()
			surf.FillRect(image.Rect(round(b.Left()), round(b.Top()), round(b.Right()), round(b.Bottom())), core.ColorTile)
		}
	}

	for _, g := range s.groups {
		for _, a := range g.Actors() {
			if !a.Visible() {
				continue
			}
			b := a.Box()
			surf.Blit(a.Image(), image.Pt(round(b.Left()), round(b.Top())))
		}
	}

	if err := surf.Present(); err != nil {
		return fmt.Errorf("scene: present: %w", err)
	}
	return nil
}

func round(v float64) int {
	return int(math.Round(v))
}
