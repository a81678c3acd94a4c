package scene

import (
	"context"
	"fmt"
)

// Game is a set of named scenes with one current scene. Switching scenes
// stops the current one; the next starts once the current tick completes,
// so scene loops never nest.
type Game struct {
	ctx     *Context
	scenes  map[string]*Scene
	current string
	pending string
	stopped bool
}

// NewGame creates a game whose scenes share ctx.
func NewGame(ctx *Context) *Game {
	return &Game{
		ctx:    ctx,
		scenes: make(map[string]*Scene),
	}
}

// Context returns the shared collaborators.
func (g *Game) Context() *Context {
	return g.ctx
}

// NewScene creates a scene on the game's context and adds it under name.
// The first scene added becomes current.
func (g *Game) NewScene(name string, m *Map) *Scene {
	s := New(name, g.ctx, m)
	g.AddScene(name, s)
	return s
}

// AddScene registers s under name, replacing any scene with that name.
// The first scene added becomes current.
func (g *Game) AddScene(name string, s *Scene) {
	g.scenes[name] = s
	if g.current == "" {
		g.current = name
	}
}

// Scene returns the scene registered under name.
func (g *Game) Scene(name string) (*Scene, bool) {
	s, ok := g.scenes[name]
	return s, ok
}

// SetCurrentScene selects the scene Run starts with.
func (g *Game) SetCurrentScene(name string) error {
	if _, ok := g.scenes[name]; !ok {
		return fmt.Errorf("scene: unknown scene %q", name)
	}
	g.current = name
	return nil
}

// Current returns the current scene, or nil when none is registered.
func (g *Game) Current() *Scene {
	return g.scenes[g.current]
}

// CurrentName returns the current scene's name.
func (g *Game) CurrentName() string {
	return g.current
}

// GoToScene switches to the named scene. While running, the current scene
// finishes its tick and the named scene starts next. Unknown names are an
// error and leave the current scene running.
func (g *Game) GoToScene(name string) error {
	if _, ok := g.scenes[name]; !ok {
		return fmt.Errorf("scene: unknown scene %q", name)
	}

	cur := g.Current()
	if cur == nil || cur.State() != Running {
		g.current = name
		return nil
	}
	g.pending = name
	cur.Stop()
	return nil
}

// Stop ends the run after the current tick.
func (g *Game) Stop() {
	g.stopped = true
	g.pending = ""
	if cur := g.Current(); cur != nil {
		cur.Stop()
	}
}

// Run starts the current scene and follows scene switches until a scene
// stops without a pending switch, a quit event arrives or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	g.stopped = false
	log := g.ctx.Logger()

	for {
		cur := g.Current()
		if cur == nil {
			return fmt.Errorf("scene: no scene to run")
		}

		if err := cur.Start(ctx); err != nil {
			return err
		}

		if ctx.Err() != nil || cur.QuitRequested() || g.stopped || g.pending == "" {
			g.pending = ""
			return nil
		}

		log.Info("switching scene", "from", g.current, "to", g.pending)
		g.current, g.pending = g.pending, ""
	}
}
