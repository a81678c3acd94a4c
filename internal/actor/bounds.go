package actor

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/scenekit/internal/core"
	"github.com/vovakirdan/scenekit/internal/tilemap"
)

// BoundAction is the policy applied when an actor crosses a window or tile edge.
type BoundAction int

const (
	Wrap     BoundAction = iota // Teleport to the opposite window edge
	Bounce                      // Reflect the velocity off the crossed edge
	Stop                        // Stop moving
	Hide                        // Stop, move off the canvas and become invisible
	Continue                    // No resolution
)

// HiddenPos is the coordinate hidden actors are parked at.
const HiddenPos = -10000

// String returns the lower-case policy name.
func (b BoundAction) String() string {
	switch b {
	case Wrap:
		return "wrap"
	case Bounce:
		return "bounce"
	case Stop:
		return "stop"
	case Hide:
		return "hide"
	case Continue:
		return "continue"
	default:
		return fmt.Sprintf("BoundAction(%d)", int(b))
	}
}

// ParseBoundAction converts a policy name to a BoundAction.
func ParseBoundAction(s string) (BoundAction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap":
		return Wrap, nil
	case "bounce":
		return Bounce, nil
	case "stop":
		return Stop, nil
	case "hide":
		return Hide, nil
	case "continue", "":
		return Continue, nil
	}
	return Continue, fmt.Errorf("actor: unknown bound action %q", s)
}

// Edges records which edges an actor's lookahead box crosses.
type Edges struct {
	Left, Right, Top, Bottom bool
}

// Any reports whether any edge is crossed.
func (e Edges) Any() bool {
	return e.Left || e.Right || e.Top || e.Bottom
}

// Edges returns the edges the actor crosses in env. The displayed box is
// grown by the speed so crossings between two ticks are not missed.
//
// Only the first tile (row-major) touching the grown box is considered.
// Crossing its left edge counts as Right, its right edge as Left, its top
// edge as Bottom and its bottom edge as Top. A box buried inside the tile
// crosses none of its edges and is treated as crossing all four.
func (a *Actor) Edges(env Env) Edges {
	var e Edges

	shown := a.Box()
	box := shown.Expand(a.speed)

	if !shown.Empty() {
		if tile, ok := firstTile(box, env.Tiles); ok {
			t := tile.Box()
			e.Right = spans(box.Left(), box.Right(), t.Left())
			e.Left = spans(box.Left(), box.Right(), t.Right())
			e.Bottom = spans(box.Top(), box.Bottom(), t.Top())
			e.Top = spans(box.Top(), box.Bottom(), t.Bottom())
			if !e.Any() {
				e = Edges{true, true, true, true}
			}
		}
	}

	if env.Width > 0 {
		e.Left = e.Left || box.Left() <= 0
		e.Right = e.Right || box.Right() >= env.Width
	}
	if env.Height > 0 {
		e.Top = e.Top || box.Top() <= 0
		e.Bottom = e.Bottom || box.Bottom() >= env.Height
	}
	return e
}

// CheckBounds applies the actor's bound action for env.
func (a *Actor) CheckBounds(env Env) {
	switch a.boundAction {
	case Wrap:
		a.wrap(env)
	case Bounce:
		e := a.Edges(env)
		if !e.Any() {
			return
		}
		if e.Left || e.Right {
			a.dx = -a.dx
		}
		if e.Top || e.Bottom {
			a.dy = -a.dy
		}
		a.syncPolar()
	case Stop:
		if a.Edges(env).Any() {
			a.SetSpeed(0)
		}
	case Hide:
		if a.Edges(env).Any() {
			a.Hide()
		}
	}
}

// wrap compares the raw center, not the lookahead box, to the window.
func (a *Actor) wrap(env Env) {
	if env.Width > 0 {
		if a.x > env.Width {
			a.x = 0
		}
		if a.x < 0 {
			a.x = env.Width
		}
	}
	if env.Height > 0 {
		if a.y > env.Height {
			a.y = 0
		}
		if a.y < 0 {
			a.y = env.Height
		}
	}
}

func firstTile(box core.RectF, tiles []tilemap.Tile) (tilemap.Tile, bool) {
	for _, t := range tiles {
		if box.Touches(t.Box()) {
			return t, true
		}
	}
	return tilemap.Tile{}, false
}

func spans(lo, hi, v float64) bool {
	return lo <= v && v <= hi
}
