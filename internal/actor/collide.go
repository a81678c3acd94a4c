package actor

import "github.com/vovakirdan/scenekit/internal/tilemap"

// Group is an ordered collection of actors. Scenes draw groups in the order
// they were registered, so groups also control paint order.
type Group struct {
	name   string
	actors []*Actor
}

// NewGroup creates a group holding actors in order.
func NewGroup(name string, actors ...*Actor) *Group {
	return &Group{name: name, actors: append([]*Actor(nil), actors...)}
}

// Name returns the group name.
func (g *Group) Name() string {
	return g.name
}

// Add appends actors to the group.
func (g *Group) Add(actors ...*Actor) {
	g.actors = append(g.actors, actors...)
}

// Remove drops an actor from the group, keeping the order of the rest.
func (g *Group) Remove(a *Actor) bool {
	for i, member := range g.actors {
		if member == a {
			g.actors = append(g.actors[:i], g.actors[i+1:]...)
			return true
		}
	}
	return false
}

// Actors returns the members in insertion order.
func (g *Group) Actors() []*Actor {
	return g.actors
}

// Len returns the number of members.
func (g *Group) Len() int {
	return len(g.actors)
}

// CollidesWith reports whether the displayed boxes of a and other overlap.
// Non-collidable targets and zero-sized boxes never collide.
func (a *Actor) CollidesWith(other *Actor) bool {
	if other == nil || other == a || !other.collidable {
		return false
	}
	return a.Box().Intersects(other.Box())
}

// FirstCollision returns the first member of g that a collides with, or nil.
func (a *Actor) FirstCollision(g *Group) *Actor {
	if g == nil {
		return nil
	}
	for _, other := range g.actors {
		if a.CollidesWith(other) {
			return other
		}
	}
	return nil
}

// CollidesWithGroup reports whether a collides with any member of g.
func (a *Actor) CollidesWithGroup(g *Group) bool {
	return a.FirstCollision(g) != nil
}

// CollidesWithTiles returns the first tile the displayed box overlaps.
func (a *Actor) CollidesWithTiles(tiles []tilemap.Tile) (tilemap.Tile, bool) {
	box := a.Box()
	for _, t := range tiles {
		if box.Intersects(t.Box()) {
			return t, true
		}
	}
	return tilemap.Tile{}, false
}
