package actor

import "github.com/vovakirdan/scenekit/internal/core"

// PrimaryButton is the pointer button clickables react to.
const PrimaryButton = 1

// Clickable makes an actor respond to the pointer. Any actor can carry one
// regardless of its content.
type Clickable struct {
	// OnClick, if set, runs when a click completes over the actor.
	OnClick func(a *Actor)

	held    bool // primary button went down over the actor and is still down
	over    bool // pointer is over the actor
	clicked bool // latched until read by Clicked
}

// NewClickable returns a clickable with an optional click callback.
func NewClickable(onClick func(a *Actor)) *Clickable {
	return &Clickable{OnClick: onClick}
}

// Pressed reports whether the primary button is held over the actor.
func (c *Clickable) Pressed() bool {
	return c.held && c.over
}

// Clicked reports whether a click completed since the last call.
func (c *Clickable) Clicked() bool {
	clicked := c.clicked
	c.clicked = false
	return clicked
}

// SetClickable attaches a clickable capability. Nil removes it.
func (a *Actor) SetClickable(c *Clickable) {
	a.clickable = c
}

// Clickable returns the attached capability, or nil.
func (a *Actor) Clickable() *Clickable {
	return a.clickable
}

// HandleEvent feeds a pointer event to the clickable capability.
// A click is a primary press followed by a release, both over the actor.
func (a *Actor) HandleEvent(ev core.Event) {
	c := a.clickable
	if c == nil || !a.visible {
		return
	}

	switch ev.Type {
	case core.EventPointerMove:
		c.over = a.Box().ContainsPoint(ev.X, ev.Y)
	case core.EventPointerButton:
		if ev.Button != PrimaryButton {
			return
		}
		c.over = a.Box().ContainsPoint(ev.X, ev.Y)
		if ev.Pressed {
			c.held = c.over
			return
		}
		if c.held && c.over {
			c.clicked = true
			if c.OnClick != nil {
				c.OnClick(a)
			}
		}
		c.held = false
	}
}
