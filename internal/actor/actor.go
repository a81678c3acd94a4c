// Package actor implements the moving, drawable entities a scene updates
// every tick: the polar motion model, the bounds resolver, animation
// playback, image transforms and collision queries.
//
// Position (X, Y) is the center of the displayed image in canvas
// coordinates (origin top-left, y down). Speed and MoveAngle are kept
// consistent with the velocity components DX and DY at all times: every
// setter of one representation re-derives the other before returning.
package actor

import (
	"image"

	"github.com/vovakirdan/scenekit/internal/anim"
	"github.com/vovakirdan/scenekit/internal/core"
	"github.com/vovakirdan/scenekit/internal/gfx"
	"github.com/vovakirdan/scenekit/internal/tilemap"
)

// Default speed limits used by SpeedUp.
const (
	DefaultMinSpeed = 0
	DefaultMaxSpeed = 10
)

// Behavior is caller-defined per-tick logic, run first in every Update.
type Behavior interface {
	Update(a *Actor)
}

// BehaviorFunc adapts a function to the Behavior interface.
type BehaviorFunc func(a *Actor)

// Update calls f(a).
func (f BehaviorFunc) Update(a *Actor) {
	f(a)
}

// Env is what an actor is resolved against: the window and the tiles.
type Env struct {
	Width, Height float64
	Tiles         []tilemap.Tile
}

// Actor is a positioned, drawable, optionally animated entity.
type Actor struct {
	name string

	x, y      float64
	dx, dy    float64
	speed     float64
	moveAngle float64
	minSpeed  float64
	maxSpeed  float64
	imgAngle  float64

	boundAction BoundAction
	collidable  bool
	visible     bool
	hiddenX     float64
	hiddenY     float64

	behavior  Behavior
	clickable *Clickable
	env       Env

	// Appearance: content is the master, base is the master after crop and
	// scale, frame is the last animation frame, display is the rotated result.
	content gfx.Content
	ops     imageOps
	seq     *anim.Sequencer
	frame   image.Image

	baseSrc   image.Image
	baseDirty bool
	base      image.Image

	rotSrc   image.Image
	rotAngle float64
	display  image.Image
}

// New creates a visible, collidable actor showing content. A nil content
// shows a "DVD" text box. The default bound action is Wrap.
func New(content gfx.Content) *Actor {
	if content == nil {
		content = gfx.NewTextBox("DVD")
	}
	a := &Actor{
		minSpeed:    DefaultMinSpeed,
		maxSpeed:    DefaultMaxSpeed,
		boundAction: Wrap,
		collidable:  true,
		visible:     true,
	}
	a.SetContent(content)
	return a
}

// Name returns the actor's name.
func (a *Actor) Name() string {
	return a.name
}

// SetName sets a name used in logs and lookups.
func (a *Actor) SetName(name string) {
	a.name = name
}

// SetBehavior installs the per-tick hook. Nil removes it.
func (a *Actor) SetBehavior(b Behavior) {
	a.behavior = b
}

// Update runs one tick for the actor: behavior hook, animation step,
// rotation from the unrotated source, velocity from (speed, angle),
// integration and bounds resolution against env.
func (a *Actor) Update(env Env) {
	a.env = env

	if a.behavior != nil {
		a.behavior.Update(a)
	}

	if f := a.seq.Tick(); f != nil {
		a.frame = f
	}
	a.refreshImage()

	a.syncVector()
	a.x += a.dx
	a.y += a.dy

	a.CheckBounds(env)
}

// Content returns the actor's visual content.
func (a *Actor) Content() gfx.Content {
	return a.content
}

// SetContent replaces the visual content. Crop, scale, the current frame and
// the default animation are reset to the new master image.
func (a *Actor) SetContent(c gfx.Content) {
	a.content = c
	a.ops = imageOps{}
	a.baseDirty = true
	a.frame = nil

	master := c.Image()
	if a.seq == nil {
		a.seq = anim.New(master)
	} else {
		a.seq.Register(anim.DefaultName, []image.Image{master})
	}
	a.refreshImage()
}

// SetImage loads the image at path and uses it as the master picture.
func (a *Actor) SetImage(path string) error {
	img, err := gfx.Load(path)
	if err != nil {
		return err
	}
	a.SetContent(gfx.NewPicture(img))
	return nil
}

// SetDisplayedImageAsMaster makes the currently displayed image the new
// master. Image rotation is reset since it is already baked in.
func (a *Actor) SetDisplayedImageAsMaster() {
	img := a.Image()
	a.imgAngle = 0
	a.SetContent(gfx.NewPicture(img))
}

// Image returns the displayed image: the current source after rotation.
func (a *Actor) Image() image.Image {
	a.refreshImage()
	return a.display
}

// Box returns the displayed bounding box, centered on the position.
// It follows every rotation, crop, scale and animation frame change.
func (a *Actor) Box() core.RectF {
	w, h := gfx.Size(a.Image())
	return core.RectFromCenter(a.x, a.y, float64(w), float64(h))
}

// Visible reports whether the actor is drawn.
func (a *Actor) Visible() bool {
	return a.visible
}

// Hide stops the actor and moves it far outside the canvas. The position is
// remembered for Show; hiding an already hidden actor keeps the first memo.
func (a *Actor) Hide() {
	if a.visible {
		a.hiddenX, a.hiddenY = a.x, a.y
	}
	a.visible = false
	a.x, a.y = HiddenPos, HiddenPos
	a.SetSpeed(0)
}

// Show makes the actor visible again at the position it had when hidden.
func (a *Actor) Show() {
	if a.visible {
		return
	}
	a.visible = true
	a.x, a.y = a.hiddenX, a.hiddenY
}

// Collidable reports whether other actors can collide with this one.
func (a *Actor) Collidable() bool {
	return a.collidable
}

// SetCollidable toggles participation in collision queries.
func (a *Actor) SetCollidable(c bool) {
	a.collidable = c
}

// BoundAction returns the edge policy.
func (a *Actor) BoundAction() BoundAction {
	return a.boundAction
}

// SetBoundAction sets the edge policy.
func (a *Actor) SetBoundAction(action BoundAction) {
	a.boundAction = action
}

// CreateAnimation slices count cells of cellW x cellH from the master image,
// starting at (left, top) and moving right, and registers them as name.
func (a *Actor) CreateAnimation(name string, count, cellW, cellH, left, top int, scalar float64) error {
	frames, err := gfx.SliceSheet(a.content.Image(), count, cellW, cellH, left, top, scalar)
	if err != nil {
		return err
	}
	a.seq.Register(name, frames)
	return nil
}

// AddAnimation registers already prepared frames as name.
func (a *Actor) AddAnimation(name string, frames []image.Image) {
	a.seq.Register(name, frames)
}

// PlayAnimation starts advancing the current animation every tick.
func (a *Actor) PlayAnimation() {
	a.seq.Play()
}

// PauseAnimation stops advancing; the last frame stays on screen.
func (a *Actor) PauseAnimation() {
	a.seq.Pause()
}

// ResetAnimation rewinds the current animation.
func (a *Actor) ResetAnimation() {
	a.seq.Reset()
}

// SetAnimationSpeed sets the cadence: the frame advances by step once every
// threshold+1 ticks.
func (a *Actor) SetAnimationSpeed(threshold, step int) {
	a.seq.SetCadence(threshold, step)
}

// SetCurrentAnimation switches animations. Unknown names are ignored.
func (a *Actor) SetCurrentAnimation(name string) {
	a.seq.SetCurrent(name)
}

// Animation exposes the sequencer for inspection.
func (a *Actor) Animation() *anim.Sequencer {
	return a.seq
}
