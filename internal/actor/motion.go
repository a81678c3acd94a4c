package actor

import (
	"math"

	"github.com/vovakirdan/scenekit/internal/core"
)

// X returns the horizontal center position.
func (a *Actor) X() float64 { return a.x }

// Y returns the vertical center position.
func (a *Actor) Y() float64 { return a.y }

// Position returns the center position.
func (a *Actor) Position() (float64, float64) {
	return a.x, a.y
}

// SetPosition moves the actor without a bounds check.
func (a *Actor) SetPosition(x, y float64) {
	a.x, a.y = x, y
}

// SetX sets the horizontal position.
func (a *Actor) SetX(x float64) { a.x = x }

// SetY sets the vertical position.
func (a *Actor) SetY(y float64) { a.y = y }

// Speed returns the magnitude of the velocity.
func (a *Actor) Speed() float64 { return a.speed }

// MoveAngle returns the heading in degrees (0 = right, 90 = up).
func (a *Actor) MoveAngle() float64 { return a.moveAngle }

// DX returns the horizontal velocity component.
func (a *Actor) DX() float64 { return a.dx }

// DY returns the vertical velocity component (positive is down).
func (a *Actor) DY() float64 { return a.dy }

// SetSpeed sets the speed, keeping the heading.
func (a *Actor) SetSpeed(speed float64) {
	a.setPolar(speed, a.moveAngle)
}

// SetSpeedLimits sets the range SpeedUp clamps to.
func (a *Actor) SetSpeedLimits(min, max float64) {
	a.minSpeed, a.maxSpeed = min, max
}

// SpeedUp adds amount to the speed, clamped to the speed limits.
func (a *Actor) SpeedUp(amount float64) {
	a.setPolar(core.ClampF(a.speed+amount, a.minSpeed, a.maxSpeed), a.moveAngle)
}

// SetMoveAngle sets the heading in degrees, keeping the speed.
func (a *Actor) SetMoveAngle(degrees float64) {
	a.setPolar(a.speed, degrees)
}

// SetMotionVector sets speed and heading together.
func (a *Actor) SetMotionVector(speed, degrees float64) {
	a.setPolar(speed, degrees)
}

// SetDX sets the horizontal velocity component.
func (a *Actor) SetDX(dx float64) {
	a.dx = dx
	a.syncPolar()
}

// SetDY sets the vertical velocity component.
func (a *Actor) SetDY(dy float64) {
	a.dy = dy
	a.syncPolar()
}

// AddDX adds to the horizontal velocity component.
func (a *Actor) AddDX(amount float64) {
	a.dx += amount
	a.syncPolar()
}

// AddDY adds to the vertical velocity component.
func (a *Actor) AddDY(amount float64) {
	a.dy += amount
	a.syncPolar()
}

// AddForce adds a velocity of magnitude amount in direction degrees.
func (a *Actor) AddForce(amount, degrees float64) {
	rad := degrees * math.Pi / 180
	a.dx += amount * math.Cos(rad)
	a.dy -= amount * math.Sin(rad)
	a.syncPolar()
}

// MoveBy displaces the actor and resolves bounds against the environment
// of the most recent update.
func (a *Actor) MoveBy(dx, dy float64) {
	a.x += dx
	a.y += dy
	a.CheckBounds(a.env)
}

// MoveForward displaces the actor by amount along its heading and resolves
// bounds like MoveBy. Velocity is unchanged.
func (a *Actor) MoveForward(amount float64) {
	rad := a.moveAngle * math.Pi / 180
	a.MoveBy(amount*math.Cos(rad), -amount*math.Sin(rad))
}

// DistanceToPoint returns the distance from the actor's center to (x, y).
func (a *Actor) DistanceToPoint(x, y float64) float64 {
	return math.Hypot(a.x-x, a.y-y)
}

// AngleToPoint returns the heading in degrees, in [0, 360), that points
// from the actor's center toward (x, y).
func (a *Actor) AngleToPoint(x, y float64) float64 {
	deg := math.Atan2(a.y-y, x-a.x) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// setPolar writes the polar representation and derives the vector.
// A negative speed is folded into the heading.
func (a *Actor) setPolar(speed, degrees float64) {
	a.speed, a.moveAngle = speed, degrees
	a.syncVector()
	if speed < 0 {
		a.syncPolar()
	}
}

// syncVector derives (dx, dy) from (speed, moveAngle).
func (a *Actor) syncVector() {
	rad := a.moveAngle * math.Pi / 180
	a.dx = noNegZero(a.speed * math.Cos(rad))
	a.dy = noNegZero(-a.speed * math.Sin(rad))
}

// syncPolar derives (speed, moveAngle) from (dx, dy). A leftward vector
// always yields 180, never -180.
func (a *Actor) syncPolar() {
	a.dx, a.dy = noNegZero(a.dx), noNegZero(a.dy)
	a.speed = math.Hypot(a.dx, a.dy)
	if a.speed == 0 {
		// A zero vector has no direction; the heading is kept.
		return
	}
	a.moveAngle = math.Atan2(noNegZero(-a.dy), a.dx) * 180 / math.Pi
}

func noNegZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
