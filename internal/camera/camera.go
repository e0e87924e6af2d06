package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultMoveSpeed   = 3.0
	DefaultSprintSpeed = 6.0
	DefaultSensitivity = 0.1
	DefaultFOV         = 45.0
	DefaultYaw         = -90.0

	MaxPitch = 89.0
	MinZoom  = 1.0
)

// Camera is a free-fly camera. Movement keys are held intents that
// UpdatePosition integrates over time; mouse motion accumulates yaw and
// pitch, which UpdateDirection turns into a front vector.
type Camera struct {
	moveSpeed       float32
	sprintSpeed     float32
	sensitivity     float32
	fov             float32
	maxFOV          float32
	sprintBackwards bool

	pos   mgl32.Vec3
	front mgl32.Vec3
	up    mgl32.Vec3
	yaw   float32
	pitch float32

	sprint  bool
	forward bool
	back    bool
	left    bool
	right   bool
}

type Option func(*Camera)

func WithSpeeds(move, sprint float32) Option {
	return func(c *Camera) {
		c.moveSpeed = move
		c.sprintSpeed = sprint
	}
}

func WithSensitivity(s float32) Option {
	return func(c *Camera) { c.sensitivity = s }
}

// WithFOV sets the vertical field of view in degrees. It is also the widest
// angle Zoom can return to. Angles below MinZoom are raised to it.
func WithFOV(degrees float32) Option {
	return func(c *Camera) {
		c.fov = degrees
		c.maxFOV = degrees
	}
}

// WithSprintBackwards applies the sprint speed when moving backwards too.
func WithSprintBackwards(enabled bool) Option {
	return func(c *Camera) { c.sprintBackwards = enabled }
}

func New(pos, front, up mgl32.Vec3, opts ...Option) *Camera {
	c := &Camera{
		moveSpeed:   DefaultMoveSpeed,
		sprintSpeed: DefaultSprintSpeed,
		sensitivity: DefaultSensitivity,
		fov:         DefaultFOV,
		maxFOV:      DefaultFOV,
		pos:         pos,
		front:       front,
		up:          up,
		yaw:         DefaultYaw,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.maxFOV = math32.Max(MinZoom, c.maxFOV)
	c.fov = math32.Max(MinZoom, math32.Min(c.maxFOV, c.fov))
	return c
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.pos, c.pos.Add(c.front), c.up)
}

// Projection builds a perspective matrix for a viewport of the given
// width/height ratio.
func (c *Camera) Projection(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, near, far)
}

func (c *Camera) SetSprint(sprint bool)   { c.sprint = sprint }
func (c *Camera) SetForward(forward bool) { c.forward = forward }
func (c *Camera) SetBack(back bool)       { c.back = back }
func (c *Camera) SetLeft(left bool)       { c.left = left }
func (c *Camera) SetRight(right bool)     { c.right = right }

// SetYaw adds a horizontal mouse delta.
func (c *Camera) SetYaw(dx float32) {
	c.yaw += dx * c.sensitivity
}

// SetPitch adds a vertical mouse delta. Screen y grows downwards, so the
// delta is subtracted. Pitch stays within [-MaxPitch, MaxPitch].
func (c *Camera) SetPitch(dy float32) {
	c.pitch = ClampPitch(c.pitch - dy*c.sensitivity)
}

// Zoom narrows the field of view for positive deltas.
func (c *Camera) Zoom(delta float32) {
	c.fov = math32.Max(MinZoom, math32.Min(c.maxFOV, c.fov-delta))
}

func ClampPitch(p float32) float32 {
	return math32.Max(-MaxPitch, math32.Min(MaxPitch, p))
}

func (c *Camera) UpdatePosition(dt float32) {
	switch {
	case c.forward && !c.back:
		c.pos = c.pos.Add(c.front.Mul(c.speed(c.sprint) * dt))
	case c.back && !c.forward:
		c.pos = c.pos.Sub(c.front.Mul(c.speed(c.sprint && c.sprintBackwards) * dt))
	}

	if c.left == c.right {
		return
	}
	right := c.front.Cross(c.up)
	if right.Len() == 0 {
		return
	}
	step := right.Normalize().Mul(c.moveSpeed * dt)
	if c.left {
		c.pos = c.pos.Sub(step)
	} else {
		c.pos = c.pos.Add(step)
	}
}

func (c *Camera) speed(sprint bool) float32 {
	if sprint {
		return c.sprintSpeed
	}
	return c.moveSpeed
}

// UpdateDirection recomputes the front vector from yaw and pitch.
func (c *Camera) UpdateDirection() {
	c.front = Direction(c.yaw, c.pitch)
}

// Direction converts yaw and pitch in degrees to a unit look vector.
func Direction(yaw, pitch float32) mgl32.Vec3 {
	y, p := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	d := mgl32.Vec3{
		math32.Cos(y) * math32.Cos(p),
		math32.Sin(p),
		math32.Sin(y) * math32.Cos(p),
	}
	return d.Normalize()
}

func (c *Camera) Position() mgl32.Vec3 { return c.pos }
func (c *Camera) Front() mgl32.Vec3    { return c.front }
func (c *Camera) Up() mgl32.Vec3       { return c.up }
func (c *Camera) Yaw() float32         { return c.yaw }
func (c *Camera) Pitch() float32       { return c.pitch }
func (c *Camera) FOV() float32         { return c.fov }
func (c *Camera) MoveSpeed() float32   { return c.moveSpeed }
func (c *Camera) SprintSpeed() float32 { return c.sprintSpeed }
