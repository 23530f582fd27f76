package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a movement direction relative to the camera orientation
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

const (
	DefaultYaw         float32 = -90.0
	DefaultPitch       float32 = 0.0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45.0

	MaxPitch float32 = 89.0
	MinZoom  float32 = 1.0
	MaxZoom  float32 = 45.0
	MinSpeed float32 = 0.5
	MaxSpeed float32 = 10.0

	// speed change per scroll notch
	speedScrollStep float32 = 0.5

	// below this |front x worldUp| the right vector is undefined
	degenerateEpsilon = 1e-6
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera is a first-person fly camera driven by Euler angles.
// It is not safe for concurrent use; the render loop owns it.
type Camera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	yaw   float32
	pitch float32
	zoom  float32

	MovementSpeed    float32
	MouseSensitivity float32
}

// New creates a camera at position. The orientation always starts at
// yaw -90 and pitch 0, so the basis is recomputed immediately and the
// front and up arguments only seed the fields until then.
func New(position, front, up mgl32.Vec3) *Camera {
	c := &Camera{
		position:         position,
		front:            front,
		up:               up,
		yaw:              DefaultYaw,
		pitch:            DefaultPitch,
		zoom:             DefaultZoom,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
	}
	c.updateVectors()
	return c
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Front() mgl32.Vec3    { return c.front }
func (c *Camera) Right() mgl32.Vec3    { return c.right }
func (c *Camera) Up() mgl32.Vec3       { return c.up }
func (c *Camera) Yaw() float32         { return c.yaw }
func (c *Camera) Pitch() float32       { return c.pitch }
func (c *Camera) Zoom() float32        { return c.zoom }

// ViewMatrix returns the look-at transform for the current position and basis
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProcessKeyboard moves the camera along its front or right vector.
// deltaTime is in seconds.
func (c *Camera) ProcessKeyboard(dir Direction, deltaTime float32) {
	velocity := c.MovementSpeed * deltaTime

	switch dir {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	}
}

// ProcessMouseMovement applies a raw mouse delta to yaw and pitch.
// yOffset must already be inverted so that moving the mouse up is positive.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool) {
	xOffset *= c.MouseSensitivity
	yOffset *= c.MouseSensitivity

	c.yaw += xOffset
	c.pitch += yOffset

	// Keep the screen from flipping at the poles
	if constrainPitch {
		c.pitch = clamp(c.pitch, -MaxPitch, MaxPitch)
	}

	c.updateVectors()
}

// ProcessMouseScroll narrows or widens the field of view
func (c *Camera) ProcessMouseScroll(yOffset float32) {
	c.zoom = clamp(c.zoom-yOffset, MinZoom, MaxZoom)
}

// AdjustMovementSpeed changes the movement speed by half a unit per scroll notch
func (c *Camera) AdjustMovementSpeed(yOffset float32) {
	c.MovementSpeed = clamp(c.MovementSpeed+yOffset*speedScrollStep, MinSpeed, MaxSpeed)
}

// SetOrientation sets yaw and pitch directly without clamping
func (c *Camera) SetOrientation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = pitch
	c.updateVectors()
}

func (c *Camera) updateVectors() {
	y := float64(mgl32.DegToRad(c.yaw))
	p := float64(mgl32.DegToRad(c.pitch))

	front := mgl32.Vec3{
		float32(math.Cos(y) * math.Cos(p)),
		float32(math.Sin(p)),
		float32(math.Sin(y) * math.Cos(p)),
	}
	c.front = front.Normalize()

	// Looking straight up or down leaves right undefined; keep the last one.
	// The previous right is horizontal, so it stays orthogonal to front and
	// up can always be rebuilt from it.
	if right := c.front.Cross(worldUp); right.Len() >= degenerateEpsilon {
		c.right = right.Normalize()
	}
	c.up = c.right.Cross(c.front).Normalize()
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
