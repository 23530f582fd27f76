package scene

import (
	"flycam/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

// Input is the read side of input.Manager used by the scene
type Input interface {
	IsActive(action input.Action) bool
	JustPressed(action input.Action) bool
}

const (
	// radians per second
	RotationSpeed = 1.0
	// world units per second
	LightSpeed = 1.0
)

// ColorPresets are selected by the number keys 1-4
var ColorPresets = [4]mgl32.Vec3{
	{0.8, 0.3, 0.2},
	{0.2, 0.6, 0.8},
	{0.3, 0.8, 0.3},
	{0.9, 0.9, 0.3},
}

// State is everything in the scene besides the camera
type State struct {
	RotationAngle float32
	Rotating      bool

	LightPosition mgl32.Vec3
	LightColor    mgl32.Vec3

	ObjectColor     mgl32.Vec3
	StationaryColor mgl32.Vec3
	PlaneColor      mgl32.Vec3
}

func New() *State {
	return &State{
		LightPosition:   mgl32.Vec3{1.2, 1.0, 2.0},
		LightColor:      mgl32.Vec3{1, 1, 1},
		ObjectColor:     ColorPresets[0],
		StationaryColor: mgl32.Vec3{0.2, 0.5, 0.8},
		PlaneColor:      mgl32.Vec3{0.3, 0.7, 0.3},
	}
}

// Update applies one tick of input. dt is in seconds.
func (s *State) Update(in Input, dt float32) {
	if in.JustPressed(input.ActionToggleRotation) {
		s.Rotating = !s.Rotating
	}

	if in.IsActive(input.ActionRotateLeft) {
		s.RotationAngle -= RotationSpeed * dt
	}
	if in.IsActive(input.ActionRotateRight) {
		s.RotationAngle += RotationSpeed * dt
	}
	if s.Rotating {
		s.RotationAngle += RotationSpeed * dt
	}

	if in.IsActive(input.ActionLightUp) {
		s.LightPosition[1] += LightSpeed * dt
	}
	if in.IsActive(input.ActionLightDown) {
		s.LightPosition[1] -= LightSpeed * dt
	}
	if in.IsActive(input.ActionLightLeft) {
		s.LightPosition[0] -= LightSpeed * dt
	}
	if in.IsActive(input.ActionLightRight) {
		s.LightPosition[0] += LightSpeed * dt
	}

	for i, action := range []input.Action{input.ActionColor1, input.ActionColor2, input.ActionColor3, input.ActionColor4} {
		if in.JustPressed(action) {
			s.ObjectColor = ColorPresets[i]
		}
	}
}

// RotatingCubeModel spins the cube about Y, then lifts it one unit
func (s *State) RotatingCubeModel() mgl32.Mat4 {
	return mgl32.Translate3D(0, 1, 0).Mul4(mgl32.HomogRotate3DY(s.RotationAngle))
}

func (s *State) StationaryCubeModel() mgl32.Mat4 {
	return mgl32.Ident4()
}

// PlaneModel scales the unit plane into a floor below the cubes
func (s *State) PlaneModel() mgl32.Mat4 {
	return mgl32.Translate3D(0, -2, 0).Mul4(mgl32.Scale3D(5, 5, 5))
}

// LightMarkerSize is the edge length of the box drawn around the light
const LightMarkerSize = 0.2

func (s *State) LightMarkerModel() mgl32.Mat4 {
	p := s.LightPosition
	return mgl32.Translate3D(p[0], p[1], p[2]).Mul4(mgl32.Scale3D(LightMarkerSize, LightMarkerSize, LightMarkerSize))
}
