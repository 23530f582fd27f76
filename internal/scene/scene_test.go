package scene

import (
	"math"
	"testing"

	"flycam/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestGeometryIndicesInRange(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		indices  []uint32
		stride   int
		count    int
	}{
		{"cube", CubeVertices(), CubeIndices(), CubeStride, 36},
		{"plane", PlaneVertices(), PlaneIndices(), PlaneStride, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.vertices)%tt.stride != 0 {
				t.Fatalf("vertex data not a multiple of stride %d", tt.stride)
			}
			n := uint32(len(tt.vertices) / tt.stride)
			if len(tt.indices) != tt.count {
				t.Errorf("expected %d indices, got %d", tt.count, len(tt.indices))
			}
			for i, idx := range tt.indices {
				if idx >= n {
					t.Errorf("index %d = %d out of range (%d vertices)", i, idx, n)
				}
			}
		})
	}
}

func TestCubeNormalsPointOutward(t *testing.T) {
	v := CubeVertices()
	for i := 0; i < len(v); i += CubeStride {
		pos := mgl32.Vec3{v[i], v[i+1], v[i+2]}
		n := mgl32.Vec3{v[i+3], v[i+4], v[i+5]}
		if !near(n.Len(), 1) {
			t.Errorf("vertex %d: normal %v not unit", i/CubeStride, n)
		}
		if pos.Dot(n) <= 0 {
			t.Errorf("vertex %d: normal %v points inward from %v", i/CubeStride, n, pos)
		}
	}
}

func TestCubeWindingMatchesNormals(t *testing.T) {
	v := CubeVertices()
	idx := CubeIndices()
	at := func(i uint32) mgl32.Vec3 {
		o := int(i) * CubeStride
		return mgl32.Vec3{v[o], v[o+1], v[o+2]}
	}
	normal := func(i uint32) mgl32.Vec3 {
		o := int(i) * CubeStride
		return mgl32.Vec3{v[o+3], v[o+4], v[o+5]}
	}

	for tri := 0; tri < len(idx); tri += 3 {
		e := at(idx[tri+1]).Sub(at(idx[tri])).Cross(at(idx[tri+2]).Sub(at(idx[tri])))
		if e.Dot(normal(idx[tri])) <= 0 {
			t.Errorf("triangle %d is not counter-clockwise from outside", tri/3)
		}
	}
}

func TestToggleRotation(t *testing.T) {
	m := input.NewManager()
	s := New()

	m.HandleKeyEvent(glfw.KeyR, glfw.Press)
	s.Update(m, 0.5)
	if !s.Rotating || !near(s.RotationAngle, 0.5) {
		t.Fatalf("expected rotating at 0.5 rad, got %v %v", s.Rotating, s.RotationAngle)
	}
	m.PostUpdate()

	// still held: no second toggle
	s.Update(m, 0.5)
	if !s.Rotating || !near(s.RotationAngle, 1.0) {
		t.Errorf("holding R should not toggle again: %v %v", s.Rotating, s.RotationAngle)
	}
	m.PostUpdate()

	m.HandleKeyEvent(glfw.KeyR, glfw.Release)
	m.HandleKeyEvent(glfw.KeyR, glfw.Press)
	s.Update(m, 0.5)
	if s.Rotating || !near(s.RotationAngle, 1.0) {
		t.Errorf("second press should stop rotation: %v %v", s.Rotating, s.RotationAngle)
	}
}

func TestManualRotationAndLight(t *testing.T) {
	m := input.NewManager()
	s := New()
	start := s.LightPosition

	m.HandleKeyEvent(glfw.KeyLeft, glfw.Press)
	m.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	m.HandleKeyEvent(glfw.KeyPeriod, glfw.Press)
	s.Update(m, 2)

	if !near(s.RotationAngle, -2) {
		t.Errorf("expected angle -2, got %v", s.RotationAngle)
	}
	want := start.Add(mgl32.Vec3{2, 2, 0})
	if !near(s.LightPosition[0], want[0]) || !near(s.LightPosition[1], want[1]) || s.LightPosition[2] != want[2] {
		t.Errorf("expected light %v, got %v", want, s.LightPosition)
	}
}

func TestColorPresets(t *testing.T) {
	m := input.NewManager()
	s := New()

	keys := []glfw.Key{glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4}
	for i, k := range keys {
		m.HandleKeyEvent(k, glfw.Press)
		s.Update(m, 0.016)
		m.PostUpdate()
		m.HandleKeyEvent(k, glfw.Release)
		if s.ObjectColor != ColorPresets[i] {
			t.Errorf("key %d: expected %v, got %v", i+1, ColorPresets[i], s.ObjectColor)
		}
	}
}

func TestModelMatrices(t *testing.T) {
	s := New()
	s.RotationAngle = float32(math.Pi / 2)

	// +X rotates to -Z about Y, then lifts by one
	p := s.RotatingCubeModel().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if !near(p[0], 0) || !near(p[1], 1) || !near(p[2], -1) {
		t.Errorf("unexpected rotating cube transform: %v", p)
	}

	q := s.PlaneModel().Mul4x1(mgl32.Vec4{0.5, 0.25, 0.5, 1})
	if !near(q[0], 2.5) || !near(q[1], -0.75) || !near(q[2], 2.5) {
		t.Errorf("unexpected plane transform: %v", q)
	}

	if s.StationaryCubeModel() != mgl32.Ident4() {
		t.Errorf("stationary cube should be identity")
	}

	s.LightPosition = mgl32.Vec3{1, 2, 3}
	c := s.LightMarkerModel().Mul4x1(mgl32.Vec4{0.5, 0.5, 0.5, 1})
	if !near(c[0], 1.1) || !near(c[1], 2.1) || !near(c[2], 3.1) {
		t.Errorf("light marker should follow the light: %v", c)
	}
}
