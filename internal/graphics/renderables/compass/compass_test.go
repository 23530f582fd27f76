package compass

import (
	"math"
	"testing"
)

func TestHeading(t *testing.T) {
	tests := []struct {
		yaw  float32
		want string
	}{
		{-90, "N"},
		{0, "E"},
		{90, "S"},
		{180, "W"},
		{-180, "W"},
		{-130, "N"},
		{-140, "W"},
		{-50, "N"},
		{-40, "E"},
		{270, "N"},
		{-90 + 3600, "N"},
		{-90 - 3600, "N"},
		{-3600, "E"},
	}
	for _, tt := range tests {
		if got := Heading(tt.yaw); got != tt.want {
			t.Errorf("Heading(%v) = %s, want %s", tt.yaw, got, tt.want)
		}
	}
}

func TestArrowRotation(t *testing.T) {
	if r := ArrowRotation(-90); r != 0 {
		t.Errorf("arrow should point up at the default yaw, got %v", r)
	}
	if r := ArrowRotation(0); math.Abs(float64(r)+math.Pi/2) > 1e-6 {
		t.Errorf("turning right should rotate clockwise, got %v", r)
	}
}

func TestGlyphs(t *testing.T) {
	for _, h := range headings {
		glyph, ok := Letters[h]
		if !ok {
			t.Fatalf("missing glyph %s", h)
		}
		if len(glyph) == 0 || len(glyph)%4 != 0 {
			t.Errorf("glyph %s is not whole line segments: %d floats", h, len(glyph))
		}
	}
	if len(Arrow) != 14 {
		t.Errorf("arrow should have 7 vertices, got %d floats", len(Arrow))
	}
}
