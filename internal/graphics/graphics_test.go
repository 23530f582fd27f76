package graphics

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/image/bmp"
)

func sampleImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(3, 1, color.NRGBA{B: 255, A: 255})
	return img
}

func TestDecodeImageFormats(t *testing.T) {
	tests := []struct {
		name   string
		encode func(*bytes.Buffer, image.Image) error
	}{
		{"png", func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) }},
		{"bmp", func(b *bytes.Buffer, img image.Image) error { return bmp.Encode(b, img) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.encode(&buf, sampleImage()); err != nil {
				t.Fatal(err)
			}

			rgba, err := DecodeImage(&buf)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if rgba.Rect != image.Rect(0, 0, 4, 2) {
				t.Errorf("unexpected bounds %v", rgba.Rect)
			}
			if c := rgba.RGBAAt(0, 0); c.R != 255 || c.B != 0 {
				t.Errorf("unexpected pixel (0,0): %v", c)
			}
			if c := rgba.RGBAAt(3, 1); c.B != 255 || c.R != 0 {
				t.Errorf("unexpected pixel (3,1): %v", c)
			}
		})
	}
}

func TestDecodeImageGarbage(t *testing.T) {
	if _, err := DecodeImage(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Errorf("expected error for garbage input")
	}
}

func TestLoadImage(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Errorf("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "floor.png")
	var buf bytes.Buffer
	if err := png.Encode(&buf, sampleImage()); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Rect.Dx() != 4 || img.Rect.Dy() != 2 {
		t.Errorf("unexpected size %v", img.Rect)
	}
}

func TestCheckerImage(t *testing.T) {
	a := color.RGBA{200, 200, 200, 255}
	b := color.RGBA{50, 50, 50, 255}
	img := CheckerImage(64, 8, a, b)

	if img.Rect.Dx() != 64 || img.Rect.Dy() != 64 {
		t.Fatalf("unexpected size %v", img.Rect)
	}
	if img.RGBAAt(0, 0) != a || img.RGBAAt(8, 0) != b || img.RGBAAt(8, 8) != a || img.RGBAAt(63, 0) != b {
		t.Errorf("unexpected checker pattern")
	}

	// degenerate cell counts still produce a filled image
	one := CheckerImage(4, 0, a, b)
	if one.RGBAAt(3, 3) != a {
		t.Errorf("single cell should be uniform")
	}
}

func TestLayout(t *testing.T) {
	attrs, stride := Layout(3, 3, 2)
	if stride != 8 {
		t.Errorf("expected stride 8, got %d", stride)
	}
	want := []Attribute{{0, 3, 0}, {1, 3, 3}, {2, 2, 6}}
	for i := range want {
		if attrs[i] != want[i] {
			t.Errorf("attribute %d: expected %+v, got %+v", i, want[i], attrs[i])
		}
	}
}

func TestProjection(t *testing.T) {
	p := NewProjection(800, 600, 0.1, 100)
	if math.Abs(float64(p.AspectRatio-800.0/600.0)) > 1e-6 {
		t.Errorf("unexpected aspect %v", p.AspectRatio)
	}

	p.SetViewport(0, 0)
	if math.Abs(float64(p.AspectRatio-800.0/600.0)) > 1e-6 {
		t.Errorf("minimized window changed aspect to %v", p.AspectRatio)
	}

	want := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100)
	if !p.Matrix(45).ApproxEqual(want) {
		t.Errorf("unexpected projection matrix")
	}

	// narrower field of view magnifies
	if p.Matrix(10)[5] <= p.Matrix(45)[5] {
		t.Errorf("smaller fov should have larger y scale")
	}
}

func TestShaderWatcher(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "scene.vert")
	other := filepath.Join(dir, "notes.txt")
	for _, p := range []string{vert, other} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	core, logs := observer.New(zap.DebugLevel)
	w, err := NewShaderWatcher(zap.New(core), vert)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte("y"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	if w.Changed() {
		t.Errorf("unrelated file should not trigger a reload")
	}

	if err := os.WriteFile(vert, []byte("void main() {}"), 0o644); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(3 * time.Second)
	for !w.Changed() {
		if time.Now().After(deadline) {
			t.Fatal("no change reported for watched shader")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if w.Changed() {
		t.Errorf("Changed should reset after being read")
	}

	entries := logs.FilterMessage("shader changed").All()
	if len(entries) == 0 {
		t.Fatal("expected a shader changed log entry")
	}
	if f, ok := entries[0].ContextMap()["file"].(string); !ok || filepath.Base(f) != "scene.vert" {
		t.Errorf("unexpected file field: %v", entries[0].ContextMap())
	}

	if err := w.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
	// second close is a no-op
	_ = w.Close()
}

func TestShaderWatcherReportsLastWriteOfBurst(t *testing.T) {
	dir := t.TempDir()
	frag := filepath.Join(dir, "scene.frag")
	if err := os.WriteFile(frag, []byte("void main() {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewShaderWatcher(zap.NewNop(), frag)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	// truncate-then-write save
	if err := os.WriteFile(frag, []byte("partial"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	if w.Changed() {
		t.Errorf("change reported before the save settled")
	}
	if err := os.WriteFile(frag, []byte("void main() { }"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for !w.Changed() {
		if time.Now().After(deadline) {
			t.Fatal("final write was never reported")
		}
		time.Sleep(10 * time.Millisecond)
	}

	// one reload per burst
	time.Sleep(300 * time.Millisecond)
	if w.Changed() {
		t.Errorf("burst reported more than once")
	}
}
