package renderer

import (
	"flycam/internal/camera"
	"flycam/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame state for all renderables
type RenderContext struct {
	Camera *camera.Camera
	Scene  *scene.State
	DT     float64
	View   mgl32.Mat4
	Proj   mgl32.Mat4

	// framebuffer width over height
	AspectRatio float32
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
}
