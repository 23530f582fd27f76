package renderer

import (
	"fmt"

	"flycam/internal/camera"
	"flycam/internal/graphics"
	"flycam/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	projection  *graphics.Projection
	clearColor  mgl32.Vec3
}

// NewRenderer configures global GL state and initializes the renderables.
// It must be called with a current GL context.
func NewRenderer(projection *graphics.Projection, clearColor mgl32.Vec3, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.MULTISAMPLE)

	r := &Renderer{
		renderables: rs,
		projection:  projection,
		clearColor:  clearColor,
	}

	for i, rd := range rs {
		if err := rd.Init(); err != nil {
			// dispose what was already initialized
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("renderer: init renderable %d: %w", i, err)
		}
	}

	return r, nil
}

// Frame builds the per-frame context. The view matrix is read once, after
// all input for the tick has been applied.
func (r *Renderer) Frame(cam *camera.Camera, st *scene.State, dt float64) RenderContext {
	return RenderContext{
		Camera: cam,
		Scene:  st,
		DT:     dt,
		View:   cam.ViewMatrix(),
		Proj:   r.projection.Matrix(cam.Zoom()),

		AspectRatio: r.projection.AspectRatio,
	}
}

// Render clears the frame and draws every renderable
func (r *Renderer) Render(cam *camera.Camera, st *scene.State, dt float64) {
	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := r.Frame(cam, st, dt)
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport updates the projection aspect ratio
func (r *Renderer) UpdateViewport(width, height int) {
	r.projection.SetViewport(width, height)
}
