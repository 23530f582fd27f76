package crosshair

import (
	"fmt"

	"flycam/assets"
	"flycam/internal/graphics"
	"flycam/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertices are two line segments in normalized device coordinates
var Vertices = []float32{
	-0.02, 0.0,
	0.02, 0.0,
	0.0, -0.02,
	0.0, 0.02,
}

var Color = mgl32.Vec3{1, 1, 1}

// Crosshair marks the screen centre, where the camera is looking
type Crosshair struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

func NewCrosshair() *Crosshair {
	return &Crosshair{}
}

func (c *Crosshair) Init() error {
	vs, err := assets.Source(assets.CrosshairVertexShader)
	if err != nil {
		return fmt.Errorf("crosshair: %w", err)
	}
	fs, err := assets.Source(assets.CrosshairFragmentShader)
	if err != nil {
		return fmt.Errorf("crosshair: %w", err)
	}
	c.shader, err = graphics.NewShaderFromSource(vs, fs)
	if err != nil {
		return fmt.Errorf("crosshair: %w", err)
	}

	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)

	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(Vertices)*4, gl.Ptr(Vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindVertexArray(0)

	return nil
}

// Render draws on top of the scene
func (c *Crosshair) Render(ctx renderer.RenderContext) {
	aspect := ctx.AspectRatio
	if aspect <= 0 {
		aspect = 1
	}

	gl.Disable(gl.DEPTH_TEST)
	c.shader.Use()
	c.shader.SetFloat("aspectRatio", aspect)
	c.shader.SetVec3("color", Color)

	gl.BindVertexArray(c.vao)
	gl.DrawArrays(gl.LINES, 0, int32(len(Vertices)/2))
	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

func (c *Crosshair) Dispose() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
		c.vbo = 0
	}
	if c.shader != nil {
		c.shader.Delete()
		c.shader = nil
	}
}
