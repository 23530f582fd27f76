package wireframe

import (
	"fmt"

	"flycam/assets"
	"flycam/internal/graphics"
	"flycam/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CubeEdges is a unit cube centred on the origin as 12 line segments
var CubeEdges = []float32{
	// front
	-0.5, -0.5, 0.5, 0.5, -0.5, 0.5,
	0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, 0.5,
	-0.5, 0.5, 0.5, -0.5, -0.5, 0.5,

	// back
	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5,
	0.5, -0.5, -0.5, 0.5, 0.5, -0.5,
	0.5, 0.5, -0.5, -0.5, 0.5, -0.5,
	-0.5, 0.5, -0.5, -0.5, -0.5, -0.5,

	// connecting
	-0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
	0.5, -0.5, 0.5, 0.5, -0.5, -0.5,
	0.5, 0.5, 0.5, 0.5, 0.5, -0.5,
	-0.5, 0.5, 0.5, -0.5, 0.5, -0.5,
}

// LightMarker outlines the point light in its own colour so it can be
// found while moving it around
type LightMarker struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

func NewLightMarker() *LightMarker {
	return &LightMarker{}
}

func (w *LightMarker) Init() error {
	vs, err := assets.Source(assets.WireframeVertexShader)
	if err != nil {
		return fmt.Errorf("wireframe: %w", err)
	}
	fs, err := assets.Source(assets.WireframeFragmentShader)
	if err != nil {
		return fmt.Errorf("wireframe: %w", err)
	}
	w.shader, err = graphics.NewShaderFromSource(vs, fs)
	if err != nil {
		return fmt.Errorf("wireframe: %w", err)
	}

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(CubeEdges)*4, gl.Ptr(CubeEdges), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)

	return nil
}

func (w *LightMarker) Render(ctx renderer.RenderContext) {
	w.shader.Use()
	w.shader.SetMat4("projection", ctx.Proj)
	w.shader.SetMat4("view", ctx.View)
	w.shader.SetMat4("model", ctx.Scene.LightMarkerModel())
	w.shader.SetVec3("color", ctx.Scene.LightColor)

	gl.BindVertexArray(w.vao)
	gl.DrawArrays(gl.LINES, 0, int32(len(CubeEdges)/3))
	gl.BindVertexArray(0)
}

func (w *LightMarker) Dispose() {
	if w.vao != 0 {
		gl.DeleteVertexArrays(1, &w.vao)
		w.vao = 0
	}
	if w.vbo != 0 {
		gl.DeleteBuffers(1, &w.vbo)
		w.vbo = 0
	}
	if w.shader != nil {
		w.shader.Delete()
		w.shader = nil
	}
}
