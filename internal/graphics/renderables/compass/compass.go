// Package compass draws a heading arrow and the nearest cardinal letter at
// the bottom of the screen. North is -Z, the direction the camera faces at
// the default yaw.
package compass

import (
	"fmt"
	"math"

	"flycam/assets"
	"flycam/internal/graphics"
	"flycam/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	ArrowOffset  = mgl32.Vec2{0, -0.85}
	LetterOffset = mgl32.Vec2{0, -0.75}
	Color        = mgl32.Vec3{1, 0, 0}
)

// Arrow pointing up: body as a line loop of 4, head as a line loop of 3
var Arrow = []float32{
	-0.01, -0.08,
	0.01, -0.08,
	0.01, -0.02,
	-0.01, -0.02,

	-0.03, -0.02,
	0.03, -0.02,
	0.0, 0.02,
}

// Letters holds line-segment glyphs for each heading
var Letters = map[string][]float32{
	"N": {
		-0.02, -0.02, -0.02, 0.02,
		-0.02, 0.02, 0.02, -0.02,
		0.02, -0.02, 0.02, 0.02,
	},
	"E": {
		-0.02, -0.02, -0.02, 0.02,
		-0.02, 0.02, 0.02, 0.02,
		-0.02, 0.0, 0.01, 0.0,
		-0.02, -0.02, 0.02, -0.02,
	},
	"S": {
		0.02, 0.02, -0.02, 0.02,
		-0.02, 0.02, -0.02, 0.0,
		-0.02, 0.0, 0.02, 0.0,
		0.02, 0.0, 0.02, -0.02,
		0.02, -0.02, -0.02, -0.02,
	},
	"W": {
		-0.02, 0.02, -0.02, -0.02,
		-0.02, -0.02, -0.01, 0.0,
		-0.01, 0.0, 0.01, -0.02,
		0.01, -0.02, 0.02, 0.0,
		0.02, 0.0, 0.02, 0.02,
	},
}

var headings = []string{"N", "E", "S", "W"}

// Heading maps a yaw in degrees to the nearest cardinal direction. Yaw -90
// faces -Z (north) and yaw grows clockwise seen from above.
func Heading(yaw float32) string {
	deg := math.Mod(float64(yaw)+90, 360)
	if deg < 0 {
		deg += 360
	}
	return headings[int((deg+45)/90)%4]
}

// ArrowRotation turns the arrow clockwise as the camera turns right
func ArrowRotation(yaw float32) float32 {
	return -mgl32.DegToRad(yaw + 90)
}

type span struct{ first, count int32 }

type Compass struct {
	shader  *graphics.Shader
	vao     uint32
	vbo     uint32
	letters map[string]span
}

func NewCompass() *Compass {
	return &Compass{}
}

func (c *Compass) Init() error {
	vs, err := assets.Source(assets.CompassVertexShader)
	if err != nil {
		return fmt.Errorf("compass: %w", err)
	}
	fs, err := assets.Source(assets.CompassFragmentShader)
	if err != nil {
		return fmt.Errorf("compass: %w", err)
	}
	c.shader, err = graphics.NewShaderFromSource(vs, fs)
	if err != nil {
		return fmt.Errorf("compass: %w", err)
	}

	// arrow first, then every glyph, in one buffer
	vertices := append([]float32(nil), Arrow...)
	c.letters = make(map[string]span, len(headings))
	for _, h := range headings {
		glyph := Letters[h]
		c.letters[h] = span{first: int32(len(vertices) / 2), count: int32(len(glyph) / 2)}
		vertices = append(vertices, glyph...)
	}

	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)

	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindVertexArray(0)

	return nil
}

func (c *Compass) Render(ctx renderer.RenderContext) {
	aspect := ctx.AspectRatio
	if aspect <= 0 {
		aspect = 1
	}
	yaw := ctx.Camera.Yaw()

	gl.Disable(gl.DEPTH_TEST)
	c.shader.Use()
	c.shader.SetFloat("aspectRatio", aspect)
	c.shader.SetVec3("color", Color)
	gl.BindVertexArray(c.vao)

	c.shader.SetVec2("offset", ArrowOffset)
	c.shader.SetFloat("rotation", ArrowRotation(yaw))
	gl.DrawArrays(gl.LINE_LOOP, 0, 4)
	gl.DrawArrays(gl.LINE_LOOP, 4, 3)

	letter := c.letters[Heading(yaw)]
	c.shader.SetVec2("offset", LetterOffset)
	c.shader.SetFloat("rotation", 0)
	gl.DrawArrays(gl.LINES, letter.first, letter.count)

	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

func (c *Compass) Dispose() {
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
