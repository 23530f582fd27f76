// Package lit draws the demo scene with a single point light: a rotating
// cube, a stationary cube and a textured floor plane.
package lit

import (
	"fmt"
	"image/color"

	"flycam/assets"
	"flycam/internal/graphics"
	"flycam/internal/graphics/renderer"
	"flycam/internal/scene"

	"go.uber.org/zap"
)

const textureUnit = 0

// Options selects shader and texture sources. Empty shader paths use the
// embedded shaders.
type Options struct {
	VertexShader   string
	FragmentShader string
	FloorTexture   string
}

// Lit is the scene renderable
type Lit struct {
	opts Options
	log  *zap.Logger

	shader       *graphics.Shader
	cube         *graphics.Mesh
	plane        *graphics.Mesh
	floorTexture uint32
}

func NewLit(opts Options, log *zap.Logger) *Lit {
	return &Lit{opts: opts, log: log}
}

// Init compiles the program, uploads geometry and loads the floor texture
func (l *Lit) Init() error {
	shader, err := l.compile()
	if err != nil {
		return err
	}
	l.shader = shader

	cubeAttrs, cubeStride := graphics.Layout(3, 3)
	l.cube = graphics.NewMesh(scene.CubeVertices(), scene.CubeIndices(), cubeStride, cubeAttrs)

	planeAttrs, planeStride := graphics.Layout(3, 3, 2)
	l.plane = graphics.NewMesh(scene.PlaneVertices(), scene.PlaneIndices(), planeStride, planeAttrs)

	img, err := graphics.LoadImage(l.opts.FloorTexture)
	if err != nil {
		l.log.Warn("floor texture unavailable, using checkerboard", zap.Error(err))
		img = graphics.CheckerImage(256, 8, color.RGBA{180, 180, 180, 255}, color.RGBA{90, 90, 90, 255})
	}
	l.floorTexture = graphics.UploadTexture(img)

	return nil
}

// Reload recompiles the shaders. On failure the running program is kept.
func (l *Lit) Reload() error {
	shader, err := l.compile()
	if err != nil {
		return err
	}
	l.shader.Delete()
	l.shader = shader
	l.log.Info("shaders reloaded")
	return nil
}

func (l *Lit) compile() (*graphics.Shader, error) {
	if l.opts.VertexShader != "" && l.opts.FragmentShader != "" {
		s, err := graphics.NewShader(l.opts.VertexShader, l.opts.FragmentShader)
		if err != nil {
			return nil, fmt.Errorf("lit: %w", err)
		}
		return s, nil
	}

	vs, err := assets.Source(assets.SceneVertexShader)
	if err != nil {
		return nil, fmt.Errorf("lit: %w", err)
	}
	fs, err := assets.Source(assets.SceneFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("lit: %w", err)
	}
	s, err := graphics.NewShaderFromSource(vs, fs)
	if err != nil {
		return nil, fmt.Errorf("lit: %w", err)
	}
	return s, nil
}

func (l *Lit) Render(ctx renderer.RenderContext) {
	s := l.shader
	st := ctx.Scene

	s.Use()
	s.SetMat4("view", ctx.View)
	s.SetMat4("projection", ctx.Proj)

	s.SetVec3("lightPos", st.LightPosition)
	s.SetVec3("lightColor", st.LightColor)
	s.SetVec3("viewPos", ctx.Camera.Position())

	s.SetBool("useTexture", false)
	s.SetMat4("model", st.RotatingCubeModel())
	s.SetVec3("objectColor", st.ObjectColor)
	l.cube.Draw()

	s.SetMat4("model", st.StationaryCubeModel())
	s.SetVec3("objectColor", st.StationaryColor)
	l.cube.Draw()

	s.SetBool("useTexture", true)
	s.SetInt("texture1", textureUnit)
	graphics.BindTexture(l.floorTexture, textureUnit)
	s.SetMat4("model", st.PlaneModel())
	s.SetVec3("objectColor", st.PlaneColor)
	l.plane.Draw()
}

func (l *Lit) Dispose() {
	if l.plane != nil {
		l.plane.Delete()
	}
	if l.cube != nil {
		l.cube.Delete()
	}
	graphics.DeleteTexture(l.floorTexture)
	l.floorTexture = 0
	if l.shader != nil {
		l.shader.Delete()
	}
}
