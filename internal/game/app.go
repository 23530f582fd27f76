package game

import (
	"fmt"
	"time"

	"flycam/internal/camera"
	"flycam/internal/config"
	"flycam/internal/graphics"
	"flycam/internal/graphics/renderables/compass"
	"flycam/internal/graphics/renderables/crosshair"
	"flycam/internal/graphics/renderables/lit"
	"flycam/internal/graphics/renderables/wireframe"
	"flycam/internal/graphics/renderer"
	"flycam/internal/input"
	"flycam/internal/profiling"
	"flycam/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// slower ticks are logged with their top timings
const slowFrame = 50 * time.Millisecond

// App owns the window and everything driven by the frame loop
type App struct {
	window *glfw.Window
	log    *zap.Logger

	input    *input.Manager
	camera   *camera.Camera
	scene    *scene.State
	renderer *renderer.Renderer
	lit      *lit.Lit
	watcher  *graphics.ShaderWatcher

	fpsLimiter *FPSLimiter
	prof       *profiling.Profiler
	lastTime   time.Time
}

// NewApp builds the scene on window's GL context
func NewApp(window *glfw.Window, cfg config.Config, log *zap.Logger) (*App, error) {
	cc := cfg.Camera
	cam := camera.New(mgl32.Vec3(cc.Position), mgl32.Vec3(cc.Front), mgl32.Vec3(cc.Up))
	cam.MovementSpeed = cc.MovementSpeed
	cam.MouseSensitivity = cc.MouseSensitivity

	litRenderer := lit.NewLit(lit.Options{
		VertexShader:   cfg.Assets.VertexShader,
		FragmentShader: cfg.Assets.FragmentShader,
		FloorTexture:   cfg.Assets.FloorTexture,
	}, log)

	fbW, fbH := window.GetFramebufferSize()
	projection := graphics.NewProjection(fbW, fbH, cfg.Render.NearPlane, cfg.Render.FarPlane)

	renderables := []renderer.Renderable{litRenderer, wireframe.NewLightMarker()}
	if cfg.Render.Crosshair {
		renderables = append(renderables, crosshair.NewCrosshair())
	}
	if cfg.Render.Compass {
		renderables = append(renderables, compass.NewCompass())
	}

	r, err := renderer.NewRenderer(projection, mgl32.Vec3(cfg.Render.ClearColor), renderables...)
	if err != nil {
		return nil, err
	}

	app := &App{
		window:     window,
		log:        log,
		input:      input.NewManager(),
		camera:     cam,
		scene:      scene.New(),
		renderer:   r,
		lit:        litRenderer,
		fpsLimiter: NewFPSLimiter(cfg.Render.FPSLimit),
		prof:       profiling.New(time.Second),
		lastTime:   time.Now(),
	}

	if cfg.Assets.WatchShaders {
		if cfg.Assets.VertexShader == "" || cfg.Assets.FragmentShader == "" {
			log.Warn("watch_shaders needs vertex_shader and fragment_shader paths; embedded shaders are not watched")
		} else {
			w, err := graphics.NewShaderWatcher(log, cfg.Assets.VertexShader, cfg.Assets.FragmentShader)
			if err != nil {
				r.Dispose()
				return nil, fmt.Errorf("watch shaders: %w", err)
			}
			app.watcher = w
		}
	}

	SetupInputHandlers(app)

	log.Info("scene ready",
		zap.Int("framebuffer_width", fbW),
		zap.Int("framebuffer_height", fbH),
		zap.Stringer("camera_position", vec3(cam.Position())),
		zap.Float32("zoom", cam.Zoom()),
	)

	return app, nil
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	a.prof.ResetFrame()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	func() { defer a.prof.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	if a.watcher != nil && a.watcher.Changed() {
		if err := a.lit.Reload(); err != nil {
			a.log.Error("shader reload failed, keeping previous program", zap.Error(err))
		}
	}

	func() { defer a.prof.Track("game.Update")(); Update(a.camera, a.scene, a.input, float32(dt)) }()

	if a.input.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}

	func() { defer a.prof.Track("renderer.Render")(); a.renderer.Render(a.camera, a.scene, dt) }()
	func() { defer a.prof.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	a.input.PostUpdate()

	if frame := time.Since(now); frame > slowFrame {
		a.log.Debug("slow frame", append([]zap.Field{zap.Duration("frame", frame)}, a.prof.Fields(3)...)...)
	}
	if fps, ok := a.prof.EndFrame(); ok {
		a.log.Info("frame rate",
			zap.Float64("fps", fps),
			zap.Stringer("camera_position", vec3(a.camera.Position())),
			zap.Float32("yaw", a.camera.Yaw()),
			zap.Float32("pitch", a.camera.Pitch()),
			zap.Float32("zoom", a.camera.Zoom()),
			zap.Float32("speed", a.camera.MovementSpeed),
		)
	}

	a.fpsLimiter.Wait()
}

// RefreshRender repaints during window resizes
func (a *App) RefreshRender() {
	a.renderer.Render(a.camera, a.scene, 0)
	a.window.SwapBuffers()
}

// Close releases GL resources and stops the shader watcher. It must run on
// the thread that owns the GL context.
func (a *App) Close() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("close shader watcher", zap.Error(err))
		}
	}
	a.renderer.Dispose()
	a.window.Destroy()
}

type vec3 mgl32.Vec3

func (v vec3) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
}
