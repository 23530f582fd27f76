package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// SetupInputHandlers routes GLFW callbacks into the input manager. The
// callbacks only record input; the camera is updated in tick.
func SetupInputHandlers(app *App) {
	window := app.window
	im := app.input

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		im.HandleCursorPos(xpos, ypos)
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		im.HandleScroll(yoff)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		app.renderer.UpdateViewport(fbWidth, fbHeight)
		app.log.Debug("framebuffer resized", zap.Int("width", fbWidth), zap.Int("height", fbHeight))
	})

	// Avoid a jump when the cursor is recaptured
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if focused {
			im.ResetMouse()
		}
	})

	window.SetRefreshCallback(func(w *glfw.Window) {
		app.RefreshRender()
	})
}
