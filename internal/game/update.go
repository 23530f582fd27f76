package game

import (
	"flycam/internal/camera"
	"flycam/internal/input"
	"flycam/internal/scene"
)

var moveBindings = [...]struct {
	action input.Action
	dir    camera.Direction
}{
	{input.ActionMoveForward, camera.Forward},
	{input.ActionMoveBackward, camera.Backward},
	{input.ActionMoveLeft, camera.Left},
	{input.ActionMoveRight, camera.Right},
}

// Update applies one tick of input to the camera and the scene. Every input
// sample recorded since the previous tick is consumed here, so the view
// matrix read afterwards reflects the final orientation of the tick.
func Update(cam *camera.Camera, st *scene.State, im *input.Manager, dt float32) {
	for _, b := range moveBindings {
		if im.IsActive(b.action) {
			cam.ProcessKeyboard(b.dir, dt)
		}
	}

	if dx, dy := im.DrainMouse(); dx != 0 || dy != 0 {
		cam.ProcessMouseMovement(float32(dx), float32(dy), true)
	}

	if scroll := float32(im.DrainScroll()); scroll != 0 {
		cam.ProcessMouseScroll(scroll)
		cam.AdjustMovementSpeed(scroll)
	}

	st.Update(im, dt)
}
