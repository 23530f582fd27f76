// Package assets embeds the default shaders so the binary runs from any
// working directory.
package assets

import "embed"

//go:embed shaders/*
var FS embed.FS

const (
	SceneVertexShader   = "shaders/scene.vert"
	SceneFragmentShader = "shaders/scene.frag"

	CrosshairVertexShader   = "shaders/crosshair.vert"
	CrosshairFragmentShader = "shaders/crosshair.frag"

	CompassVertexShader   = "shaders/compass.vert"
	CompassFragmentShader = "shaders/compass.frag"

	WireframeVertexShader   = "shaders/wireframe.vert"
	WireframeFragmentShader = "shaders/wireframe.frag"
)

// Source returns an embedded file as a string
func Source(name string) (string, error) {
	b, err := FS.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
