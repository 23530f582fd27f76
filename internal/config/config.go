package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration, read from a YAML file
type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Render RenderConfig `yaml:"render"`
	Assets AssetsConfig `yaml:"assets"`
	Log    LogConfig    `yaml:"log"`
}

type WindowConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Title   string `yaml:"title"`
	VSync   bool   `yaml:"vsync"`
	Samples int    `yaml:"samples"`
}

type CameraConfig struct {
	Position         [3]float32 `yaml:"position"`
	Front            [3]float32 `yaml:"front"`
	Up               [3]float32 `yaml:"up"`
	MovementSpeed    float32    `yaml:"movement_speed"`
	MouseSensitivity float32    `yaml:"mouse_sensitivity"`
}

type RenderConfig struct {
	NearPlane  float32    `yaml:"near_plane"`
	FarPlane   float32    `yaml:"far_plane"`
	ClearColor [3]float32 `yaml:"clear_color"`

	// 0 disables the limiter
	FPSLimit  int  `yaml:"fps_limit"`
	Crosshair bool `yaml:"crosshair"`
	Compass   bool `yaml:"compass"`
}

type AssetsConfig struct {
	// empty shader paths use the embedded shaders
	VertexShader   string `yaml:"vertex_shader"`
	FragmentShader string `yaml:"fragment_shader"`
	FloorTexture   string `yaml:"floor_texture"`
	WatchShaders   bool   `yaml:"watch_shaders"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// empty disables the rotating file sink
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:   800,
			Height:  600,
			Title:   "flycam",
			VSync:   true,
			Samples: 4,
		},
		Camera: CameraConfig{
			Position:         [3]float32{0, 2, 5},
			Front:            [3]float32{0, 0, -1},
			Up:               [3]float32{0, 1, 0},
			MovementSpeed:    2.5,
			MouseSensitivity: 0.1,
		},
		Render: RenderConfig{
			NearPlane:  0.1,
			FarPlane:   100,
			ClearColor: [3]float32{0.1, 0.1, 0.1},
			FPSLimit:   60,
			Crosshair:  true,
			Compass:    true,
		},
		Assets: AssetsConfig{
			FloorTexture: "assets/textures/floor.png",
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and clamps the result
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	d := Default()

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window.Width, c.Window.Height = d.Window.Width, d.Window.Height
	}
	if c.Window.Samples < 0 {
		c.Window.Samples = 0
	}

	// Same bounds the camera enforces on scroll
	if c.Camera.MovementSpeed < 0.5 {
		c.Camera.MovementSpeed = 0.5
	}
	if c.Camera.MovementSpeed > 10 {
		c.Camera.MovementSpeed = 10
	}
	if c.Camera.MouseSensitivity <= 0 {
		c.Camera.MouseSensitivity = d.Camera.MouseSensitivity
	}

	if c.Render.NearPlane <= 0 {
		c.Render.NearPlane = d.Render.NearPlane
	}
	if c.Render.FarPlane <= c.Render.NearPlane {
		c.Render.FarPlane = c.Render.NearPlane * 1000
	}
	if c.Render.FPSLimit < 0 {
		c.Render.FPSLimit = 0
	}
	if c.Render.FPSLimit > 1000 {
		c.Render.FPSLimit = 1000
	}

	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = d.Log.MaxSizeMB
	}
}
