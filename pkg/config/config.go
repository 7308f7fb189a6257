// Package config loads shadercam settings from an optional YAML file and
// resolves shader source paths.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leterax/go-shadercam/pkg/camera"
	"gopkg.in/yaml.v3"
)

// Default file names, relative to the working directory
const (
	DefaultFilename       = "shadercam.yml"
	DefaultVertexShader   = "vertex_shader.vert"
	DefaultFragmentShader = "fragment_shader.frag"
	DefaultShaderDir      = "shaders"
)

// Config is the full program configuration.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Camera    CameraConfig    `yaml:"camera"`
	Shaders   ShaderConfig    `yaml:"shaders"`
	Broadcast BroadcastConfig `yaml:"broadcast"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type CameraConfig struct {
	Speed       float32 `yaml:"speed"`
	SpeedStep   float32 `yaml:"speed_step"`
	ScrollScale float32 `yaml:"scroll_scale"`
}

// ShaderConfig names the shader sources. Paths that fail to open are retried
// relative to Dir.
type ShaderConfig struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
	Dir      string `yaml:"dir"`
}

// BroadcastConfig enables the pose broadcast when Addr is set.
type BroadcastConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "shadercam",
			VSync:  true,
		},
		Camera: CameraConfig{
			Speed:       camera.DefaultSpeed,
			SpeedStep:   camera.DefaultSpeedStep,
			ScrollScale: camera.DefaultScrollScale,
		},
		Shaders: ShaderConfig{
			Vertex:   DefaultVertexShader,
			Fragment: DefaultFragmentShader,
			Dir:      DefaultShaderDir,
		},
	}
}

// Load reads the YAML file at path on top of the defaults. A missing file is
// not an error and yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("no config file, using defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	slog.Debug("loaded config", "path", path)
	return cfg, nil
}

// Validate reports configuration values the program cannot start with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Speed < 0 {
		return fmt.Errorf("camera speed must not be negative, got %v", c.Camera.Speed)
	}
	if c.Camera.SpeedStep < 0 {
		return fmt.Errorf("camera speed_step must not be negative, got %v", c.Camera.SpeedStep)
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		return errors.New("shader paths must not be empty")
	}
	return nil
}

// CameraSettings converts the camera section for camera.NewInputState.
func (c Config) CameraSettings() camera.Settings {
	return camera.Settings{
		Speed:       c.Camera.Speed,
		SpeedStep:   c.Camera.SpeedStep,
		ScrollScale: c.Camera.ScrollScale,
	}
}

// ResolveShaderPath returns path if it can be opened, otherwise path joined
// onto dir.
func ResolveShaderPath(path, dir string) (string, error) {
	f, err := os.Open(path)
	if err == nil {
		f.Close()
		return path, nil
	}

	if dir == "" {
		return "", fmt.Errorf("failed to open shader %s: %w", path, err)
	}

	fallback := filepath.Join(dir, path)
	f, fallbackErr := os.Open(fallback)
	if fallbackErr != nil {
		return "", fmt.Errorf("failed to open shader %s or %s: %w", path, fallback, fallbackErr)
	}
	f.Close()

	slog.Debug("using shader from fallback directory", "path", fallback)
	return fallback, nil
}

// ShaderPaths resolves both shader sources.
func (c Config) ShaderPaths() (vertex, fragment string, err error) {
	vertex, err = ResolveShaderPath(c.Shaders.Vertex, c.Shaders.Dir)
	if err != nil {
		return "", "", fmt.Errorf("vertex shader: %w", err)
	}
	fragment, err = ResolveShaderPath(c.Shaders.Fragment, c.Shaders.Dir)
	if err != nil {
		return "", "", fmt.Errorf("fragment shader: %w", err)
	}
	return vertex, fragment, nil
}
