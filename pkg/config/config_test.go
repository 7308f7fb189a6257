package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leterax/go-shadercam/pkg/camera"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.CameraSettings() != camera.DefaultSettings() {
		t.Errorf("expected default camera settings, got %+v", cfg.CameraSettings())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFilename)
	writeFile(t, path, `
window:
  width: 1280
  title: scene
camera:
  speed: 50
  scroll_scale: 0.5
shaders:
  fragment: tunnel.frag
broadcast:
  addr: 127.0.0.1:9000
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Window.Width != 1280 || cfg.Window.Height != 600 {
		t.Errorf("expected 1280x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "scene" || !cfg.Window.VSync {
		t.Errorf("unexpected window config %+v", cfg.Window)
	}
	want := camera.Settings{Speed: 50, SpeedStep: camera.DefaultSpeedStep, ScrollScale: 0.5}
	if cfg.CameraSettings() != want {
		t.Errorf("expected %+v, got %+v", want, cfg.CameraSettings())
	}
	if cfg.Shaders.Fragment != "tunnel.frag" || cfg.Shaders.Vertex != DefaultVertexShader {
		t.Errorf("unexpected shader config %+v", cfg.Shaders)
	}
	if cfg.Broadcast.Addr != "127.0.0.1:9000" {
		t.Errorf("unexpected broadcast addr %q", cfg.Broadcast.Addr)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"zero height", "window:\n  height: 0\n", "window size"},
		{"negative speed", "camera:\n  speed: -1\n", "speed must not be negative"},
		{"empty shader", "shaders:\n  vertex: \"\"\n", "shader paths"},
		{"bad yaml", "window: [", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yml")
			writeFile(t, path, tt.content)

			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("expected error containing %q, got %v", tt.errPart, err)
			}
		})
	}
}

func TestResolveShaderPath(t *testing.T) {
	dir := t.TempDir()
	direct := filepath.Join(dir, "direct.frag")
	writeFile(t, direct, "void main() {}")
	shaderDir := filepath.Join(dir, "shaders")
	writeFile(t, filepath.Join(shaderDir, "scene.frag"), "void main() {}")

	got, err := ResolveShaderPath(direct, shaderDir)
	if err != nil || got != direct {
		t.Errorf("expected %s, got %s (%v)", direct, got, err)
	}

	got, err = ResolveShaderPath("scene.frag", shaderDir)
	if err != nil {
		t.Fatalf("ResolveShaderPath: %v", err)
	}
	if want := filepath.Join(shaderDir, "scene.frag"); got != want {
		t.Errorf("expected fallback %s, got %s", want, got)
	}

	_, err = ResolveShaderPath("nothing.frag", shaderDir)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	_, err = ResolveShaderPath("nothing.frag", "")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error without fallback dir, got %v", err)
	}
}

func TestShaderPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, DefaultVertexShader), "")
	writeFile(t, filepath.Join(dir, DefaultFragmentShader), "")

	cfg := Default()
	cfg.Shaders.Dir = dir

	vertex, fragment, err := cfg.ShaderPaths()
	if err != nil {
		t.Fatalf("ShaderPaths: %v", err)
	}
	if vertex != filepath.Join(dir, DefaultVertexShader) || fragment != filepath.Join(dir, DefaultFragmentShader) {
		t.Errorf("unexpected paths %s, %s", vertex, fragment)
	}

	cfg.Shaders.Fragment = "missing.frag"
	if _, _, err := cfg.ShaderPaths(); err == nil || !strings.Contains(err.Error(), "fragment shader") {
		t.Errorf("expected fragment shader error, got %v", err)
	}
}
