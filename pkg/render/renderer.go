package render

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-shadercam/internal/openglhelper"
	"github.com/leterax/go-shadercam/pkg/camera"
	"github.com/leterax/go-shadercam/pkg/config"
	"github.com/leterax/go-shadercam/pkg/network"
)

// Renderer owns the window, feeds its input into the camera and draws the
// fragment shader over a full-screen quad every frame.
type Renderer struct {
	window *openglhelper.Window
	shader *openglhelper.Shader
	quad   *openglhelper.Quad
	input  *camera.InputState

	// Optional pose broadcast
	hub *network.Hub
}

// NewRenderer creates the window, compiles the shaders and sets up input
// callbacks. Must be called from the locked main thread.
func NewRenderer(cfg config.Config) (*Renderer, error) {
	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	vertexPath, fragmentPath, err := cfg.ShaderPaths()
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to locate shaders: %w", err)
	}

	shader, err := openglhelper.LoadShaderFromFiles(vertexPath, fragmentPath)
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}
	slog.Info("shader program loaded", "vertex", vertexPath, "fragment", fragmentPath)

	width, height := window.Size()
	renderer := &Renderer{
		window: window,
		shader: shader,
		quad:   openglhelper.NewQuad(),
		input:  camera.NewInputState(uint32(width), uint32(height), cfg.CameraSettings(), time.Now()),
	}

	// Set up callbacks
	window.GLFWWindow().SetKeyCallback(renderer.keyCallback)
	window.GLFWWindow().SetCursorPosCallback(renderer.cursorPosCallback)
	window.GLFWWindow().SetMouseButtonCallback(renderer.mouseButtonCallback)
	window.GLFWWindow().SetScrollCallback(renderer.scrollCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(renderer.framebufferSizeCallback)

	return renderer, nil
}

// SetPoseHub makes the renderer publish the camera pose every frame.
func (r *Renderer) SetPoseHub(hub *network.Hub) {
	r.hub = hub
}

// Camera returns the camera state driven by this renderer.
func (r *Renderer) Camera() *camera.InputState {
	return r.input
}

// Run starts the main rendering loop and cleans up when the window closes.
func (r *Renderer) Run() {
	for !r.window.ShouldClose() {
		// Every event since the last frame lands before the camera update
		r.window.PollEvents()

		uniforms := r.input.Update(time.Now())

		r.render(uniforms)
		r.publish(uniforms)

		r.window.SwapBuffers()
	}

	r.Cleanup()
}

// render draws one frame with the given uniforms
func (r *Renderer) render(u camera.FrameUniforms) {
	r.window.Clear(clearColor)

	r.shader.Use()

	r.shader.SetFloat(UniformAspect, u.Aspect)
	r.shader.SetVec3(UniformCameraPosition, u.CameraPosition)
	// Shaders apply it as `dir * rotation_matrix`, which is R·dir only if the
	// GLSL columns hold the rows of R.
	r.shader.SetMat3(UniformRotation, u.Rotation.Transpose())

	r.shader.SetVec3(UniformResolution, u.Resolution)
	r.shader.SetFloat(UniformTime, u.Elapsed)
	r.shader.SetFloat(UniformTimeDelta, u.Delta)
	r.shader.SetInt(UniformFrame, u.Frame)
	r.shader.SetFloat(UniformFrameRate, u.FrameRate)
	r.shader.SetVec4(UniformMouse, u.Mouse)

	r.quad.Draw()
}

func (r *Renderer) publish(u camera.FrameUniforms) {
	if r.hub == nil {
		return
	}
	yaw, pitch := r.input.Orientation()
	r.hub.Publish(network.Pose{
		Frame:    u.Frame,
		Elapsed:  u.Elapsed,
		Position: u.CameraPosition,
		Yaw:      yaw,
		Pitch:    pitch,
	})
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	if r.quad != nil {
		r.quad.Delete()
	}
	if r.shader != nil {
		r.shader.Delete()
	}

	r.window.Close()
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		r.window.SetShouldClose(true)
		return
	}

	r.input.OnKey(translateKey(key), action != glfw.Release)
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	r.input.OnCursorMove(float32(xpos), float32(ypos))
}

func (r *Renderer) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	r.input.OnMouseButton(translateMouseButton(button), action == glfw.Press)
}

func (r *Renderer) scrollCallback(_ *glfw.Window, xoffset, yoffset float64) {
	r.input.OnScroll(float32(yoffset))
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	// Minimized windows report 0x0; keep the last real size
	if width <= 0 || height <= 0 {
		slog.Debug("ignoring empty framebuffer", "width", width, "height", height)
		return
	}
	r.window.OnResize(width, height)
	r.input.OnResize(uint32(width), uint32(height))
}
