// Package camera turns raw window input into a first-person camera pose and the
// per-frame uniform set consumed by a full-screen fragment shader.
//
// InputState is not safe for concurrent use. The host must deliver every event
// and call Update from the same goroutine, applying all events received since
// the previous redraw before calling Update for the next one.
package camera

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Settings holds the tunable parts of the camera.
type Settings struct {
	Speed       float32 // movement units per second
	SpeedStep   float32 // change applied by the +/- keys
	ScrollScale float32 // speed change per scroll unit
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Speed:       DefaultSpeed,
		SpeedStep:   DefaultSpeedStep,
		ScrollScale: DefaultScrollScale,
	}
}

// InputState accumulates device events between frames and carries the camera
// pose from one frame to the next.
type InputState struct {
	settings Settings

	cursorX, cursorY float32
	width, height    uint32

	forward, backward, left, right bool

	dragActive      bool
	dragJustStarted bool

	// Committed orientation, radians
	yaw   float32
	pitch float32

	// Drag anchors
	anchorYaw, anchorPitch float32
	anchorX, anchorY       float32

	speed    float32
	position mgl32.Vec3

	clockStart time.Time
	lastFrame  time.Time
	frame      int32
}

// NewInputState creates the camera state for a viewport of the given size.
// now becomes both the clock origin and the start of the first frame.
func NewInputState(width, height uint32, settings Settings, now time.Time) *InputState {
	s := &InputState{
		settings:   settings,
		speed:      settings.Speed,
		position:   mgl32.Vec3{0, 1, 0},
		clockStart: now,
		lastFrame:  now,
	}
	s.OnResize(width, height)
	return s
}

// OnKey records a key press or release.
func (s *InputState) OnKey(key Key, pressed bool) {
	switch key {
	case KeyW:
		s.forward = pressed
	case KeyS:
		s.backward = pressed
	case KeyA:
		s.left = pressed
	case KeyD:
		s.right = pressed
	case KeyPlus:
		if pressed {
			s.speed += s.settings.SpeedStep
		}
	case KeyMinus:
		if pressed {
			s.speed -= s.settings.SpeedStep
		}
	}
}

// OnScroll adjusts the movement speed. Scrolling forward (positive delta)
// slows the camera down.
func (s *InputState) OnScroll(delta float32) {
	s.speed -= delta * s.settings.ScrollScale
}

// OnMouseButton starts or ends a drag. Left and middle buttons both drag.
// Releasing keeps the orientation reached during the drag.
func (s *InputState) OnMouseButton(button MouseButton, pressed bool) {
	if button != MouseButtonLeft && button != MouseButtonMiddle {
		return
	}
	if pressed {
		s.dragActive = true
		s.dragJustStarted = true
		return
	}
	s.dragActive = false
}

// OnCursorMove records the pointer position in window pixels.
func (s *InputState) OnCursorMove(x, y float32) {
	s.cursorX = x
	s.cursorY = y
}

// OnResize records the framebuffer size. A zero dimension is a host bug and
// panics.
func (s *InputState) OnResize(width, height uint32) {
	if width == 0 || height == 0 {
		panic(fmt.Sprintf("camera: invalid viewport %dx%d", width, height))
	}
	s.width = width
	s.height = height
}

// Position returns the world-space camera position.
func (s *InputState) Position() mgl32.Vec3 {
	return s.position
}

// SetPosition moves the camera. The floor bound is applied on the next Update.
func (s *InputState) SetPosition(pos mgl32.Vec3) {
	s.position = pos
}

// Orientation returns the committed yaw and pitch in radians.
func (s *InputState) Orientation() (yaw, pitch float32) {
	return s.yaw, s.pitch
}

// Speed returns the raw movement speed. It can be negative until the next
// Update clamps it.
func (s *InputState) Speed() float32 {
	return s.speed
}

// Viewport returns the current framebuffer size.
func (s *InputState) Viewport() (width, height uint32) {
	return s.width, s.height
}

// Dragging reports whether a drag gesture is in progress.
func (s *InputState) Dragging() bool {
	return s.dragActive
}
