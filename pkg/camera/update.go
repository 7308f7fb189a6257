package camera

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// FrameUniforms is the uniform set handed to the fragment shader each frame.
type FrameUniforms struct {
	Aspect         float32
	CameraPosition mgl32.Vec3
	Rotation       mgl32.Mat3 // camera-local to world
	Elapsed        float32    // seconds since the clock origin
	Delta          float32    // seconds since the previous frame

	// ShaderToy-compatible extras
	Resolution mgl32.Vec3 // width, height, pixel aspect (always 1)
	Frame      int32
	FrameRate  float32
	Mouse      mgl32.Vec4 // cursor xy, drag anchor zw while dragging
}

// Update advances the camera to now and returns the uniforms for this frame.
// It must be called at most once per redraw, after all pending events have
// been applied.
func (s *InputState) Update(now time.Time) FrameUniforms {
	delta := float32(now.Sub(s.lastFrame).Seconds())

	if s.speed < 0 {
		s.speed = 0
	}

	// Movement in camera space: +x right, +z forward
	step := s.speed * delta
	movement := mgl32.Vec3{
		(axis(s.right) - axis(s.left)) * step,
		0,
		(axis(s.forward) - axis(s.backward)) * step,
	}

	if s.dragActive {
		s.updateDrag()
	}

	rotation := RotationMatrix(s.yaw, s.pitch)

	s.position = s.position.Add(rotation.Mul3x1(movement))
	if s.position[1] < MinHeight {
		s.position[1] = MinHeight
	}

	u := FrameUniforms{
		Aspect:         float32(s.width) / float32(s.height),
		CameraPosition: s.position,
		Rotation:       rotation,
		Elapsed:        float32(now.Sub(s.clockStart).Seconds()),
		Delta:          delta,
		Resolution:     mgl32.Vec3{float32(s.width), float32(s.height), 1},
		Frame:          s.frame,
		Mouse:          mgl32.Vec4{s.cursorX, s.cursorY, 0, 0},
	}
	if delta > 0 {
		u.FrameRate = 1 / delta
	}
	if s.dragActive {
		u.Mouse[2] = s.anchorX
		u.Mouse[3] = s.anchorY
	}

	s.lastFrame = now
	s.frame++

	return u
}

// updateDrag derives yaw and pitch from the cursor offset since the drag began.
func (s *InputState) updateDrag() {
	if s.dragJustStarted {
		s.anchorYaw = s.yaw
		s.anchorPitch = s.pitch
		s.anchorX = s.cursorX
		s.anchorY = s.cursorY
		s.dragJustStarted = false
	}

	s.yaw = s.anchorYaw - ((s.anchorX-s.cursorX)/float32(s.width))*DragSensitivity
	s.pitch = mgl32.Clamp(
		s.anchorPitch-((s.anchorY-s.cursorY)/float32(s.height))*DragSensitivity,
		MinPitch, MaxPitch,
	)
}

// RotationMatrix returns yaw about the vertical axis composed with pitch about
// the camera's horizontal axis. Applied to a camera-space vector it yields the
// world-space vector.
func RotationMatrix(yaw, pitch float32) mgl32.Mat3 {
	sy, cy := math.Sincos(float64(yaw))
	sp, cp := math.Sincos(float64(pitch))
	sinYaw, cosYaw := float32(sy), float32(cy)
	sinPitch, cosPitch := float32(sp), float32(cp)

	return mgl32.Mat3FromRows(
		mgl32.Vec3{cosYaw, sinPitch * sinYaw, cosPitch * sinYaw},
		mgl32.Vec3{0, cosPitch, -sinPitch},
		mgl32.Vec3{-sinYaw, sinPitch * cosYaw, cosPitch * cosYaw},
	)
}

func axis(held bool) float32 {
	if held {
		return 1
	}
	return 0
}
