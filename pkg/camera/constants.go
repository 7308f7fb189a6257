package camera

import "math"

// Key identifies a keyboard key the camera reacts to.
type Key int

// Keys understood by InputState. Everything else maps to KeyUnknown.
const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyPlus
	KeyMinus
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonUnknown MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
)

// Camera constants
const (
	// Movement
	DefaultSpeed       = 200.0
	DefaultSpeedStep   = 10.0
	DefaultScrollScale = 10.0

	// Radians of rotation for a drag across the full viewport
	DragSensitivity = 4.0

	// Constraints
	MaxPitch  = math.Pi / 2
	MinPitch  = -math.Pi / 2
	MinHeight = 0.1
)
