package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-shadercam/pkg/camera"
)

// Uniform names the fragment shader can declare
const (
	UniformAspect         = "aspect"
	UniformCameraPosition = "camera_position"
	UniformRotation       = "rotation_matrix"
	UniformResolution     = "iResolution"
	UniformTime           = "iTime"
	UniformTimeDelta      = "iTimeDelta"
	UniformFrame          = "iFrame"
	UniformFrameRate      = "iFrameRate"
	UniformMouse          = "iMouse"
)

var clearColor = mgl32.Vec4{0.0, 0.0, 0.0, 1.0}

// keyMap translates GLFW keys into camera keys. Both the main row and the
// keypad +/- adjust speed.
var keyMap = map[glfw.Key]camera.Key{
	glfw.KeyW:          camera.KeyW,
	glfw.KeyA:          camera.KeyA,
	glfw.KeyS:          camera.KeyS,
	glfw.KeyD:          camera.KeyD,
	glfw.KeyEqual:      camera.KeyPlus,
	glfw.KeyKPAdd:      camera.KeyPlus,
	glfw.KeyMinus:      camera.KeyMinus,
	glfw.KeyKPSubtract: camera.KeyMinus,
}

var mouseButtonMap = map[glfw.MouseButton]camera.MouseButton{
	glfw.MouseButtonLeft:   camera.MouseButtonLeft,
	glfw.MouseButtonMiddle: camera.MouseButtonMiddle,
	glfw.MouseButtonRight:  camera.MouseButtonRight,
}

func translateKey(key glfw.Key) camera.Key {
	if k, ok := keyMap[key]; ok {
		return k
	}
	return camera.KeyUnknown
}

func translateMouseButton(button glfw.MouseButton) camera.MouseButton {
	if b, ok := mouseButtonMap[button]; ok {
		return b
	}
	return camera.MouseButtonUnknown
}
