package camera

// Event is a single device event delivered by the host window.
type Event interface {
	apply(s *InputState)
}

// KeyEvent is a key press or release.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// MouseButtonEvent is a pointer button press or release.
type MouseButtonEvent struct {
	Button  MouseButton
	Pressed bool
}

// CursorEvent is a pointer move, in window pixels.
type CursorEvent struct {
	X, Y float32
}

// ScrollEvent is a vertical wheel movement.
type ScrollEvent struct {
	Delta float32
}

// ResizeEvent is a framebuffer size change.
type ResizeEvent struct {
	Width, Height uint32
}

func (e KeyEvent) apply(s *InputState)         { s.OnKey(e.Key, e.Pressed) }
func (e MouseButtonEvent) apply(s *InputState) { s.OnMouseButton(e.Button, e.Pressed) }
func (e CursorEvent) apply(s *InputState)      { s.OnCursorMove(e.X, e.Y) }
func (e ScrollEvent) apply(s *InputState)      { s.OnScroll(e.Delta) }
func (e ResizeEvent) apply(s *InputState)      { s.OnResize(e.Width, e.Height) }

// HandleEvent applies ev to the state. A nil event is ignored.
func (s *InputState) HandleEvent(ev Event) {
	if ev == nil {
		return
	}
	ev.apply(s)
}
