package camera

import (
	"testing"
	"time"
)

func TestScrollReducesSpeed(t *testing.T) {
	s := NewInputState(800, 600, Settings{Speed: 3, SpeedStep: 1, ScrollScale: 0.5}, t0)

	s.OnScroll(2.0)
	if s.Speed() != 2 {
		t.Fatalf("expected speed 2 after scroll, got %f", s.Speed())
	}

	s.OnScroll(10)
	if s.Speed() >= 0 {
		t.Fatalf("expected transiently negative speed, got %f", s.Speed())
	}

	s.Update(t0.Add(time.Millisecond))
	if s.Speed() != 0 {
		t.Fatalf("expected speed clamped to 0, got %f", s.Speed())
	}
}

func TestSpeedKeys(t *testing.T) {
	s := NewInputState(800, 600, Settings{Speed: 5, SpeedStep: 2, ScrollScale: 1}, t0)

	s.OnKey(KeyPlus, true)
	s.OnKey(KeyPlus, false)
	if s.Speed() != 7 {
		t.Errorf("expected speed 7, got %f", s.Speed())
	}

	for i := 0; i < 5; i++ {
		s.OnKey(KeyMinus, true)
	}
	s.Update(t0)
	if s.Speed() != 0 {
		t.Errorf("expected speed clamped to 0, got %f", s.Speed())
	}
}

func TestNegativeSpeedNeverMovesBackwards(t *testing.T) {
	s := NewInputState(800, 600, Settings{Speed: 1, ScrollScale: 1}, t0)
	s.OnScroll(100)
	s.OnKey(KeyW, true)

	u := s.Update(t0.Add(time.Second))
	if u.CameraPosition.Z() != 0 {
		t.Fatalf("expected no movement at clamped speed, got %v", u.CameraPosition)
	}
}

func TestHandleEvent(t *testing.T) {
	s := newTestState()

	events := []Event{
		ResizeEvent{Width: 1000, Height: 500},
		CursorEvent{X: 500, Y: 250},
		MouseButtonEvent{Button: MouseButtonMiddle, Pressed: true},
		KeyEvent{Key: KeyD, Pressed: true},
		ScrollEvent{Delta: -1},
		nil,
	}
	for _, ev := range events {
		s.HandleEvent(ev)
	}

	if w, h := s.Viewport(); w != 1000 || h != 500 {
		t.Errorf("expected viewport 1000x500, got %dx%d", w, h)
	}
	if !s.Dragging() {
		t.Error("expected drag to be active")
	}
	if !s.right {
		t.Error("expected right movement key held")
	}
	if s.Speed() != DefaultSpeed+DefaultScrollScale {
		t.Errorf("expected speed %v, got %f", DefaultSpeed+DefaultScrollScale, s.Speed())
	}

	u := s.Update(t0)
	if u.Aspect != 2 {
		t.Errorf("expected aspect 2, got %f", u.Aspect)
	}
}

func TestResizeRejectsZero(t *testing.T) {
	s := newTestState()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero height")
		}
	}()
	s.OnResize(640, 0)
}
