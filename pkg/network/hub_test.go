package network

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestDecodePoseRejectsBadPackets(t *testing.T) {
	good := EncodePose(Pose{Frame: 1})

	tests := []struct {
		name   string
		packet []byte
	}{
		{"empty", nil},
		{"unknown id", append([]byte{0x7f}, good[1:]...)},
		{"truncated", good[:10]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodePose(tt.packet); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestPoseSurvivesEncoding(t *testing.T) {
	want := Pose{
		Frame:    -3,
		Elapsed:  12.5,
		Position: mgl32.Vec3{1.5, 0.1, -200},
		Yaw:      -0.75,
		Pitch:    1.5,
	}

	got, err := DecodePose(EncodePose(want))
	if err != nil {
		t.Fatalf("DecodePose: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestPublishDropsWhenBusy(t *testing.T) {
	hub := NewHub()

	if !hub.Publish(Pose{Frame: 1}) {
		t.Fatal("first publish should be accepted")
	}
	if hub.Publish(Pose{Frame: 2}) {
		t.Fatal("second publish should be dropped while the first is pending")
	}
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client, err := NewClient(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	waitFor(t, "subscriber", func() bool { return hub.ClientCount() == 1 })

	want := Pose{Frame: 42, Elapsed: 1.25, Position: mgl32.Vec3{0, 1, 100}, Yaw: 1}
	if !hub.Publish(want) {
		t.Fatal("publish rejected")
	}

	client.conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	got, err := client.ReadPose()
	if err != nil {
		t.Fatalf("ReadPose: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestProcessPacketsCallsOnPose(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client, err := NewClient(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	received := make(chan Pose, 1)
	client.OnPose = func(p Pose) {
		received <- p
		client.Close()
	}

	waitFor(t, "subscriber", func() bool { return hub.ClientCount() == 1 })
	hub.Publish(Pose{Frame: 7})

	done := make(chan error, 1)
	go func() { done <- client.ProcessPackets() }()

	select {
	case p := <-received:
		if p.Frame != 7 {
			t.Errorf("expected frame 7, got %d", p.Frame)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for pose")
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("ProcessPackets did not return after close")
	}

	waitFor(t, "disconnect", func() bool { return hub.ClientCount() == 0 })
}

func TestRunClosesSubscribers(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	client, err := NewClient(context.Background(), "ws"+strings.TrimPrefix(srv.URL, "http"))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	waitFor(t, "subscriber", func() bool { return hub.ClientCount() == 1 })
	cancel()
	<-stopped

	if hub.ClientCount() != 0 {
		t.Fatalf("expected no subscribers after Run returns, got %d", hub.ClientCount())
	}
	client.conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, err := client.ReadPose(); err == nil {
		t.Fatal("expected read to fail after hub shutdown")
	}
}
