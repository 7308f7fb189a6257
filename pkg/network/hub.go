package network

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Local tooling, any origin may watch
	},
}

// Hub broadcasts poses to every connected WebSocket subscriber.
//
// Publish is called from the render thread and never blocks: when the
// previous pose has not been written yet, the new one is dropped.
type Hub struct {
	poses chan Pose

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub creates a hub. Call Run to start delivering poses.
func NewHub() *Hub {
	return &Hub{
		poses:   make(chan Pose, 1),
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Publish queues a pose for broadcast and reports whether it was accepted.
func (h *Hub) Publish(p Pose) bool {
	select {
	case h.poses <- p:
		return true
	default:
		return false
	}
}

// ClientCount returns the number of connected subscribers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and keeps the subscriber registered until
// it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
	slog.Info("pose subscriber connected", "remote", r.RemoteAddr)

	// Subscribers never send anything; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.remove(conn)
	slog.Info("pose subscriber disconnected", "remote", r.RemoteAddr)
}

// Run writes queued poses to all subscribers until ctx is done, then closes
// every connection.
func (h *Hub) Run(ctx context.Context) {
	defer h.closeAll()

	for {
		select {
		case <-ctx.Done():
			return
		case p := <-h.poses:
			h.broadcast(EncodePose(p))
		}
	}
}

func (h *Hub) broadcast(packet []byte) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.BinaryMessage, packet); err != nil {
			slog.Warn("dropping pose subscriber", "remote", conn.RemoteAddr().String(), "error", err)
			h.remove(conn)
		}
	}
}

// remove unregisters and closes conn once, whichever side notices first.
func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()

	if ok {
		conn.Close()
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	conns := h.clients
	h.clients = make(map[*websocket.Conn]struct{})
	h.mu.Unlock()

	for conn := range conns {
		conn.Close()
	}
}

// ListenAndServe serves subscribers on addr and runs the hub until ctx is
// done.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/pose", h)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go h.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("pose broadcast listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
