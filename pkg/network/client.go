// Package network publishes the camera pose of a running shadercam over
// WebSocket and lets other programs subscribe to it.
package network

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/websocket"
)

const (
	DefaultPort = 20000
	PosePath    = "/pose"
)

// Client is a pose subscriber
type Client struct {
	conn   *websocket.Conn
	OnPose func(p Pose)
}

// NewClient connects to the broadcast at address. A bare host gets the
// default port, and a host:port gets the ws scheme and pose path.
func NewClient(ctx context.Context, address string) (*Client, error) {
	url := address
	if !strings.Contains(url, "://") {
		if !strings.Contains(url, ":") {
			url = fmt.Sprintf("%s:%d", url, DefaultPort)
		}
		url = "ws://" + url + PosePath
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", url, err)
	}

	return &Client{conn: conn}, nil
}

// Close closes the connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// ReadPose blocks until the next pose arrives
func (c *Client) ReadPose() (Pose, error) {
	_, packet, err := c.conn.ReadMessage()
	if err != nil {
		return Pose{}, fmt.Errorf("failed to read packet: %w", err)
	}
	return DecodePose(packet)
}

// ProcessPackets reads poses until the connection fails, calling OnPose for
// each one.
func (c *Client) ProcessPackets() error {
	for {
		p, err := c.ReadPose()
		if err != nil {
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) &&
				(closeErr.Code == websocket.CloseNormalClosure || closeErr.Code == websocket.CloseGoingAway) {
				return nil
			}
			return err
		}

		if c.OnPose != nil {
			c.OnPose(p)
		}
	}
}
