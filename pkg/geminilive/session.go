package geminilive

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Connect dials the Live API, sends the setup envelope as the first frame
// and starts the receive loop. The open event fires only after the setup
// send completes. Exactly one connection attempt may be in flight; Connect
// returns ErrAlreadyConnected while the client is connecting or open.
func (c *Client) Connect(ctx context.Context, config *LiveConfig) error {
	if c.config.apiKey == "" {
		return ErrNoAPIKey
	}
	if config == nil || config.Model == "" {
		return ErrNoConfig
	}

	c.mu.Lock()
	if c.state == StateConnecting || c.state == StateOpen {
		c.mu.Unlock()
		return ErrAlreadyConnected
	}
	c.state = StateConnecting
	c.mu.Unlock()

	url, display := c.config.endpoint()

	dialer := c.config.dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}

	conn, resp, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		c.setState(StateFailed)
		msg := fmt.Sprintf("could not connect to %q", display)
		if resp != nil {
			msg = fmt.Sprintf("could not connect to %q (status %d)", display, resp.StatusCode)
		}
		return &Error{Code: "connection_failed", Message: msg, Err: err}
	}

	// The setup envelope must be the first frame on the wire.
	if err := conn.WriteJSON(setupMessage{Setup: config}); err != nil {
		conn.Close()
		c.setState(StateFailed)
		return &Error{Code: "setup_failed", Message: "could not send setup envelope", Err: err}
	}

	once := &sync.Once{}
	c.mu.Lock()
	c.conn = conn
	c.liveConfig = config
	c.connID = uuid.New().String()[:8]
	c.closeOnce = once
	c.state = StateOpen
	c.mu.Unlock()

	c.log("client.send", "setup")
	c.log("client.open", "connected to "+display)
	c.events.open.emit(struct{}{})

	go c.readLoop(conn, once)
	return nil
}

// Disconnect closes the current connection. It returns true when it closed
// a live connection and false when already disconnected; calling it twice
// is a no-op and no close event fires twice.
func (c *Client) Disconnect() bool {
	c.mu.Lock()
	conn := c.conn
	once := c.closeOnce
	if conn == nil {
		c.mu.Unlock()
		return false
	}
	c.conn = nil
	c.state = StateClosed
	c.mu.Unlock()

	conn.Close()
	c.log("client.close", "disconnected")
	once.Do(func() {
		c.events.closed.emit("")
	})
	return true
}

// readLoop reads frames from the connection until it fails or is closed,
// dispatching each frame to completion before reading the next.
func (c *Client) readLoop(conn *websocket.Conn, once *sync.Once) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			c.teardown(conn, once, err)
			return
		}
		c.receive(data)
	}
}

// teardown handles a read failure: a remote close, a network error, or the
// local Disconnect having closed the socket underneath the loop.
func (c *Client) teardown(conn *websocket.Conn, once *sync.Once, err error) {
	reason := ""
	var ce *websocket.CloseError
	if errors.As(err, &ce) {
		reason = extractCloseReason(ce.Text)
	}

	c.mu.Lock()
	current := c.conn == conn
	if current {
		c.conn = nil
		c.state = StateClosed
	}
	c.mu.Unlock()

	if current {
		if reason != "" {
			c.log("server.close", "disconnected with reason: "+reason)
		} else {
			c.log("server.close", "disconnected")
		}
	}
	once.Do(func() {
		c.events.closed.emit(reason)
	})
}

// extractCloseReason surfaces the human-readable part of a close reason.
// Some servers smuggle structured errors into the reason field as
// "<prefix>ERROR] <message>"; when the marker is present only the substring
// after it is returned. Best effort, never fails.
func extractCloseReason(reason string) string {
	const marker = "error]"
	if i := strings.Index(strings.ToLower(reason), marker); i >= 0 {
		return strings.TrimSpace(reason[i+len(marker):])
	}
	return reason
}
