package geminilive

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
)

// sendJSON serializes v to one JSON text frame and writes it under the
// client mutex, so concurrent sends never interleave partial frames.
func (c *Client) sendJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateOpen || c.conn == nil {
		return ErrNotConnected
	}

	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		if b, err := json.Marshal(v); err == nil {
			slog.Debug("sending frame", "content", truncate(string(b), 500))
		}
	}

	if err := c.conn.WriteJSON(v); err != nil {
		return &Error{Code: "send_failed", Message: "could not write frame", Err: err}
	}
	return nil
}

// Send sends one user content turn. Pass turnComplete true to let the
// model respond, false to keep accumulating the turn.
func (c *Client) Send(parts []*Part, turnComplete bool) error {
	content := &ClientContent{
		Turns:        []*Content{{Role: RoleUser, Parts: parts}},
		TurnComplete: turnComplete,
	}
	if err := c.sendJSON(clientContentMessage{ClientContent: content}); err != nil {
		return err
	}
	c.log("client.send", content)
	return nil
}

// SendText sends a single completed text turn.
func (c *Client) SendText(text string) error {
	return c.Send([]*Part{Text(text)}, true)
}

// SendRealtimeInput streams media chunks outside of turn boundaries,
// typically audio and video frames captured in realtime.
func (c *Client) SendRealtimeInput(chunks []*Blob) error {
	if err := c.sendJSON(realtimeInputMessage{RealtimeInput: &RealtimeInput{MediaChunks: chunks}}); err != nil {
		return err
	}
	c.log("client.realtimeInput", classifyMedia(chunks))
	return nil
}

// classifyMedia labels a chunk list for tracing by mime type.
func classifyMedia(chunks []*Blob) string {
	hasAudio := false
	hasVideo := false
	for _, ch := range chunks {
		if strings.Contains(ch.MIMEType, "audio") {
			hasAudio = true
		}
		if strings.Contains(ch.MIMEType, "image") {
			hasVideo = true
		}
		if hasAudio && hasVideo {
			return "audio + video"
		}
	}
	switch {
	case hasAudio:
		return "audio"
	case hasVideo:
		return "video"
	default:
		return "unknown"
	}
}

// SendToolResponse answers one or more pending function calls.
func (c *Client) SendToolResponse(resp *ToolResponse) error {
	if err := c.sendJSON(toolResponseMessage{ToolResponse: resp}); err != nil {
		return err
	}
	c.log("client.toolResponse", resp)
	return nil
}
