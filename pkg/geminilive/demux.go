package geminilive

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// receive decodes one inbound frame and dispatches it. Recognized top-level
// keys are checked in priority order; the first match wins. Malformed or
// unmatched frames are logged and dropped so one bad frame cannot take the
// session down.
func (c *Client) receive(data []byte) {
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("received frame", "len", len(data), "content", truncate(string(data), 1000))
	}

	var msg serverMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.log("server.error", fmt.Sprintf("undecodable frame (%d bytes): %v", len(data), err))
		return
	}

	switch {
	case msg.ToolCall != nil:
		c.log("server.toolCall", msg.ToolCall)
		c.events.toolCall.emit(msg.ToolCall)

	case msg.ToolCallCancellation != nil:
		c.log("server.toolCallCancellation", msg.ToolCallCancellation)
		c.events.toolCancel.emit(msg.ToolCallCancellation)

	case msg.SetupComplete != nil:
		c.log("server.send", "setupComplete")
		c.events.setupComplete.emit(struct{}{})

	case msg.ServerContent != nil:
		c.receiveContent(msg.ServerContent, data)

	default:
		c.log("server.receive", "unmatched message: "+truncate(string(data), 200))
	}
}

// receiveContent handles a serverContent frame. interrupted short-circuits;
// turnComplete emits and falls through, since the server may piggyback
// model turn content on the same frame.
func (c *Client) receiveContent(sc *ServerContent, raw []byte) {
	if sc.Interrupted {
		c.log("server.receive", "interrupted")
		c.events.interrupted.emit(struct{}{})
		return
	}
	if sc.TurnComplete {
		c.log("server.receive", "turnComplete")
		c.events.turnComplete.emit(struct{}{})
	}
	if sc.ModelTurn == nil {
		return
	}

	// Audio parts go straight to the playback path, one event per part;
	// everything else becomes a single content event in original order.
	var audio, others []*Part
	for _, p := range sc.ModelTurn.Parts {
		if p.InlineData != nil && strings.HasPrefix(p.InlineData.MIMEType, "audio/pcm") {
			audio = append(audio, p)
		} else {
			others = append(others, p)
		}
	}

	for _, p := range audio {
		c.log("server.audio", fmt.Sprintf("buffer (%d)", len(p.InlineData.Data)))
		c.events.audio.emit([]byte(p.InlineData.Data))
	}

	if len(others) == 0 {
		return
	}

	c.events.content.emit(&ServerContent{
		ModelTurn: &Content{
			Role:  sc.ModelTurn.Role,
			Parts: others,
		},
	})
	c.log("server.content", json.RawMessage(raw))
}
