package geminilive

// Outbound envelopes. Each serializes to one JSON text frame; the top-level
// key tells the server which message it is.

type setupMessage struct {
	Setup *LiveConfig `json:"setup"`
}

type clientContentMessage struct {
	ClientContent *ClientContent `json:"clientContent"`
}

// ClientContent is an incremental update of user turns.
type ClientContent struct {
	Turns        []*Content `json:"turns,omitzero"`
	TurnComplete bool       `json:"turnComplete"`
}

type realtimeInputMessage struct {
	RealtimeInput *RealtimeInput `json:"realtimeInput"`
}

// RealtimeInput carries media chunks sent in realtime, outside of turn
// boundaries.
type RealtimeInput struct {
	MediaChunks []*Blob `json:"mediaChunks,omitzero"`
}

type toolResponseMessage struct {
	ToolResponse *ToolResponse `json:"toolResponse"`
}

// serverMessage is the tagged union of recognized inbound frames. Exactly
// one field is set on a well-formed frame; dispatch checks them in the
// priority order of receive.
type serverMessage struct {
	ToolCall             *ToolCall             `json:"toolCall,omitzero"`
	ToolCallCancellation *ToolCallCancellation `json:"toolCallCancellation,omitzero"`
	SetupComplete        *SetupComplete        `json:"setupComplete,omitzero"`
	ServerContent        *ServerContent        `json:"serverContent,omitzero"`
}

// SetupComplete marks the handshake as finished.
type SetupComplete struct{}

// ServerContent is incremental model output. TurnComplete and ModelTurn may
// arrive in the same frame; Interrupted supersedes both.
type ServerContent struct {
	ModelTurn    *Content `json:"modelTurn,omitzero"`
	TurnComplete bool     `json:"turnComplete,omitzero"`
	Interrupted  bool     `json:"interrupted,omitzero"`
}
