package geminilive

import (
	"slices"
	"sync"

	"github.com/aaron-wade/gemlive/pkg/logstore"
)

// handlerSet is a registry of subscribers for one named event. Emission
// takes a snapshot under the lock and invokes handlers outside it, in
// registration order, so a handler may safely call back into the client.
type handlerSet[T any] struct {
	mu  sync.Mutex
	seq int
	fns map[int]func(T)
}

func (h *handlerSet[T]) add(fn func(T)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.fns == nil {
		h.fns = make(map[int]func(T))
	}
	id := h.seq
	h.seq++
	h.fns[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.fns, id)
	}
}

func (h *handlerSet[T]) emit(v T) {
	h.mu.Lock()
	ids := make([]int, 0, len(h.fns))
	for id := range h.fns {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(T), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, h.fns[id])
	}
	h.mu.Unlock()
	for _, fn := range fns {
		fn(v)
	}
}

// events holds the per-event subscriber registries of a Client.
type events struct {
	open          handlerSet[struct{}]
	closed        handlerSet[string]
	log           handlerSet[logstore.Entry]
	audio         handlerSet[[]byte]
	content       handlerSet[*ServerContent]
	interrupted   handlerSet[struct{}]
	setupComplete handlerSet[struct{}]
	turnComplete  handlerSet[struct{}]
	toolCall      handlerSet[*ToolCall]
	toolCancel    handlerSet[*ToolCallCancellation]
}

// OnOpen registers fn to run once the setup envelope has been sent on a new
// connection. The returned function unsubscribes it.
func (c *Client) OnOpen(fn func()) func() {
	return c.events.open.add(func(struct{}) { fn() })
}

// OnClose registers fn to run when the connection terminates, locally or
// remotely. The reason is the (possibly extracted) close reason, empty for
// local disconnects. Fires at most once per connection.
func (c *Client) OnClose(fn func(reason string)) func() {
	return c.events.closed.add(fn)
}

// OnLog registers fn for the client's trace entries. Wire a
// logstore.Store's Append here to retain them:
//
//	store := logstore.New(0)
//	client.OnLog(store.Append)
func (c *Client) OnLog(fn func(logstore.Entry)) func() {
	return c.events.log.add(fn)
}

// OnAudio registers fn for decoded audio/pcm chunks from model turns. One
// call per audio part, in part order.
func (c *Client) OnAudio(fn func(data []byte)) func() {
	return c.events.audio.add(fn)
}

// OnContent registers fn for non-audio model turn content. The ServerContent
// passed carries only the non-audio parts, in their original order.
func (c *Client) OnContent(fn func(*ServerContent)) func() {
	return c.events.content.add(fn)
}

// OnInterrupted registers fn for generation interruptions.
func (c *Client) OnInterrupted(fn func()) func() {
	return c.events.interrupted.add(func(struct{}) { fn() })
}

// OnSetupComplete registers fn for handshake completion.
func (c *Client) OnSetupComplete(fn func()) func() {
	return c.events.setupComplete.add(func(struct{}) { fn() })
}

// OnTurnComplete registers fn for model turn completion.
func (c *Client) OnTurnComplete(fn func()) func() {
	return c.events.turnComplete.add(func(struct{}) { fn() })
}

// OnToolCall registers fn for server-initiated function calls.
func (c *Client) OnToolCall(fn func(*ToolCall)) func() {
	return c.events.toolCall.add(fn)
}

// OnToolCallCancellation registers fn for cancellations of previously
// issued, not-yet-answered function calls.
func (c *Client) OnToolCallCancellation(fn func(*ToolCallCancellation)) func() {
	return c.events.toolCancel.add(fn)
}
