package geminilive

import (
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/aaron-wade/gemlive/pkg/jsontime"
	"github.com/aaron-wade/gemlive/pkg/logstore"
)

const (
	// DefaultHost is the default Live API host.
	DefaultHost = "generativelanguage.googleapis.com"

	// DefaultService is the fully-qualified bidirectional streaming method.
	DefaultService = "google.ai.generativelanguage.v1alpha.GenerativeService.BidiGenerateContent"
)

// State is the connection state of a Client.
type State int

const (
	StateIdle State = iota
	StateConnecting
	StateOpen
	StateClosed
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Client is a Gemini Live API session client. A client owns at most one
// connection at a time; it may be reconnected after a close.
//
// Connect, Disconnect and the send operations are safe for concurrent use.
// Inbound frames are dispatched in arrival order, each to completion.
type Client struct {
	config *clientConfig
	events events

	mu         sync.Mutex
	state      State
	conn       *websocket.Conn
	liveConfig *LiveConfig
	connID     string
	closeOnce  *sync.Once
}

// clientConfig holds the client configuration.
type clientConfig struct {
	apiKey  string
	host    string
	service string
	wsURL   string // full URL override, for tests and proxies
	dialer  *websocket.Dialer
}

// Option configures the Client.
type Option func(*clientConfig)

// NewClient creates a Live API client. The API key is resolved at Connect
// time, so construction never fails.
func NewClient(apiKey string, opts ...Option) *Client {
	cfg := &clientConfig{
		apiKey:  apiKey,
		host:    DefaultHost,
		service: DefaultService,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Client{config: cfg}
}

// WithHost sets the API host.
func WithHost(host string) Option {
	return func(c *clientConfig) {
		c.host = host
	}
}

// WithService sets the fully-qualified streaming service method.
func WithService(service string) Option {
	return func(c *clientConfig) {
		c.service = service
	}
}

// WithWebSocketURL overrides the entire connection URL. The API key is
// still appended as the key query parameter.
func WithWebSocketURL(url string) Option {
	return func(c *clientConfig) {
		c.wsURL = url
	}
}

// WithDialer sets a custom WebSocket dialer.
func WithDialer(d *websocket.Dialer) Option {
	return func(c *clientConfig) {
		c.dialer = d
	}
}

// endpoint returns the dial URL and a key-free form for error messages
// and logs.
func (c *clientConfig) endpoint() (url, display string) {
	if c.wsURL != "" {
		display = c.wsURL
	} else {
		display = "wss://" + c.host + "/ws/" + c.service
	}
	return display + "?key=" + c.apiKey, display
}

// State returns the current connection state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// GetConfig returns the configuration of the current (or most recent)
// connection, nil before the first Connect.
func (c *Client) GetConfig() *LiveConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.liveConfig
}

// log emits one trace entry to the log subscribers and mirrors it to slog
// at debug level.
func (c *Client) log(typ string, msg any) {
	slog.Debug("live client", "type", typ, "conn", c.currentConnID())
	c.events.log.emit(logstore.Entry{
		Date:    jsontime.NowEpochMilli(),
		Type:    typ,
		Message: msg,
	})
}

func (c *Client) setState(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}

func (c *Client) currentConnID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connID
}

// truncate shortens s for debug logging.
func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
