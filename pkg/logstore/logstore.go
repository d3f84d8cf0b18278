// Package logstore provides a bounded, order-preserving, deduplicating
// store for session trace entries. It is independent of the transport:
// any component may append, and readers only ever see copies.
package logstore

import (
	"reflect"
	"sync"

	"github.com/aaron-wade/gemlive/pkg/jsontime"
)

// DefaultMaxSize is the default entry capacity of a Store.
const DefaultMaxSize = 1000

// Entry is one trace entry. Message is either a string or a structured,
// JSON-marshalable value. Count is the number of times the entry was
// repeated back-to-back; zero on first occurrence.
type Entry struct {
	Date    jsontime.Milli `json:"date"`
	Type    string         `json:"type,omitzero"`
	Message any            `json:"message,omitzero"`
	Count   int            `json:"count,omitzero"`
}

// Store holds entries in append order, deduplicating consecutive repeats
// and evicting from the front once maxSize is exceeded. All methods are
// safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	maxSize int
	entries []Entry
}

// New creates a store with the given capacity. A non-positive maxSize
// selects DefaultMaxSize.
func New(maxSize int) *Store {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Store{maxSize: maxSize}
}

// Append adds an entry. When the newest stored entry has the same type and
// message, it is replaced with an incremented repeat count instead of
// growing the store; this keeps memory bounded under noisy repeated events
// such as audio buffer traces. Otherwise the entry is appended and the
// oldest entries are dropped to keep the size within capacity.
func (s *Store) Append(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n := len(s.entries); n > 0 {
		last := &s.entries[n-1]
		if last.Type == e.Type && sameMessage(last.Message, e.Message) {
			last.Date = e.Date
			last.Count++
			return
		}
	}

	s.entries = append(s.entries, e)
	if over := len(s.entries) - s.maxSize; over > 0 {
		s.entries = append(s.entries[:0], s.entries[over:]...)
	}
}

// sameMessage reports whether two entry messages are equal. Strings are the
// common case; structured messages fall back to deep equality.
func sameMessage(a, b any) bool {
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		return ok && as == bs
	}
	return reflect.DeepEqual(a, b)
}

// Entries returns a snapshot of the stored entries, oldest first. The copy
// is shallow: a structured Message still aliases the stored value, so
// callers must treat Message contents as read-only.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Clear empties the store.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// SetMaxSize changes the capacity, evicting the oldest entries immediately
// when the store shrinks below its current size. A non-positive value
// selects DefaultMaxSize.
func (s *Store) SetMaxSize(n int) {
	if n <= 0 {
		n = DefaultMaxSize
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxSize = n
	if over := len(s.entries) - n; over > 0 {
		s.entries = append(s.entries[:0], s.entries[over:]...)
	}
}
