// Package session tracks connected clients and the per-client audio
// buffer and processing queue.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/answerline/answerline/internal/errors"
)

// Window is a contiguous slice of accumulated audio cut from a session
// buffer and handed to the processing pipeline.
type Window struct {
	Audio  []byte
	CutAt  time.Time
	Forced bool // buffer hit its cap before the time threshold elapsed
}

// Sender delivers a JSON-encodable message to the client connection.
type Sender interface {
	Send(ctx context.Context, v any) error
}

// Handler processes one window for a session. Invoked by the drain
// goroutine, one window at a time per session.
type Handler func(ctx context.Context, s *Session, w Window)

// Session is the state for one connected client. All mutable state is
// guarded by mu; methods are safe for concurrent use.
type Session struct {
	ID      string
	sender  Sender
	handler Handler

	mu       sync.Mutex
	buf      []byte
	lastCut  time.Time
	closed   bool
	queue    []Window
	inflight bool
}

// New creates a session. now seeds the accumulation clock so the first
// window is measured from connection time.
func New(id string, sender Sender, handler Handler, now time.Time) *Session {
	return &Session{
		ID:      id,
		sender:  sender,
		handler: handler,
		lastCut: now,
	}
}

// Append adds a chunk to the session buffer and cuts a window when the
// accumulation threshold has elapsed, or earlier when the buffer reaches
// maxBytes. Returns the cut window and true when a cut happened.
func (s *Session) Append(chunk []byte, now time.Time, cutAfter time.Duration, maxBytes int) (Window, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Window{}, false
	}

	s.buf = append(s.buf, chunk...)
	if len(s.buf) == 0 {
		return Window{}, false
	}

	forced := len(s.buf) >= maxBytes
	if !forced && now.Sub(s.lastCut) < cutAfter {
		return Window{}, false
	}

	w := Window{Audio: s.buf, CutAt: now, Forced: forced}
	s.buf = nil
	s.lastCut = now
	return w, true
}

// BufferedBytes reports the current buffer size.
func (s *Session) BufferedBytes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buf)
}

// Send delivers a message to the client, failing once the session closed.
func (s *Session) Send(ctx context.Context, v any) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return errors.New(errors.CodeUnavailable, "session closed")
	}
	return s.sender.Send(ctx, v)
}

// Close marks the session closed and discards any queued windows. A
// window already being processed runs to completion; its result is
// dropped at dispatch because the session is gone from the registry.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.buf = nil
	s.queue = nil
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
