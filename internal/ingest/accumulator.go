// Package ingest turns the incoming stream of audio chunks into
// fixed-interval windows queued for processing.
package ingest

import (
	"context"
	"time"

	"github.com/answerline/answerline/internal/config"
	"github.com/answerline/answerline/internal/metrics"
	"github.com/answerline/answerline/internal/session"
	"github.com/answerline/answerline/internal/trace"
)

// Accumulator applies the windowing policy to incoming chunks. Chunks
// append to the session buffer; once the window interval has elapsed
// since the last cut (or the buffer hits its cap) the buffered audio is
// cut into a window and enqueued on the session's processing queue.
type Accumulator struct {
	registry *session.Registry
	metrics  *metrics.Metrics
	window   time.Duration
	maxBytes int
	now      func() time.Time
}

func New(registry *session.Registry, m *metrics.Metrics, cfg config.AudioConfig) *Accumulator {
	return &Accumulator{
		registry: registry,
		metrics:  m,
		window:   cfg.Window(),
		maxBytes: cfg.MaxBufferBytes,
		now:      time.Now,
	}
}

// Ingest handles one audio chunk for a session. Chunks for unknown or
// removed sessions are dropped silently.
func (a *Accumulator) Ingest(ctx context.Context, sessionID string, chunk []byte) {
	s, ok := a.registry.Get(sessionID)
	if !ok {
		return
	}

	a.metrics.AudioBytesReceived.Add(float64(len(chunk)))

	w, cut := s.Append(chunk, a.now(), a.window, a.maxBytes)
	if !cut {
		return
	}

	a.metrics.WindowsCut.Inc()
	if w.Forced {
		a.metrics.WindowsForced.Inc()
		trace.Logger(ctx).Warn("buffer cap reached, cutting window early",
			"session_id", sessionID,
			"bytes", len(w.Audio))
	}

	trace.Logger(ctx).Debug("window cut",
		"session_id", sessionID,
		"bytes", len(w.Audio),
		"queued", s.QueueLen())

	s.Enqueue(ctx, w)
}
