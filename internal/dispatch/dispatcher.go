// Package dispatch delivers pipeline outcomes to client connections.
package dispatch

import (
	"context"
	"time"

	"github.com/answerline/answerline/internal/pipeline"
	"github.com/answerline/answerline/internal/session"
	"github.com/answerline/answerline/internal/trace"
)

// AnswerMessage is sent when a window produced an answer.
type AnswerMessage struct {
	Type      string `json:"type"`
	Answer    string `json:"answer"`
	Timestamp int64  `json:"timestamp"`
}

// ErrorMessage is sent when a window could not be processed.
type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Dispatcher maps outcomes to client messages. No-answer outcomes send
// nothing; outcomes for sessions that disconnected are dropped.
type Dispatcher struct {
	registry *session.Registry
}

func New(registry *session.Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Dispatch delivers one outcome to the session's client.
func (d *Dispatcher) Dispatch(ctx context.Context, sessionID string, out pipeline.Outcome) {
	log := trace.Logger(ctx)

	s, ok := d.registry.Get(sessionID)
	if !ok {
		log.Debug("dropping outcome for disconnected session",
			"session_id", sessionID, "kind", string(out.Kind))
		return
	}

	var msg any
	switch out.Kind {
	case pipeline.KindAnswer:
		msg = AnswerMessage{
			Type:      "answer",
			Answer:    out.Answer,
			Timestamp: time.Now().UnixMilli(),
		}
	case pipeline.KindError:
		log.Error("window processing failed",
			"session_id", sessionID, "error", out.Err)
		msg = ErrorMessage{
			Type:    "error",
			Message: processingFailedMessage,
		}
	default:
		return
	}

	if err := s.Send(ctx, msg); err != nil {
		log.Warn("failed to deliver outcome",
			"session_id", sessionID, "error", err)
	}
}

// processingFailedMessage is the client-facing text for error outcomes.
// Internal fault details stay in the logs.
const processingFailedMessage = "Failed to process audio"
