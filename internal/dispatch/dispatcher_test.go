package dispatch

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"

	"github.com/answerline/answerline/internal/pipeline"
	"github.com/answerline/answerline/internal/session"
)

type captureSender struct {
	mu   sync.Mutex
	sent []any
}

func (c *captureSender) Send(_ context.Context, v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, v)
	return nil
}

func (c *captureSender) messages() []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]any(nil), c.sent...)
}

func TestDispatchAnswer(t *testing.T) {
	reg := session.NewRegistry()
	sender := &captureSender{}
	s := reg.Register(sender, nil)

	New(reg).Dispatch(context.Background(), s.ID, pipeline.Outcome{
		Kind:   pipeline.KindAnswer,
		Answer: "Friday at noon.",
	})

	msgs := sender.messages()
	if len(msgs) != 1 {
		t.Fatalf("sent %d messages, want 1", len(msgs))
	}
	am, ok := msgs[0].(AnswerMessage)
	if !ok {
		t.Fatalf("sent %T, want AnswerMessage", msgs[0])
	}
	if am.Type != "answer" || am.Answer != "Friday at noon." {
		t.Errorf("unexpected message %+v", am)
	}
	if am.Timestamp == 0 {
		t.Error("answer message missing timestamp")
	}
}

func TestDispatchError(t *testing.T) {
	reg := session.NewRegistry()
	sender := &captureSender{}
	s := reg.Register(sender, nil)

	New(reg).Dispatch(context.Background(), s.ID, pipeline.Outcome{
		Kind: pipeline.KindError,
		Err:  stderrors.New("grpc: connection refused"),
	})

	msgs := sender.messages()
	if len(msgs) != 1 {
		t.Fatalf("sent %d messages, want 1", len(msgs))
	}
	em, ok := msgs[0].(ErrorMessage)
	if !ok {
		t.Fatalf("sent %T, want ErrorMessage", msgs[0])
	}
	if em.Message != "Failed to process audio" {
		t.Errorf("Message = %q, internal details must not leak", em.Message)
	}
}

func TestDispatchNoAnswerSendsNothing(t *testing.T) {
	reg := session.NewRegistry()
	sender := &captureSender{}
	s := reg.Register(sender, nil)

	New(reg).Dispatch(context.Background(), s.ID, pipeline.Outcome{Kind: pipeline.KindNoAnswer})

	if got := len(sender.messages()); got != 0 {
		t.Errorf("no-answer outcome sent %d messages, want 0", got)
	}
}

func TestDispatchDisconnectedSessionIsNoop(t *testing.T) {
	reg := session.NewRegistry()
	sender := &captureSender{}
	s := reg.Register(sender, nil)
	reg.Remove(s.ID)

	New(reg).Dispatch(context.Background(), s.ID, pipeline.Outcome{
		Kind:   pipeline.KindAnswer,
		Answer: "too late",
	})

	if got := len(sender.messages()); got != 0 {
		t.Errorf("disconnected session received %d messages, want 0", got)
	}
}
