package unified

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/answerline/answerline/internal/config"
	"github.com/answerline/answerline/internal/errors"
	"github.com/answerline/answerline/internal/resilience"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(config.FallbackConfig{
		Endpoint: srv.URL,
		APIKey:   "test-key",
		Model:    "qa-multimodal",
		MimeType: "audio/pcm",
	})
}

func TestAnswerAudio(t *testing.T) {
	var gotReq answerRequest
	var gotAuth string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(answerResponse{Answer: "Friday at noon."})
	})

	answer, err := c.AnswerAudio(context.Background(), []byte{1, 2, 3}, "audio/pcm")
	if err != nil {
		t.Fatalf("AnswerAudio: %v", err)
	}
	if answer != "Friday at noon." {
		t.Errorf("answer = %q", answer)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReq.Model != "qa-multimodal" || gotReq.MimeType != "audio/pcm" {
		t.Errorf("request = %+v", gotReq)
	}
	if len(gotReq.Audio) != 3 {
		t.Errorf("audio round-trip lost bytes: %v", gotReq.Audio)
	}
	if gotReq.Instruction == "" {
		t.Error("request missing instruction")
	}
}

func TestAnswerAudioSentinelPassesThrough(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(answerResponse{Answer: "no-answer"})
	})

	// The sentinel is interpreted upstream; the client returns it as-is.
	answer, err := c.AnswerAudio(context.Background(), []byte{1}, "audio/pcm")
	if err != nil {
		t.Fatalf("AnswerAudio: %v", err)
	}
	if answer != "no-answer" {
		t.Errorf("answer = %q, want the sentinel untouched", answer)
	}
}

func TestAnswerAudioServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model crashed", http.StatusInternalServerError)
	})

	_, err := c.AnswerAudio(context.Background(), []byte{1}, "audio/pcm")
	if err == nil {
		t.Fatal("expected error on 500")
	}
	if !errors.IsCode(err, errors.CodeFallback) {
		t.Errorf("code = %v, want fallback", errors.CodeOf(err))
	}
}

func TestAnswerAudioBreakerOpens(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "down", http.StatusServiceUnavailable)
	})

	for i := 0; i < resilience.DefaultThreshold; i++ {
		_, _ = c.AnswerAudio(context.Background(), []byte{1}, "audio/pcm")
	}
	if c.Breaker().State() != resilience.Open {
		t.Fatalf("breaker state = %v, want Open", c.Breaker().State())
	}

	before := calls
	_, err := c.AnswerAudio(context.Background(), []byte{1}, "audio/pcm")
	if err == nil {
		t.Fatal("expected fast failure while open")
	}
	if !errors.IsCode(err, errors.CodeUnavailable) {
		t.Errorf("code = %v, want unavailable", errors.CodeOf(err))
	}
	if calls != before {
		t.Error("open breaker must not hit the endpoint")
	}
}
