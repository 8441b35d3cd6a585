package pipeline

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/answerline/answerline/internal/config"
	"github.com/answerline/answerline/internal/errors"
	"github.com/answerline/answerline/internal/metrics"
	"github.com/answerline/answerline/internal/pipeline/audio"
)

type fakeTranscriber struct {
	text  string
	err   error
	calls int
	block bool
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, _ []byte, _ string, _ int) (Transcription, error) {
	f.calls++
	if f.block {
		<-ctx.Done()
		return Transcription{}, ctx.Err()
	}
	if f.err != nil {
		return Transcription{}, f.err
	}
	return Transcription{Text: f.text, Confidence: 0.95}, nil
}

type fakeResponder struct {
	answer     string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeResponder) Respond(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.answer, f.err
}

type fakeFallback struct {
	answer string
	err    error
	calls  int
}

func (f *fakeFallback) AnswerAudio(context.Context, []byte, string) (string, error) {
	f.calls++
	return f.answer, f.err
}

func speechWindow() []byte {
	return audio.Encode([]float32{0.2, -0.3, 0.25, -0.15, 0.4, -0.35})
}

func silentWindow() []byte {
	return audio.Encode([]float32{0.001, -0.002, 0.001, 0})
}

func newOrchestrator(t *fakeTranscriber, r *fakeResponder, f *fakeFallback, mutate func(*config.Config)) *Orchestrator {
	cfg := config.Load()
	if mutate != nil {
		mutate(cfg)
	}
	return New(cfg, t, r, f, metrics.New(prometheus.NewRegistry()))
}

func TestProcessAnswersQuestion(t *testing.T) {
	tr := &fakeTranscriber{text: "what is the deadline?"}
	re := &fakeResponder{answer: "Friday at noon."}
	fb := &fakeFallback{}
	o := newOrchestrator(tr, re, fb, nil)

	out := o.Process(context.Background(), "s1", speechWindow())

	if out.Kind != KindAnswer {
		t.Fatalf("Kind = %v, want answer", out.Kind)
	}
	if out.Answer != "Friday at noon." {
		t.Errorf("Answer = %q", out.Answer)
	}
	if out.Transcript != "what is the deadline?" {
		t.Errorf("Transcript = %q", out.Transcript)
	}
	if fb.calls != 0 {
		t.Errorf("fallback called %d times on the happy path", fb.calls)
	}
}

func TestProcessSkipsSilence(t *testing.T) {
	tr := &fakeTranscriber{text: "should not be reached"}
	re := &fakeResponder{}
	fb := &fakeFallback{}
	o := newOrchestrator(tr, re, fb, nil)

	out := o.Process(context.Background(), "s1", silentWindow())

	if out.Kind != KindNoAnswer {
		t.Fatalf("Kind = %v, want no_answer", out.Kind)
	}
	if tr.calls != 0 {
		t.Error("silent window must not be transcribed")
	}
	if fb.calls != 0 {
		t.Error("silence must not trigger the fallback")
	}
}

func TestProcessEmptyTranscript(t *testing.T) {
	tr := &fakeTranscriber{text: "   "}
	re := &fakeResponder{}
	fb := &fakeFallback{}
	o := newOrchestrator(tr, re, fb, nil)

	out := o.Process(context.Background(), "s1", speechWindow())

	if out.Kind != KindNoAnswer {
		t.Fatalf("Kind = %v, want no_answer", out.Kind)
	}
	if re.calls != 0 {
		t.Error("empty transcript must not reach the responder")
	}
	if fb.calls != 0 {
		t.Error("empty transcript is not a fault, fallback must not run")
	}
}

func TestProcessDeclinedAnswer(t *testing.T) {
	tests := []struct {
		name   string
		answer string
	}{
		{"sentinel", "no-answer"},
		{"sentinel mixed case", "No-Answer"},
		{"empty", ""},
		{"whitespace", "  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &fakeTranscriber{text: "just chatting about lunch"}
			re := &fakeResponder{answer: tt.answer}
			fb := &fakeFallback{}
			o := newOrchestrator(tr, re, fb, nil)

			out := o.Process(context.Background(), "s1", speechWindow())

			if out.Kind != KindNoAnswer {
				t.Fatalf("Kind = %v, want no_answer", out.Kind)
			}
			if fb.calls != 0 {
				t.Error("a declined answer is not a fault, fallback must not run")
			}
		})
	}
}

func TestProcessTranscribeFaultUsesFallback(t *testing.T) {
	tr := &fakeTranscriber{err: stderrors.New("transcriber down")}
	re := &fakeResponder{}
	fb := &fakeFallback{answer: "The deadline is Friday."}
	o := newOrchestrator(tr, re, fb, nil)

	out := o.Process(context.Background(), "s1", speechWindow())

	if out.Kind != KindAnswer {
		t.Fatalf("Kind = %v, want answer from fallback", out.Kind)
	}
	if out.Answer != "The deadline is Friday." {
		t.Errorf("Answer = %q", out.Answer)
	}
	if fb.calls != 1 {
		t.Errorf("fallback called %d times, want exactly 1", fb.calls)
	}
	if re.calls != 0 {
		t.Error("responder must not run after a transcription fault")
	}
}

func TestProcessRespondFaultUsesFallback(t *testing.T) {
	tr := &fakeTranscriber{text: "what is our budget?"}
	re := &fakeResponder{err: stderrors.New("responder down")}
	fb := &fakeFallback{answer: "About 40k this quarter."}
	o := newOrchestrator(tr, re, fb, nil)

	out := o.Process(context.Background(), "s1", speechWindow())

	if out.Kind != KindAnswer {
		t.Fatalf("Kind = %v, want answer from fallback", out.Kind)
	}
	if fb.calls != 1 {
		t.Errorf("fallback called %d times, want exactly 1", fb.calls)
	}
}

func TestProcessFallbackDeclines(t *testing.T) {
	tr := &fakeTranscriber{err: stderrors.New("transcriber down")}
	fb := &fakeFallback{answer: "no-answer"}
	o := newOrchestrator(tr, &fakeResponder{}, fb, nil)

	out := o.Process(context.Background(), "s1", speechWindow())

	if out.Kind != KindNoAnswer {
		t.Fatalf("Kind = %v, want no_answer", out.Kind)
	}
}

func TestProcessDoubleFault(t *testing.T) {
	tr := &fakeTranscriber{err: stderrors.New("transcriber down")}
	fb := &fakeFallback{err: stderrors.New("fallback down")}
	o := newOrchestrator(tr, &fakeResponder{}, fb, nil)

	out := o.Process(context.Background(), "s1", speechWindow())

	if out.Kind != KindError {
		t.Fatalf("Kind = %v, want error", out.Kind)
	}
	if out.Err == nil {
		t.Fatal("error outcome must carry the cause")
	}
	if !errors.IsCode(out.Err, errors.CodeFallback) {
		t.Errorf("error code = %v, want fallback", errors.CodeOf(out.Err))
	}
	if fb.calls != 1 {
		t.Errorf("fallback called %d times, want exactly 1 (no retries)", fb.calls)
	}
}

func TestProcessStageTimeoutTriggersFallback(t *testing.T) {
	tr := &fakeTranscriber{block: true}
	fb := &fakeFallback{answer: "Recovered answer."}
	o := newOrchestrator(tr, &fakeResponder{}, fb, func(c *config.Config) {
		c.Pipeline.CallTimeoutMillis = 20
	})

	out := o.Process(context.Background(), "s1", speechWindow())

	if out.Kind != KindAnswer {
		t.Fatalf("Kind = %v, want answer after timeout fallback", out.Kind)
	}
	if fb.calls != 1 {
		t.Errorf("fallback called %d times, want 1", fb.calls)
	}
}

func TestProcessIncludesHistoryInPrompt(t *testing.T) {
	tr := &fakeTranscriber{text: "and when is the next one?"}
	re := &fakeResponder{answer: "Next Tuesday."}
	o := newOrchestrator(tr, re, &fakeFallback{}, func(c *config.Config) {
		c.Pipeline.HistoryEnabled = true
	})

	o.History().Record("s1", "when is the demo?", "Thursday.")
	o.Process(context.Background(), "s1", speechWindow())

	if !strings.Contains(re.lastPrompt, "when is the demo?") {
		t.Errorf("prompt missing prior question:\n%s", re.lastPrompt)
	}
	if !strings.Contains(re.lastPrompt, "and when is the next one?") {
		t.Errorf("prompt missing current transcript:\n%s", re.lastPrompt)
	}
}

func TestProcessHistoryDisabledByDefault(t *testing.T) {
	tr := &fakeTranscriber{text: "what time is it?"}
	re := &fakeResponder{answer: "Ten past three."}
	o := newOrchestrator(tr, re, &fakeFallback{}, nil)

	o.Process(context.Background(), "s1", speechWindow())

	if got := o.History().Recent("s1", 10); len(got) != 0 {
		t.Errorf("history recorded %d exchanges while disabled", len(got))
	}
}
