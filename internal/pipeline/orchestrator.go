// Package pipeline orchestrates the processing of one audio window:
// preprocessing, transcription, answering, and the fallback path.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/answerline/answerline/internal/config"
	"github.com/answerline/answerline/internal/errors"
	"github.com/answerline/answerline/internal/metrics"
	"github.com/answerline/answerline/internal/pipeline/audio"
	"github.com/answerline/answerline/internal/trace"
)

// Orchestrator runs the window pipeline. The primary path is
// preprocess, transcribe, respond. When a primary stage faults the
// window is retried exactly once through the fallback, which answers
// directly from audio. A second fault yields an error outcome; there
// are no automatic retries beyond that.
type Orchestrator struct {
	processor   *audio.Processor
	transcriber Transcriber
	responder   Responder
	fallback    Fallback
	history     *History
	metrics     *metrics.Metrics

	format      string
	sampleRate  int
	mimeType    string
	meetingType string
	callTimeout time.Duration
}

func New(cfg *config.Config, t Transcriber, r Responder, f Fallback, m *metrics.Metrics) *Orchestrator {
	return &Orchestrator{
		processor: &audio.Processor{
			SilenceThreshold: cfg.Pipeline.SilenceThreshold,
			TargetPeak:       cfg.Pipeline.TargetPeak,
			BoostBelow:       cfg.Pipeline.NormalizeBelowPeak,
		},
		transcriber: t,
		responder:   r,
		fallback:    f,
		history:     NewHistory(cfg.Pipeline.HistoryEnabled, cfg.Pipeline.HistoryLimit),
		metrics:     m,
		format:      cfg.Audio.Format,
		sampleRate:  cfg.Audio.SampleRate,
		mimeType:    cfg.Fallback.MimeType,
		meetingType: cfg.Pipeline.MeetingType,
		callTimeout: cfg.Pipeline.CallTimeout(),
	}
}

// History exposes the exchange store so the server can drop a session's
// context when the client disconnects.
func (o *Orchestrator) History() *History {
	return o.history
}

// Process runs one window through the pipeline and returns its outcome.
func (o *Orchestrator) Process(ctx context.Context, sessionID string, window []byte) Outcome {
	ctx, span := trace.StartSpan(ctx, "process_window")
	defer span.End()
	log := trace.Logger(ctx)

	start := time.Now()
	conditioned, silent := o.processor.Process(window)
	o.observe(stagePreprocess, start)
	if silent {
		log.Debug("window is silence, skipping", "session_id", sessionID)
		return o.done(Outcome{Kind: KindNoAnswer})
	}

	transcript, err := o.transcribe(ctx, conditioned)
	if err != nil {
		o.metrics.StageFaults.WithLabelValues(stageTranscribe).Inc()
		log.Warn("transcription failed, trying fallback",
			"session_id", sessionID, "error", err)
		return o.done(o.runFallback(ctx, conditioned))
	}
	if strings.TrimSpace(transcript.Text) == "" {
		log.Debug("empty transcript, no question to answer", "session_id", sessionID)
		return o.done(Outcome{Kind: KindNoAnswer})
	}

	answer, err := o.respond(ctx, sessionID, transcript.Text)
	if err != nil {
		o.metrics.StageFaults.WithLabelValues(stageRespond).Inc()
		log.Warn("answering failed, trying fallback",
			"session_id", sessionID, "error", err)
		return o.done(o.runFallback(ctx, conditioned))
	}

	answer = strings.TrimSpace(answer)
	if answer == "" || strings.EqualFold(answer, noAnswerSentinel) {
		return o.done(Outcome{Kind: KindNoAnswer, Transcript: transcript.Text})
	}

	o.history.Record(sessionID, transcript.Text, answer)
	return o.done(Outcome{Kind: KindAnswer, Answer: answer, Transcript: transcript.Text})
}

func (o *Orchestrator) transcribe(ctx context.Context, window []byte) (Transcription, error) {
	ctx, cancel := context.WithTimeout(ctx, o.callTimeout)
	defer cancel()

	start := time.Now()
	tr, err := o.transcriber.Transcribe(ctx, window, o.format, o.sampleRate)
	o.observe(stageTranscribe, start)
	return tr, err
}

func (o *Orchestrator) respond(ctx context.Context, sessionID, transcript string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.callTimeout)
	defer cancel()

	start := time.Now()
	answer, err := o.responder.Respond(ctx, o.buildPrompt(sessionID, transcript))
	o.observe(stageRespond, start)
	return answer, err
}

// runFallback is the single recovery path after a primary stage fault.
func (o *Orchestrator) runFallback(ctx context.Context, window []byte) Outcome {
	ctx, span := trace.StartSpan(ctx, "fallback")
	defer span.End()

	o.metrics.FallbackAttempts.Inc()

	ctx, cancel := context.WithTimeout(ctx, o.callTimeout)
	defer cancel()

	start := time.Now()
	answer, err := o.fallback.AnswerAudio(ctx, window, o.mimeType)
	o.observe(stageFallback, start)
	if err != nil {
		span.SetAttr("error", err.Error())
		o.metrics.FallbackFailures.Inc()
		o.metrics.StageFaults.WithLabelValues(stageFallback).Inc()
		return Outcome{
			Kind: KindError,
			Err:  errors.Wrap(err, errors.CodeFallback, "fallback processing failed"),
		}
	}

	answer = strings.TrimSpace(answer)
	if answer == "" || strings.EqualFold(answer, noAnswerSentinel) {
		return Outcome{Kind: KindNoAnswer}
	}
	return Outcome{Kind: KindAnswer, Answer: answer}
}

func (o *Orchestrator) buildPrompt(sessionID, transcript string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Meeting type: %s.\n", o.meetingType)

	if recent := o.history.Recent(sessionID, historyContextSize); len(recent) > 0 {
		b.WriteString("Earlier in this meeting:\n")
		for _, e := range recent {
			fmt.Fprintf(&b, "Q: %s\nA: %s\n", e.Question, e.Answer)
		}
	}

	fmt.Fprintf(&b, "If the following transcript contains a question, answer it concisely. If it does not, reply with exactly %q.\nTranscript: %s", noAnswerSentinel, transcript)
	return b.String()
}

func (o *Orchestrator) observe(stage string, start time.Time) {
	o.metrics.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

func (o *Orchestrator) done(out Outcome) Outcome {
	o.metrics.Outcomes.WithLabelValues(string(out.Kind)).Inc()
	return out
}
