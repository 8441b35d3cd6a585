package pipeline

import "context"

// Kind classifies the result of processing one audio window.
type Kind string

const (
	// KindAnswer carries an answer to deliver to the client.
	KindAnswer Kind = "answer"
	// KindNoAnswer means the window needed no reply (silence, no
	// question, or the model declined). Nothing is sent to the client.
	KindNoAnswer Kind = "no_answer"
	// KindError means both the primary path and the fallback faulted.
	KindError Kind = "error"
)

// Outcome is the result of processing one window.
type Outcome struct {
	Kind       Kind
	Answer     string
	Transcript string
	Err        error
}

// Transcription is the text produced from an audio window.
type Transcription struct {
	Text       string
	Confidence float32
	Language   string
}

// Transcriber converts an audio window to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, format string, sampleRate int) (Transcription, error)
}

// Responder produces an answer for a prompt.
type Responder interface {
	Respond(ctx context.Context, prompt string) (string, error)
}

// Fallback answers directly from audio when the primary path faults.
type Fallback interface {
	AnswerAudio(ctx context.Context, audio []byte, mimeType string) (string, error)
}
