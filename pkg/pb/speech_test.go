package pb

import (
	"testing"
)

func TestTranscribeRequest(t *testing.T) {
	req := &TranscribeRequest{
		AudioData:  []byte{0, 0, 0, 0},
		Format:     "pcm_f32le",
		SampleRate: 16000,
	}

	if len(req.GetAudioData()) != 4 {
		t.Errorf("AudioData length = %d, want 4", len(req.GetAudioData()))
	}
	if req.GetFormat() != "pcm_f32le" {
		t.Errorf("Format = %q, want %q", req.GetFormat(), "pcm_f32le")
	}
	if req.GetSampleRate() != 16000 {
		t.Errorf("SampleRate = %d, want %d", req.GetSampleRate(), 16000)
	}
}

func TestTranscribeResponse(t *testing.T) {
	resp := &TranscribeResponse{
		Text:       "is this a question",
		Confidence: 0.92,
		Language:   "en",
	}

	if resp.GetText() != "is this a question" {
		t.Errorf("Text = %q, want %q", resp.GetText(), "is this a question")
	}
	if resp.GetConfidence() != 0.92 {
		t.Errorf("Confidence = %f, want %f", resp.GetConfidence(), 0.92)
	}
	if resp.GetLanguage() != "en" {
		t.Errorf("Language = %q, want %q", resp.GetLanguage(), "en")
	}
}

func TestNilGetters(t *testing.T) {
	var req *RespondRequest
	if req.GetPrompt() != "" {
		t.Error("nil RespondRequest should return empty prompt")
	}

	var resp *IsQuestionResponse
	if resp.GetIsQuestion() {
		t.Error("nil IsQuestionResponse should return false")
	}
}
