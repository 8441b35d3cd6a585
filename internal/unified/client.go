// Package unified calls the combined transcribe-and-answer HTTP service
// used as the fallback when the primary gRPC pipeline faults.
package unified

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/answerline/answerline/internal/config"
	"github.com/answerline/answerline/internal/errors"
	"github.com/answerline/answerline/internal/pipeline"
	"github.com/answerline/answerline/internal/resilience"
)

// instruction tells the service how to treat non-questions. The reply
// contract matches the primary responder's.
const instruction = `If the audio contains a question, answer it concisely. If it does not, reply with exactly "no-answer".`

// Client posts audio windows to the fallback endpoint. A circuit
// breaker fails calls fast while the endpoint is down so queued windows
// do not each wait out the full timeout.
type Client struct {
	cfg        config.FallbackConfig
	httpClient *http.Client
	breaker    *resilience.Breaker
}

var _ pipeline.Fallback = (*Client)(nil)

type answerRequest struct {
	Model       string `json:"model"`
	MimeType    string `json:"mime_type"`
	Audio       []byte `json:"audio"` // base64 on the wire
	Instruction string `json:"instruction"`
}

type answerResponse struct {
	Answer string `json:"answer"`
}

func New(cfg config.FallbackConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		breaker:    resilience.New("fallback", resilience.DefaultConfig()),
	}
}

// Breaker exposes the circuit breaker for metrics hooks.
func (c *Client) Breaker() *resilience.Breaker {
	return c.breaker
}

// AnswerAudio sends one audio window and returns the service's answer.
func (c *Client) AnswerAudio(ctx context.Context, audio []byte, mimeType string) (string, error) {
	answer, err := resilience.Do(c.breaker, func() (string, error) {
		return c.post(ctx, audio, mimeType)
	})
	if err == resilience.ErrOpen {
		return "", errors.Wrap(err, errors.CodeUnavailable, "fallback circuit open")
	}
	return answer, err
}

func (c *Client) post(ctx context.Context, audio []byte, mimeType string) (string, error) {
	body, err := json.Marshal(answerRequest{
		Model:       c.cfg.Model,
		MimeType:    mimeType,
		Audio:       audio,
		Instruction: instruction,
	})
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "encode fallback request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "build fallback request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeTransport, "fallback request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", errors.New(errors.CodeFallback,
			fmt.Sprintf("fallback returned %d: %s", resp.StatusCode, snippet))
	}

	var out answerResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, errors.CodeFallback, "decode fallback response")
	}
	return out.Answer, nil
}
