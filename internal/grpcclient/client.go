// Package grpcclient provides a client for the inference gRPC server.
package grpcclient

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/answerline/answerline/internal/errors"
	"github.com/answerline/answerline/internal/pipeline"
	"github.com/answerline/answerline/internal/trace"
	pb "github.com/answerline/answerline/pkg/pb"
)

// Client wraps the transcription and responder service clients. It
// satisfies the pipeline's Transcriber and Responder interfaces.
type Client struct {
	conn          *grpc.ClientConn
	Transcription pb.TranscriptionServiceClient
	Responder     pb.ResponderServiceClient
}

var (
	_ pipeline.Transcriber = (*Client)(nil)
	_ pipeline.Responder   = (*Client)(nil)
)

// New creates an inference client for addr.
func New(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(trace.UnaryClientInterceptor()),
	)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeTransport, "connect to inference server")
	}

	return &Client{
		conn:          conn,
		Transcription: pb.NewTranscriptionServiceClient(conn),
		Responder:     pb.NewResponderServiceClient(conn),
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Transcribe converts one audio window to text.
func (c *Client) Transcribe(ctx context.Context, audio []byte, format string, sampleRate int) (pipeline.Transcription, error) {
	resp, err := c.Transcription.Transcribe(ctx, &pb.TranscribeRequest{
		AudioData:  audio,
		Format:     format,
		SampleRate: int32(sampleRate),
	})
	if err != nil {
		return pipeline.Transcription{}, errors.FromGRPCError(err)
	}
	return pipeline.Transcription{
		Text:       resp.GetText(),
		Confidence: resp.GetConfidence(),
		Language:   resp.GetLanguage(),
	}, nil
}

// Respond asks the responder service to answer a prompt.
func (c *Client) Respond(ctx context.Context, prompt string) (string, error) {
	resp, err := c.Responder.Respond(ctx, &pb.RespondRequest{Prompt: prompt})
	if err != nil {
		return "", errors.FromGRPCError(err)
	}
	return resp.GetText(), nil
}

// IsQuestion checks whether text is a question.
func (c *Client) IsQuestion(ctx context.Context, text string) (bool, error) {
	resp, err := c.Responder.IsQuestion(ctx, &pb.IsQuestionRequest{Text: text})
	if err != nil {
		return false, errors.FromGRPCError(err)
	}
	return resp.GetIsQuestion(), nil
}
