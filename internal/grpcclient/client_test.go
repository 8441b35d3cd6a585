package grpcclient

import (
	"context"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/answerline/answerline/internal/errors"
	pb "github.com/answerline/answerline/pkg/pb"
)

type fakeInference struct {
	pb.UnimplementedTranscriptionServiceServer
	pb.UnimplementedResponderServiceServer

	transcribeErr error
}

func (f *fakeInference) Transcribe(_ context.Context, req *pb.TranscribeRequest) (*pb.TranscribeResponse, error) {
	if f.transcribeErr != nil {
		return nil, f.transcribeErr
	}
	return &pb.TranscribeResponse{
		Text:       "what is the deadline?",
		Confidence: 0.92,
		Language:   "en",
	}, nil
}

func (f *fakeInference) Respond(_ context.Context, req *pb.RespondRequest) (*pb.RespondResponse, error) {
	return &pb.RespondResponse{Text: "Friday at noon."}, nil
}

func (f *fakeInference) IsQuestion(_ context.Context, req *pb.IsQuestionRequest) (*pb.IsQuestionResponse, error) {
	return &pb.IsQuestionResponse{IsQuestion: true}, nil
}

func newTestClient(t *testing.T, fake *fakeInference) *Client {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterTranscriptionServiceServer(srv, fake)
	pb.RegisterResponderServiceServer(srv, fake)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return &Client{
		conn:          conn,
		Transcription: pb.NewTranscriptionServiceClient(conn),
		Responder:     pb.NewResponderServiceClient(conn),
	}
}

func TestTranscribe(t *testing.T) {
	c := newTestClient(t, &fakeInference{})

	tr, err := c.Transcribe(context.Background(), []byte{1, 2, 3}, "pcm_f32le", 16000)
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if tr.Text != "what is the deadline?" {
		t.Errorf("Text = %q", tr.Text)
	}
	if tr.Language != "en" {
		t.Errorf("Language = %q", tr.Language)
	}
}

func TestTranscribeMapsGRPCErrors(t *testing.T) {
	c := newTestClient(t, &fakeInference{
		transcribeErr: status.Error(codes.Unavailable, "model loading"),
	})

	_, err := c.Transcribe(context.Background(), []byte{1}, "pcm_f32le", 16000)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsCode(err, errors.CodeUnavailable) {
		t.Errorf("code = %v, want unavailable", errors.CodeOf(err))
	}
}

func TestRespond(t *testing.T) {
	c := newTestClient(t, &fakeInference{})

	answer, err := c.Respond(context.Background(), "what is the deadline?")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if answer != "Friday at noon." {
		t.Errorf("answer = %q", answer)
	}
}

func TestIsQuestion(t *testing.T) {
	c := newTestClient(t, &fakeInference{})

	got, err := c.IsQuestion(context.Background(), "what is the deadline?")
	if err != nil {
		t.Fatalf("IsQuestion: %v", err)
	}
	if !got {
		t.Error("IsQuestion = false, want true")
	}
}
