// Package server provides the HTTP and WebSocket surface.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/answerline/answerline/internal/config"
	"github.com/answerline/answerline/internal/errors"
	"github.com/answerline/answerline/internal/ingest"
	"github.com/answerline/answerline/internal/metrics"
	"github.com/answerline/answerline/internal/session"
	"github.com/answerline/answerline/internal/trace"
)

// ConnectedMessage greets a client with its session ID.
type ConnectedMessage struct {
	Type     string `json:"type"`
	ClientID string `json:"clientId"`
}

// Inference is the subset of the gRPC client the REST surface needs.
type Inference interface {
	Respond(ctx context.Context, prompt string) (string, error)
	IsQuestion(ctx context.Context, text string) (bool, error)
}

// Deps are the collaborators the server routes between.
type Deps struct {
	Registry    *session.Registry
	Accumulator *ingest.Accumulator
	Inference   Inference
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	// Handler processes each cut window; wired to the pipeline and
	// dispatcher at composition time.
	Handler session.Handler
	// OnDisconnect runs after a session is removed, for dropping
	// per-session state held elsewhere.
	OnDisconnect func(sessionID string)
}

// Server handles WebSocket audio ingestion and the REST endpoints.
type Server struct {
	cfg       *config.Config
	deps      Deps
	startedAt time.Time
}

func New(cfg *config.Config, deps Deps) *Server {
	return &Server{
		cfg:       cfg,
		deps:      deps,
		startedAt: time.Now(),
	}
}

// Handler returns the full HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/test", s.handleTest)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.deps.Gatherer, promhttp.HandlerOpts{}))

	return corsMiddleware(trace.Middleware(s.measure(mux)))
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response code for the request metrics.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) measure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The WebSocket upgrade hijacks the connection; wrapping its
		// ResponseWriter would break the hijack.
		if r.URL.Path == "/ws" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		s.deps.Metrics.HTTPRequests.WithLabelValues(r.URL.Path, strconv.Itoa(rec.code)).Inc()
		s.deps.Metrics.HTTPDuration.WithLabelValues(r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

// wsSender adapts a WebSocket connection to the session.Sender
// interface. Writes are serialized so the pipeline and the greeting
// cannot interleave frames.
type wsSender struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (w *wsSender) Send(ctx context.Context, v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return wsjson.Write(ctx, w.conn, v)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		trace.Logger(r.Context()).Error("websocket accept error", "error", err)
		return
	}
	defer func() { _ = conn.Close(websocket.StatusNormalClosure, "") }()

	ctx := r.Context()
	log := trace.Logger(ctx)

	sender := &wsSender{conn: conn}
	sess := s.deps.Registry.Register(sender, s.deps.Handler)
	s.deps.Metrics.SessionsCreated.Inc()
	s.deps.Metrics.SessionsActive.Inc()
	log.Info("client connected", "session_id", sess.ID, "remote", r.RemoteAddr)

	defer func() {
		s.deps.Registry.Remove(sess.ID)
		s.deps.Metrics.SessionsDestroyed.Inc()
		s.deps.Metrics.SessionsActive.Dec()
		if s.deps.OnDisconnect != nil {
			s.deps.OnDisconnect(sess.ID)
		}
		log.Info("client disconnected", "session_id", sess.ID)
	}()

	if err := sess.Send(ctx, ConnectedMessage{Type: "connected", ClientID: sess.ID}); err != nil {
		log.Warn("failed to send greeting", "session_id", sess.ID, "error", err)
		return
	}

	limiter := &rateLimiter{limit: s.cfg.Audio.ChunkRateLimit}
	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			log.Debug("websocket read ended", "session_id", sess.ID, "error", err)
			return
		}

		if typ != websocket.MessageBinary {
			// Text frames are not part of the protocol.
			continue
		}

		if !limiter.allow() {
			s.deps.Metrics.ChunksDropped.Inc()
			log.Warn("chunk rate limit exceeded, dropping",
				"session_id", sess.ID, "remote", r.RemoteAddr)
			continue
		}

		s.deps.Accumulator.Ingest(ctx, sess.ID, data)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"timestamp":      time.Now().UnixMilli(),
		"clients":        s.deps.Registry.Count(),
		"uptime_seconds": int64(time.Since(s.startedAt).Seconds()),
	})
}

type testRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	var req testRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "text is required",
		})
		return
	}

	ctx := r.Context()
	log := trace.Logger(ctx)

	isQuestion, err := s.deps.Inference.IsQuestion(ctx, req.Text)
	if err != nil {
		log.Error("question check failed", "error", err)
		writeJSON(w, errors.HTTPStatus(err), map[string]string{
			"error": "failed to process text",
		})
		return
	}

	answer, err := s.deps.Inference.Respond(ctx, req.Text)
	if err != nil {
		log.Error("test respond failed", "error", err)
		writeJSON(w, errors.HTTPStatus(err), map[string]string{
			"error": "failed to process text",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"answer":     answer,
		"isQuestion": isQuestion,
		"timestamp":  time.Now().UnixMilli(),
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
