// Answerline server - accumulates meeting audio over WebSocket, detects
// questions, and pushes answers back to clients.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/answerline/answerline/internal/config"
	"github.com/answerline/answerline/internal/dispatch"
	"github.com/answerline/answerline/internal/grpcclient"
	"github.com/answerline/answerline/internal/ingest"
	"github.com/answerline/answerline/internal/metrics"
	"github.com/answerline/answerline/internal/pipeline"
	"github.com/answerline/answerline/internal/resilience"
	"github.com/answerline/answerline/internal/server"
	"github.com/answerline/answerline/internal/session"
	"github.com/answerline/answerline/internal/unified"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	cfg := config.Load()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadFile(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
	} else if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	m := metrics.NewDefault()

	inference, err := grpcclient.New(cfg.InferenceAddr)
	if err != nil {
		slog.Error("failed to connect to inference server", "addr", cfg.InferenceAddr, "error", err)
		os.Exit(1)
	}
	defer func() { _ = inference.Close() }()

	fallback := unified.New(cfg.Fallback)
	fallback.Breaker().WithHook(func(_, to resilience.State) {
		m.FallbackBreakerState.Set(float64(to))
	})

	registry := session.NewRegistry()
	accumulator := ingest.New(registry, m, cfg.Audio)
	orch := pipeline.New(cfg, inference, inference, fallback, m)
	disp := dispatch.New(registry)

	handler := func(ctx context.Context, s *session.Session, w session.Window) {
		disp.Dispatch(ctx, s.ID, orch.Process(ctx, s.ID, w.Audio))
	}

	srv := server.New(cfg, server.Deps{
		Registry:     registry,
		Accumulator:  accumulator,
		Inference:    inference,
		Metrics:      m,
		Gatherer:     prometheus.DefaultGatherer,
		Handler:      handler,
		OnDisconnect: orch.History().Drop,
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: server.ReadHeaderTimeout,
	}

	go func() {
		slog.Info("answerline server starting",
			"http", cfg.HTTPAddr,
			"inference", cfg.InferenceAddr,
			"window_ms", cfg.Audio.WindowMillis)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("http server error", "error", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	slog.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown error", "error", err)
	}
	slog.Info("shutdown complete")
}
