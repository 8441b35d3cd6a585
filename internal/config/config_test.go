package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "localhost:50051", cfg.InferenceAddr)
	assert.Equal(t, 16000, cfg.Audio.SampleRate)
	assert.Equal(t, 3000, cfg.Audio.WindowMillis)
	assert.Equal(t, 3*time.Second, cfg.Audio.Window())
	assert.Equal(t, 15*time.Second, cfg.Pipeline.CallTimeout())
	assert.False(t, cfg.Pipeline.HistoryEnabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("WINDOW_MILLIS", "5000")
	t.Setenv("MEETING_TYPE", "standup")
	t.Setenv("HISTORY_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, 5000, cfg.Audio.WindowMillis)
	assert.Equal(t, "standup", cfg.Pipeline.MeetingType)
	assert.True(t, cfg.Pipeline.HistoryEnabled)
}

func TestLoadFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
http_addr: ":9000"
audio:
  sample_rate: 8000
  window_millis: 2000
  max_buffer_bytes: 1048576
  chunk_rate_limit: 50
pipeline:
  silence_threshold: 0.02
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, 8000, cfg.Audio.SampleRate)
	assert.Equal(t, 2*time.Second, cfg.Audio.Window())
	assert.InDelta(t, 0.02, cfg.Pipeline.SilenceThreshold, 1e-9)
	// Untouched values keep their defaults.
	assert.Equal(t, "localhost:50051", cfg.InferenceAddr)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty http addr", func(c *Config) { c.HTTPAddr = "" }},
		{"zero sample rate", func(c *Config) { c.Audio.SampleRate = 0 }},
		{"negative window", func(c *Config) { c.Audio.WindowMillis = -1 }},
		{"zero buffer cap", func(c *Config) { c.Audio.MaxBufferBytes = 0 }},
		{"silence threshold too high", func(c *Config) { c.Pipeline.SilenceThreshold = 1.5 }},
		{"zero call timeout", func(c *Config) { c.Pipeline.CallTimeoutMillis = 0 }},
		{"empty fallback endpoint", func(c *Config) { c.Fallback.Endpoint = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLevel(t *testing.T) {
	cfg := Load()
	cfg.LogLevel = "debug"
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	cfg.LogLevel = "bogus"
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}
