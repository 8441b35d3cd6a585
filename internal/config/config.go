// Package config handles service configuration.
// Values come from environment variables with defaults; an optional YAML
// file overrides the environment for deployments that prefer files.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr      string `yaml:"http_addr"`
	InferenceAddr string `yaml:"inference_addr"`
	LogLevel      string `yaml:"log_level"`

	Audio    AudioConfig    `yaml:"audio"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Fallback FallbackConfig `yaml:"fallback"`
}

// AudioConfig controls accumulation and windowing of client audio.
type AudioConfig struct {
	SampleRate     int    `yaml:"sample_rate"`
	Format         string `yaml:"format"`
	WindowMillis   int    `yaml:"window_millis"`
	MaxBufferBytes int    `yaml:"max_buffer_bytes"`
	ChunkRateLimit int    `yaml:"chunk_rate_limit"` // chunks per second per connection
}

// PipelineConfig controls the per-window processing pipeline.
type PipelineConfig struct {
	SilenceThreshold   float64 `yaml:"silence_threshold"`
	TargetPeak         float64 `yaml:"target_peak"`
	NormalizeBelowPeak float64 `yaml:"normalize_below_peak"`
	CallTimeoutMillis  int     `yaml:"call_timeout_millis"`
	MeetingType        string  `yaml:"meeting_type"`
	HistoryEnabled     bool    `yaml:"history_enabled"`
	HistoryLimit       int     `yaml:"history_limit"`
}

// FallbackConfig controls the combined transcribe-and-answer HTTP service.
type FallbackConfig struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	MimeType string `yaml:"mime_type"`
}

// Load builds a Config from environment variables with defaults.
func Load() *Config {
	return &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		InferenceAddr: getEnv("INFERENCE_ADDR", "localhost:50051"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Audio: AudioConfig{
			SampleRate:     getEnvInt("SAMPLE_RATE", 16000),
			Format:         getEnv("AUDIO_FORMAT", "pcm_f32le"),
			WindowMillis:   getEnvInt("WINDOW_MILLIS", 3000),
			MaxBufferBytes: getEnvInt("MAX_BUFFER_BYTES", 4<<20),
			ChunkRateLimit: getEnvInt("CHUNK_RATE_LIMIT", 100),
		},
		Pipeline: PipelineConfig{
			SilenceThreshold:   getEnvFloat("SILENCE_THRESHOLD", 0.01),
			TargetPeak:         getEnvFloat("TARGET_PEAK", 0.9),
			NormalizeBelowPeak: getEnvFloat("NORMALIZE_BELOW_PEAK", 0.3),
			CallTimeoutMillis:  getEnvInt("CALL_TIMEOUT_MILLIS", 15000),
			MeetingType:        getEnv("MEETING_TYPE", "general"),
			HistoryEnabled:     getEnvBool("HISTORY_ENABLED", false),
			HistoryLimit:       getEnvInt("HISTORY_LIMIT", 20),
		},
		Fallback: FallbackConfig{
			Endpoint: getEnv("FALLBACK_ENDPOINT", "http://localhost:8091/v1/answer"),
			APIKey:   getEnv("FALLBACK_API_KEY", ""),
			Model:    getEnv("FALLBACK_MODEL", "qa-multimodal"),
			MimeType: getEnv("FALLBACK_MIME_TYPE", "audio/pcm"),
		},
	}
}

// LoadFile loads environment defaults, then overlays the YAML file at path.
func LoadFile(path string) (*Config, error) {
	cfg := Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("http_addr cannot be empty")
	}
	if c.InferenceAddr == "" {
		return fmt.Errorf("inference_addr cannot be empty")
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Audio.WindowMillis <= 0 {
		return fmt.Errorf("window_millis must be positive, got %d", c.Audio.WindowMillis)
	}
	if c.Audio.MaxBufferBytes <= 0 {
		return fmt.Errorf("max_buffer_bytes must be positive, got %d", c.Audio.MaxBufferBytes)
	}
	if c.Audio.ChunkRateLimit <= 0 {
		return fmt.Errorf("chunk_rate_limit must be positive, got %d", c.Audio.ChunkRateLimit)
	}
	if c.Pipeline.SilenceThreshold < 0 || c.Pipeline.SilenceThreshold >= 1 {
		return fmt.Errorf("silence_threshold must be in [0, 1), got %f", c.Pipeline.SilenceThreshold)
	}
	if c.Pipeline.TargetPeak <= 0 || c.Pipeline.TargetPeak > 1 {
		return fmt.Errorf("target_peak must be in (0, 1], got %f", c.Pipeline.TargetPeak)
	}
	if c.Pipeline.CallTimeoutMillis <= 0 {
		return fmt.Errorf("call_timeout_millis must be positive, got %d", c.Pipeline.CallTimeoutMillis)
	}
	if c.Pipeline.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be positive, got %d", c.Pipeline.HistoryLimit)
	}
	if c.Fallback.Endpoint == "" {
		return fmt.Errorf("fallback endpoint cannot be empty")
	}
	return nil
}

// Window returns the accumulation window threshold as a duration.
func (a *AudioConfig) Window() time.Duration {
	return time.Duration(a.WindowMillis) * time.Millisecond
}

// CallTimeout returns the per-call external deadline as a duration.
func (p *PipelineConfig) CallTimeout() time.Duration {
	return time.Duration(p.CallTimeoutMillis) * time.Millisecond
}

// Level parses the configured log level, defaulting to info.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		return v == "true" || v == "1"
	}
	return def
}
