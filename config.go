package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/rmitchellscott/wxdecode/value"
)

// Config holds the CLI settings, populated from the environment and an
// optional .env file in the working directory.
type Config struct {
	MetarURL      string
	TafURL        string
	StationURL    string
	HTTPTimeout   time.Duration
	HourThreshold int
	LogLevel      string
	LogFormat     string
}

// LoadConfig reads configuration from environment variables, applying
// defaults where unset.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(envOrDefault("WXDECODE_HTTP_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		return nil, errors.New("invalid WXDECODE_HTTP_TIMEOUT")
	}

	threshold := value.DefaultHourThreshold
	if s := os.Getenv("WXDECODE_HOUR_THRESHOLD"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return nil, errors.New("invalid WXDECODE_HOUR_THRESHOLD")
		}
		threshold = n
	}

	cfg := &Config{
		MetarURL:      envOrDefault("WXDECODE_METAR_URL", "https://aviationweather.gov/api/data/metar?ids=%s"),
		TafURL:        envOrDefault("WXDECODE_TAF_URL", "https://aviationweather.gov/api/data/taf?ids=%s"),
		StationURL:    envOrDefault("WXDECODE_STATION_URL", "https://aviationweather.gov/api/data/stationinfo?ids=%s"),
		HTTPTimeout:   timeout,
		HourThreshold: threshold,
		LogLevel:      strings.ToLower(envOrDefault("LOG_LEVEL", "warn")),
		LogFormat:     strings.ToLower(envOrDefault("LOG_FORMAT", "text")),
	}

	for name, tmpl := range map[string]string{
		"WXDECODE_METAR_URL":   cfg.MetarURL,
		"WXDECODE_TAF_URL":     cfg.TafURL,
		"WXDECODE_STATION_URL": cfg.StationURL,
	} {
		if strings.Count(tmpl, "%s") != 1 {
			return nil, errors.New(name + " must contain exactly one %s")
		}
	}
	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, errors.New("invalid LOG_LEVEL")
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("LOG_FORMAT must be text or json")
	}

	return cfg, nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewLogger builds the logger described by the config. Logs go to w, which is
// stderr in the CLI so they never mix with decoded output.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevels[c.LogLevel]}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
