package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/lexicon-backend/internal/config"
)

// redactedKeys never reach the log output in clear text.
var redactedKeys = map[string]struct{}{
	"password":      {},
	"token":         {},
	"authorization": {},
	"jwt_secret":    {},
}

// NewLogger builds the process logger on stderr and installs it as the slog
// default. "json" is meant for production, "text" adds source locations for
// local runs.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(cfg, os.Stderr)).With(slog.String("app", "lexicon"))
	slog.SetDefault(logger)
	return logger
}

func newHandler(cfg config.LogConfig, w io.Writer) slog.Handler {
	text := strings.EqualFold(cfg.Format, "text")
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   text,
		ReplaceAttr: redact,
	}
	if text {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if _, ok := redactedKeys[strings.ToLower(a.Key)]; ok {
		return slog.String(a.Key, "[redacted]")
	}
	return a
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
