// Package obslog provides the trimmed structured-logging setup used by
// cmd/smoketest. The core telephony package never logs; this exists solely
// for the diagnostic binary.
package obslog

import (
	"fmt"
	"log/slog"
	"os"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	FormatJSON = "json"
	FormatText = "text"
)

// Opts holds logging configuration, struct-tagged for go-flags.
type Opts struct {
	Level  string `long:"log-level" env:"LOG_LEVEL" description:"Log level: debug, info, warn, error" default:"info"`
	Format string `long:"log-format" env:"LOG_FORMAT" description:"Log format: json, text" default:"text"`
}

// NewLogger builds an slog.Logger from opts, writing to stderr.
func NewLogger(opts *Opts) (*slog.Logger, error) {
	handlerOpts := &slog.HandlerOptions{Level: parseLevel(opts.Level)}
	switch opts.Format {
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(os.Stderr, handlerOpts)), nil
	case FormatText:
		return slog.New(slog.NewTextHandler(os.Stderr, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("unrecognized log format: %s", opts.Format)
	}
}

var levelToSlogLevel = map[string]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

func parseLevel(level string) slog.Level {
	if l, ok := levelToSlogLevel[level]; ok {
		return l
	}
	return slog.LevelInfo
}
