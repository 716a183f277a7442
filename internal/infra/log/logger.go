package logs

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"saleslens/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
}

// New creates the process logger. Output goes to stdout and, when a log file
// path is configured, to a size-rotated file as well.
func New(params Params) (*slog.Logger, error) {
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stdout
	if file := params.Config.Env.Log.File; file.Path != "" {
		if err := os.MkdirAll(filepath.Dir(file.Path), 0o755); err != nil {
			return nil, errors.Wrap(err, "failed to create log directory")
		}

		rotator := newRotator(file)
		out = io.MultiWriter(os.Stdout, rotator)
		params.Lc.Append(fx.StopHook(rotator.Close))
	}

	return newLogger(out, level, params.Config.Env.Log.Pretty, params.Config.Env.ServiceName), nil
}

func newRotator(file config.LogFile) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   file.Path,
		MaxSize:    file.MaxSizeMB,
		MaxBackups: file.MaxBackups,
		MaxAge:     file.MaxAgeDays,
		Compress:   file.Compress,
	}
}

func newLogger(out io.Writer, level slog.Level, pretty bool, service string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if pretty {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(handler)
	if service != "" {
		logger = logger.With(slog.String("service", service))
	}

	return logger
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
