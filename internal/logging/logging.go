package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/huddle/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the global slog instance for the application
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Init initializes the logging system, writing logs to <data_dir>/logs/huddle.log
// through a size-rotated file. Uses text format for human readability.
// The returned closer flushes and closes the log file.
func Init(cfg config.Config) (io.Closer, error) {
	logDir := filepath.Join(cfg.Storage.DataDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "huddle.log"),
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     28,
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: ParseLevel(cfg.Log.Level),
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

// ParseLevel maps a config level name to a slog level. Unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
