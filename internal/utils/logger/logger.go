package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger = zap.NewNop()
	Logger = logger.Sugar()

	// logFile is the file behind logger, if any; closed when logger is replaced.
	logFile *os.File
)

// Options controls where log lines go and how verbose they are.
//
// The TUI owns the terminal, so logs are written to File when set. When File is
// empty and Console is true, logs go to stderr; otherwise they are discarded.
type Options struct {
	File    string
	Level   string
	Console bool
}

// Init replaces the package logger. It is safe to call more than once; the
// previous logger is flushed and its log file closed.
func Init(opts Options) error {
	level, err := zapcore.ParseLevel(defaultString(opts.Level, "info"))
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	var (
		sink zapcore.WriteSyncer
		file *os.File
	)
	switch {
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		file = f
		sink = zapcore.AddSync(f)
	case opts.Console:
		sink = zapcore.Lock(os.Stderr)
	default:
		sink = zapcore.AddSync(io.Discard)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "@timestamp"

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), sink, level)

	_ = logger.Sync()
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file
	logger = zap.New(core, zap.Fields(zap.String("app", "weatherwidget")), zap.AddCaller(), zap.AddCallerSkip(1))
	Logger = logger.Sugar()

	return nil
}

// Sync flushes buffered log entries.
func Sync() {
	_ = logger.Sync()
}

// Debugw logs a message with key-value context at DebugLevel.
func Debugw(message string, keysAndValues ...interface{}) {
	Logger.Debugw(message, keysAndValues...)
}

// Infow logs a message with key-value context at InfoLevel.
func Infow(message string, keysAndValues ...interface{}) {
	Logger.Infow(message, keysAndValues...)
}

// Errorw logs a message with key-value context at ErrorLevel.
func Errorw(message string, keysAndValues ...interface{}) {
	Logger.Errorw(message, keysAndValues...)
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
