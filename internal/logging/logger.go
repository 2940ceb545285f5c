package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ptwebhook/ptwebhook/internal/webhook"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "PTWEBHOOK_LOG_LEVEL"

// Initialize creates a new logger with the specified level writing to
// path. If level is empty, PTWEBHOOK_LOG_LEVEL is consulted; if neither is
// set, logging is disabled. An empty path writes to stderr. The terminal
// UI owns stdout, so stdout is never used.
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch strings.ToLower(level) {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	output := "stderr"
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		output = path
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until initialized
		logger = zap.NewNop()
	}
	return logger
}

// SetLogger replaces the global logger
func SetLogger(l *zap.Logger) {
	logger = l
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogTransition logs a wizard screen change
func LogTransition(sessionID, from, to, event string) {
	Debug("Wizard transition",
		zap.String("session", sessionID),
		zap.String("from", from),
		zap.String("to", to),
		zap.String("event", event),
	)
}

// LogDispatch logs the outcome of one webhook submission. The URL is
// redacted before it is written.
func LogDispatch(sessionID, webhookURL string, attempt int, outcome string, statusCode int, duration time.Duration) {
	Info("Webhook dispatch",
		zap.String("session", sessionID),
		zap.String("url", webhook.Redact(webhookURL)),
		zap.Int("attempt", attempt),
		zap.String("outcome", outcome),
		zap.Int("status_code", statusCode),
		zap.Duration("duration", duration),
	)
}

// LogCatalogLoaded logs the assembled template catalog
func LogCatalogLoaded(count int, sources []string) {
	Info("Template catalog loaded",
		zap.Int("templates", count),
		zap.Strings("sources", sources),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
