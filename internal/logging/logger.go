// Package logging wraps zap with the CLI's standard configuration.
//
// Logs are JSON on stderr so that stdout carries nothing but the result
// envelope. Trace identifiers from OpenTelemetry spans are attached when
// present.
package logging

import (
	"context"
	"io"
	"os"
	"strings"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with standardized configuration and OpenTelemetry integration.
type Logger struct {
	*zap.Logger
	config Config
}

// New creates a new logger with the provided configuration.
func New(cfg Config) (*Logger, error) {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "trello-cli"
	}
	if cfg.Environment == "" {
		cfg.Environment = getEnvOrDefault("ENVIRONMENT", "production")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "stderr"
	}

	level := parseLogLevel(cfg.LogLevel)

	writer := cfg.Writer
	if writer == nil {
		w, err := getOutputWriter(cfg.OutputPath)
		if err != nil {
			return nil, err
		}
		writer = w
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(getEncoderConfig(cfg.IsDevelopment())),
		zapcore.AddSync(writer),
		level,
	)

	logger := zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(
			zap.String("service", cfg.ServiceName),
			zap.String("environment", cfg.Environment),
		),
	)

	return &Logger{
		Logger: logger,
		config: cfg,
	}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// WithContext returns a logger with OpenTelemetry trace context fields.
func (l *Logger) WithContext(ctx context.Context) *zap.Logger {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return l.Logger
	}

	spanCtx := span.SpanContext()
	return l.Logger.With(
		zap.String("trace_id", spanCtx.TraceID().String()),
		zap.String("span_id", spanCtx.SpanID().String()),
	)
}

// WithRequestID returns a logger carrying a request_id field on every entry.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(zap.String("request_id", requestID)),
		config: l.config,
	}
}

// WithFields returns a logger with additional fields.
func (l *Logger) WithFields(fields ...zap.Field) *zap.Logger {
	return l.Logger.With(fields...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.Logger.Sync()
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func getEncoderConfig(development bool) zapcore.EncoderConfig {
	var cfg zapcore.EncoderConfig
	if development {
		cfg = zap.NewDevelopmentEncoderConfig()
	} else {
		cfg = zap.NewProductionEncoderConfig()
	}
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	return cfg
}

func getOutputWriter(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		return file, nil
	}
}
