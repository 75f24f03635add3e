package logging

import (
	"io"
	"os"
	"strings"
)

// Config controls logger initialization.
type Config struct {
	// ServiceName identifies the binary emitting logs.
	ServiceName string

	// Environment is the deployment environment (development, production).
	Environment string

	// LogLevel controls verbosity (debug, info, warn, error).
	// Defaults to "warn" if empty and "info" if unrecognized.
	LogLevel string

	// OutputPath is the log destination (stdout, stderr, or file path).
	// Defaults to "stderr"; stdout is reserved for command output.
	OutputPath string

	// Writer, when set, takes precedence over OutputPath.
	Writer io.Writer
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ServiceName: "trello-cli",
		Environment: getEnvOrDefault("ENVIRONMENT", "production"),
		LogLevel:    getEnvOrDefault("TRELLO_LOG_LEVEL", "warn"),
		OutputPath:  "stderr",
	}
}

// WithLogLevel sets the log level.
func (c Config) WithLogLevel(level string) Config {
	c.LogLevel = level
	return c
}

// WithWriter sets the output writer.
func (c Config) WithWriter(w io.Writer) Config {
	c.Writer = w
	return c
}

// getEnvOrDefault returns the environment variable value or default.
func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// IsDevelopment returns true if environment is development.
func (c Config) IsDevelopment() bool {
	return strings.ToLower(c.Environment) == "development"
}
