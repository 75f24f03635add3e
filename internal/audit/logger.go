// Package audit provides audit logging for credential and destructive operations.
//
// Purpose:
//
//	Emit one structured entry per privileged operation (saving or clearing
//	credentials, deleting a card) with command, parameters (masked where
//	sensitive), outcome and duration. Entries go through the CLI's zap logger,
//	so they land on stderr next to the other logs.
//
package audit

import (
	"time"

	"go.uber.org/zap"

	"github.com/ZenoxZX/trello-cli/internal/logging"
)

// Outcomes recorded on entries.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Logger emits audit entries.
type Logger struct {
	logger *zap.Logger
}

// NewLogger creates a new audit logger. A nil logger discards entries.
func NewLogger(logger *zap.Logger) *Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logger{logger: logger.Named("audit")}
}

// Operation represents a privileged operation to be logged.
type Operation struct {
	Type       string                 // set_auth, clear_auth, card_delete
	Command    string                 // command path as typed
	Parameters map[string]interface{} // masked before logging
	Outcome    string
	Duration   time.Duration
	Error      error
}

// LogOperation logs an operation with all required fields.
func (l *Logger) LogOperation(op Operation) {
	fields := []zap.Field{
		zap.String("operation", op.Type),
		zap.String("command", op.Command),
		zap.String("outcome", op.Outcome),
	}

	if params := logging.RedactFields(op.Parameters); len(params) > 0 {
		fields = append(fields, zap.Any("parameters", params))
	}

	if op.Duration > 0 {
		fields = append(fields, zap.Duration("duration", op.Duration))
	}

	if op.Error != nil {
		fields = append(fields, zap.String("error", logging.RedactString(op.Error.Error())))
	}

	l.logger.Info("audit", fields...)
}
