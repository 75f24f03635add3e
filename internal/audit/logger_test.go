package audit

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogOperationMasksSecrets(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewLogger(zap.New(core))

	logger.LogOperation(Operation{
		Type:    "set_auth",
		Command: "trello-cli --set-auth",
		Parameters: map[string]interface{}{
			"api_key": "abcdef123456",
			"token":   "tok-secret",
			"path":    "/home/me/.trello-cli/config.json",
		},
		Outcome:  OutcomeSuccess,
		Duration: 2 * time.Millisecond,
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "audit", entry.Message)
	assert.Equal(t, "audit", entry.LoggerName)

	ctx := entry.ContextMap()
	assert.Equal(t, "set_auth", ctx["operation"])
	assert.Equal(t, OutcomeSuccess, ctx["outcome"])

	params, ok := ctx["parameters"].(map[string]interface{})
	require.True(t, ok, "parameters should be logged as an object")
	assert.Equal(t, "***REDACTED***", params["api_key"])
	assert.Equal(t, "***REDACTED***", params["token"])
	assert.Equal(t, "/home/me/.trello-cli/config.json", params["path"])
}

func TestLogOperationRecordsError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewLogger(zap.New(core))

	logger.LogOperation(Operation{
		Type:    "card_delete",
		Command: "trello-cli card delete",
		Outcome: OutcomeFailure,
		Error:   errors.New(`Delete "https://api.trello.com/1/cards/c1?key=k1&token=t1": EOF`),
	})

	require.Equal(t, 1, logs.Len())
	msg, _ := logs.All()[0].ContextMap()["error"].(string)
	assert.NotContains(t, msg, "t1\"")
	assert.Contains(t, msg, "token=***REDACTED***")
}

func TestNilLoggerDiscards(t *testing.T) {
	logger := NewLogger(nil)
	assert.NotPanics(t, func() {
		logger.LogOperation(Operation{Type: "clear_auth", Outcome: OutcomeSuccess})
	})
}
