// Package errors provides tests for error handling.
package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Board")
	if err == nil {
		t.Fatal("NewNotFoundError() returned nil")
	}

	if err.Code != ErrCodeNotFound {
		t.Errorf("expected ErrCodeNotFound, got %s", err.Code)
	}

	if err.Error() != "Board not found" {
		t.Errorf("unexpected message %q", err.Error())
	}

	if err.ExitCode != ExitGeneral {
		t.Errorf("expected exit code 1, got %d", err.ExitCode)
	}
}

func TestUnauthorizedError(t *testing.T) {
	err := NewUnauthorizedError()
	if err.Code != ErrCodeUnauthorized {
		t.Errorf("expected ErrCodeUnauthorized, got %s", err.Code)
	}

	if err.Message != "Invalid API key or token" {
		t.Errorf("unexpected message %q", err.Message)
	}
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		err  *CLIError
		want int
	}{
		{NewMissingParamError("Board ID required"), ExitUsage},
		{NewNoParamsError(), ExitUsage},
		{NewUsageError("unknown flag"), ExitUsage},
		{NewHTTPError("connection refused"), ExitServiceUnavailable},
		{NewCreateFailedError("card"), ExitGeneral},
		{NewGenericError(fmt.Errorf("boom")), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Code), func(t *testing.T) {
			if tt.err.ExitCode != tt.want {
				t.Errorf("exit code for %s = %d, want %d", tt.err.Code, tt.err.ExitCode, tt.want)
			}
		})
	}
}

func TestAsCLIError(t *testing.T) {
	if AsCLIError(nil) != nil {
		t.Error("AsCLIError(nil) should be nil")
	}

	wrapped := fmt.Errorf("get card: %w", NewNotFoundError("Card"))
	got := AsCLIError(wrapped)
	if got.Code != ErrCodeNotFound {
		t.Errorf("expected wrapped code to survive, got %s", got.Code)
	}

	plain := AsCLIError(stderrors.New("unexpected end of JSON input"))
	if plain.Code != ErrCodeGeneric {
		t.Errorf("expected ERROR for plain errors, got %s", plain.Code)
	}
	if plain.Message != "unexpected end of JSON input" {
		t.Errorf("unexpected message %q", plain.Message)
	}
}
