// Package errors provides the error taxonomy shared by the API client and the commands.
//
// Purpose:
//
//	Define the fixed set of error codes printed in the result envelope and a
//	structured error type carrying code, message, and process exit code. Every
//	failure inside the CLI is expressed as a *CLIError before it reaches output.
//
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a standardized error code.
type ErrorCode string

const (
	// ErrCodeMissingParam indicates a required positional argument was absent.
	ErrCodeMissingParam ErrorCode = "MISSING_PARAM"
	// ErrCodeNoParams indicates an update carried nothing to change.
	ErrCodeNoParams ErrorCode = "NO_PARAMS"
	// ErrCodeNotFound indicates the remote service answered 404 or an absent record.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeUnauthorized indicates the remote service rejected the credentials.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeCreateFailed indicates a create call returned no usable record.
	ErrCodeCreateFailed ErrorCode = "CREATE_FAILED"
	// ErrCodeUpdateFailed indicates an update call returned no usable record.
	ErrCodeUpdateFailed ErrorCode = "UPDATE_FAILED"
	// ErrCodeHTTP indicates a transport failure or an unexpected HTTP status.
	ErrCodeHTTP ErrorCode = "HTTP_ERROR"
	// ErrCodeGeneric is the catch-all, including decode failures.
	ErrCodeGeneric ErrorCode = "ERROR"
	// ErrCodeAuthRequired indicates no API key or token is configured locally.
	ErrCodeAuthRequired ErrorCode = "AUTH_REQUIRED"
	// ErrCodeUsage indicates incorrect command usage (unknown flag, bad value).
	ErrCodeUsage ErrorCode = "USAGE_ERROR"
)

// Exit codes for scriptability.
const (
	ExitGeneral            = 1
	ExitUsage              = 2
	ExitServiceUnavailable = 3
)

// CLIError represents a structured CLI error.
type CLIError struct {
	Code       ErrorCode
	Message    string
	Suggestion string
	Details    string
	ExitCode   int
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	msg := e.Message
	if e.Details != "" {
		msg += ": " + e.Details
	}
	return msg
}

// New creates an error with the exit code implied by code.
func New(code ErrorCode, message string) *CLIError {
	return &CLIError{
		Code:     code,
		Message:  message,
		ExitCode: exitCodeFor(code),
	}
}

// NewMissingParamError creates an error for an absent required argument.
func NewMissingParamError(message string) *CLIError {
	return New(ErrCodeMissingParam, message)
}

// NewNoParamsError creates an error for an update with no fields set.
func NewNoParamsError() *CLIError {
	return New(ErrCodeNoParams, "No update parameters provided")
}

// NewNotFoundError creates an error for a missing remote entity, e.g. "Board".
func NewNotFoundError(entity string) *CLIError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", entity))
}

// NewUnauthorizedError creates an error for rejected credentials.
func NewUnauthorizedError() *CLIError {
	return &CLIError{
		Code:       ErrCodeUnauthorized,
		Message:    "Invalid API key or token",
		Suggestion: "Generate a new token and run: trello-cli --set-auth <api-key> <token>",
		ExitCode:   ExitGeneral,
	}
}

// NewCreateFailedError creates an error for a create call that returned nothing.
func NewCreateFailedError(entity string) *CLIError {
	return New(ErrCodeCreateFailed, fmt.Sprintf("Failed to create %s", entity))
}

// NewUpdateFailedError creates an error for an update call that returned nothing.
func NewUpdateFailedError(entity string) *CLIError {
	return New(ErrCodeUpdateFailed, fmt.Sprintf("Failed to update %s", entity))
}

// NewHTTPError wraps a transport-level failure.
func NewHTTPError(message string) *CLIError {
	return New(ErrCodeHTTP, message)
}

// NewGenericError wraps any other failure.
func NewGenericError(err error) *CLIError {
	return New(ErrCodeGeneric, err.Error())
}

// NewAuthRequiredError creates an error for missing local credentials.
func NewAuthRequiredError(message string) *CLIError {
	return New(ErrCodeAuthRequired, message)
}

// NewUsageError creates an error for incorrect usage.
func NewUsageError(message string) *CLIError {
	return &CLIError{
		Code:       ErrCodeUsage,
		Message:    message,
		Suggestion: "Run with --help for usage information.",
		ExitCode:   ExitUsage,
	}
}

// AsCLIError converts any error to a *CLIError, falling back to ERROR.
func AsCLIError(err error) *CLIError {
	if err == nil {
		return nil
	}
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return NewGenericError(err)
}

func exitCodeFor(code ErrorCode) int {
	switch code {
	case ErrCodeMissingParam, ErrCodeNoParams, ErrCodeUsage:
		return ExitUsage
	case ErrCodeHTTP:
		return ExitServiceUnavailable
	default:
		return ExitGeneral
	}
}
