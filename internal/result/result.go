// Package result defines the uniform success/failure envelope returned by every operation.
package result

import (
	"bytes"
	"encoding/json"

	clierrors "github.com/ZenoxZX/trello-cli/internal/errors"
)

// Result is a tagged union of Success(Data) and Failure(Error, Code).
type Result[T any] struct {
	Ok    bool
	Data  T
	Error string
	Code  clierrors.ErrorCode
}

// Success wraps a payload.
func Success[T any](data T) Result[T] {
	return Result[T]{Ok: true, Data: data}
}

// Fail builds a failure. An empty code defaults to ERROR.
func Fail[T any](message string, code clierrors.ErrorCode) Result[T] {
	if code == "" {
		code = clierrors.ErrCodeGeneric
	}
	return Result[T]{Error: message, Code: code}
}

// FromError builds a failure from any error, keeping the code of a *CLIError.
func FromError[T any](err error) Result[T] {
	cliErr := clierrors.AsCLIError(err)
	return Fail[T](cliErr.Error(), cliErr.Code)
}

// From returns Success(data) when err is nil and FromError(err) otherwise.
func From[T any](data T, err error) Result[T] {
	if err != nil {
		return FromError[T](err)
	}
	return Success(data)
}

// Err returns nil on success and a *CLIError describing the failure otherwise.
func (r Result[T]) Err() error {
	if r.Ok {
		return nil
	}
	return clierrors.New(r.Code, r.Error)
}

type envelope struct {
	Ok    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}

// MarshalJSON emits {ok, data} on success and {ok, error, code} on failure.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	env := envelope{Ok: r.Ok}
	if r.Ok {
		env.Data = r.Data
	} else {
		env.Error = r.Error
		env.Code = string(r.Code)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(env); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
