// Package output provides JSON output formatting for the Trello CLI.
//
// Purpose:
//
//	Every command prints exactly one line to stdout: the compact JSON form of
//	its result envelope. No indentation, no HTML escaping, one trailing newline.
//
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	clierrors "github.com/ZenoxZX/trello-cli/internal/errors"
	"github.com/ZenoxZX/trello-cli/internal/result"
)

// JSONFormatter formats output as single-line JSON.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	if w == nil {
		w = os.Stdout
	}
	return &JSONFormatter{writer: w}
}

// Write encodes v on a single line.
func (j *JSONFormatter) Write(v any) error {
	encoder := json.NewEncoder(j.writer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// WriteError prints err as a failed envelope.
func (j *JSONFormatter) WriteError(err error) error {
	cliErr := clierrors.AsCLIError(err)
	return j.Write(result.Fail[any](cliErr.Message, cliErr.Code))
}

// PrintJSON is a convenience function to print v to stdout.
func PrintJSON(v any) error {
	return NewJSONFormatter(os.Stdout).Write(v)
}
