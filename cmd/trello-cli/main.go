// Command trello-cli is the main entrypoint for the Trello CLI.
//
// Purpose:
//
//	Command-line access to Trello boards, lists and cards. Every invocation
//	prints exactly one JSON envelope line on stdout; logs go to stderr.
//
// Dependencies:
//   - internal/commands: Cobra command implementations
//   - internal/errors: exit code mapping
//   - internal/output: envelope for usage errors raised by Cobra itself
//
// Key Responsibilities:
//   - Build the root command and run it with a signal-aware context
//   - Translate failures into process exit codes (1 general, 2 usage, 3 HTTP)
//
package main

import (
	"context"
	stderrors "errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZenoxZX/trello-cli/internal/commands"
	"github.com/ZenoxZX/trello-cli/internal/errors"
	"github.com/ZenoxZX/trello-cli/internal/output"
)

var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt := &commands.Runtime{}
	rootCmd := commands.NewRootCommand(rt, version+" ("+gitCommit+", "+buildTime+")")

	err := rootCmd.ExecuteContext(ctx)
	if rt.Logger != nil {
		_ = rt.Logger.Sync()
	}
	if err == nil {
		return 0
	}

	// Command failures have already been printed as envelopes.
	var cliErr *errors.CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr.ExitCode
	}

	// Cobra parse errors (unknown flag, bad flag value, unexpected argument).
	usageErr := errors.NewUsageError(err.Error())
	_ = output.NewJSONFormatter(os.Stdout).WriteError(usageErr)
	return usageErr.ExitCode
}
