// Package commands provides the cobra command tree of the Trello CLI.
//
// Purpose:
//
//	Validate positional arguments, check that credentials are configured,
//	call the Trello API client and print the resulting envelope as one JSON
//	line. Every failure is printed as an envelope before it is returned, so
//	the entrypoint only has to translate it into an exit code.
//
// Dependencies:
//   - internal/client/trello: REST client
//   - internal/config: settings, credentials and the credentials file
//   - internal/output: single-line JSON writer
//   - internal/audit: entries for credential changes and card deletion
//
package commands

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ZenoxZX/trello-cli/internal/audit"
	"github.com/ZenoxZX/trello-cli/internal/client/trello"
	"github.com/ZenoxZX/trello-cli/internal/config"
	clierrors "github.com/ZenoxZX/trello-cli/internal/errors"
	"github.com/ZenoxZX/trello-cli/internal/logging"
	"github.com/ZenoxZX/trello-cli/internal/output"
	"github.com/ZenoxZX/trello-cli/internal/result"
)

// API is the subset of the Trello client the commands depend on.
type API interface {
	ListBoards(ctx context.Context) result.Result[[]trello.Board]
	GetBoard(ctx context.Context, boardID string) result.Result[trello.Board]
	ListLists(ctx context.Context, boardID string) result.Result[[]trello.List]
	CreateList(ctx context.Context, boardID, name string) result.Result[trello.List]
	ListCardsInList(ctx context.Context, listID string) result.Result[[]trello.Card]
	ListCardsInBoard(ctx context.Context, boardID string) result.Result[[]trello.Card]
	GetCard(ctx context.Context, cardID string) result.Result[trello.Card]
	CreateCard(ctx context.Context, listID, name, desc, due string) result.Result[trello.Card]
	UpdateCard(ctx context.Context, cardID string, update trello.CardUpdate) result.Result[trello.Card]
	MoveCard(ctx context.Context, cardID, listID string) result.Result[trello.Card]
	DeleteCard(ctx context.Context, cardID string) result.Result[bool]
	CheckAuth(ctx context.Context) result.Result[trello.Member]
}

// Runtime carries the per-invocation dependencies. Nil fields are filled in
// by the root command before any subcommand runs.
type Runtime struct {
	Out      io.Writer
	Settings *config.Config
	Store    *config.Store
	Creds    *config.Credentials
	Logger   *logging.Logger
	Audit    *audit.Logger

	// NewAPI builds the API client once credentials are known to be set.
	NewAPI func(rt *Runtime) API
}

type globalFlags struct {
	logLevel string
	verbose  bool
	timeout  int
	apiURL   string
}

func (rt *Runtime) setup(flags globalFlags) {
	if rt.Out == nil {
		rt.Out = os.Stdout
	}
	if rt.Settings == nil {
		rt.Settings = config.LoadWithFlags(map[string]interface{}{
			"log-level": flags.logLevel,
			"verbose":   flags.verbose,
			"timeout":   flags.timeout,
			"api-url":   flags.apiURL,
		})
	}
	if rt.Logger == nil {
		logger, err := logging.New(logging.DefaultConfig().WithLogLevel(rt.Settings.LogLevel))
		if err != nil {
			logger = logging.Nop()
		}
		rt.Logger = logger.WithRequestID(uuid.NewString())
	}
	if rt.Audit == nil {
		rt.Audit = audit.NewLogger(rt.Logger.Logger)
	}
	if rt.Store == nil {
		rt.Store = config.DefaultStore()
	}
	if rt.Creds == nil {
		rt.Creds = config.LoadCredentials(rt.Store)
	}
	if rt.NewAPI == nil {
		rt.NewAPI = newTrelloAPI
	}

	rt.Logger.Debug("runtime ready",
		zap.String("api_url", rt.Settings.APIURL),
		zap.Duration("timeout", rt.Settings.Timeout),
		zap.Bool("credentials_configured", rt.Creds.IsConfigured()),
	)
}

func newTrelloAPI(rt *Runtime) API {
	return trello.NewClient(rt.Creds,
		trello.WithBaseURL(rt.Settings.APIURL),
		trello.WithTimeout(rt.Settings.Timeout),
		trello.WithLogger(rt.Logger),
	)
}

// api returns the client, or AUTH_REQUIRED when credentials are incomplete.
func (rt *Runtime) api() (API, error) {
	if err := rt.Creds.Validate(); err != nil {
		return nil, clierrors.NewAuthRequiredError(err.Error())
	}
	return rt.NewAPI(rt), nil
}

// emit prints r and returns its failure, if any.
func emit[T any](rt *Runtime, r result.Result[T]) error {
	if err := output.NewJSONFormatter(rt.Out).Write(r); err != nil {
		return err
	}
	return r.Err()
}

// fail prints err as a failed envelope and returns it as a *CLIError.
func fail(rt *Runtime, err error) error {
	return emit(rt, result.FromError[any](err))
}

// arg returns args[i], or "" when absent.
func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// required returns a MISSING_PARAM error for the first empty value.
func required(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i] == "" {
			return clierrors.NewMissingParamError(pairs[i+1])
		}
	}
	return nil
}

// call validates credentials and hands the client to fn.
func call[T any](cmd *cobra.Command, rt *Runtime, fn func(ctx context.Context, api API) result.Result[T]) error {
	api, err := rt.api()
	if err != nil {
		return fail(rt, err)
	}
	return emit(rt, fn(cmd.Context(), api))
}

// audited runs fn and records an audit entry with its outcome.
func audited(rt *Runtime, cmd *cobra.Command, opType string, params map[string]interface{}, fn func() error) error {
	start := time.Now()
	err := fn()

	op := audit.Operation{
		Type:       opType,
		Command:    cmd.CommandPath(),
		Parameters: params,
		Outcome:    audit.OutcomeSuccess,
		Duration:   time.Since(start),
	}
	if err != nil {
		op.Outcome = audit.OutcomeFailure
		op.Error = err
	}
	rt.Audit.LogOperation(op)
	return err
}
