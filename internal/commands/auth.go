package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/ZenoxZX/trello-cli/internal/client/trello"
	"github.com/ZenoxZX/trello-cli/internal/config"
	clierrors "github.com/ZenoxZX/trello-cli/internal/errors"
	"github.com/ZenoxZX/trello-cli/internal/result"
)

// AuthChange is the payload of auth set and auth clear.
type AuthChange struct {
	Message    string `json:"message"`
	ConfigFile string `json:"configFile"`
}

// AuthStatus is the payload of auth status.
type AuthStatus struct {
	Configured       bool   `json:"configured"`
	APIKeySet        bool   `json:"apiKeySet"`
	TokenSet         bool   `json:"tokenSet"`
	ConfigFile       string `json:"configFile"`
	ConfigFileExists bool   `json:"configFileExists"`
}

// AuthCommand creates the auth command group.
func AuthCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage Trello credentials",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <api-key> <token>",
			Short: "Save credentials to the config file",
			Args:  cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runSetAuth(cmd, rt, arg(args, 0), arg(args, 1))
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the config file",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runClearAuth(cmd, rt)
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Verify credentials against Trello",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runCheckAuth(cmd, rt)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show where credentials come from, without contacting Trello",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return emit(rt, result.Success(AuthStatus{
					Configured:       rt.Creds.IsConfigured(),
					APIKeySet:        rt.Creds.APIKey != "",
					TokenSet:         rt.Creds.Token != "",
					ConfigFile:       rt.Store.Path(),
					ConfigFileExists: rt.Store.Exists(),
				}))
			},
		},
	)

	return cmd
}

// runSetAuth persists the credentials. The running process keeps the
// credentials it loaded at startup.
func runSetAuth(cmd *cobra.Command, rt *Runtime, apiKey, token string) error {
	params := map[string]interface{}{"api_key": apiKey, "token": token}
	return audited(rt, cmd, "set_auth", params, func() error {
		err := rt.Store.SaveAuth(apiKey, token)
		switch {
		case errors.Is(err, config.ErrEmptyAPIKey), errors.Is(err, config.ErrEmptyToken):
			return fail(rt, clierrors.NewMissingParamError(err.Error()))
		case err != nil:
			return fail(rt, err)
		}
		return emit(rt, result.Success(AuthChange{
			Message:    "Credentials saved",
			ConfigFile: rt.Store.Path(),
		}))
	})
}

func runClearAuth(cmd *cobra.Command, rt *Runtime) error {
	return audited(rt, cmd, "clear_auth", nil, func() error {
		if err := rt.Store.ClearAuth(); err != nil {
			return fail(rt, err)
		}
		return emit(rt, result.Success(AuthChange{
			Message:    "Credentials cleared",
			ConfigFile: rt.Store.Path(),
		}))
	})
}

func runCheckAuth(cmd *cobra.Command, rt *Runtime) error {
	return call(cmd, rt, func(ctx context.Context, api API) result.Result[trello.Member] {
		return api.CheckAuth(ctx)
	})
}
