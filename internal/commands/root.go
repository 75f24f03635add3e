package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the trello-cli root command. The legacy
// --set-auth, --clear-auth and --check-auth flags are handled here; their
// subcommand equivalents live under "auth".
func NewRootCommand(rt *Runtime, version string) *cobra.Command {
	var flags globalFlags
	var flagSetAuth, flagClearAuth, flagCheckAuth bool

	cmd := &cobra.Command{
		Use:   "trello-cli",
		Short: "Trello from the command line, with JSON output",
		Long: `trello-cli reads and edits Trello boards, lists and cards.
Every command prints exactly one JSON line: {"ok":true,"data":...} on success
or {"ok":false,"error":"...","code":"..."} on failure.

Credentials come from TRELLO_API_KEY and TRELLO_TOKEN, falling back to
~/.trello-cli/config.json. Save them with:

  trello-cli --set-auth <api-key> <token>`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			rt.setup(flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case flagSetAuth:
				return runSetAuth(cmd, rt, arg(args, 0), arg(args, 1))
			case flagClearAuth:
				return runClearAuth(cmd, rt)
			case flagCheckAuth:
				return runCheckAuth(cmd, rt)
			default:
				return cmd.Help()
			}
		},
	}

	cmd.Flags().BoolVar(&flagSetAuth, "set-auth", false, "Save credentials: --set-auth <api-key> <token>")
	cmd.Flags().BoolVar(&flagClearAuth, "clear-auth", false, "Remove saved credentials")
	cmd.Flags().BoolVar(&flagCheckAuth, "check-auth", false, "Verify credentials against Trello")
	cmd.MarkFlagsMutuallyExclusive("set-auth", "clear-auth", "check-auth")

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level on stderr: debug, info, warn, error")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Debug logging on stderr")
	cmd.PersistentFlags().IntVar(&flags.timeout, "timeout", 0, "Request timeout in seconds (default 30)")
	cmd.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "Trello API base URL")
	_ = cmd.PersistentFlags().MarkHidden("api-url")

	cmd.AddCommand(
		BoardCommand(rt),
		ListCommand(rt),
		CardCommand(rt),
		AuthCommand(rt),
	)

	return cmd
}
