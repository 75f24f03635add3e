package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ZenoxZX/trello-cli/internal/client/trello"
	"github.com/ZenoxZX/trello-cli/internal/result"
)

// BoardCommand creates the board command group.
func BoardCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Read boards",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List open boards of the authenticated member",
			Args:  cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(cmd, rt, func(ctx context.Context, api API) result.Result[[]trello.Board] {
					return api.ListBoards(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "get <boardId>",
			Short: "Show a board",
			Args:  cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				boardID := arg(args, 0)
				if err := required(boardID, "Board ID required"); err != nil {
					return fail(rt, err)
				}
				return call(cmd, rt, func(ctx context.Context, api API) result.Result[trello.Board] {
					return api.GetBoard(ctx, boardID)
				})
			},
		},
	)

	return cmd
}
