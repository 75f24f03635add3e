package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ZenoxZX/trello-cli/internal/client/trello"
	"github.com/ZenoxZX/trello-cli/internal/result"
)

// ListCommand creates the list command group.
func ListCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Read and create lists",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list <boardId>",
			Short: "List open lists of a board",
			Args:  cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				boardID := arg(args, 0)
				if err := required(boardID, "Board ID required"); err != nil {
					return fail(rt, err)
				}
				return call(cmd, rt, func(ctx context.Context, api API) result.Result[[]trello.List] {
					return api.ListLists(ctx, boardID)
				})
			},
		},
		&cobra.Command{
			Use:   "create <boardId> <name>",
			Short: "Create a list on a board",
			Args:  cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				boardID, name := arg(args, 0), arg(args, 1)
				if err := required(boardID, "Board ID required", name, "List name required"); err != nil {
					return fail(rt, err)
				}
				return call(cmd, rt, func(ctx context.Context, api API) result.Result[trello.List] {
					return api.CreateList(ctx, boardID, name)
				})
			},
		},
	)

	return cmd
}
