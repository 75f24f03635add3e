package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ZenoxZX/trello-cli/internal/client/trello"
	"github.com/ZenoxZX/trello-cli/internal/result"
)

// CardCommand creates the card command group.
func CardCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Read, create, update, move and delete cards",
	}

	cmd.AddCommand(
		cardListCommand(rt),
		cardBoardCommand(rt),
		cardGetCommand(rt),
		cardCreateCommand(rt),
		cardUpdateCommand(rt),
		cardMoveCommand(rt),
		cardDeleteCommand(rt),
	)

	return cmd
}

func cardListCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list <listId>",
		Short: "List cards of a list",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listID := arg(args, 0)
			if err := required(listID, "List ID required"); err != nil {
				return fail(rt, err)
			}
			return call(cmd, rt, func(ctx context.Context, api API) result.Result[[]trello.Card] {
				return api.ListCardsInList(ctx, listID)
			})
		},
	}
}

func cardBoardCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "board <boardId>",
		Short: "List open cards of a board",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			boardID := arg(args, 0)
			if err := required(boardID, "Board ID required"); err != nil {
				return fail(rt, err)
			}
			return call(cmd, rt, func(ctx context.Context, api API) result.Result[[]trello.Card] {
				return api.ListCardsInBoard(ctx, boardID)
			})
		},
	}
}

func cardGetCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "get <cardId>",
		Short: "Show a card",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID := arg(args, 0)
			if err := required(cardID, "Card ID required"); err != nil {
				return fail(rt, err)
			}
			return call(cmd, rt, func(ctx context.Context, api API) result.Result[trello.Card] {
				return api.GetCard(ctx, cardID)
			})
		},
	}
}

func cardCreateCommand(rt *Runtime) *cobra.Command {
	var flagDesc string
	var flagDue string

	cmd := &cobra.Command{
		Use:   "create <listId> <name>",
		Short: "Create a card in a list",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, name := arg(args, 0), arg(args, 1)
			if err := required(listID, "List ID required", name, "Card name required"); err != nil {
				return fail(rt, err)
			}
			return call(cmd, rt, func(ctx context.Context, api API) result.Result[trello.Card] {
				return api.CreateCard(ctx, listID, name, flagDesc, flagDue)
			})
		},
	}

	cmd.Flags().StringVar(&flagDesc, "desc", "", "Card description")
	cmd.Flags().StringVar(&flagDue, "due", "", "Due date, e.g. 2026-11-01T12:00:00Z")

	return cmd
}

func cardUpdateCommand(rt *Runtime) *cobra.Command {
	var update struct {
		name, desc, due, list, labels, members string
	}

	cmd := &cobra.Command{
		Use:   "update <cardId>",
		Short: "Update fields of a card",
		Long: `Update fields of a card. Only the flags given are sent; passing an empty
--desc, --due, --labels or --members clears that field. At least one field
is required.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID := arg(args, 0)
			if err := required(cardID, "Card ID required"); err != nil {
				return fail(rt, err)
			}

			flags := cmd.Flags()
			changed := func(name string, value *string) *string {
				if flags.Changed(name) {
					return value
				}
				return nil
			}
			fields := trello.CardUpdate{
				Name:      changed("name", &update.name),
				Desc:      changed("desc", &update.desc),
				Due:       changed("due", &update.due),
				ListID:    changed("list", &update.list),
				LabelIDs:  changed("labels", &update.labels),
				MemberIDs: changed("members", &update.members),
			}

			return call(cmd, rt, func(ctx context.Context, api API) result.Result[trello.Card] {
				return api.UpdateCard(ctx, cardID, fields)
			})
		},
	}

	cmd.Flags().StringVar(&update.name, "name", "", "New card name")
	cmd.Flags().StringVar(&update.desc, "desc", "", "New description")
	cmd.Flags().StringVar(&update.due, "due", "", "New due date")
	cmd.Flags().StringVar(&update.list, "list", "", "Target list ID")
	cmd.Flags().StringVar(&update.labels, "labels", "", "Comma-separated label IDs")
	cmd.Flags().StringVar(&update.members, "members", "", "Comma-separated member IDs")

	return cmd
}

func cardMoveCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "move <cardId> <listId>",
		Short: "Move a card to another list",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, listID := arg(args, 0), arg(args, 1)
			if err := required(cardID, "Card ID required", listID, "Target list ID required"); err != nil {
				return fail(rt, err)
			}
			return call(cmd, rt, func(ctx context.Context, api API) result.Result[trello.Card] {
				return api.MoveCard(ctx, cardID, listID)
			})
		},
	}
}

func cardDeleteCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <cardId>",
		Short: "Delete a card",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID := arg(args, 0)
			if err := required(cardID, "Card ID required"); err != nil {
				return fail(rt, err)
			}
			return audited(rt, cmd, "card_delete", map[string]interface{}{"card_id": cardID}, func() error {
				return call(cmd, rt, func(ctx context.Context, api API) result.Result[bool] {
					return api.DeleteCard(ctx, cardID)
				})
			})
		},
	}
}
