package commands

import (
	"context"
	"errors"

	"github.com/dyluth/roads/internal/printer"
	"github.com/dyluth/roads/pkg/feed"
	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Remove the last hand of the current shoe",
	Args:  cobra.NoArgs,
	RunE:  runUndo,
}

func init() {
	rootCmd.AddCommand(undoCmd)
}

func runUndo(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	event, err := client.UndoHand(ctx)
	if err != nil {
		if errors.Is(err, feed.ErrEmptyShoe) {
			return printer.Error(
				"nothing to undo",
				"The current shoe has no hands.",
				nil,
			)
		}
		return noShoeError(err)
	}

	printer.Success("Removed hand %d (%s)\n", event.Number, event.Outcome)
	return nil
}
