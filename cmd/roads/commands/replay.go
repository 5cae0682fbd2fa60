package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/dyluth/roads/internal/printer"
	"github.com/dyluth/roads/internal/report"
	"github.com/dyluth/roads/internal/resolver"
	"github.com/dyluth/roads/internal/table"
	"github.com/dyluth/roads/pkg/feed"
	"github.com/spf13/cobra"
)

var replaySummary bool

var replayCmd = &cobra.Command{
	Use:   "replay [SHOE_ID]",
	Short: "Re-render a stored shoe",
	Long: `Rebuild the boards of a stored shoe from its hands and print them.

SHOE_ID may be a full UUID or a unique prefix of at least 6 characters.
Without it the current shoe is replayed.

Examples:
  roads replay
  roads replay 3f1c2a --summary`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&replaySummary, "summary", false, "Print a shoe summary after the boards")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
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

	shoeID, err := replayTarget(ctx, client, args)
	if err != nil {
		return err
	}

	shoe, err := client.GetShoe(ctx, shoeID)
	if err != nil {
		return fmt.Errorf("failed to read shoe: %w", err)
	}

	hands, err := client.ShoeHands(ctx, shoeID)
	if err != nil {
		return fmt.Errorf("failed to read hands: %w", err)
	}

	tbl, err := table.New(cfg.Size())
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	tbl.ApplyAll(hands)

	out := cmd.OutOrStdout()
	report.FormatShoeHeader(out, shoe)
	fmt.Fprintln(out)
	writeBoards(out, tbl, cfg.ColorEnabled(), cfg.PeekEnabled())

	if replaySummary {
		fmt.Fprintln(out)
		return report.FormatSummary(out, tbl.Summary())
	}
	return nil
}

func replayTarget(ctx context.Context, client *feed.Client, args []string) (string, error) {
	if len(args) == 0 {
		id, err := client.CurrentShoe(ctx)
		if err != nil {
			if feed.IsNotFound(err) {
				return "", noShoeError(feed.ErrNoShoe)
			}
			return "", err
		}
		return id, nil
	}

	id, err := resolver.ResolveShoeID(ctx, client, args[0])
	if err != nil {
		var amb *resolver.AmbiguousError
		switch {
		case resolver.IsNotFoundError(err):
			return "", printer.Error(
				"shoe not found",
				err.Error(),
				[]string{"List the table's shoes:\n  roads shoe --list"},
			)
		case errors.As(err, &amb):
			return "", printer.Error("ambiguous shoe ID", resolver.FormatAmbiguousError(amb), nil)
		}
		return "", printer.Error("invalid shoe ID", err.Error(), nil)
	}
	return id, nil
}
