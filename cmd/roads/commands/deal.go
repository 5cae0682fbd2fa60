package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/dyluth/roads/internal/handspec"
	"github.com/dyluth/roads/internal/printer"
	"github.com/dyluth/roads/internal/watch"
	"github.com/dyluth/roads/pkg/feed"
	"github.com/spf13/cobra"
)

var (
	dealWait    bool
	dealTimeout time.Duration
)

var dealCmd = &cobra.Command{
	Use:   "deal OUTCOME...",
	Short: "Record hands on the current shoe",
	Long: `Append one or more outcomes to the current shoe of the table feed.

Outcomes use the same notation as 'roads play': B, P or T with optional
counts ("B", "PPT", "3P").

With --wait the command waits for the scoreboard daemon to apply the
hands and prints the updated boards.

Examples:
  roads deal B
  roads deal P T --wait`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDeal,
}

func init() {
	dealCmd.Flags().BoolVarP(&dealWait, "wait", "w", false, "Wait for the scoreboard and print the boards")
	dealCmd.Flags().DurationVar(&dealTimeout, "timeout", 5*time.Second, "How long --wait waits for the scoreboard")
	rootCmd.AddCommand(dealCmd)
}

func runDeal(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	outcomes, err := handspec.ParseAll(args)
	if err != nil {
		return printer.Error(
			"invalid outcome",
			fmt.Sprintf("Error: %v", err),
			[]string{"Use B, P or T, e.g.:\n  roads deal B"},
		)
	}
	if len(outcomes) == 0 {
		return printer.Error("no outcomes given", "", []string{"Example:\n  roads deal B"})
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	var last *feed.HandEvent
	for _, o := range outcomes {
		last, err = client.RecordHand(ctx, o)
		if err != nil {
			return noShoeError(err)
		}
		printer.Success("Hand %d: %s\n", last.Number, last.Outcome)
	}

	if !dealWait {
		return nil
	}

	snapshot, err := watch.PollForHands(ctx, client, last.ShoeID, last.Number, dealTimeout)
	if err != nil {
		return printer.Error(
			"scoreboard did not respond",
			fmt.Sprintf("Error: %v", err),
			[]string{"Check the scoreboard daemon is running for this table"},
		)
	}

	return watch.WriteSnapshot(cmd.OutOrStdout(), snapshot, watch.OutputFormatDefault, cfg.ColorEnabled())
}
