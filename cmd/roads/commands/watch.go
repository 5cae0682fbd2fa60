package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dyluth/roads/internal/printer"
	"github.com/dyluth/roads/internal/watch"
	"github.com/spf13/cobra"
)

var watchOutputFormat string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the scoreboard in real time",
	Long: `Print the latest scoreboard snapshot, then every update the scoreboard
daemon publishes, until interrupted.

Output Formats:
  default - Boards with a header line per update
  json    - Line-delimited JSON, one snapshot per line

Examples:
  roads watch
  roads watch --output=json > snapshots.jsonl`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutputFormat, "output", "o", "default", "Output format (default or json)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	format, err := watch.ParseOutputFormat(watchOutputFormat)
	if err != nil {
		return printer.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", watchOutputFormat),
			[]string{"Valid formats: default, json"},
		)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	colored := cfg.ColorEnabled() && format == watch.OutputFormatDefault
	if err := watch.StreamSnapshots(ctx, client, format, cmd.OutOrStdout(), colored); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}
