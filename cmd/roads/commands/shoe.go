package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/dyluth/roads/internal/printer"
	"github.com/dyluth/roads/internal/report"
	"github.com/dyluth/roads/pkg/feed"
	"github.com/spf13/cobra"
)

var shoeList bool

var shoeCmd = &cobra.Command{
	Use:   "shoe",
	Short: "Start a new shoe on the table",
	Long: `Start a new shoe on the configured table. The scoreboard clears every
board and the new shoe becomes the target of 'roads deal'.

Use --list to show the shoes stored for the table instead.`,
	Args: cobra.NoArgs,
	RunE: runShoe,
}

func init() {
	shoeCmd.Flags().BoolVar(&shoeList, "list", false, "List stored shoes instead of starting one")
	rootCmd.AddCommand(shoeCmd)
}

func runShoe(cmd *cobra.Command, args []string) error {
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

	if shoeList {
		return listShoes(ctx, cmd, client)
	}

	shoe, err := client.StartShoe(ctx)
	if err != nil {
		return fmt.Errorf("failed to start shoe: %w", err)
	}

	printer.Success("Started shoe %s on table '%s'\n", shoe.ID, shoe.Table)
	return nil
}

func listShoes(ctx context.Context, cmd *cobra.Command, client *feed.Client) error {
	ids, err := client.ScanShoes(ctx, "")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(ids) == 0 {
		fmt.Fprintf(out, "No shoes found for table '%s'\n", client.Table())
		return nil
	}

	shoes := make([]*feed.Shoe, 0, len(ids))
	for _, id := range ids {
		shoe, err := client.GetShoe(ctx, id)
		if err != nil {
			if feed.IsNotFound(err) {
				continue
			}
			return err
		}
		shoes = append(shoes, shoe)
	}

	sort.Slice(shoes, func(i, j int) bool {
		return shoes[i].StartedAtMs < shoes[j].StartedAtMs
	})
	for _, shoe := range shoes {
		report.FormatShoeHeader(out, shoe)
	}
	return nil
}
