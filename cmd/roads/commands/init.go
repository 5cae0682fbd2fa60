package commands

import (
	"fmt"

	"github.com/dyluth/roads/internal/printer"
	"github.com/dyluth/roads/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	forceInit     bool
	initTableName string
	initHeight    int
	initWidth     int
	initRedisURL  string
)

var initCmd = &cobra.Command{
	Use:   "init [DIR]",
	Short: "Write a default roads.yml",
	Long: `Write a roads.yml with the default table, grid size and Redis settings
into DIR (the current directory when omitted).

Use --force to overwrite an existing roads.yml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	defaults := scaffold.DefaultOptions()
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing roads.yml")
	initCmd.Flags().StringVar(&initTableName, "table", defaults.TableName, "Table name used to namespace the feed")
	initCmd.Flags().IntVar(&initHeight, "height", defaults.Height, "Grid height (rows)")
	initCmd.Flags().IntVar(&initWidth, "width", defaults.Width, "Grid width (columns)")
	initCmd.Flags().StringVar(&initRedisURL, "redis-url", defaults.RedisURL, "Redis URL for the table feed")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	if !forceInit {
		if err := scaffold.CheckExisting(dir); err != nil {
			return printer.Error(
				"already initialized",
				err.Error(),
				nil,
			)
		}
	}

	opts := scaffold.DefaultOptions()
	opts.TableName = initTableName
	opts.Height = initHeight
	opts.Width = initWidth
	opts.RedisURL = initRedisURL

	path, err := scaffold.Initialize(dir, opts, forceInit)
	if err != nil {
		return printer.Error(
			"initialization failed",
			fmt.Sprintf("Error: %v", err),
			[]string{"Check the flag values: height 1-20, width 10-200, table without spaces or ':'"},
		)
	}

	scaffold.PrintSuccess(cmd.OutOrStdout(), path)
	return nil
}
