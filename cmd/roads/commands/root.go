package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dyluth/roads/internal/config"
	"github.com/dyluth/roads/internal/printer"
	"github.com/dyluth/roads/pkg/feed"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string

	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "roads",
	Short: "Roads - Baccarat scoreboard tracker",
	Long: `Roads keeps the Baccarat scoreboards for a shoe: the Big Road, the
three derived roads (Big Eye, Small Road, Cockroach) and the tie line.

Play a sequence offline with 'roads play', or deal hands into a shared
table feed and follow the scoreboard daemon with 'roads watch'.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute runs the root command. Called once by main.main().
func Execute() error {
	// Errors are printed by the printer package, not by Cobra
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFileName, "Path to roads.yml (defaults are used when the file is absent)")
}

// loadConfig reads the --config file, falling back to defaults when absent.
func loadConfig() (*config.RoadsConfig, error) {
	cfg, _, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, printer.Error(
			"invalid configuration",
			fmt.Sprintf("Could not load %s: %v", configPath, err),
			[]string{
				"Fix the file and try again",
				"Regenerate it:\n  roads init --force",
			},
		)
	}
	return cfg, nil
}

// connect opens a feed client for the configured table and checks Redis is up.
func connect(ctx context.Context, cfg *config.RoadsConfig) (*feed.Client, error) {
	opts, err := cfg.RedisOptions()
	if err != nil {
		return nil, printer.Error(
			"invalid Redis URL",
			fmt.Sprintf("Could not parse redis.url '%s': %v", cfg.Redis.URL, err),
			[]string{"Use the form redis://host:port/db in roads.yml"},
		)
	}

	client, err := feed.NewClient(opts, cfg.Table.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		client.Close()
		return nil, printer.ErrorWithContext(
			"Redis unavailable",
			"Could not reach the table feed.",
			map[string]string{
				"Redis": cfg.Redis.URL,
				"Table": cfg.Table.Name,
				"Error": err.Error(),
			},
			[]string{
				"Start Redis and retry",
				"Point redis.url in roads.yml at a running server",
			},
		)
	}

	return client, nil
}

// noShoeError is the shared response to feed.ErrNoShoe.
func noShoeError(err error) error {
	if errors.Is(err, feed.ErrNoShoe) {
		return printer.Error(
			"no shoe in progress",
			"Hands can only be dealt into a started shoe.",
			[]string{"Start one:\n  roads shoe"},
		)
	}
	return err
}
