package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dyluth/roads/internal/handspec"
	"github.com/dyluth/roads/internal/printer"
	"github.com/dyluth/roads/internal/report"
	"github.com/dyluth/roads/internal/table"
	"github.com/dyluth/roads/pkg/road"
	"github.com/spf13/cobra"
)

var (
	playFile    string
	playStep    bool
	playPeek    bool
	playSummary bool
	playOutput  string
)

var playCmd = &cobra.Command{
	Use:   "play [SEQUENCE...]",
	Short: "Run a sequence of outcomes through the boards offline",
	Long: `Run a sequence of outcomes through a local set of boards and print them.
No Redis is needed.

A sequence is made of B (Banker), P (Player) and T (Tie). Runs may be
written with a count on either side of the letter:

  PPBT       four hands
  9P B P 7B  nine Players, a Banker, a Player and seven Bankers
  P9,B1      nine Players and a Banker

Output Formats:
  default - Boards as text
  json    - Hands, summary and boards as one JSON document

Examples:
  roads play 9P B P 7B
  roads play --step --peek PPBBPB
  roads play --file shoe.txt --summary`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&playFile, "file", "f", "", "Read the sequence from a file ('#' starts a comment)")
	playCmd.Flags().BoolVar(&playStep, "step", false, "Print a line for every hand")
	playCmd.Flags().BoolVar(&playPeek, "peek", false, "Print the peek line (default from display.peek)")
	playCmd.Flags().BoolVar(&playSummary, "summary", false, "Print a shoe summary after the boards")
	playCmd.Flags().StringVarP(&playOutput, "output", "o", "default", "Output format (default or json)")
	rootCmd.AddCommand(playCmd)
}

// playResult is the JSON form of a played sequence.
type playResult struct {
	Sequence  string        `json:"sequence"`
	Hands     []table.Hand  `json:"hands"`
	Summary   table.Summary `json:"summary"`
	BigRoad   string        `json:"big_road"`
	BigEye    string        `json:"big_eye"`
	SmallRoad string        `json:"small_road"`
	Cockroach string        `json:"cockroach"`
	TieLine   string        `json:"tie_line"`
}

func runPlay(cmd *cobra.Command, args []string) error {
	if playOutput != "default" && playOutput != "json" {
		return printer.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", playOutput),
			[]string{"Valid formats: default, json"},
		)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	specs := args
	if playFile != "" {
		fromFile, err := readSequenceFile(playFile)
		if err != nil {
			return printer.Error(
				"cannot read sequence file",
				fmt.Sprintf("Error: %v", err),
				nil,
			)
		}
		specs = append(fromFile, specs...)
	}

	if len(specs) == 0 {
		return printer.Error(
			"no outcomes given",
			"Pass a sequence as arguments or with --file.",
			[]string{"Example:\n  roads play 9P B P 7B"},
		)
	}

	outcomes, err := handspec.ParseAll(specs)
	if err != nil {
		return printer.Error(
			"invalid sequence",
			fmt.Sprintf("Error: %v", err),
			[]string{"Use B, P and T with optional counts, e.g. 'PPBT' or '9P B'"},
		)
	}

	tbl, err := table.New(cfg.Size())
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	peek := cfg.PeekEnabled()
	if cmd.Flags().Changed("peek") {
		peek = playPeek
	}
	colored := cfg.ColorEnabled()
	out := cmd.OutOrStdout()

	for _, o := range outcomes {
		hand, _ := tbl.Apply(o)
		if playStep && playOutput == "default" {
			fmt.Fprintln(out, tbl.HandLine(hand))
		}
	}

	if playOutput == "json" {
		return report.FormatJSON(out, playResult{
			Sequence:  handspec.Format(outcomes),
			Hands:     tbl.Hands(),
			Summary:   tbl.Summary(),
			BigRoad:   tbl.BigRoadText(),
			BigEye:    tbl.DerivedText(road.BigEye),
			SmallRoad: tbl.DerivedText(road.SmallRoad),
			Cockroach: tbl.DerivedText(road.Cockroach),
			TieLine:   tbl.TieLine(),
		})
	}

	if playStep {
		fmt.Fprintln(out)
	}
	writeBoards(out, tbl, colored, peek)

	if playSummary {
		fmt.Fprintln(out)
		if err := report.FormatSummary(out, tbl.Summary()); err != nil {
			return err
		}
	}

	return nil
}

// readSequenceFile returns the non-comment content of a sequence file, one
// entry per line.
func readSequenceFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var specs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if line = strings.TrimSpace(line); line != "" {
			specs = append(specs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return specs, nil
}
