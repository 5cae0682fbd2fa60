package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dyluth/roads/internal/table"
	"github.com/dyluth/roads/pkg/feed"
	"github.com/olekukonko/tablewriter"
)

// FormatSummary writes an end-of-shoe summary as two tables: outcome tallies
// with the longest runs, then one row per road.
func FormatSummary(w io.Writer, s table.Summary) error {
	if s.Hands == 0 {
		fmt.Fprintln(w, "No hands played")
		return nil
	}

	fmt.Fprintf(w, "Summary of %d %s:\n\n", s.Hands, plural(s.Hands, "hand", "hands"))

	tallies := tablewriter.NewWriter(w)
	tallies.Header("OUTCOME", "HANDS", "SHARE", "LONGEST RUN")
	rows := [][]string{
		{"Banker", strconv.Itoa(s.Banker), formatShare(s.Banker, s.Hands), strconv.Itoa(s.LongestBanker)},
		{"Player", strconv.Itoa(s.Player), formatShare(s.Player, s.Hands), strconv.Itoa(s.LongestPlayer)},
		{"Tie", strconv.Itoa(s.Ties), formatShare(s.Ties, s.Hands), "-"},
	}
	for _, row := range rows {
		if err := tallies.Append(row); err != nil {
			return fmt.Errorf("failed to build tally table: %w", err)
		}
	}
	if err := tallies.Render(); err != nil {
		return fmt.Errorf("failed to render tally table: %w", err)
	}

	fmt.Fprintln(w)

	roads := tablewriter.NewWriter(w)
	roads.Header("ROAD", "COLUMNS", "SAME", "CHOP")
	if err := roads.Append([]string{"Big Road", strconv.Itoa(s.Columns), "-", "-"}); err != nil {
		return fmt.Errorf("failed to build road table: %w", err)
	}
	for _, d := range s.Derived {
		row := []string{d.Name, strconv.Itoa(d.Columns), strconv.Itoa(d.Same), strconv.Itoa(d.Chop)}
		if err := roads.Append(row); err != nil {
			return fmt.Errorf("failed to build road table: %w", err)
		}
	}
	if err := roads.Render(); err != nil {
		return fmt.Errorf("failed to render road table: %w", err)
	}

	fmt.Fprintf(w, "\nRow counters: %s\n", formatRowCounts(s.RowCounts))
	if s.Overflowed {
		fmt.Fprintln(w, "Big Road overflowed the grid width")
	}
	if s.TieLine != "" {
		fmt.Fprintln(w, s.TieLine)
	}

	return nil
}

// FormatShoeHeader writes a one-line description of a shoe.
func FormatShoeHeader(w io.Writer, shoe *feed.Shoe) {
	fmt.Fprintf(w, "Shoe %s on table '%s' (%d %s, started %s)\n",
		formatID(shoe.ID),
		shoe.Table,
		shoe.Hands,
		plural(shoe.Hands, "hand", "hands"),
		formatTimestamp(shoe.StartedAtMs),
	)
}

// FormatJSON writes v as pretty-printed JSON followed by a newline.
func FormatJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}

	fmt.Fprintln(w)
	return nil
}

// FormatJSONL writes each item as a single compact JSON object on its own line.
func FormatJSONL[T any](w io.Writer, items []T) error {
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}

		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("failed to write JSONL output: %w", err)
		}
	}
	return nil
}

// formatID truncates a UUID to its first 8 characters for compact display.
func formatID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatShare(n, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", float64(n)*100/float64(total))
}

// formatRowCounts renders row counters top to bottom, e.g. "R1=3 R2=2 R3=1".
func formatRowCounts(counts []int) string {
	if len(counts) == 0 {
		return "-"
	}
	parts := make([]string, len(counts))
	for i, n := range counts {
		parts[i] = fmt.Sprintf("R%d=%d", i+1, n)
	}
	return strings.Join(parts, " ")
}

// formatTimestamp formats Unix milliseconds as relative time like "2m ago".
func formatTimestamp(timestampMs int64) string {
	if timestampMs == 0 {
		return "-"
	}

	diff := time.Since(time.UnixMilli(timestampMs))

	switch {
	case diff < time.Minute:
		return fmt.Sprintf("%ds ago", int(diff.Seconds()))
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
