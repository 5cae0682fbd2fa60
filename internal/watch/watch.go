package watch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dyluth/roads/internal/printer"
	"github.com/dyluth/roads/pkg/feed"
)

// OutputFormat selects how snapshots are written.
type OutputFormat string

const (
	// OutputFormatDefault is human-readable boards with a header line
	OutputFormatDefault OutputFormat = "default"

	// OutputFormatJSON is one JSON object per line
	OutputFormatJSON OutputFormat = "json"
)

// ParseOutputFormat validates a user-supplied format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputFormatDefault, OutputFormatJSON:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}

// StreamSnapshots writes the latest snapshot, if any, then every snapshot the
// scoreboard publishes until ctx is cancelled. Colour applies to the default
// format only.
func StreamSnapshots(ctx context.Context, client *feed.Client, format OutputFormat, w io.Writer, colored bool) error {
	subscription, err := client.SubscribeSnapshots(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to snapshots: %w", err)
	}
	defer subscription.Close()

	current, err := client.GetSnapshot(ctx)
	if err != nil && !feed.IsNotFound(err) {
		return fmt.Errorf("failed to read current snapshot: %w", err)
	}
	if current != nil {
		if err := WriteSnapshot(w, current, format, colored); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case snapshot, ok := <-subscription.Events():
			if !ok {
				return nil
			}
			if err := WriteSnapshot(w, snapshot, format, colored); err != nil {
				return err
			}

		case err, ok := <-subscription.Errors():
			if !ok {
				return nil
			}
			fmt.Fprintf(w, "⚠️  %v\n", err)
		}
	}
}

// WriteSnapshot writes one snapshot in the given format.
func WriteSnapshot(w io.Writer, s *feed.Snapshot, format OutputFormat, colored bool) error {
	if format == OutputFormatJSON {
		data, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("failed to write JSONL output: %w", err)
		}
		return nil
	}

	_, err := io.WriteString(w, FormatSnapshot(s, colored))
	return err
}

// FormatSnapshot renders a snapshot as a header line, the four boards, the
// tie line and the peek line.
func FormatSnapshot(s *feed.Snapshot, colored bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[%s] %s shoe %s hand %d BPT=%02d-%02d-%02d\n",
		formatClock(s.UpdatedAtMs), s.Table, shortID(s.ShoeID), s.Hands, s.Banker, s.Player, s.Ties)

	for _, board := range []string{s.BigRoad, s.BigEye, s.SmallRoad, s.Cockroach} {
		sb.WriteString(printer.Board(board, colored))
	}

	sb.WriteString(s.TieLine)
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Peek B(%s) P(%s)\n\n", s.PeekBanker, s.PeekPlayer)
	return sb.String()
}

// PollForHands polls until the scoreboard snapshot shows the given shoe at
// exactly the given hand count. Polls every 200ms for the specified timeout duration.
func PollForHands(ctx context.Context, client *feed.Client, shoeID string, hands int, timeout time.Duration) (*feed.Snapshot, error) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	timeoutCh := time.After(timeout)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case <-timeoutCh:
			return nil, fmt.Errorf("timeout waiting for scoreboard after %v", timeout)

		case <-ticker.C:
			snapshot, err := client.GetSnapshot(ctx)
			if err != nil {
				if feed.IsNotFound(err) {
					continue
				}
				return nil, fmt.Errorf("failed to read snapshot: %w", err)
			}

			if snapshot.ShoeID == shoeID && snapshot.Hands == hands {
				return snapshot, nil
			}
		}
	}
}

func formatClock(ms int64) string {
	if ms == 0 {
		return "--:--:--"
	}
	return time.UnixMilli(ms).Format("15:04:05")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
