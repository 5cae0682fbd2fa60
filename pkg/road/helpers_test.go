package road

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// outcomes converts a letter string such as "PPBT" into outcomes.
func outcomes(t *testing.T, seq string) []Outcome {
	t.Helper()
	out := make([]Outcome, 0, len(seq))
	for _, r := range seq {
		o, err := ParseOutcome(string(r))
		require.NoError(t, err)
		out = append(out, o)
	}
	return out
}

func newTestBigRoad(t *testing.T) *BigRoad {
	t.Helper()
	big, err := NewBigRoad(DefaultSize)
	require.NoError(t, err)
	return big
}

func markAll(t *testing.T, big *BigRoad, seq string) {
	t.Helper()
	for _, o := range outcomes(t, seq) {
		big.Mark(o)
	}
}

// expectBoard builds the rendered text of a 6x60 board from its trimmed rows.
func expectBoard(index int, rows []string, counts []int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s R%d\n", Ruler(DefaultWidth), index)
	for i := 0; i < DefaultHeight; i++ {
		row := ""
		if i < len(rows) {
			row = rows[i]
		}
		fmt.Fprintf(&sb, "%-61s%2d\n", row, counts[i])
	}
	return sb.String()
}
