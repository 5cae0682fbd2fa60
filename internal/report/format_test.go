package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/dyluth/roads/internal/handspec"
	"github.com/dyluth/roads/internal/table"
	"github.com/dyluth/roads/pkg/feed"
	"github.com/dyluth/roads/pkg/road"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryOf(t *testing.T, seq string) table.Summary {
	t.Helper()
	outcomes, err := handspec.Parse(seq)
	require.NoError(t, err)

	tbl, err := table.New(road.DefaultSize)
	require.NoError(t, err)
	tbl.ApplyAll(outcomes)
	return tbl.Summary()
}

func TestFormatSummary(t *testing.T) {
	t.Run("empty shoe", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatSummary(&buf, table.Summary{}))
		assert.Equal(t, "No hands played\n", buf.String())
	})

	t.Run("tallies and roads", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatSummary(&buf, summaryOf(t, "PPPBBTP")))

		out := buf.String()
		assert.Contains(t, out, "Summary of 7 hands:")
		assert.Contains(t, out, "Banker")
		assert.Contains(t, out, "Player")
		assert.Contains(t, out, "57.1%")
		assert.Contains(t, out, "Big Road")
		assert.Contains(t, out, "Big Eye")
		assert.Contains(t, out, "Small Road")
		assert.Contains(t, out, "Cockroach")
		assert.Contains(t, out, "Row counters: R1=3 R2=2 R3=1 R4=0 R5=0 R6=0")
		assert.Contains(t, out, "Ties(")
		assert.NotContains(t, out, "overflowed")
	})

	t.Run("overflow is reported", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatSummary(&buf, summaryOf(t, "70P")))
		assert.Contains(t, buf.String(), "Big Road overflowed the grid width")
	})
}

func TestFormatShoeHeader(t *testing.T) {
	var buf bytes.Buffer
	FormatShoeHeader(&buf, &feed.Shoe{
		ID:          "3f1c2a9e-0000-4000-8000-000000000000",
		Table:       "baccarat-1",
		StartedAtMs: time.Now().Add(-2 * time.Minute).UnixMilli(),
		Hands:       1,
	})
	assert.Equal(t, "Shoe 3f1c2a9e on table 'baccarat-1' (1 hand, started 2m ago)\n", buf.String())
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	s := summaryOf(t, "PB")
	require.NoError(t, FormatJSON(&buf, s))

	var decoded table.Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded.Hands)
	assert.Equal(t, 2, decoded.Columns)
	assert.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])
}

func TestFormatJSONL(t *testing.T) {
	hands := []table.Hand{
		{Number: 1, Outcome: road.Player},
		{Number: 2, Outcome: road.Banker},
		{Number: 3, Outcome: road.Tie},
	}

	var buf bytes.Buffer
	require.NoError(t, FormatJSONL(&buf, hands))

	scanner := bufio.NewScanner(&buf)
	var got []table.Hand
	for scanner.Scan() {
		var h table.Hand
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &h))
		got = append(got, h)
	}
	require.Len(t, got, 3)
	assert.Equal(t, road.Banker, got[1].Outcome)
	assert.Equal(t, 3, got[2].Number)
}

func TestFormatTimestamp(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name     string
		ms       int64
		expected string
	}{
		{"zero", 0, "-"},
		{"seconds", now.Add(-5 * time.Second).UnixMilli(), "5s ago"},
		{"minutes", now.Add(-3 * time.Minute).UnixMilli(), "3m ago"},
		{"hours", now.Add(-2 * time.Hour).UnixMilli(), "2h ago"},
		{"days", now.Add(-50 * time.Hour).UnixMilli(), "2d ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatTimestamp(tt.ms))
		})
	}
}

func TestFormatRowCounts(t *testing.T) {
	assert.Equal(t, "-", formatRowCounts(nil))
	assert.Equal(t, "R1=2 R2=0", formatRowCounts([]int{2, 0}))
}
