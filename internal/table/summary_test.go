package table

import (
	"strings"
	"testing"

	"github.com/dyluth/roads/pkg/road"
	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	tbl := newTestTable(t)
	tbl.ApplyAll(parse(t, "PPPBBTPBBBBPT"))

	s := tbl.Summary()
	assert.Equal(t, 13, s.Hands)
	assert.Equal(t, 6, s.Banker)
	assert.Equal(t, 5, s.Player)
	assert.Equal(t, 2, s.Ties)
	assert.Equal(t, 4, s.LongestBanker)
	assert.Equal(t, 3, s.LongestPlayer)
	// P3 B2 P1 B4 P1
	assert.Equal(t, 5, s.Columns)
	assert.Equal(t, []int{5, 3, 2, 1, 0, 0}, s.RowCounts)
	assert.False(t, s.Overflowed)
	assert.Equal(t, "Ties(C?)", s.TieLine)

	assert.Len(t, s.Derived, 3)
	names := []string{s.Derived[0].Name, s.Derived[1].Name, s.Derived[2].Name}
	assert.Equal(t, []string{"Big Eye", "Small Road", "Cockroach"}, names)
	for _, rs := range s.Derived {
		assert.GreaterOrEqual(t, rs.Same+rs.Chop, rs.Columns)
	}
}

func TestSummary_Overflow(t *testing.T) {
	tbl, err := New(road.Size{Height: 6, Width: 10})
	assert.NoError(t, err)
	tbl.ApplyAll(parse(t, strings.Repeat("B", 20)))

	s := tbl.Summary()
	assert.True(t, s.Overflowed)
	assert.Equal(t, 20, s.LongestBanker)
	assert.Equal(t, 1, s.Columns)
}
