package road

import "fmt"

const (
	// DefaultHeight is the number of rows on a standard scoreboard
	DefaultHeight = 6

	// DefaultWidth is the number of writable columns on a standard scoreboard
	DefaultWidth = 60

	blank         = ' '
	mergeGlyph    = '='
	overflowGlyph = '>'
)

// Size holds the dimensions of a road's grid. Every road also carries one
// indicator column past Width that only ever shows the overflow marker.
type Size struct {
	Height int
	Width  int
}

// DefaultSize is the 6x60 board used at the tables.
var DefaultSize = Size{Height: DefaultHeight, Width: DefaultWidth}

// Validate rejects sizes that cannot hold a single mark.
func (s Size) Validate() error {
	if s.Height < 1 {
		return fmt.Errorf("grid height must be at least 1, got %d", s.Height)
	}
	if s.Width < 1 {
		return fmt.Errorf("grid width must be at least 1, got %d", s.Width)
	}
	return nil
}

type cursor struct {
	row, col int
	turned   bool
}

type cellWrite struct {
	row, col int
	prev     byte
}

// step is the journal entry for one placed mark.
type step struct {
	writes  []cellWrite
	counted int
	opened  bool
	prev    cursor
}

type grid struct {
	height, width int
	cells         [][]byte
	rowCounts     []int
	heads         []int
	cur           cursor
	journal       []step
}

func newGrid(size Size) *grid {
	g := &grid{height: size.Height, width: size.Width}
	g.reset()
	return g
}

func (g *grid) reset() {
	g.cells = make([][]byte, g.height)
	for r := range g.cells {
		row := make([]byte, g.width+1)
		for c := range row {
			row[c] = blank
		}
		g.cells[r] = row
	}
	g.rowCounts = make([]int, g.height)
	g.heads = g.heads[:0]
	g.cur = cursor{}
	g.journal = g.journal[:0]
}

// free reports whether (row, col) can take a mark. Cells past the writable
// width are always free; they only exist logically.
func (g *grid) free(row, col int) bool {
	if col >= g.width {
		return true
	}
	return g.cells[row][col] == blank
}

func (g *grid) write(st *step, row, col int, glyph byte) {
	st.writes = append(st.writes, cellWrite{row: row, col: col, prev: g.cells[row][col]})
	g.cells[row][col] = glyph
}

// place draws one mark whose column now has the given length.
func (g *grid) place(glyph byte, length int) {
	st := step{counted: -1, prev: g.cur}
	if length <= g.height {
		g.rowCounts[length-1]++
		st.counted = length - 1
	}

	var row, col int
	down := false
	switch {
	case length == 1:
		if n := len(g.heads); n > 0 {
			col = g.heads[n-1] + 1
		}
		for col < g.width && g.cells[0][col] != blank {
			col++
		}
		g.heads = append(g.heads, col)
		st.opened = true
		g.cur = cursor{}
		row, down = 0, true
	case !g.cur.turned && g.cur.row+1 < g.height && g.free(g.cur.row+1, g.cur.col):
		row, col, down = g.cur.row+1, g.cur.col, true
	default:
		row, col = g.cur.row, g.cur.col+1
		g.cur.turned = true
	}
	g.cur.row, g.cur.col = row, col

	if col >= g.width {
		g.write(&st, row, g.width, overflowGlyph)
	} else {
		// a run that grows down onto an older tail of the same side
		if down && row+1 < g.height && g.cells[row+1][col] == glyph {
			g.write(&st, row+1, col, mergeGlyph)
		}
		g.write(&st, row, col, glyph)
	}
	g.journal = append(g.journal, st)
}

// undo reverts the most recent place call.
func (g *grid) undo() bool {
	n := len(g.journal)
	if n == 0 {
		return false
	}
	st := g.journal[n-1]
	g.journal = g.journal[:n-1]

	for i := len(st.writes) - 1; i >= 0; i-- {
		w := st.writes[i]
		g.cells[w.row][w.col] = w.prev
	}
	if st.counted >= 0 {
		g.rowCounts[st.counted]--
	}
	if st.opened {
		g.heads = g.heads[:len(g.heads)-1]
	}
	g.cur = st.prev
	return true
}

// GridView is a read-only window onto a road's cells and row counters.
type GridView struct {
	g *grid
}

// Height returns the number of rows.
func (v GridView) Height() int { return v.g.height }

// Width returns the number of writable columns. The indicator column sits at index Width.
func (v GridView) Width() int { return v.g.width }

// Cell returns the glyph at (row, col), or a blank when out of range.
func (v GridView) Cell(row, col int) byte {
	if row < 0 || row >= v.g.height || col < 0 || col > v.g.width {
		return blank
	}
	return v.g.cells[row][col]
}

// Row returns the full text of one row including the indicator column.
func (v GridView) Row(row int) string {
	if row < 0 || row >= v.g.height {
		return ""
	}
	return string(v.g.cells[row])
}

// RowCount returns how many columns have reached length row+1.
func (v GridView) RowCount(row int) int {
	if row < 0 || row >= v.g.height {
		return 0
	}
	return v.g.rowCounts[row]
}

// RowCounts returns a copy of every row counter, top row first.
func (v GridView) RowCounts() []int {
	out := make([]int, len(v.g.rowCounts))
	copy(out, v.g.rowCounts)
	return out
}

// Overflowed reports whether any mark has been pushed past the writable width.
func (v GridView) Overflowed() bool {
	for r := 0; r < v.g.height; r++ {
		if v.g.cells[r][v.g.width] == overflowGlyph {
			return true
		}
	}
	return false
}
