package road

// board pairs a road's logical column history with its drawn grid.
type board[M Marker] struct {
	columns History[M]
	grid    *grid
}

func newBoard[M Marker](size Size) *board[M] {
	return &board[M]{grid: newGrid(size)}
}

func (b *board[M]) mark(m M) bool {
	if !m.onBoard() {
		return false
	}
	n := len(b.columns)
	if n == 0 || b.columns[n-1].Marker != m {
		b.columns = append(b.columns, Column[M]{Marker: m, Length: 1})
	} else {
		b.columns[n-1].Length++
	}
	b.grid.place(m.glyph(), b.columns[len(b.columns)-1].Length)
	return true
}

func (b *board[M]) removeLast() bool {
	n := len(b.columns)
	if n == 0 {
		return false
	}
	b.grid.undo()
	if b.columns[n-1].Length == 1 {
		b.columns = b.columns[:n-1]
	} else {
		b.columns[n-1].Length--
	}
	return true
}

func (b *board[M]) reset() {
	b.columns = nil
	b.grid.reset()
}
