package road

import (
	"io"
	"strings"
)

// BigRoad is the primary scoreboard. It records Banker and Player wins as
// columns of consecutive same-side results and draws them on a grid.
// Ties are not recorded here; see TieTracker.
type BigRoad struct {
	b *board[Outcome]
}

// NewBigRoad creates an empty Big Road with the given grid size.
func NewBigRoad(size Size) (*BigRoad, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	return &BigRoad{b: newBoard[Outcome](size)}, nil
}

// Mark records one hand. Ties and invalid outcomes are ignored and return false.
func (r *BigRoad) Mark(o Outcome) bool {
	return r.b.mark(o)
}

// RemoveLast undoes the most recent mark, restoring the history, grid and row
// counters to their previous state. It returns false on an empty road.
func (r *BigRoad) RemoveLast() bool {
	return r.b.removeLast()
}

// History returns a copy of the column history.
func (r *BigRoad) History() History[Outcome] {
	return r.b.columns.Clone()
}

// PeekHistory returns the history as it would be after one more Banker win.
func (r *BigRoad) PeekHistory() History[Outcome] {
	return r.PeekHistoryFor(Banker)
}

// PeekHistoryFor returns the history as it would be after one more win for side.
// A side that cannot be marked yields an unchanged copy.
func (r *BigRoad) PeekHistoryFor(side Outcome) History[Outcome] {
	if !side.IsSide() {
		return r.History()
	}
	return r.b.columns.With(side)
}

// Hands returns the number of Banker and Player marks on the road.
func (r *BigRoad) Hands() int {
	return r.b.columns.Total()
}

// Grid returns a read-only view of the drawn board.
func (r *BigRoad) Grid() GridView {
	return GridView{g: r.b.grid}
}

// Reset clears the road for a new shoe.
func (r *BigRoad) Reset() {
	r.b.reset()
}

// Render writes the board as text.
func (r *BigRoad) Render(w io.Writer) error {
	return renderGrid(w, r.b.grid, BigRoadIndex)
}

func (r *BigRoad) String() string {
	var sb strings.Builder
	_ = r.Render(&sb)
	return sb.String()
}
