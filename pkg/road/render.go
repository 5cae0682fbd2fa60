package road

import (
	"fmt"
	"io"
	"strings"
)

// Ruler returns the column ruler printed above a board: a '.' for every
// column, 'v' on each fifth and the tens digit on each tenth.
func Ruler(width int) string {
	var sb strings.Builder
	sb.Grow(width)
	for c := 1; c <= width; c++ {
		switch {
		case c%10 == 0:
			sb.WriteByte(byte('0' + (c/10)%10))
		case c%5 == 0:
			sb.WriteByte('v')
		default:
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

func renderGrid(w io.Writer, g *grid, index int) error {
	if _, err := fmt.Fprintf(w, "%s R%d\n", Ruler(g.width), index); err != nil {
		return err
	}
	for r := 0; r < g.height; r++ {
		if _, err := fmt.Fprintf(w, "%s%2d\n", g.cells[r], g.rowCounts[r]); err != nil {
			return err
		}
	}
	return nil
}
