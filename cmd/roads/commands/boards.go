package commands

import (
	"fmt"
	"io"

	"github.com/dyluth/roads/internal/printer"
	"github.com/dyluth/roads/internal/table"
	"github.com/dyluth/roads/pkg/road"
)

// writeBoards prints the four boards, the tie line and optionally the peek line.
func writeBoards(w io.Writer, tbl *table.Table, colored, peek bool) {
	fmt.Fprint(w, printer.Board(tbl.BigRoadText(), colored))
	for _, kind := range road.Kinds() {
		fmt.Fprint(w, printer.Board(tbl.DerivedText(kind), colored))
	}
	fmt.Fprintln(w, tbl.TieLine())
	if peek {
		fmt.Fprintln(w, tbl.PeekLine())
	}
}
