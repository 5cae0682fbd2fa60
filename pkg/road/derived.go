package road

import (
	"fmt"
	"io"
	"strings"
)

// Signal is the mark written on a derived road.
type Signal uint8

const (
	// NoSignal means there is not enough history to compare against
	NoSignal Signal = iota

	// Same means the Big Road is repeating its earlier shape
	Same

	// Chop means the Big Road is breaking its earlier shape
	Chop
)

// String returns the board glyph: "s", "C", or a blank for NoSignal.
func (s Signal) String() string {
	return string(s.glyph())
}

// MarshalText encodes the signal as its glyph.
func (s Signal) MarshalText() ([]byte, error) {
	return []byte{s.glyph()}, nil
}

// UnmarshalText accepts "s", "C" or a blank.
func (s *Signal) UnmarshalText(text []byte) error {
	switch string(text) {
	case "s":
		*s = Same
	case "C":
		*s = Chop
	case " ", "":
		*s = NoSignal
	default:
		return fmt.Errorf("unknown signal: %q", text)
	}
	return nil
}

func (s Signal) glyph() byte {
	switch s {
	case Same:
		return 's'
	case Chop:
		return 'C'
	default:
		return blank
	}
}

func (s Signal) onBoard() bool {
	return s == Same || s == Chop
}

// Board indices used in rendered headers.
const (
	BigRoadIndex = 0
)

// Kind identifies one of the three derived roads. The set is closed: the
// only valid values are BigEye, SmallRoad and Cockroach.
type Kind struct {
	offset int
	index  int
	name   string
}

var (
	// BigEye compares each column with the one before it (offset 2)
	BigEye = Kind{offset: 2, index: 1, name: "Big Eye"}

	// SmallRoad skips one column (offset 3)
	SmallRoad = Kind{offset: 3, index: 2, name: "Small Road"}

	// Cockroach skips two columns (offset 4)
	Cockroach = Kind{offset: 4, index: 3, name: "Cockroach"}
)

// Kinds returns the derived roads in board order.
func Kinds() []Kind {
	return []Kind{BigEye, SmallRoad, Cockroach}
}

// Offset returns how far back in the Big Road this kind looks.
func (k Kind) Offset() int { return k.offset }

// Index returns the board number shown in the rendered header.
func (k Kind) Index() int { return k.index }

func (k Kind) String() string {
	if k.name == "" {
		return "Invalid"
	}
	return k.name
}

// Validate rejects the zero Kind.
func (k Kind) Validate() error {
	switch k {
	case BigEye, SmallRoad, Cockroach:
		return nil
	default:
		return fmt.Errorf("invalid derived road kind: %v", k)
	}
}

// Signal computes the mark this kind would write for the newest entry of h.
//
// When the newest column has just opened, the two columns before it are compared
// by length, looking offset-1 columns further back: equal lengths are Same,
// otherwise Chop. When the newest column is growing, the column offset-1 before
// it is checked: if it ended exactly one row above the new mark that is Chop,
// otherwise Same. Missing history yields NoSignal.
func (k Kind) Signal(h History[Outcome]) Signal {
	if k.Validate() != nil {
		return NoSignal
	}
	last, ok := h.Last()
	if !ok {
		return NoSignal
	}
	col, row := len(h)-1, last.Length

	if row == 1 {
		ref := col - k.offset
		if ref < 0 {
			return NoSignal
		}
		if h[col-1].Length != h[ref].Length {
			return Chop
		}
		return Same
	}

	ref := col - (k.offset - 1)
	if ref < 0 {
		return NoSignal
	}
	if row-1 == h[ref].Length {
		return Chop
	}
	return Same
}

// DerivedRoad records the signals of one Kind as columns of Same and Chop.
type DerivedRoad struct {
	kind Kind
	b    *board[Signal]
}

// NewDerivedRoad creates an empty derived road.
func NewDerivedRoad(kind Kind, size Size) (*DerivedRoad, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if err := size.Validate(); err != nil {
		return nil, err
	}
	return &DerivedRoad{kind: kind, b: newBoard[Signal](size)}, nil
}

// Kind returns which derived road this is.
func (d *DerivedRoad) Kind() Kind { return d.kind }

// Signal is shorthand for d.Kind().Signal(h).
func (d *DerivedRoad) Signal(h History[Outcome]) Signal {
	return d.kind.Signal(h)
}

// Mark records a signal. NoSignal is ignored and returns false.
func (d *DerivedRoad) Mark(s Signal) bool {
	return d.b.mark(s)
}

// Update computes the signal for h and marks it. It returns the signal and
// whether anything was written.
func (d *DerivedRoad) Update(h History[Outcome]) (Signal, bool) {
	s := d.kind.Signal(h)
	return s, d.b.mark(s)
}

// RemoveLast undoes the most recent mark.
func (d *DerivedRoad) RemoveLast() bool {
	return d.b.removeLast()
}

// History returns a copy of the column history.
func (d *DerivedRoad) History() History[Signal] {
	return d.b.columns.Clone()
}

// Grid returns a read-only view of the drawn board.
func (d *DerivedRoad) Grid() GridView {
	return GridView{g: d.b.grid}
}

// Reset clears the road for a new shoe.
func (d *DerivedRoad) Reset() {
	d.b.reset()
}

// Render writes the board as text.
func (d *DerivedRoad) Render(w io.Writer) error {
	return renderGrid(w, d.b.grid, d.kind.index)
}

func (d *DerivedRoad) String() string {
	var sb strings.Builder
	_ = d.Render(&sb)
	return sb.String()
}
