package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/dyluth/roads/pkg/road"
)

// Hand records one applied outcome and what it wrote on the derived roads.
type Hand struct {
	Number  int          `json:"number"`
	Outcome road.Outcome `json:"outcome"`
	Signals road.Peek    `json:"signals"` // one per derived road, NoSignal where nothing was written
}

// Table owns the full set of roads for one shoe: the Big Road, the three
// derived roads and the tie tracker. It is the only thing that mutates them.
//
// A Table is not safe for concurrent use.
type Table struct {
	size    road.Size
	big     *road.BigRoad
	derived []*road.DerivedRoad
	ties    road.TieTracker
	hands   []Hand

	banker, player, tied int
}

// New creates an empty table whose roads use the given grid size.
func New(size road.Size) (*Table, error) {
	big, err := road.NewBigRoad(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create big road: %w", err)
	}

	t := &Table{size: size, big: big}
	for _, kind := range road.Kinds() {
		d, err := road.NewDerivedRoad(kind, size)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", kind, err)
		}
		t.derived = append(t.derived, d)
	}
	return t, nil
}

// Apply runs one outcome through every board: the tie tracker always, the Big
// Road for Banker and Player, and each derived road whenever it has a signal.
// Invalid outcomes are ignored and return false.
func (t *Table) Apply(o road.Outcome) (Hand, bool) {
	if !o.Valid() {
		return Hand{}, false
	}

	t.ties.Mark(o)
	signals := make(road.Peek, len(t.derived))
	if t.big.Mark(o) {
		h := t.big.History()
		for i, d := range t.derived {
			if s, ok := d.Update(h); ok {
				signals[i] = s
			}
		}
	}

	switch o {
	case road.Banker:
		t.banker++
	case road.Player:
		t.player++
	case road.Tie:
		t.tied++
	}

	hand := Hand{Number: len(t.hands) + 1, Outcome: o, Signals: signals}
	t.hands = append(t.hands, hand)
	return hand, true
}

// ApplyAll applies outcomes in order and returns how many were accepted.
func (t *Table) ApplyAll(outcomes []road.Outcome) int {
	n := 0
	for _, o := range outcomes {
		if _, ok := t.Apply(o); ok {
			n++
		}
	}
	return n
}

// RemoveLast undoes the most recent hand on every board it touched.
func (t *Table) RemoveLast() (Hand, bool) {
	n := len(t.hands)
	if n == 0 {
		return Hand{}, false
	}
	hand := t.hands[n-1]
	t.hands = t.hands[:n-1]

	t.ties.RemoveLast()
	if hand.Outcome.IsSide() {
		t.big.RemoveLast()
	}
	for i, s := range hand.Signals {
		if s != road.NoSignal {
			t.derived[i].RemoveLast()
		}
	}

	switch hand.Outcome {
	case road.Banker:
		t.banker--
	case road.Player:
		t.player--
	case road.Tie:
		t.tied--
	}
	return hand, true
}

// Preview returns what each derived road would write if the next hand went to side.
func (t *Table) Preview(side road.Outcome) road.Peek {
	return road.PreviewFor(t.big, side, t.derived...)
}

// NewShoe clears every board and counter.
func (t *Table) NewShoe() {
	t.big.Reset()
	for _, d := range t.derived {
		d.Reset()
	}
	t.ties.Reset()
	t.hands = nil
	t.banker, t.player, t.tied = 0, 0, 0
}

// Len returns the number of hands applied this shoe.
func (t *Table) Len() int {
	return len(t.hands)
}

// Hands returns a copy of every hand applied this shoe.
func (t *Table) Hands() []Hand {
	out := make([]Hand, len(t.hands))
	copy(out, t.hands)
	return out
}

// Counts returns the Banker, Player and Tie tallies.
func (t *Table) Counts() (banker, player, ties int) {
	return t.banker, t.player, t.tied
}

// BigRoadText renders the Big Road.
func (t *Table) BigRoadText() string {
	return t.big.String()
}

// DerivedText renders the derived road of the given kind, or "" for an unknown kind.
func (t *Table) DerivedText(kind road.Kind) string {
	for _, d := range t.derived {
		if d.Kind() == kind {
			return d.String()
		}
	}
	return ""
}

// TieLine renders the tie annotations, e.g. "Ties(sC?)".
func (t *Table) TieLine() string {
	return t.ties.String()
}

// PeekLine renders the Banker and Player previews on one line.
func (t *Table) PeekLine() string {
	return fmt.Sprintf("Peek B(%s) P(%s)", t.Preview(road.Banker), t.Preview(road.Player))
}

// HandLine renders one hand as a running scoreboard line:
// hand number, outcome, derived marks written and the tallies so far.
func (t *Table) HandLine(h Hand) string {
	var b, p, ties int
	for _, prior := range t.hands[:min(h.Number, len(t.hands))] {
		switch prior.Outcome {
		case road.Banker:
			b++
		case road.Player:
			p++
		case road.Tie:
			ties++
		}
	}
	return fmt.Sprintf("%02d %s [%s] BPT=%02d-%02d-%02d", h.Number, h.Outcome, h.Signals, b, p, ties)
}

// Render writes every board, the tie line and, when peek is set, the preview line.
func (t *Table) Render(w io.Writer, peek bool) error {
	if err := t.big.Render(w); err != nil {
		return err
	}
	for _, d := range t.derived {
		if err := d.Render(w); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, t.ties.String()); err != nil {
		return err
	}
	if peek {
		if _, err := fmt.Fprintln(w, t.PeekLine()); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) String() string {
	var sb strings.Builder
	_ = t.Render(&sb, true)
	return sb.String()
}
