package road

import "strings"

// Tie annotations.
const (
	// TieLeading marks a tie dealt before any Banker or Player result in the shoe
	TieLeading = 'X'

	// TieRepeat marks a tie that was followed directly by another tie
	TieRepeat = 'T'

	// TiePending marks a tie whose following hand has not been dealt yet
	TiePending = '?'

	// TieSame marks a tie followed by the same side that won before it
	TieSame = 's'

	// TieChop marks a tie followed by the other side
	TieChop = 'C'

	tieGroup = 5
)

type tieStep struct {
	prior1, prior2 Outcome
	n              int
	last           byte
}

// TieTracker annotates every tie with what happened around it.
// The zero value is ready to use.
type TieTracker struct {
	// prior1 is the previous outcome, prior2 the one before; zero means start of shoe
	prior1, prior2 Outcome
	notes          []byte
	journal        []tieStep
}

// Mark records one hand. Invalid outcomes are ignored and return false.
func (t *TieTracker) Mark(o Outcome) bool {
	if !o.Valid() {
		return false
	}
	st := tieStep{prior1: t.prior1, prior2: t.prior2, n: len(t.notes)}
	if st.n > 0 {
		st.last = t.notes[st.n-1]
	}
	t.journal = append(t.journal, st)

	if o == Tie {
		switch {
		case t.prior1 == 0 || (t.prior1 == Tie && t.prior2 == 0):
			t.notes = append(t.notes, TieLeading)
			t.prior1, t.prior2 = Tie, 0
			return true
		case t.prior1 == Tie:
			t.notes[len(t.notes)-1] = TieRepeat
			t.notes = append(t.notes, TiePending)
			// a run of ties still resolves against the side before the run
			t.prior1 = t.prior2
		default:
			t.notes = append(t.notes, TiePending)
		}
		t.prior2, t.prior1 = t.prior1, Tie
		return true
	}

	if t.prior1 == Tie && t.prior2 != 0 {
		last := len(t.notes) - 1
		if t.notes[last] == TiePending {
			if o == t.prior2 {
				t.notes[last] = TieSame
			} else {
				t.notes[last] = TieChop
			}
		}
	}
	t.prior2, t.prior1 = t.prior1, o
	return true
}

// RemoveLast undoes the most recent Mark, including its effect on the
// annotation of an earlier tie. It returns false when nothing was marked.
func (t *TieTracker) RemoveLast() bool {
	n := len(t.journal)
	if n == 0 {
		return false
	}
	st := t.journal[n-1]
	t.journal = t.journal[:n-1]

	t.prior1, t.prior2 = st.prior1, st.prior2
	t.notes = t.notes[:st.n]
	if st.n > 0 {
		t.notes[st.n-1] = st.last
	}
	return true
}

// Annotations returns one character per tie, in the order the ties were dealt.
func (t *TieTracker) Annotations() string {
	return string(t.notes)
}

// Count returns the number of ties recorded.
func (t *TieTracker) Count() int {
	return len(t.notes)
}

// Reset clears the tracker for a new shoe.
func (t *TieTracker) Reset() {
	*t = TieTracker{}
}

// String renders the annotations as "Ties(...)" with a '-' between groups of five.
func (t *TieTracker) String() string {
	var sb strings.Builder
	sb.WriteString("Ties(")
	for i, c := range t.notes {
		if i > 0 && i%tieGroup == 0 {
			sb.WriteByte('-')
		}
		sb.WriteByte(c)
	}
	sb.WriteByte(')')
	return sb.String()
}
