package road

// Peek holds the signal each derived road would write if the next hand went
// to a given side, one entry per road in the order they were passed.
type Peek []Signal

// String returns the peek glyphs, e.g. "sCs". Roads without a signal show a blank.
func (p Peek) String() string {
	out := make([]byte, len(p))
	for i, s := range p {
		out[i] = s.glyph()
	}
	return string(out)
}

// Preview returns what each road would write if the next hand were a Banker win.
// Nothing is mutated.
func Preview(big *BigRoad, roads ...*DerivedRoad) Peek {
	return PreviewFor(big, Banker, roads...)
}

// PreviewFor returns what each road would write if the next hand went to side.
// A side that cannot be marked yields NoSignal for every road.
func PreviewFor(big *BigRoad, side Outcome, roads ...*DerivedRoad) Peek {
	p := make(Peek, len(roads))
	if big == nil || !side.IsSide() {
		return p
	}
	h := big.PeekHistoryFor(side)
	for i, d := range roads {
		if d == nil {
			continue
		}
		p[i] = d.Signal(h)
	}
	return p
}
