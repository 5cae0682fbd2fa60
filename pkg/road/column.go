package road

// Marker is the closed alphabet a road accepts as column markers:
// Banker/Player on the Big Road, Same/Chop on the derived roads.
type Marker interface {
	Outcome | Signal

	glyph() byte
	onBoard() bool
}

// Column is one run of identical marks.
type Column[M Marker] struct {
	Marker M   `json:"marker"`
	Length int `json:"length"`
}

// History is the ordered column list of a road, oldest column first.
// It is a plain value: roads hand out clones, never their own backing array.
type History[M Marker] []Column[M]

// Len returns the number of columns.
func (h History[M]) Len() int {
	return len(h)
}

// Last returns the newest (open) column.
func (h History[M]) Last() (Column[M], bool) {
	if len(h) == 0 {
		return Column[M]{}, false
	}
	return h[len(h)-1], true
}

// Length returns the length of column i, or 0 when i is out of range.
func (h History[M]) Length(i int) int {
	if i < 0 || i >= len(h) {
		return 0
	}
	return h[i].Length
}

// Total returns the number of marks across all columns.
func (h History[M]) Total() int {
	total := 0
	for _, c := range h {
		total += c.Length
	}
	return total
}

// Clone returns a copy that shares no memory with h.
func (h History[M]) Clone() History[M] {
	if h == nil {
		return nil
	}
	out := make(History[M], len(h))
	copy(out, h)
	return out
}

// With returns a clone of h extended by one more mark m: the open column grows
// when m matches its marker, otherwise a new column of length 1 is started.
func (h History[M]) With(m M) History[M] {
	out := make(History[M], len(h), len(h)+1)
	copy(out, h)
	if n := len(out); n > 0 && out[n-1].Marker == m {
		out[n-1].Length++
		return out
	}
	return append(out, Column[M]{Marker: m, Length: 1})
}
