package table

import "github.com/dyluth/roads/pkg/road"

// RoadSummary describes one derived road at the end of a shoe.
type RoadSummary struct {
	Name    string `json:"name"`
	Columns int    `json:"columns"`
	Same    int    `json:"same"`
	Chop    int    `json:"chop"`
}

// Summary is the end-of-shoe view of a table.
type Summary struct {
	Hands         int           `json:"hands"`
	Banker        int           `json:"banker"`
	Player        int           `json:"player"`
	Ties          int           `json:"ties"`
	LongestBanker int           `json:"longest_banker"`
	LongestPlayer int           `json:"longest_player"`
	Columns       int           `json:"columns"`
	RowCounts     []int         `json:"row_counts"`
	Overflowed    bool          `json:"overflowed"`
	Derived       []RoadSummary `json:"derived"`
	TieLine       string        `json:"tie_line"`
}

// Summary collects counts, longest runs and per-road statistics.
func (t *Table) Summary() Summary {
	history := t.big.History()
	grid := t.big.Grid()

	s := Summary{
		Hands:      len(t.hands),
		Banker:     t.banker,
		Player:     t.player,
		Ties:       t.tied,
		Columns:    history.Len(),
		RowCounts:  grid.RowCounts(),
		Overflowed: grid.Overflowed(),
		TieLine:    t.ties.String(),
	}

	for _, c := range history {
		switch c.Marker {
		case road.Banker:
			s.LongestBanker = max(s.LongestBanker, c.Length)
		case road.Player:
			s.LongestPlayer = max(s.LongestPlayer, c.Length)
		}
	}

	for _, d := range t.derived {
		rs := RoadSummary{Name: d.Kind().String()}
		h := d.History()
		rs.Columns = h.Len()
		for _, c := range h {
			switch c.Marker {
			case road.Same:
				rs.Same += c.Length
			case road.Chop:
				rs.Chop += c.Length
			}
		}
		s.Derived = append(s.Derived, rs)
	}

	return s
}
