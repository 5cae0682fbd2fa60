package road

import (
	"fmt"
	"strings"
)

// Outcome is the result of a single hand of baccarat.
// The zero value is not a valid outcome; every board ignores it.
type Outcome uint8

const (
	// Banker means the banker hand won
	Banker Outcome = iota + 1

	// Player means the player hand won
	Player

	// Tie means both hands finished on the same total
	Tie
)

// String returns the one-letter scoreboard form: "B", "P" or "T".
func (o Outcome) String() string {
	switch o {
	case Banker:
		return "B"
	case Player:
		return "P"
	case Tie:
		return "T"
	default:
		return "?"
	}
}

// Valid reports whether o is Banker, Player or Tie.
func (o Outcome) Valid() bool {
	return o >= Banker && o <= Tie
}

// IsSide reports whether o can start or extend a Big Road column.
// Ties never can.
func (o Outcome) IsSide() bool {
	return o == Banker || o == Player
}

// Opposite returns the other side for Banker and Player.
// Any other value is returned unchanged.
func (o Outcome) Opposite() Outcome {
	switch o {
	case Banker:
		return Player
	case Player:
		return Banker
	default:
		return o
	}
}

// MarshalText encodes the outcome as its one-letter form.
func (o Outcome) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("invalid outcome: %d", uint8(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText decodes any form accepted by ParseOutcome.
func (o *Outcome) UnmarshalText(text []byte) error {
	parsed, err := ParseOutcome(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

func (o Outcome) glyph() byte {
	return o.String()[0]
}

func (o Outcome) onBoard() bool {
	return o.IsSide()
}

// ParseOutcome parses "B", "P" or "T" (or "banker", "player", "tie"), ignoring case
// and surrounding whitespace.
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "b", "banker":
		return Banker, nil
	case "p", "player":
		return Player, nil
	case "t", "tie":
		return Tie, nil
	default:
		return 0, fmt.Errorf("unknown outcome: %q (expected B, P or T)", s)
	}
}
