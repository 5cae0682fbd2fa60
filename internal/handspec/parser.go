package handspec

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/dyluth/roads/pkg/road"
)

// MaxRepeat caps a single count token; no real shoe deals more hands than this.
const MaxRepeat = 100

// Parse parses a typed sequence of outcomes.
// Tokens are separated by whitespace or commas and take three forms:
//   - a run of letters: "PPBT"
//   - count then letter: "9P" (nine Player wins)
//   - letter then count: "P9"
//
// Letters are B, P and T in either case. An empty spec yields no outcomes.
func Parse(spec string) ([]road.Outcome, error) {
	fields := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	var out []road.Outcome
	for _, tok := range fields {
		parsed, err := parseToken(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid hand sequence token %q: %w", tok, err)
		}
		out = append(out, parsed...)
	}
	return out, nil
}

// ParseAll parses several specs in order, e.g. command-line arguments.
func ParseAll(specs []string) ([]road.Outcome, error) {
	var out []road.Outcome
	for _, s := range specs {
		parsed, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, parsed...)
	}
	return out, nil
}

func parseToken(tok string) ([]road.Outcome, error) {
	first, last := rune(tok[0]), rune(tok[len(tok)-1])

	switch {
	case unicode.IsDigit(first) && !unicode.IsDigit(last):
		return repeat(tok[:len(tok)-1], tok[len(tok)-1:])
	case !unicode.IsDigit(first) && unicode.IsDigit(last):
		return repeat(tok[1:], tok[:1])
	case unicode.IsDigit(first):
		return nil, fmt.Errorf("count without an outcome letter")
	}

	out := make([]road.Outcome, 0, len(tok))
	for _, r := range tok {
		o, err := road.ParseOutcome(string(r))
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func repeat(count, letter string) ([]road.Outcome, error) {
	n, err := strconv.Atoi(count)
	if err != nil {
		return nil, fmt.Errorf("bad count %q", count)
	}
	if n < 1 || n > MaxRepeat {
		return nil, fmt.Errorf("count must be between 1 and %d, got %d", MaxRepeat, n)
	}

	o, err := road.ParseOutcome(letter)
	if err != nil {
		return nil, err
	}

	out := make([]road.Outcome, n)
	for i := range out {
		out[i] = o
	}
	return out, nil
}

// Format renders outcomes as a compact run-length spec ("9P B P 7B") that Parse accepts.
func Format(outcomes []road.Outcome) string {
	var parts []string
	for i := 0; i < len(outcomes); {
		j := i
		for j < len(outcomes) && outcomes[j] == outcomes[i] {
			j++
		}
		if n := j - i; n == 1 {
			parts = append(parts, outcomes[i].String())
		} else {
			parts = append(parts, fmt.Sprintf("%d%s", n, outcomes[i]))
		}
		i = j
	}
	return strings.Join(parts, " ")
}
