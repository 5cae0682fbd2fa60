package printer

import (
	"strings"

	"github.com/fatih/color"
)

var (
	bankerColor   = color.New(color.FgRed, color.Bold)
	playerColor   = color.New(color.FgBlue, color.Bold)
	sameColor     = color.New(color.FgRed)
	chopColor     = color.New(color.FgBlue)
	mergeColor    = color.New(color.FgYellow)
	overflowColor = color.New(color.FgMagenta, color.Bold)
	rulerColor    = color.New(color.Faint)
)

// ColorizeBoard colours a rendered board: Banker and Same red, Player and Chop
// blue, merges yellow, overflow magenta. The ruler line is dimmed and the
// trailing row counters are left alone.
func ColorizeBoard(text string) string {
	lines := strings.SplitAfter(text, "\n")
	var sb strings.Builder
	for _, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		nl := line[len(body):]

		switch {
		case body == "":
		case isRuler(body):
			sb.WriteString(rulerColor.Sprint(body))
		case len(body) > 2:
			sb.WriteString(colorizeCells(body[:len(body)-2]))
			sb.WriteString(body[len(body)-2:])
		default:
			sb.WriteString(body)
		}
		sb.WriteString(nl)
	}
	return sb.String()
}

// Board returns text coloured when enabled, unchanged otherwise.
func Board(text string, enabled bool) string {
	if !enabled {
		return text
	}
	return ColorizeBoard(text)
}

func isRuler(line string) bool {
	return strings.HasPrefix(line, "....")
}

func colorizeCells(cells string) string {
	var sb strings.Builder
	for i := 0; i < len(cells); i++ {
		c := cells[i]
		switch c {
		case 'B':
			sb.WriteString(bankerColor.Sprint("B"))
		case 'P':
			sb.WriteString(playerColor.Sprint("P"))
		case 's':
			sb.WriteString(sameColor.Sprint("s"))
		case 'C':
			sb.WriteString(chopColor.Sprint("C"))
		case '=':
			sb.WriteString(mergeColor.Sprint("="))
		case '>':
			sb.WriteString(overflowColor.Sprint(">"))
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
