package validator

import (
	"strings"

	"golang.org/x/text/width"
)

// Marker prefixes every validation error message. Callers can rely on it to
// tell validation failures apart from other errors.
const Marker = "[asserttypes]"

const defaultLineWidth = 120

// Format renders a failure raised by operation op as a single diagnostic:
//
//	[asserttypes] - <op>() - <failure>
//
// wrapped to lines of at most lineWidth display columns. A lineWidth below one
// disables wrapping.
func Format(op string, f *Failure, lineWidth int) string {
	msg := Marker + " - " + op + "()"
	if rendered := f.String(); rendered != "" {
		msg += " - " + rendered
	}
	if lineWidth < 1 {
		return msg
	}
	return wrapWords(msg, lineWidth)
}

// wrapWords re-flows text onto lines no wider than max. Words are never split,
// so a single word wider than max gets a line of its own.
func wrapWords(text string, max int) string {
	var (
		lines   []string
		line    strings.Builder
		lineLen int
	)
	for _, word := range strings.Fields(text) {
		w := displayWidth(word)
		switch {
		case lineLen == 0:
			line.WriteString(word)
			lineLen = w
		case lineLen+1+w <= max:
			line.WriteByte(' ')
			line.WriteString(word)
			lineLen += 1 + w
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			lineLen = w
		}
	}
	if lineLen > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// displayWidth counts terminal columns: wide and fullwidth East Asian runes
// take two.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
