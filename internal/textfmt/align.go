// Package textfmt holds the pure string and number formatting used to
// render panel content: alignment and truncation in characters (runes),
// fixed-point number formatting with round-half-up, and gauge bars.
package textfmt

import (
	"strings"
	"unicode/utf8"
)

// Alignment selects how text is placed inside a fixed width.
type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// String returns the configuration keyword for the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignmentCenter:
		return "center"
	case AlignmentRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment maps a configuration keyword to an Alignment.
// Anything other than "center" or "right" is left alignment.
func ParseAlignment(s string) Alignment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre":
		return AlignmentCenter
	case "right":
		return AlignmentRight
	default:
		return AlignmentLeft
	}
}

// Len returns the length of s in characters.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Repeat returns r repeated n times. Non-positive n yields "".
func Repeat(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(r), n)
}

// padLeft right-justifies v in total characters. Never shortens v.
func padLeft(v string, total int) string {
	if pad := total - Len(v); pad > 0 {
		return strings.Repeat(" ", pad) + v
	}
	return v
}

// padRight left-justifies v in total characters. Never shortens v.
func padRight(v string, total int) string {
	if pad := total - Len(v); pad > 0 {
		return v + strings.Repeat(" ", pad)
	}
	return v
}

// AlignLeft pads v on the right to length characters.
func AlignLeft(v string, length int) string {
	return padRight(v, length)
}

// AlignRight pads v on the left to length characters.
func AlignRight(v string, length int) string {
	return padLeft(v, length)
}

// AlignCenter centers v in the first length-1 characters and right-pads the
// result to length, so leftover space is biased to the right:
// AlignCenter("AB", 6) == " AB   ".
func AlignCenter(v string, length int) string {
	n := Len(v)
	return padRight(padLeft(v, (length-1-n)/2+n), length)
}

// Align dispatches to the alignment function for a.
func Align(v string, length int, a Alignment) string {
	switch a {
	case AlignmentCenter:
		return AlignCenter(v, length)
	case AlignmentRight:
		return AlignRight(v, length)
	default:
		return AlignLeft(v, length)
	}
}

// Truncate returns the first min(length, len(v)) characters of v. It never pads.
func Truncate(v string, length int) string {
	if length <= 0 {
		return ""
	}
	if Len(v) <= length {
		return v
	}
	i := 0
	for pos := range v {
		if i == length {
			return v[:pos]
		}
		i++
	}
	return v
}

// Fit truncates v to length and right-pads it back to exactly length characters.
func Fit(v string, length int) string {
	return padRight(Truncate(v, length), length)
}
