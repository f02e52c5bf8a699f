// Package directive parses panel configuration text.
//
// Each non-blank line is one directive followed by "-key value[,value...]"
// arguments:
//
//	label -name Ore Storage -align center
//	inventory -name Ore -blocks Cargo, Refinery
//
// The line is split on "-"; the first piece is the directive tag and every
// later piece is an argument whose key runs up to the first space. Values are
// split on "," and trimmed. Unknown tags are returned with TagUnknown so the
// caller can skip them.
package directive

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for fatal parse failures. Check them with errors.Is.
var (
	ErrMalformedArgument = errors.New("argument has no value")
	ErrDuplicateKey      = errors.New("argument given twice")
	ErrUnparsableNumber  = errors.New("argument is not a number")
)

// Tag identifies a directive.
type Tag int

const (
	TagUnknown Tag = iota
	TagConfig
	TagDisplay
	TagColumn
	TagLabel
	TagLine
	TagInventory
)

var tagNames = map[string]Tag{
	"config":    TagConfig,
	"display":   TagDisplay,
	"column":    TagColumn,
	"label":     TagLabel,
	"line":      TagLine,
	"rule":      TagLine,
	"inventory": TagInventory,
	"capacity":  TagInventory,
}

// ParseTag maps a directive keyword to its Tag.
func ParseTag(s string) Tag {
	if t, ok := tagNames[s]; ok {
		return t
	}
	return TagUnknown
}

// String returns the canonical keyword for the tag.
func (t Tag) String() string {
	switch t {
	case TagConfig:
		return "config"
	case TagDisplay:
		return "display"
	case TagColumn:
		return "column"
	case TagLabel:
		return "label"
	case TagLine:
		return "line"
	case TagInventory:
		return "inventory"
	default:
		return "unknown"
	}
}

// Directive is one parsed configuration line.
type Directive struct {
	Tag  Tag
	Name string // keyword as written
	Args Args
	Line int // 1-based line number in the source text
}

// LineError locates a fatal parse error.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Parse turns a whole configuration block into directives, skipping blank lines.
// The first malformed line aborts parsing with a *LineError.
func Parse(text string) ([]Directive, error) {
	var out []Directive
	for i, raw := range strings.Split(text, "\n") {
		d, ok, err := ParseLine(raw)
		if err != nil {
			return nil, &LineError{Line: i + 1, Text: strings.TrimSpace(raw), Err: err}
		}
		if !ok {
			continue
		}
		d.Line = i + 1
		out = append(out, d)
	}
	return out, nil
}

// ParseLine parses a single line. ok is false for blank lines.
func ParseLine(line string) (d Directive, ok bool, err error) {
	var pieces []string
	for _, p := range strings.Split(strings.TrimSpace(line), "-") {
		if p == "" {
			continue
		}
		pieces = append(pieces, strings.TrimSpace(p))
	}
	if len(pieces) == 0 || (len(pieces) == 1 && pieces[0] == "") {
		return Directive{}, false, nil
	}

	d = Directive{
		Tag:  ParseTag(pieces[0]),
		Name: pieces[0],
		Args: NewArgs(),
	}

	for _, arg := range pieces[1:] {
		key, values, err := parseArgument(arg)
		if err != nil {
			return Directive{}, false, err
		}
		if err := d.Args.Set(key, values); err != nil {
			return Directive{}, false, err
		}
	}
	return d, true, nil
}

// parseArgument splits "key v1, v2" into its key and trimmed, non-empty values.
func parseArgument(arg string) (string, []string, error) {
	sep := strings.Index(arg, " ")
	if sep < 0 {
		return "", nil, fmt.Errorf("%w: %q", ErrMalformedArgument, arg)
	}

	key := strings.TrimSpace(arg[:sep])
	var values []string
	for _, v := range strings.Split(arg[sep+1:], ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return key, values, nil
}
