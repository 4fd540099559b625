package picklist

import (
	"fmt"
	"strings"
)

// Component is a single picked or unpicked item on the pick list. Category
// points at the category the component was parsed under, or is nil when
// the component appeared before any category header. The document owns the
// category; the component only refers to it.
type Component struct {
	Picked      bool
	Name        string
	Value       string
	Description string
	Package     string
	RefDes      []string

	Category *Category
}

// ParseComponent parses one component line:
//
//	[PickMark] Name ":" Value [";" Description [";" Package [";" RefDes...]]]
//
// The optional pick mark is "[x]", "[X]" or "[ ]". Fields after the colon
// are split on at most three semicolons and trimmed of surrounding spaces
// and tabs; the designator field is split on whitespace. The outcome
// mirrors ParseProperty: Blank for whitespace-only lines and Finished for
// a bare "---" line.
func ParseComponent(line string) (*Component, Outcome, error) {
	if isBlank(line) {
		return nil, Blank, nil
	}

	if isTerminator(line) {
		return nil, Finished, nil
	}

	comp := &Component{}

	rest := line
	if strings.HasPrefix(rest, "[") {
		if len(rest) < 3 || rest[2] != ']' || strings.IndexByte("xX ", rest[1]) < 0 {
			return nil, Parsed, fmt.Errorf("%w: malformed pick mark, want \"[x]\", \"[X]\" or \"[ ]\"", ErrInvalidName)
		}
		comp.Picked = rest[1] != ' '
		rest = strings.TrimLeft(rest[3:], lineWhitespace)
	}

	if rest == "" || rest[0] == ':' {
		return nil, Parsed, fmt.Errorf("%w: a component line may not start with a colon", ErrInvalidName)
	}

	if rest[0] == '-' {
		return nil, Parsed, fmt.Errorf("%w: a component name may not start with a dash", ErrInvalidName)
	}

	sep := strings.IndexByte(rest, ':')
	if sep < 0 {
		return nil, Parsed, ErrMissingSeparator
	}
	comp.Name = rest[:sep]

	after := strings.TrimLeft(rest[sep:], ":"+lineWhitespace)
	if after == "" {
		return nil, Parsed, ErrMissingValue
	}

	fields := strings.SplitN(after, ";", 4)
	comp.Value = strings.Trim(fields[0], lineWhitespace)
	if comp.Value == "" {
		return nil, Parsed, ErrMissingValue
	}
	if len(fields) > 1 {
		comp.Description = strings.Trim(fields[1], lineWhitespace)
	}
	if len(fields) > 2 {
		comp.Package = strings.Trim(fields[2], lineWhitespace)
	}
	if len(fields) > 3 {
		comp.RefDes = strings.Fields(fields[3])
	}

	return comp, Parsed, nil
}
