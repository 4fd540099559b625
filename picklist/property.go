package picklist

import (
	"fmt"
	"strings"
)

// Property is a name/value pair from the document header. The name is
// non-empty and never contains a colon; the value is non-empty.
type Property struct {
	Name  string
	Value string
}

// ParseProperty parses one header line. It returns a property with the
// Parsed outcome, a nil property with the Blank outcome for
// whitespace-only lines, or a nil property with the Finished outcome for
// the "---" terminator.
//
// The name is the verbatim text before the first colon. The value is the
// remainder after skipping the run of colons, spaces and tabs that follows
// the separator; anything after that, trailing whitespace and later colons
// included, is preserved.
func ParseProperty(line string) (*Property, Outcome, error) {
	if isBlank(line) {
		return nil, Blank, nil
	}

	if line[0] == '-' {
		if isTerminator(line) {
			return nil, Finished, nil
		}
		return nil, Parsed, fmt.Errorf("%w: a property name may not start with a dash", ErrInvalidName)
	}

	if line[0] == ':' {
		return nil, Parsed, fmt.Errorf("%w: a property line may not start with a colon", ErrInvalidName)
	}

	sep := strings.IndexByte(line, ':')
	if sep < 0 {
		return nil, Parsed, ErrMissingSeparator
	}

	value := strings.TrimLeft(line[sep:], ":"+lineWhitespace)
	if value == "" {
		return nil, Parsed, ErrMissingValue
	}

	return &Property{Name: line[:sep], Value: value}, Parsed, nil
}
