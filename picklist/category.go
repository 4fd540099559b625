package picklist

import (
	"fmt"
	"strings"
)

// Category labels a run of components that follows it in the body. The
// name is non-empty and never contains a colon.
type Category struct {
	Name string
}

// ParseCategory parses a category header line. Blank-line filtering
// happens before dispatch, so every line handed to this parser is expected
// to produce a category or fail.
func ParseCategory(line string) (*Category, error) {
	if len(line) > 0 && line[0] == ':' {
		return nil, fmt.Errorf("%w: a category line may not start with a colon", ErrInvalidName)
	}

	sep := strings.IndexByte(line, ':')
	if sep < 0 {
		return nil, ErrMissingSeparator
	}

	return &Category{Name: line[:sep]}, nil
}
