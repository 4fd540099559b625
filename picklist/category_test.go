package picklist

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		name  string
	}{
		{"Resistors:", "Resistors"},
		{"Capacitors:", "Capacitors"},
		{"Integrated Circuits:", "Integrated Circuits"},
		// Only the text before the first colon becomes the name.
		{"Misc: leftovers:", "Misc"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cat, err := ParseCategory(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cat.Name != tt.name {
				t.Errorf("name = %q, want %q", cat.Name, tt.name)
			}
		})
	}
}

func TestParseCategoryErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{":Resistors", ErrInvalidName},
		{":", ErrInvalidName},
		{"nocolon", ErrMissingSeparator},
		{"", ErrMissingSeparator},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cat, err := ParseCategory(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if cat != nil {
				t.Errorf("category = %+v, want nil", cat)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		line       string
		blank      bool
		terminator bool
		category   bool
	}{
		{"", true, false, false},
		{"  \t ", true, false, false},
		{"---", false, true, false},
		{"--- ", false, false, false},
		{"Resistors:", false, false, true},
		{"Name: value", false, false, false},
		// Only the final character decides the category classification, so
		// a value ending in ':' classifies as a category.
		{"Note: see datasheet:", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := isBlank(tt.line); got != tt.blank {
				t.Errorf("isBlank = %v, want %v", got, tt.blank)
			}
			if got := isTerminator(tt.line); got != tt.terminator {
				t.Errorf("isTerminator = %v, want %v", got, tt.terminator)
			}
			if got := isCategory(tt.line); got != tt.category {
				t.Errorf("isCategory = %v, want %v", got, tt.category)
			}
		})
	}
}
