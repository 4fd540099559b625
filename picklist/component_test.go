package picklist

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseComponent(t *testing.T) {
	tests := []struct {
		input string
		want  Component
	}{
		{
			"[x] R10K: 10k; Metal film resistor; 0805; R1 R2 R3",
			Component{Picked: true, Name: "R10K", Value: "10k", Description: "Metal film resistor", Package: "0805", RefDes: []string{"R1", "R2", "R3"}},
		},
		{
			"[X] C100N: 100nF; Ceramic capacitor; 0603; C1",
			Component{Picked: true, Name: "C100N", Value: "100nF", Description: "Ceramic capacitor", Package: "0603", RefDes: []string{"C1"}},
		},
		{
			"[ ] U1: ATmega328P; MCU; TQFP-32; U1",
			Component{Name: "U1", Value: "ATmega328P", Description: "MCU", Package: "TQFP-32", RefDes: []string{"U1"}},
		},
		// The pick mark is optional and defaults to unpicked.
		{
			"LED1: red",
			Component{Name: "LED1", Value: "red"},
		},
		// Trailing fields may be omitted.
		{
			"[x] R1: 470",
			Component{Picked: true, Name: "R1", Value: "470"},
		},
		{
			"[x] R1: 470; Pull-up",
			Component{Picked: true, Name: "R1", Value: "470", Description: "Pull-up"},
		},
		// Empty middle fields are allowed.
		{
			"[ ] J1: 2x5 header; ; IDC10; J1",
			Component{Name: "J1", Value: "2x5 header", Package: "IDC10", RefDes: []string{"J1"}},
		},
		// Fields are trimmed, designators split on any whitespace run.
		{
			"[x] Q1:  BC547 ;  NPN transistor ; TO-92;  Q1\tQ2  Q3 ",
			Component{Picked: true, Name: "Q1", Value: "BC547", Description: "NPN transistor", Package: "TO-92", RefDes: []string{"Q1", "Q2", "Q3"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			comp, outcome, err := ParseComponent(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if outcome != Parsed {
				t.Fatalf("outcome = %v, want Parsed", outcome)
			}
			if !reflect.DeepEqual(*comp, tt.want) {
				t.Errorf("component = %+v, want %+v", *comp, tt.want)
			}
		})
	}
}

func TestParseComponentOutcomes(t *testing.T) {
	tests := []struct {
		input   string
		outcome Outcome
	}{
		{"", Blank},
		{" \t", Blank},
		{"---", Finished},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			comp, outcome, err := ParseComponent(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if outcome != tt.outcome {
				t.Errorf("outcome = %v, want %v", outcome, tt.outcome)
			}
			if comp != nil {
				t.Errorf("component = %+v, want nil", comp)
			}
		})
	}
}

func TestParseComponentErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"[y] R1: 470", ErrInvalidName},
		{"[", ErrInvalidName},
		{"[x  R1: 470", ErrInvalidName},
		{"[x] : 470", ErrInvalidName},
		{"[x] ", ErrInvalidName},
		{":R1", ErrInvalidName},
		{"-R1: 470", ErrInvalidName},
		{"R1 470", ErrMissingSeparator},
		{"[x] R1 470", ErrMissingSeparator},
		{"R1:", ErrMissingValue},
		{"R1:   ", ErrMissingValue},
		{"[x] R1:  ; desc", ErrMissingValue},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			comp, _, err := ParseComponent(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if comp != nil {
				t.Errorf("component = %+v, want nil", comp)
			}
		})
	}
}
