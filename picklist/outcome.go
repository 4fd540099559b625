package picklist

import "fmt"

// Outcome distinguishes the non-record results a record parser can produce
// from an actual parsed record. Blank and Finished are not errors; they
// tell the caller to skip the line or to stop looping.
type Outcome int

const (
	// Parsed means the line produced a record.
	Parsed Outcome = iota
	// Blank means the line contained only whitespace and was skipped.
	Blank
	// Finished means the line ended the current block of records.
	Finished
)

func (o Outcome) String() string {
	switch o {
	case Parsed:
		return "Parsed"
	case Blank:
		return "Blank"
	case Finished:
		return "Finished"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}
