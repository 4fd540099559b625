// Package picklist parses PickLE pick list documents: line-oriented text
// files describing electronic components to be sourced and placed on a
// board, grouped by category.
//
// # Overview
//
// A parse runs a single forward pass over the input. Bytes become lines,
// lines are classified, classified lines become typed records, and records
// are appended to the document's collections in file order:
//
//	┌───────────┐    ┌─────────────┐    ┌──────────────┐    ┌────────────┐
//	│   Input   │───▶│ Line Reader │───▶│  Classifier  │───▶│   Record   │
//	│  (bytes)  │    │   (lines)   │    │ (line kinds) │    │  Parsers   │
//	└───────────┘    └─────────────┘    └──────────────┘    └────────────┘
//	                                                              │
//	                                                              ▼
//	                                                        ┌────────────┐
//	                                                        │  Document  │
//	                                                        └────────────┘
//
// # File format
//
// A document is a header block of properties terminated by a line containing
// exactly "---", followed by a body of categories and components:
//
//	Name: My Board
//	Author: Jane
//	---
//	Resistors:
//	[x] R10K: 10k; Metal film resistor; 0805; R1 R2 R3
//	Capacitors:
//	[ ] C100N: 100nF; Ceramic capacitor; 0603; C1 C2
//
// Lines end in '\n'. Carriage returns are stripped wherever they appear, so
// CRLF and stray-CR input parses identically to LF input. Lines containing
// only spaces and tabs are skipped. A line longer than the configured
// maximum (1024 bytes by default, see WithMaxLineLength) is a hard error.
//
// # Properties
//
//	PropertyLine ::= Name ":" SP* Value
//
// The first colon is the separator. The name is taken verbatim, so it must
// not contain a colon; it also must not start with a dash (reserved for the
// "---" terminator) or a colon. The value is everything after the separator
// once any run of additional colons, spaces and tabs has been skipped;
// trailing whitespace and any later colons are preserved.
//
// # Categories
//
//	CategoryLine ::= Name ":"
//
// A body line whose final character is ':' is a category. Only the final
// character is examined, so a component whose last field happens to end in
// ':' will classify as a category; keep trailing colons out of component
// fields.
//
// # Components
//
//	ComponentLine ::= [PickMark SP*] Name ":" SP* Value
//	                  [";" SP* Description [";" SP* Package [";" SP* RefDes*]]]
//	PickMark      ::= "[x]" | "[X]" | "[ ]"
//
// The pick mark is optional; "[x]" and "[X]" mark the component as picked,
// "[ ]" and an absent mark leave it unpicked. After the name and colon the
// rest of the line splits on at most three semicolons into value,
// description, package and reference designators. Each field is trimmed of
// surrounding spaces and tabs; the designator field is split on whitespace
// into individual designators (R1, C7, U3 and so on). Missing trailing
// fields are simply absent. Every component belongs to the most recently
// parsed category, if any.
//
// # Parsing
//
// ParseFile opens, parses and closes a file in one call. Parse consumes an
// io.Reader, which must not be used by anything else for the duration of
// the call:
//
//	doc, err := picklist.ParseFile("board.pkl")
//	if err != nil {
//	    var perr *picklist.ParseError
//	    if errors.As(err, &perr) {
//	        log.Fatalf("%s:%d: %v", "board.pkl", perr.Line, perr.Err)
//	    }
//	    log.Fatal(err)
//	}
//	for _, p := range doc.Properties() {
//	    fmt.Printf("%s = %s\n", p.Name, p.Value)
//	}
//
// Parsing is fail-fast: the first malformed line aborts the parse with a
// *ParseError carrying the 1-based line number, the offending text and a
// sentinel error (ErrInvalidName, ErrMissingSeparator, ErrMissingValue or
// ErrLineTooLong). The returned document retains every record appended
// before the failing line, so callers can still inspect the well-formed
// prefix; whether to discard it is up to them.
package picklist
