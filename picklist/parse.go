package picklist

import (
	"fmt"
	"io"
	"os"
)

// Option configures a parse.
type Option func(*parser)

// WithMaxLineLength sets the line length bound. Lines longer than n bytes
// fail the parse with ErrLineTooLong. The default is DefaultMaxLineLength.
func WithMaxLineLength(n int) Option {
	return func(p *parser) {
		p.maxLine = n
	}
}

// parser drives the header and body phases over a line reader, appending
// records to the document as they are produced.
type parser struct {
	doc     *Document
	lines   *lineReader
	maxLine int
	lineno  int

	// category is the most recently parsed category header. Components
	// parsed before the first header carry a nil category.
	category *Category
}

// ParseFile opens, parses and closes a pick list file.
//
// Like Parse, the returned document is non-nil even when parsing fails,
// holding every record parsed before the failing line.
func ParseFile(path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return NewDocument(), fmt.Errorf("open document: %w", err)
	}
	defer f.Close()
	return Parse(f, opts...)
}

// Parse reads a whole pick list document from r: the header properties
// block up to its "---" terminator, then categories interleaved with
// components until end of input. The reader must not be used by anything
// else until Parse returns.
//
// The first malformed line or read fault aborts the parse; syntactic
// faults are reported as a *ParseError. The returned document is non-nil
// either way and holds every record appended before the failure.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	p := &parser{
		doc:     NewDocument(),
		maxLine: DefaultMaxLineLength,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.lines = newLineReader(r, p.maxLine)

	if err := p.parseHeader(); err != nil {
		return p.doc, err
	}
	if err := p.parseBody(); err != nil {
		return p.doc, err
	}
	return p.doc, nil
}

// next reads one line, tracking the 1-based line number for error
// reporting.
func (p *parser) next() (string, error) {
	p.lineno++
	return p.lines.readLine()
}

// errorf wraps a record parser failure with the current line.
func (p *parser) errorf(line string, err error) error {
	return &ParseError{Line: p.lineno, Text: line, Err: err}
}

// parseHeader consumes property lines until the "---" terminator. Reaching
// end of input before the terminator means the document has no body and is
// malformed.
func (p *parser) parseHeader() error {
	for {
		line, err := p.next()
		if err == io.EOF {
			return &ParseError{Line: p.lineno, Err: fmt.Errorf("document header is missing its %q terminator: %w", terminator, io.ErrUnexpectedEOF)}
		}
		if err != nil {
			return p.errorf("", err)
		}

		prop, outcome, err := ParseProperty(line)
		if err != nil {
			return p.errorf(line, err)
		}
		switch outcome {
		case Blank:
			continue
		case Finished:
			return nil
		}
		p.doc.addProperty(prop)
	}
}

// parseBody consumes category and component lines until end of input,
// which is the normal terminal condition.
func (p *parser) parseBody() error {
	for {
		line, err := p.next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return p.errorf("", err)
		}

		if isBlank(line) {
			continue
		}

		if isCategory(line) {
			cat, err := ParseCategory(line)
			if err != nil {
				return p.errorf(line, err)
			}
			p.doc.addCategory(cat)
			p.category = cat
			continue
		}

		comp, outcome, err := ParseComponent(line)
		if err != nil {
			return p.errorf(line, err)
		}
		switch outcome {
		case Blank:
			continue
		case Finished:
			return nil
		}
		comp.Category = p.category
		p.doc.addComponent(comp)
	}
}
