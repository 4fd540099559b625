package picklist

import (
	"bufio"
	"fmt"
	"io"
)

// DefaultMaxLineLength is the line length bound used when no
// WithMaxLineLength option is given.
const DefaultMaxLineLength = 1024

// lineReader yields one logical line per call, newline excluded and
// carriage returns stripped. The line buffer is grown once and reused
// across calls.
type lineReader struct {
	br  *bufio.Reader
	buf []byte
	max int
}

func newLineReader(r io.Reader, max int) *lineReader {
	return &lineReader{
		br:  bufio.NewReader(r),
		max: max,
	}
}

// readLine reads up to the next '\n' or end of input. At end of input with
// no bytes consumed since the previous call it returns io.EOF; a line
// terminated by end of input instead of '\n' is still returned normally.
// Lines longer than the configured maximum fail with ErrLineTooLong after
// consuming through the end of the oversized line, so the next call starts
// on the following line.
func (lr *lineReader) readLine() (string, error) {
	lr.buf = lr.buf[:0]
	consumed := false
	for {
		c, err := lr.br.ReadByte()
		if err == io.EOF {
			if !consumed {
				return "", io.EOF
			}
			return string(lr.buf), nil
		}
		if err != nil {
			return "", fmt.Errorf("read line: %w", err)
		}
		consumed = true
		switch c {
		case '\n':
			return string(lr.buf), nil
		case '\r':
			// Stripped wherever found, not just before the newline.
		default:
			if len(lr.buf) >= lr.max {
				if err := lr.discardLine(); err != nil {
					return "", err
				}
				return "", ErrLineTooLong
			}
			lr.buf = append(lr.buf, c)
		}
	}
}

// discardLine consumes input through the next '\n' or end of input.
func (lr *lineReader) discardLine() error {
	for {
		c, err := lr.br.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}
		if c == '\n' {
			return nil
		}
	}
}
