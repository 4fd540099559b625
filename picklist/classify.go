package picklist

import "strings"

// Horizontal whitespace recognized by the format. Newlines never reach the
// classifiers: the line reader strips them.
const lineWhitespace = " \t"

// terminator ends the header properties block.
const terminator = "---"

// isBlank reports whether the line contains only spaces and tabs.
func isBlank(line string) bool {
	return strings.Trim(line, lineWhitespace) == ""
}

// isTerminator reports whether the line is exactly the header terminator.
func isTerminator(line string) bool {
	return line == terminator
}

// isCategory reports whether a body line is a category header. Only the
// final character is examined.
func isCategory(line string) bool {
	return len(line) > 0 && line[len(line)-1] == ':'
}
