package token

import "fmt"

// Location is a position in a source buffer. Line and Column are 1-based;
// Offset is the 0-based byte offset from the start of the buffer.
type Location struct {
	File   string
	Line   int
	Column int
	Offset int
}

// String renders the location as "file:line:col", or "line N, column N" when
// no file name is known.
func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("line %d, column %d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// IsValid reports whether l refers to an actual source position.
func (l Location) IsValid() bool {
	return l.Line > 0 && l.Column > 0
}
