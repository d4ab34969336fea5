package depot

import "fmt"

// ParseError describes one rejected export row. It is recoverable by
// construction: the parser records it and moves on to the next row.
type ParseError struct {
	Row  int    // 1-based CSV row number, counting the stripped header
	Cell string // the raw cell value that failed to parse
	Line string // the full raw row, for diagnosis
	Err  error  // the underlying cause
}

func (e ParseError) Error() string {
	return fmt.Sprintf("failed to parse %q in row %d (%s): %v", e.Cell, e.Row, e.Line, e.Err)
}

func (e ParseError) Unwrap() error { return e.Err }
