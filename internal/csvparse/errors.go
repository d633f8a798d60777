package csvparse

import (
	"fmt"
	"strings"
)

// ReadError marks a table that stopped early. The Table returned alongside
// it holds every row parsed before the failure.
type ReadError struct {
	Line int   // logical lines consumed before the failure, header included
	Rows int   // data rows kept
	Err  error // underlying read error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read stopped after %d rows (line %d): %v", e.Rows, e.Line, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// UnknownColumnError is returned by Project for a column name that is not a
// header.
type UnknownColumnError struct {
	Name      string
	Available []string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q (have: %s)", e.Name, strings.Join(e.Available, ", "))
}
