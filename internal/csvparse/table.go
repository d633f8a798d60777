package csvparse

import (
	"io"
	"log/slog"
)

// Table is a parsed CSV document: the header row and every non-blank data
// row, each kept exactly as split.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Width returns the number of fields in row i.
func (t *Table) Width(i int) int {
	return len(t.Rows[i])
}

// Raggedness counts rows whose width differs from the header row.
type Raggedness struct {
	Short int // rows with fewer fields than headers
	Long  int // rows with more fields than headers
}

// Any reports whether at least one row is ragged.
func (r Raggedness) Any() bool { return r.Short > 0 || r.Long > 0 }

// Ragged reports how many rows are narrower or wider than the header row.
func (t *Table) Ragged() Raggedness {
	var r Raggedness
	for _, row := range t.Rows {
		switch {
		case len(row) < len(t.Headers):
			r.Short++
		case len(row) > len(t.Headers):
			r.Long++
		}
	}
	return r
}

// ColumnSpec selects one source column and names it in the output.
type ColumnSpec struct {
	Key    string // output header
	Source string // existing header
}

// Project returns a new table holding only the requested columns, in the
// order given and renamed to each ColumnSpec's Key. Cells a row does not have become
// empty strings. When headers repeat, the first match wins.
func (t *Table) Project(specs []ColumnSpec) (*Table, error) {
	index := make(map[string]int, len(t.Headers))
	for i, h := range t.Headers {
		if _, seen := index[h]; !seen {
			index[h] = i
		}
	}

	cols := make([]int, len(specs))
	headers := make([]string, len(specs))
	for i, spec := range specs {
		idx, ok := index[spec.Source]
		if !ok {
			return nil, &UnknownColumnError{Name: spec.Source, Available: t.Headers}
		}
		cols[i] = idx
		headers[i] = spec.Key
	}

	out := &Table{Headers: headers, Rows: make([][]string, 0, len(t.Rows))}
	for _, row := range t.Rows {
		projected := make([]string, len(cols))
		for i, idx := range cols {
			if idx < len(row) {
				projected[i] = row[idx]
			}
		}
		out.Rows = append(out.Rows, projected)
	}
	return out, nil
}

type readOptions struct {
	limit  int
	logger *slog.Logger
}

// ReadOption configures ReadTable.
type ReadOption func(*readOptions)

// WithLimit stops reading after n data rows. Zero or negative means no limit.
func WithLimit(n int) ReadOption {
	return func(o *readOptions) {
		o.limit = n
	}
}

// WithLogger sets the logger that receives debug records about ragged rows.
func WithLogger(logger *slog.Logger) ReadOption {
	return func(o *readOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// ReadTable parses r into a Table.
//
// The first logical line supplies the headers; an empty input yields an
// empty Table and no error. Blank lines after the header are skipped. If the
// underlying reader fails, ReadTable returns the rows read so far together
// with a *ReadError.
func ReadTable(r io.Reader, opts ...ReadOption) (*Table, error) {
	o := readOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	lr := NewLineReader(r)
	t := &Table{Rows: make([][]string, 0, initialFieldSlots)}

	header, err := lr.ReadLine()
	if err == io.EOF {
		return t, nil
	}
	if err != nil {
		return t, &ReadError{Line: lr.Line(), Err: err}
	}
	t.Headers = SplitFields(header)

	for o.limit <= 0 || len(t.Rows) < o.limit {
		line, err := lr.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return t, &ReadError{Line: lr.Line(), Rows: len(t.Rows), Err: err}
		}
		if line == "" {
			continue
		}

		row := SplitFields(line)
		if len(row) != len(t.Headers) {
			o.logger.Debug("ragged row",
				"row", len(t.Rows)+1,
				"line", lr.Line(),
				"fields", len(row),
				"headers", len(t.Headers))
		}
		t.Rows = append(t.Rows, row)
	}

	o.logger.Debug("table read", "headers", len(t.Headers), "rows", len(t.Rows))
	return t, nil
}
