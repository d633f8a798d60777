package output

import (
	"strconv"

	"github.com/salmonumbrella/cj/internal/csvparse"
	"github.com/salmonumbrella/cj/internal/jsonout"
)

// TypedValue converts one field to the value a JSON decoder would produce
// from the rendered document. Numeric fields become int, or float64 when
// they do not fit an int or carry a fraction. Fields the renderer emits
// verbatim but Go cannot parse (a lone ".") stay strings.
func TypedValue(field string) any {
	if !jsonout.IsNumeric(field) {
		return field
	}
	if n, err := strconv.Atoi(field); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(field, 64); err == nil {
		return f
	}
	return field
}

// Records converts t to a slice of objects with typed values, padded and
// truncated to the header list the same way the renderer does. When headers
// repeat, the last column wins, matching what a JSON decoder keeps.
func Records(t *csvparse.Table) []any {
	out := make([]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]any, len(t.Headers))
		for i, h := range t.Headers {
			field := ""
			if i < len(row) {
				field = row[i]
			}
			rec[h] = TypedValue(field)
		}
		out = append(out, rec)
	}
	return out
}
