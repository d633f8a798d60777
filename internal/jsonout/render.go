// Package jsonout renders a csvparse.Table as a JSON array of objects.
//
// The renderer writes bytes directly instead of going through encoding/json:
// numeric-looking fields are copied verbatim (a leading '+' or a bare "." is
// kept), keys follow header order even when headers repeat, and only five
// characters are escaped. Two layouts exist. Compact output has no newlines
// and no trailing newline; styled output indents objects by two spaces and
// members by four, and ends with a newline.
package jsonout

import (
	"bufio"
	"io"

	"github.com/salmonumbrella/cj/internal/csvparse"
)

// Layout selects compact or indented output.
type Layout int

const (
	LayoutCompact Layout = iota
	LayoutStyled
)

func (l Layout) String() string {
	if l == LayoutStyled {
		return "styled"
	}
	return "compact"
}

// LayoutFor maps the --styled flag to a Layout.
func LayoutFor(styled bool) Layout {
	if styled {
		return LayoutStyled
	}
	return LayoutCompact
}

// flushThreshold bounds the scratch buffer before it is handed to the writer.
const flushThreshold = 32 << 10

// Render writes t to w as one JSON array with one object per row.
//
// Each object has one member per header, in header order. A row shorter than
// the header list renders its missing members as ""; fields past the last
// header are dropped.
func Render(w io.Writer, t *csvparse.Table, layout Layout) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 4096)

	buf = append(buf, '[')
	if layout == LayoutStyled {
		buf = append(buf, '\n')
	}

	for i, row := range t.Rows {
		buf = appendObject(buf, t.Headers, row, layout)
		if i < len(t.Rows)-1 {
			buf = append(buf, ',')
		}
		if layout == LayoutStyled {
			buf = append(buf, '\n')
		}
		if len(buf) >= flushThreshold {
			if _, err := bw.Write(buf); err != nil {
				return err
			}
			buf = buf[:0]
		}
	}

	buf = append(buf, ']')
	if layout == LayoutStyled {
		buf = append(buf, '\n')
	}
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	return bw.Flush()
}

// RenderObject writes a single compact object for row, keyed by headers.
func RenderObject(w io.Writer, headers []string, row []string) error {
	_, err := w.Write(appendObject(nil, headers, row, LayoutCompact))
	return err
}

func appendObject(dst []byte, headers []string, row []string, layout Layout) []byte {
	styled := layout == LayoutStyled

	if styled {
		dst = append(dst, "  {\n"...)
	} else {
		dst = append(dst, '{')
	}

	for j, h := range headers {
		if styled {
			dst = append(dst, "    "...)
		}
		dst = AppendString(dst, h)
		dst = append(dst, ": "...)
		if j < len(row) {
			dst = AppendValue(dst, row[j])
		} else {
			dst = append(dst, `""`...)
		}
		if j < len(headers)-1 {
			dst = append(dst, ',')
		}
		if styled {
			dst = append(dst, '\n')
		}
	}

	if styled {
		dst = append(dst, "  }"...)
	} else {
		dst = append(dst, '}')
	}
	return dst
}
