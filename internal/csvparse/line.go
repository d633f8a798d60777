package csvparse

import (
	"bufio"
	"io"
	"strings"
)

// initialLineSize is the starting capacity of line and field builders.
// Builders double on overflow.
const initialLineSize = 256

// quoteState tracks whether the scanner is inside a quoted region and, if so,
// which character opened it.
type quoteState struct {
	quote byte // 0 when unquoted
}

func (s quoteState) quoted() bool { return s.quote != 0 }

func (s *quoteState) open(q byte) { s.quote = q }

func (s *quoteState) close() { s.quote = 0 }

func isQuote(b byte) bool { return b == '"' || b == '\'' }

// LineReader reconstructs logical CSV lines from a byte stream.
//
// A logical line ends at '\n', '\r' or "\r\n" found outside quotes. Inside a
// quoted region line terminators are ordinary bytes and stay in the line.
// Quote characters are kept in the returned text so SplitFields can parse
// them again.
type LineReader struct {
	r    *bufio.Reader
	line int
}

// NewLineReader returns a LineReader that consumes r.
func NewLineReader(r io.Reader) *LineReader {
	if br, ok := r.(*bufio.Reader); ok {
		return &LineReader{r: br}
	}
	return &LineReader{r: bufio.NewReader(r)}
}

// Line reports how many logical lines have been returned so far.
func (lr *LineReader) Line() int {
	return lr.line
}

// ReadLine returns the next logical line without its terminator.
//
// A blank physical line comes back as ("", nil). When the input is exhausted
// before any byte of a new line was read, ReadLine returns ("", io.EOF).
// Input that ends inside a quoted region is returned as the final line.
func (lr *LineReader) ReadLine() (string, error) {
	var (
		b     strings.Builder
		state quoteState
	)
	b.Grow(initialLineSize)

	for {
		c, err := lr.r.ReadByte()
		if err != nil {
			if err != io.EOF {
				return "", err
			}
			if b.Len() == 0 {
				return "", io.EOF
			}
			lr.line++
			return b.String(), nil
		}

		switch {
		case !state.quoted() && isQuote(c):
			state.open(c)
			b.WriteByte(c)

		case state.quoted() && c == state.quote:
			next, err := lr.peek()
			if err != nil && err != io.EOF {
				return "", err
			}
			if err == nil && next == c {
				_, _ = lr.r.ReadByte()
				b.WriteByte(c)
				b.WriteByte(c)
				continue
			}
			b.WriteByte(c)
			state.close()

		case !state.quoted() && (c == '\n' || c == '\r'):
			if c == '\r' {
				next, err := lr.peek()
				if err != nil && err != io.EOF {
					return "", err
				}
				if err == nil && next == '\n' {
					_, _ = lr.r.ReadByte()
				}
			}
			lr.line++
			return b.String(), nil

		default:
			b.WriteByte(c)
		}
	}
}

func (lr *LineReader) peek() (byte, error) {
	p, err := lr.r.Peek(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}
