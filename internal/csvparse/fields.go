package csvparse

import "strings"

// initialFieldSlots is the starting capacity of the field slice built by
// SplitFields.
const initialFieldSlots = 16

// SplitFields splits one logical line into fields.
//
// Leading blanks before a field are skipped. A field that starts with '"' or
// '\'' is quoted by that character: commas and newlines inside are literal,
// and a doubled quote yields one quote. After the closing quote the field
// continues unquoted up to the next comma. Every field is trimmed of spaces
// and tabs at both ends, quoted or not.
//
// A comma at the very end of the line does not start another field, so
// "a," yields one field while "a, " yields two. The empty line yields none.
func SplitFields(line string) []string {
	fields := make([]string, 0, initialFieldSlots)

	i := 0
	for i < len(line) {
		i = skipBlanks(line, i)

		var state quoteState
		if i < len(line) && isQuote(line[i]) {
			state.open(line[i])
			i++
		}

		var b strings.Builder
		b.Grow(initialLineSize)

		for i < len(line) {
			c := line[i]
			if state.quoted() {
				if c == state.quote {
					if i+1 < len(line) && line[i+1] == c {
						b.WriteByte(c)
						i += 2
						continue
					}
					state.close()
					i++
					continue
				}
				b.WriteByte(c)
				i++
				continue
			}
			if c == ',' {
				break
			}
			b.WriteByte(c)
			i++
		}

		fields = append(fields, trimBlanks(b.String()))

		if i < len(line) && line[i] == ',' {
			i++
		}
	}
	return fields
}

func isBlank(c byte) bool { return c == ' ' || c == '\t' }

func skipBlanks(s string, i int) int {
	for i < len(s) && isBlank(s[i]) {
		i++
	}
	return i
}

// trimBlanks strips spaces and tabs only; other whitespace such as a quoted
// newline is part of the value.
func trimBlanks(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r == ' ' || r == '\t' })
}
