package jsonout

// Kind is the JSON type a field renders as.
type Kind int

const (
	// KindString renders as a quoted, escaped JSON string.
	KindString Kind = iota
	// KindNumber renders as the field's bytes, unquoted.
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// ClassifyField returns KindNumber when field passes IsNumeric.
func ClassifyField(field string) Kind {
	if IsNumeric(field) {
		return KindNumber
	}
	return KindString
}

// IsNumeric reports whether s looks like a number: an optional '+' or '-'
// followed by one or more bytes that are ASCII digits or a single '.'.
//
// The check is syntactic only. A lone "." passes and is emitted as-is, while
// "-", "" and "12.34.56" do not.
func IsNumeric(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}

	dot := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '.':
			if dot {
				return false
			}
			dot = true
		case c < '0' || c > '9':
			return false
		}
	}
	return true
}
