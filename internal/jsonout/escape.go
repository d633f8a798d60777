package jsonout

// AppendString appends s to dst as a quoted JSON string.
//
// Only '"', '\\', '\n', '\r' and '\t' are escaped. Every other byte, control
// characters and non-ASCII included, is copied through unchanged.
func AppendString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		var esc byte
		switch s[i] {
		case '"':
			esc = '"'
		case '\\':
			esc = '\\'
		case '\n':
			esc = 'n'
		case '\r':
			esc = 'r'
		case '\t':
			esc = 't'
		default:
			continue
		}
		dst = append(dst, s[start:i]...)
		dst = append(dst, '\\', esc)
		start = i + 1
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}

// AppendValue appends field as a JSON value: the bare field when it is
// numeric, otherwise a quoted string. Empty fields become "".
func AppendValue(dst []byte, field string) []byte {
	if ClassifyField(field) == KindNumber {
		return append(dst, field...)
	}
	return AppendString(dst, field)
}

// Quote returns s as a quoted JSON string using AppendString's escaping.
func Quote(s string) string {
	return string(AppendString(make([]byte, 0, len(s)+2), s))
}
