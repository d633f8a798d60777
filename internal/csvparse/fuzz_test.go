package csvparse

import (
	"io"
	"strings"
	"testing"
)

func FuzzSplitFields(f *testing.F) {
	seeds := []string{
		"",
		"a,b,c",
		`"A, B, C",x`,
		`"He said ""Hello"""`,
		"'it''s',\"x\ny\"",
		"a,",
		" , ,",
		`"open,still`,
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, line string) {
		if len(line) > 1<<12 {
			t.Skip()
		}

		fields := SplitFields(line)
		if line != "" && len(fields) == 0 {
			t.Fatalf("non-empty line %q produced no fields", line)
		}
		if len(fields) > strings.Count(line, ",")+1 {
			t.Fatalf("more fields (%d) than delimiters allow in %q", len(fields), line)
		}
		for _, field := range fields {
			if field != trimBlanks(field) {
				t.Fatalf("field %q keeps edge blanks (line %q)", field, line)
			}
		}
	})
}

func FuzzReadTable(f *testing.F) {
	seeds := []string{
		"",
		"a,b\n1,2\n",
		"a\r\n\r\n1\r2\n",
		"h\n\"x\ny\",z\n",
		"h\n'unterminated\n1\n",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 1<<12 {
			t.Skip()
		}

		tbl, err := ReadTable(strings.NewReader(input))
		if err != nil {
			t.Fatalf("ReadTable() error = %v", err)
		}

		// Count the non-empty logical lines after the header.
		lr := NewLineReader(strings.NewReader(input))
		want := 0
		for n := 0; ; n++ {
			line, err := lr.ReadLine()
			if err == io.EOF {
				break
			}
			if n > 0 && line != "" {
				want++
			}
		}

		if len(tbl.Rows) != want {
			t.Fatalf("rows = %d, want %d for input %q", len(tbl.Rows), want, input)
		}
		for i, row := range tbl.Rows {
			if len(row) == 0 {
				t.Fatalf("row %d is empty for input %q", i, input)
			}
		}
	})
}
