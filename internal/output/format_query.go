package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

// runQuery runs a gojq query over records and writes each result as JSON.
// When prettyPrint is true, output is indented.
func (p *Printer) runQuery(query string, records []any, prettyPrint bool) error {
	results, err := runQueryRaw(query, records)
	if err != nil {
		return err
	}
	for _, v := range results {
		if err := p.encodeJSON(v, prettyPrint); err != nil {
			return err
		}
	}
	return nil
}

// runQueryRaw runs a gojq query and returns its results.
func runQueryRaw(query string, records []any) ([]any, error) {
	code, err := compileQuery(query)
	if err != nil {
		return nil, err
	}

	var results []any
	iter := code.Run(records)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if queryErr, isErr := v.(error); isErr {
			return nil, fmt.Errorf("query error: %s", safeErrorMessage(queryErr))
		}
		results = append(results, v)
	}

	return results, nil
}

func compileQuery(query string) (*gojq.Code, error) {
	parsed, err := gojq.Parse(query)
	if err != nil {
		return nil, formatInvalidQueryErr(err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, formatInvalidQueryErr(err)
	}
	return code, nil
}

// ValidateQuery checks --query syntax before any input is read.
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	_, err := compileQuery(query)
	return err
}

func (p *Printer) encodeJSON(v any, prettyPrint bool) error {
	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	if prettyPrint {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func formatInvalidQueryErr(err error) error {
	if err == nil {
		return fmt.Errorf("invalid --query")
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	if strings.Contains(msg, "unexpected eof") {
		return fmt.Errorf("invalid --query: %w\nHint: query looks incomplete; quote the whole expression", err)
	}

	return fmt.Errorf("invalid --query: %w", err)
}

// safeErrorMessage returns a best-effort string representation for errors whose
// Error method may panic (seen with some gojq runtime errors on typed values).
func safeErrorMessage(err error) (msg string) {
	if err == nil {
		return "unknown error"
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			msg = formatRecoveredErrorMessage(err, recovered)
		}
	}()

	msg = strings.TrimSpace(err.Error())
	if msg == "" {
		return fmt.Sprintf("%T", err)
	}
	return msg
}

func formatRecoveredErrorMessage(err error, recovered any) string {
	var raw string
	switch v := recovered.(type) {
	case string:
		raw = v
	case error:
		raw = v.Error()
	default:
		return fmt.Sprintf("%T", err)
	}

	raw = strings.TrimSpace(raw)
	// gojq panic payloads often append the offending value in parentheses.
	if idx := strings.Index(raw, " ("); idx > 0 {
		raw = raw[:idx]
	}
	if raw == "" {
		return fmt.Sprintf("%T", err)
	}
	return raw
}
