package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/salmonumbrella/cj/internal/csvparse"
	"github.com/salmonumbrella/cj/internal/jsonout"
)

// Format represents the output format type.
type Format string

const (
	// FormatJSON is the JSON array renderer (default).
	FormatJSON Format = "json"
	// FormatNDJSON is newline-delimited JSON format.
	FormatNDJSON Format = "ndjson"
	// FormatTable is tabular format for terminals.
	FormatTable Format = "table"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format type.
// Empty string defaults to FormatJSON.
// Returns error if the format is invalid.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatNDJSON, "jsonl":
		return FormatNDJSON, nil
	case FormatTable:
		return FormatTable, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", errors.New("invalid --output format (expected json|ndjson|jsonl|yaml|table)")
	}
}

// Printer handles output formatting across different formats.
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter creates a new Printer that writes to w in the given format.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{
		w:      w,
		format: format,
	}
}

// Print writes t in the configured format. --fields, --query, --jsonpath
// and --styled are read from ctx.
func (p *Printer) Print(ctx context.Context, t *csvparse.Table) error {
	if t == nil {
		t = &csvparse.Table{}
	}

	t, err := applyOutputTransforms(ctx, t, p.format)
	if err != nil {
		return err
	}

	switch p.format {
	case FormatNDJSON:
		return p.printNDJSON(ctx, t)
	case FormatYAML:
		return p.printYAML(t)
	case FormatTable:
		return p.printTable(t)
	default:
		return p.printJSON(ctx, t)
	}
}

// printYAML writes one mapping per row. Keys keep header order, which a
// map-based encode would lose.
func (p *Printer) printYAML(t *csvparse.Table) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlDocument(t)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func yamlDocument(t *csvparse.Table) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, row := range t.Rows {
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i, h := range t.Headers {
			field := ""
			if i < len(row) {
				field = row[i]
			}
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: h},
				yamlScalar(field))
		}
		seq.Content = append(seq.Content, m)
	}
	return seq
}

func yamlScalar(field string) *yaml.Node {
	switch v := TypedValue(field).(type) {
	case int:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)}
	case float64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(v)}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field}
	}
}

// formatFloat keeps a fraction or exponent so the plain scalar still
// resolves as a float.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

var cellReplacer = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)

// printTable outputs headers and rows as aligned columns. Rows are padded
// or truncated to the header count.
func (p *Printer) printTable(t *csvparse.Table) error {
	if len(t.Headers) == 0 && len(t.Rows) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)

	for i, h := range t.Headers {
		if i > 0 {
			_, _ = fmt.Fprint(tw, "\t")
		}
		_, _ = fmt.Fprint(tw, cellReplacer.Replace(h))
	}
	_, _ = fmt.Fprintln(tw)

	for _, row := range t.Rows {
		for i := range t.Headers {
			if i > 0 {
				_, _ = fmt.Fprint(tw, "\t")
			}
			if i < len(row) {
				_, _ = fmt.Fprint(tw, cellReplacer.Replace(row[i]))
			}
		}
		_, _ = fmt.Fprintln(tw)
	}

	return tw.Flush()
}

// printJSON writes the rendered array. Compact output gets the single
// trailing newline the renderer leaves to its caller.
func (p *Printer) printJSON(ctx context.Context, t *csvparse.Table) error {
	styled := StyledFromContext(ctx)
	if query := QueryFromContext(ctx); query != "" {
		return p.runQuery(query, Records(t), styled)
	}
	if path := JSONPathFromContext(ctx); path != "" {
		value, err := applyJSONPath(Records(t), path)
		if err != nil {
			return err
		}
		return p.encodeJSON(value, styled)
	}

	layout := jsonout.LayoutFor(styled)
	if err := jsonout.Render(p.w, t, layout); err != nil {
		return err
	}
	if layout == jsonout.LayoutCompact {
		_, err := io.WriteString(p.w, "\n")
		return err
	}
	return nil
}

// printNDJSON writes one compact object per row.
func (p *Printer) printNDJSON(ctx context.Context, t *csvparse.Table) error {
	if query := QueryFromContext(ctx); query != "" {
		return p.runQuery(query, Records(t), false)
	}
	if path := JSONPathFromContext(ctx); path != "" {
		value, err := applyJSONPath(Records(t), path)
		if err != nil {
			return err
		}
		if items, ok := value.([]any); ok {
			for _, item := range items {
				if err := p.encodeJSON(item, false); err != nil {
					return err
				}
			}
			return nil
		}
		return p.encodeJSON(value, false)
	}

	for _, row := range t.Rows {
		if err := jsonout.RenderObject(p.w, t.Headers, row); err != nil {
			return err
		}
		if _, err := io.WriteString(p.w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
