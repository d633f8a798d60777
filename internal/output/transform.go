package output

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/salmonumbrella/cj/internal/csvparse"
	clierrors "github.com/salmonumbrella/cj/internal/errors"
)

const fieldsExample = "Example: --fields id,name=full_name"

// ValidateFields validates --fields syntax.
func ValidateFields(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	_, err := ParseFieldSpecs(raw)
	if err != nil {
		return clierrors.WrapUserError(err, "invalid --fields value", fieldsExample)
	}
	return nil
}

// ParseFieldSpecs parses a comma-separated column list. Each entry is either
// a header name or label=header, which renames the column in the output.
func ParseFieldSpecs(raw string) ([]csvparse.ColumnSpec, error) {
	parts := strings.Split(raw, ",")
	specs := make([]csvparse.ColumnSpec, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		key := part
		source := part
		if eq := strings.Index(part, "="); eq >= 0 {
			key = strings.TrimSpace(part[:eq])
			source = strings.TrimSpace(part[eq+1:])
		}
		if key == "" || source == "" {
			return nil, fmt.Errorf("invalid field spec %q", part)
		}

		specs = append(specs, csvparse.ColumnSpec{Key: key, Source: source})
	}

	if len(specs) == 0 {
		return nil, fmt.Errorf("no fields provided")
	}
	return specs, nil
}

// ApplyFields projects t onto the --fields column list.
func ApplyFields(t *csvparse.Table, raw string) (*csvparse.Table, error) {
	specs, err := ParseFieldSpecs(raw)
	if err != nil {
		return nil, clierrors.WrapUserError(err, "invalid --fields value", fieldsExample)
	}

	projected, err := t.Project(specs)
	if err != nil {
		var unknown *csvparse.UnknownColumnError
		if errors.As(err, &unknown) {
			return nil, clierrors.WrapUserError(err, "invalid --fields value",
				"Available columns: "+strings.Join(unknown.Available, ", "))
		}
		return nil, err
	}
	return projected, nil
}

func applyOutputTransforms(ctx context.Context, t *csvparse.Table, format Format) (*csvparse.Table, error) {
	query := strings.TrimSpace(QueryFromContext(ctx))
	jsonPathRaw := strings.TrimSpace(JSONPathFromContext(ctx))

	if query != "" && jsonPathRaw != "" {
		return nil, clierrors.NewUserError(
			"--query and --jsonpath cannot be combined",
			"Pick one; jq can express any jsonpath selection",
		)
	}
	if (query != "" || jsonPathRaw != "") && format != FormatJSON && format != FormatNDJSON {
		return nil, clierrors.NewUserError(
			fmt.Sprintf("--query/--jsonpath are not supported with %s output", format),
			"Use --output json|ndjson instead",
		)
	}

	if fieldsRaw := strings.TrimSpace(FieldsFromContext(ctx)); fieldsRaw != "" {
		return ApplyFields(t, fieldsRaw)
	}
	return t, nil
}

func applyJSONPath(records []any, raw string) (any, error) {
	normalized := normalizeJSONPath(raw)
	if normalized == "" {
		return nil, clierrors.NewUserError("invalid --jsonpath value", "Example: --jsonpath '$[0].name'")
	}
	value, err := jsonpath.Get(normalized, records)
	if err != nil {
		return nil, clierrors.WrapUserError(err, "invalid --jsonpath value", "Example: --jsonpath '$[*].name'")
	}
	return value, nil
}

// normalizeJSONPath roots bare expressions at the record array, so "[0].a"
// and "$[0].a" select the same value.
func normalizeJSONPath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	switch {
	case strings.HasPrefix(trimmed, "$"), strings.HasPrefix(trimmed, "@"):
		return trimmed
	case strings.HasPrefix(trimmed, "."), strings.HasPrefix(trimmed, "["):
		return "$" + trimmed
	default:
		return "$." + trimmed
	}
}
