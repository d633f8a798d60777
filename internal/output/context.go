package output

import "context"

// contextKey is a private type for storing values in context
// to avoid collisions with other packages.
type contextKey struct{}

// queryKey is a private type for storing jq query in context.
type queryKey struct{}

// WithFormat returns a new context with the output format attached.
func WithFormat(ctx context.Context, format Format) context.Context {
	return context.WithValue(ctx, contextKey{}, format)
}

// FormatFromContext retrieves the output format from the context.
// If no format is set in the context, it returns FormatJSON.
func FormatFromContext(ctx context.Context) Format {
	if v, ok := ctx.Value(contextKey{}).(Format); ok {
		return v
	}
	return FormatJSON
}

// WithQuery adds a jq query string to context.
func WithQuery(ctx context.Context, query string) context.Context {
	return context.WithValue(ctx, queryKey{}, query)
}

// QueryFromContext retrieves the jq query from context.
func QueryFromContext(ctx context.Context) string {
	if q, ok := ctx.Value(queryKey{}).(string); ok {
		return q
	}
	return ""
}

type (
	styledKey   struct{}
	fieldsKey   struct{}
	jsonPathKey struct{}
)

// WithStyled sets the --styled flag in context.
func WithStyled(ctx context.Context, styled bool) context.Context {
	return context.WithValue(ctx, styledKey{}, styled)
}

// StyledFromContext reports whether indented output was requested.
func StyledFromContext(ctx context.Context) bool {
	if v, ok := ctx.Value(styledKey{}).(bool); ok {
		return v
	}
	return false
}

// WithFields sets the --fields projection in context.
func WithFields(ctx context.Context, fields string) context.Context {
	return context.WithValue(ctx, fieldsKey{}, fields)
}

// FieldsFromContext retrieves the --fields projection from context.
func FieldsFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(fieldsKey{}).(string); ok {
		return v
	}
	return ""
}

// WithJSONPath sets the --jsonpath expression in context.
func WithJSONPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, jsonPathKey{}, path)
}

// JSONPathFromContext retrieves the --jsonpath expression from context.
func JSONPathFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(jsonPathKey{}).(string); ok {
		return v
	}
	return ""
}
