package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/salmonumbrella/cj/internal/csvparse"
	clierrors "github.com/salmonumbrella/cj/internal/errors"
)

const (
	errorFormatText = "text"
	errorFormatJSON = "json"
)

func validateErrorFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", errorFormatText, errorFormatJSON:
		return nil
	default:
		return clierrors.NewUserError(
			fmt.Sprintf("invalid --error-format %q", format),
			"Use one of: text, json",
		)
	}
}

func effectiveErrorFormat(ctx context.Context) string {
	if strings.EqualFold(strings.TrimSpace(ErrorFormatFromContext(ctx)), errorFormatJSON) {
		return errorFormatJSON
	}
	return errorFormatText
}

func printCommandError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	w := stderrFromContext(ctx)

	if effectiveErrorFormat(ctx) == errorFormatJSON {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		_ = enc.Encode(buildErrorEnvelope(err))
		return
	}

	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	if suggestion := clierrors.UserSuggestion(err); suggestion != "" {
		_, _ = fmt.Fprintf(w, "Hint: %s\n", suggestion)
	}
}

func buildErrorEnvelope(err error) map[string]interface{} {
	errMap := map[string]interface{}{
		"message": err.Error(),
	}

	category := "system"
	if clierrors.IsUserError(err) || clierrors.IsValidationError(err) {
		category = "user"
	}
	errMap["category"] = category

	if suggestion := clierrors.UserSuggestion(err); suggestion != "" {
		errMap["suggestion"] = suggestion
	}

	var inputErr *clierrors.InputUnavailableError
	if errors.As(err, &inputErr) {
		errMap["type"] = "input"
		errMap["path"] = inputErr.Path
	}

	var readErr *csvparse.ReadError
	if errors.As(err, &readErr) {
		errMap["type"] = "read"
		errMap["line"] = readErr.Line
		errMap["rows"] = readErr.Rows
	}

	var validationErr *clierrors.ValidationError
	if errors.As(err, &validationErr) {
		errMap["type"] = "validation"
		errMap["field"] = validationErr.Field
	}

	return map[string]interface{}{"error": errMap}
}
