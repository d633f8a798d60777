package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/cj/internal/config"
	clierrors "github.com/salmonumbrella/cj/internal/errors"
	"github.com/salmonumbrella/cj/internal/iocontext"
	"github.com/salmonumbrella/cj/internal/jsonout"
	"github.com/salmonumbrella/cj/internal/output"
	"github.com/salmonumbrella/cj/internal/ui"
)

type globalFlagInput struct {
	styled      bool
	outputFlag  string
	queryFlag   string
	jqFlag      string
	jsonPath    string
	fields      string
	limit       int
	errorFormat string
	logFormat   string
	color       string
	quiet       bool
	warnRagged  bool
	debug       bool
	mcp         bool
}

type globalOptions struct {
	styled      bool
	styledSet   bool
	format      output.Format
	query       string
	jsonPathRaw string
	fieldsRaw   string
	limit       int
	errorFormat string
	logFormat   string
	color       ui.ColorMode
	quiet       bool
	warnRagged  bool
	debug       bool
	mcp         bool

	queryFlagSet bool
	jqFlagSet    bool
}

// parseGlobalOptions merges flags over config. A flag that was not set on
// the command line falls back to the config value, then to the default.
func parseGlobalOptions(cmd *cobra.Command, cfg *config.Config, flags globalFlagInput) (globalOptions, error) {
	fs := cmd.Flags()
	opts := globalOptions{
		styled:      flags.styled,
		styledSet:   flagChanged(fs, "styled", "pretty"),
		jsonPathRaw: strings.TrimSpace(flags.jsonPath),
		fieldsRaw:   strings.TrimSpace(flags.fields),
		limit:       flags.limit,
		errorFormat: flags.errorFormat,
		logFormat:   flags.logFormat,
		quiet:       flags.quiet,
		warnRagged:  flags.warnRagged,
		debug:       flags.debug,
		mcp:         flags.mcp,

		queryFlagSet: strings.TrimSpace(flags.queryFlag) != "",
		jqFlagSet:    strings.TrimSpace(flags.jqFlag) != "",
	}

	if !opts.styledSet {
		opts.styled = cfg.Styled
	}

	formatStr := flags.outputFlag
	if !flagChanged(fs, "output") && cfg.GetOutput() != "" {
		formatStr = cfg.GetOutput()
	}
	format, err := output.ParseFormat(formatStr)
	if err != nil {
		return globalOptions{}, clierrors.WrapUserError(err, "invalid output format", "Use one of: json, ndjson, jsonl, yaml, table")
	}
	opts.format = format

	if !flagChanged(fs, "error-format") && cfg.ErrorFormat != "" {
		opts.errorFormat = cfg.ErrorFormat
	}
	if !flagChanged(fs, "log-format") && cfg.LogFormat != "" {
		opts.logFormat = cfg.LogFormat
	}

	colorStr := flags.color
	if !flagChanged(fs, "color") && cfg.GetColor() != "" {
		colorStr = cfg.GetColor()
	}
	mode, err := ui.ParseColorMode(colorStr)
	if err != nil {
		return globalOptions{}, err
	}
	opts.color = mode

	opts.query = flags.queryFlag
	if opts.query == "" {
		opts.query = flags.jqFlag
	}

	return opts, nil
}

func validateGlobalOptions(opts *globalOptions) error {
	if opts.jqFlagSet && opts.queryFlagSet {
		return errOnlyOne("--query", "--jq")
	}
	if opts.query != "" && opts.jsonPathRaw != "" {
		return errOnlyOne("--query", "--jsonpath")
	}
	if (opts.query != "" || opts.jsonPathRaw != "") && opts.format != output.FormatJSON && opts.format != output.FormatNDJSON {
		return clierrors.NewUserError(
			fmt.Sprintf("--query/--jsonpath are not supported with %s output", opts.format),
			"Use --output json|ndjson instead",
		)
	}
	if err := output.ValidateQuery(opts.query); err != nil {
		return clierrors.WrapUserError(err, "invalid --query value", "Quote the expression, e.g. --query '.[] | .name'")
	}
	if err := output.ValidateFields(opts.fieldsRaw); err != nil {
		return err
	}
	if opts.limit < 0 {
		return &clierrors.ValidationError{Field: "limit", Message: "must be >= 0"}
	}
	if err := validateErrorFormat(opts.errorFormat); err != nil {
		return err
	}
	return nil
}

func buildRootContext(ctx context.Context, app *App, cfg *config.Config, opts globalOptions) context.Context {
	ctx = iocontext.WithIO(ctx, app.stdout(), app.stderr())
	if app.Stdin != nil {
		ctx = iocontext.WithStdin(ctx, app.Stdin)
	}
	ctx = output.WithFormat(ctx, opts.format)
	ctx = output.WithStyled(ctx, opts.styled)
	ctx = output.WithQuery(ctx, opts.query)
	ctx = output.WithJSONPath(ctx, opts.jsonPathRaw)
	ctx = output.WithFields(ctx, opts.fieldsRaw)
	ctx = WithErrorFormat(ctx, opts.errorFormat)
	ctx = WithConfig(ctx, cfg)

	u := ui.New(app.stderr(), opts.color)
	u.SetQuiet(opts.quiet)
	ctx = ui.WithUI(ctx, u)
	return ctx
}

func (o globalOptions) layout() jsonout.Layout {
	return jsonout.LayoutFor(o.styled)
}

func errOnlyOne(left, right string) error {
	return clierrors.NewUserError(
		fmt.Sprintf("use only one of %s or %s", left, right),
		"",
	)
}
