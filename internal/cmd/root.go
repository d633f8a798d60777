package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/cj/internal/config"
	clierrors "github.com/salmonumbrella/cj/internal/errors"
	"github.com/salmonumbrella/cj/internal/logging"
)

const usageHeader = `Usage:
  cj [filename]           Convert CSV to JSON
  cj version              Show version
  cj --styled|-s [file]   Convert CSV to formatted JSON
  cj                      Show this help
`

const usageFooter = `
Flags must come before the file name. A file name of - reads standard input.
`

// usageText is the help screen, also printed for malformed command lines.
func usageText(cmd *cobra.Command) string {
	return usageHeader + "\nOptions:\n" + cmd.Flags().FlagUsages() + usageFooter
}

func newRootCmd(app *App) *cobra.Command {
	var (
		flags globalFlagInput
		opts  globalOptions
	)

	rootCmd := &cobra.Command{
		Use:   "cj [file]",
		Short: "Convert CSV to JSON",
		Long: `cj reads a CSV document and writes a JSON array with one object per row.
Fields that look numeric are emitted as JSON numbers; everything else is a string.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(WithErrorFormat(cmd.Context(), flags.errorFormat))

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			opts, err = parseGlobalOptions(cmd, cfg, flags)
			if err != nil {
				return err
			}
			cmd.SetContext(WithErrorFormat(cmd.Context(), opts.errorFormat))
			if err := validateGlobalOptions(&opts); err != nil {
				return err
			}

			if err := logging.Configure(logging.Options{
				Debug:  opts.debug,
				Format: opts.logFormat,
				Writer: app.stderr(),
			}); err != nil {
				return err
			}

			cmd.SetContext(buildRootContext(cmd.Context(), app, cfg, opts))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			switch {
			case opts.mcp:
				if len(args) > 0 || opts.styledSet {
					return clierrors.NewUsageError("--mcp takes no file and no --styled")
				}
				return runMCP(ctx, app)
			case len(args) == 0:
				if opts.styledSet {
					return clierrors.NewUsageError("--styled needs a file")
				}
				_, err := fmt.Fprint(stdoutFromContext(ctx), usageText(cmd))
				return err
			case len(args) == 1 && args[0] == "version" && !opts.styledSet:
				return printVersion(stdoutFromContext(ctx), app)
			case len(args) == 1:
				return runConvert(ctx, args[0], opts)
			default:
				return clierrors.NewUsageError(fmt.Sprintf("expected one file, got %d arguments", len(args)))
			}
		},
	}

	rootCmd.Version = app.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("cj %s (commit: %s, built: %s)\n", app.Version, app.Commit, app.BuildTime))
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetOut(app.stdout())
	rootCmd.SetErr(app.stderr())

	fs := rootCmd.Flags()
	// A file name must end the command line, as in `cj -s data.csv`.
	fs.SetInterspersed(false)

	fs.BoolVarP(&flags.styled, "styled", "s", false, "Indent the JSON output")
	fs.StringVarP(&flags.outputFlag, "output", "o", "json", "Output format: json|ndjson|jsonl|yaml|table")
	fs.StringVarP(&flags.queryFlag, "query", "q", "", "JQ expression applied to the rows")
	fs.StringVar(&flags.jqFlag, "jq", "", "Alias for --query")
	_ = fs.MarkHidden("jq")
	fs.StringVar(&flags.jsonPath, "jsonpath", "", "Extract a value using JSONPath (e.g. $[0].name)")
	fs.StringVar(&flags.fields, "fields", "", "Keep only these columns (comma-separated, use label=column to rename)")
	fs.IntVar(&flags.limit, "limit", 0, "Convert at most N data rows (0 = all)")
	fs.StringVar(&flags.errorFormat, "error-format", errorFormatText, "Error output format (text|json)")
	fs.StringVar(&flags.logFormat, "log-format", logging.FormatText, "Log output format (text|json)")
	fs.StringVar(&flags.color, "color", "auto", "Color for warnings (auto|always|never)")
	fs.BoolVar(&flags.quiet, "quiet", false, "Suppress warnings")
	fs.BoolVar(&flags.warnRagged, "warn-ragged", false, "Warn when rows have more or fewer fields than headers")
	fs.BoolVar(&flags.debug, "debug", false, "Enable debug logging on stderr")
	fs.BoolVar(&flags.mcp, "mcp", false, "Serve the converter as an MCP tool over stdio")

	flagAlias(fs, "styled", "pretty")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &clierrors.UsageError{Err: err}
	})
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), usageText(cmd))
	})

	return rootCmd
}
