// Package output prints a parsed CSV table in the format chosen on the
// command line.
//
// It supports output formats:
//   - json: the byte-exact array renderer from package jsonout (default)
//   - ndjson: one compact object per line (alias: jsonl)
//   - yaml: a sequence of mappings in header order
//   - table: aligned columns for a terminal
//
// # Context-Based Dependency Injection
//
// The format and the per-invocation transforms are set once in the root
// command's PersistentPreRunE and read back by the Printer:
//
//	format, err := output.ParseFormat(formatFlag)
//	if err != nil {
//	    return err
//	}
//	ctx := output.WithFormat(cmd.Context(), format)
//	ctx = output.WithQuery(ctx, queryFlag)
//	cmd.SetContext(ctx)
//
// In the convert command:
//
//	printer := output.NewPrinter(stdout, output.FormatFromContext(ctx))
//	return printer.Print(ctx, table)
//
// # Typed Records
//
// --query and --jsonpath do not see the rendered bytes. They run over
// Records, where every numeric-looking field that Go can parse becomes an
// int or float64 and everything else stays a string.
package output
