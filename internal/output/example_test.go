package output_test

import (
	"context"
	"os"

	"github.com/salmonumbrella/cj/internal/csvparse"
	"github.com/salmonumbrella/cj/internal/output"
)

func Example() {
	tbl := &csvparse.Table{
		Headers: []string{"a", "b"},
		Rows:    [][]string{{"1", "x,y"}},
	}

	ctx := context.Background()
	_ = output.NewPrinter(os.Stdout, output.FormatJSON).Print(ctx, tbl)
	_ = output.NewPrinter(os.Stdout, output.FormatNDJSON).Print(output.WithFields(ctx, "b"), tbl)
	// Output:
	// [{"a": 1,"b": "x,y"}]
	// {"b": "x,y"}
}
