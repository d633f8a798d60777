package output

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/salmonumbrella/cj/internal/csvparse"
	clierrors "github.com/salmonumbrella/cj/internal/errors"
)

func TestParseFieldSpecs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []csvparse.ColumnSpec
		wantErr bool
	}{
		{
			name: "plain names",
			raw:  "id,name",
			want: []csvparse.ColumnSpec{{Key: "id", Source: "id"}, {Key: "name", Source: "name"}},
		},
		{
			name: "rename and trim",
			raw:  " label = name , id ",
			want: []csvparse.ColumnSpec{{Key: "label", Source: "name"}, {Key: "id", Source: "id"}},
		},
		{
			name: "empty entries skipped",
			raw:  "id,,name,",
			want: []csvparse.ColumnSpec{{Key: "id", Source: "id"}, {Key: "name", Source: "name"}},
		},
		{name: "missing source", raw: "label=", wantErr: true},
		{name: "missing key", raw: "=name", wantErr: true},
		{name: "nothing", raw: " , ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFieldSpecs(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFieldSpecs(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFieldSpecs(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidateFields(t *testing.T) {
	if err := ValidateFields(""); err != nil {
		t.Errorf("empty --fields should be valid, got %v", err)
	}
	if err := ValidateFields("a,b=c"); err != nil {
		t.Errorf("valid --fields rejected: %v", err)
	}
	err := ValidateFields("=c")
	if !clierrors.IsUserError(err) {
		t.Fatalf("expected UserError, got %v", err)
	}
}

func TestApplyFields_UnknownColumn(t *testing.T) {
	_, err := ApplyFields(sampleTable(), "id,email")
	if !clierrors.IsUserError(err) {
		t.Fatalf("expected UserError, got %v", err)
	}
	if got := clierrors.UserSuggestion(err); got != "Available columns: id, name, score" {
		t.Errorf("suggestion = %q", got)
	}
}

func TestPrinter_FieldsProjectBeforeRendering(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithFields(context.Background(), "who=name,id")

	if err := NewPrinter(&buf, FormatJSON).Print(ctx, sampleTable()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	want := `[{"who": "Alice","id": 1},{"who": "Bob","id": 2}]` + "\n"
	if buf.String() != want {
		t.Errorf("got %q\nwant %q", buf.String(), want)
	}
}

func TestPrinter_FieldsWithTable(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithFields(context.Background(), "name")

	if err := NewPrinter(&buf, FormatTable).Print(ctx, sampleTable()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if strings.Contains(buf.String(), "score") {
		t.Errorf("projected table still has dropped column:\n%s", buf.String())
	}
}

func TestContextDefaults(t *testing.T) {
	ctx := context.Background()
	if FormatFromContext(ctx) != FormatJSON {
		t.Errorf("default format = %q", FormatFromContext(ctx))
	}
	if QueryFromContext(ctx) != "" || FieldsFromContext(ctx) != "" || JSONPathFromContext(ctx) != "" {
		t.Error("expected empty transforms for empty context")
	}
	if StyledFromContext(ctx) {
		t.Error("styled should default to false")
	}

	ctx = WithFormat(ctx, FormatYAML)
	if FormatFromContext(ctx) != FormatYAML {
		t.Errorf("format = %q, want yaml", FormatFromContext(ctx))
	}
}
