package cmd

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestFlagAlias_SharesValue(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var styled bool
	fs.BoolVarP(&styled, "styled", "s", false, "indent")
	flagAlias(fs, "styled", "pretty")

	if err := fs.Parse([]string{"--pretty"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !styled {
		t.Fatal("--pretty should set the styled value")
	}
	if !fs.Lookup("pretty").Hidden {
		t.Fatal("alias should be hidden")
	}
	if !flagChanged(fs, "styled", "pretty") {
		t.Fatal("flagChanged should see the alias")
	}
	if flagChanged(fs, "styled") {
		t.Fatal("styled itself was not set")
	}
}

func TestFlagAlias_MissingTarget(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagAlias(fs, "nope", "alias")
	if fs.Lookup("alias") != nil {
		t.Fatal("alias should not be registered without a target")
	}
}

func TestFlagChanged_UnknownName(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if flagChanged(fs, "missing") {
		t.Fatal("unknown flag reported as changed")
	}
}
