package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	clierrors "github.com/salmonumbrella/cj/internal/errors"
)

func TestLoadFromPath(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantErr    bool
		wantOutput string
		wantColor  string
		wantStyled bool
	}{
		{
			name: "valid config",
			content: `output: ndjson
color: always
styled: true
error_format: json
log_format: json`,
			wantOutput: "ndjson",
			wantColor:  "always",
			wantStyled: true,
		},
		{
			name:    "empty config",
			content: "",
		},
		{
			name:    "invalid yaml",
			content: "invalid: [yaml",
			wantErr: true,
		},
		{
			name:       "partial config",
			content:    `output: table`,
			wantOutput: "table",
		},
		{
			name:    "unknown output",
			content: `output: xml`,
			wantErr: true,
		},
		{
			name:    "unknown color",
			content: `color: rainbow`,
			wantErr: true,
		},
		{
			name:       "case insensitive values",
			content:    `output: YAML`,
			wantOutput: "YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "config.yaml")

			if tt.content != "" {
				if err := os.WriteFile(configPath, []byte(tt.content), 0o600); err != nil {
					t.Fatalf("failed to write test config: %v", err)
				}
			}

			cfg, err := LoadFromPath(configPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadFromPath() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr {
				return
			}

			if cfg.GetOutput() != tt.wantOutput {
				t.Errorf("GetOutput() = %v, want %v", cfg.GetOutput(), tt.wantOutput)
			}
			if cfg.GetColor() != tt.wantColor {
				t.Errorf("GetColor() = %v, want %v", cfg.GetColor(), tt.wantColor)
			}
			if cfg.Styled != tt.wantStyled {
				t.Errorf("Styled = %v, want %v", cfg.Styled, tt.wantStyled)
			}
		})
	}
}

func TestLoadFromPath_NonExistent(t *testing.T) {
	cfg, err := LoadFromPath("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("LoadFromPath() should return empty config for nonexistent file, got error: %v", err)
	}
	if cfg == nil {
		t.Error("LoadFromPath() returned nil config")
	}
}

func TestLoadFromPath_ValidationErrorIsWrapped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("error_format: xml\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFromPath(path)
	if !clierrors.IsValidationError(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the file, got %q", err.Error())
	}
}

func TestLoad_UsesPathFunc(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cj.yaml")
	if err := os.WriteFile(path, []byte("styled: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	orig := SetConfigPathFunc(func() (string, error) { return path, nil })
	t.Cleanup(func() { SetConfigPathFunc(orig) })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Styled {
		t.Error("expected styled from config file")
	}
}

func TestDefaultConfigPath_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/elsewhere/cj.yaml")

	got, err := defaultConfigPath()
	if err != nil {
		t.Fatalf("defaultConfigPath() error = %v", err)
	}
	if got != "/tmp/elsewhere/cj.yaml" {
		t.Errorf("defaultConfigPath() = %q", got)
	}
}

func TestDefaultConfigPath_Home(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := defaultConfigPath()
	if err != nil {
		t.Fatalf("defaultConfigPath() error = %v", err)
	}
	want := filepath.Join(home, ".config", "cj", "config.yaml")
	if got != want {
		t.Errorf("defaultConfigPath() = %q, want %q", got, want)
	}
}
