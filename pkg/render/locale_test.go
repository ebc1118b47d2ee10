package render

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDateLayout(t *testing.T) {
	table, err := LoadLocales("")
	if err != nil {
		t.Fatalf("LoadLocales() error = %v", err)
	}

	tests := []struct {
		tag      string
		expected string
	}{
		{"", "02/01/2006"},
		{"pt-BR", "02/01/2006"},
		{"en-us", "1/2/2006"},
		{"en_US", "02/01/2006"}, // language fallback picks en-GB, first in sorted order
		{"ja", "2006/1/2"},
		{"de-AT", "2.1.2006"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := table.DateLayout(tt.tag)
			if err != nil {
				t.Fatalf("DateLayout(%q) error = %v", tt.tag, err)
			}
			if got != tt.expected {
				t.Errorf("DateLayout(%q) = %q, expected %q", tt.tag, got, tt.expected)
			}
		})
	}

	if _, err := table.DateLayout("zz"); !errors.Is(err, ErrUnknownLocale) {
		t.Errorf("DateLayout(zz) error = %v, expected ErrUnknownLocale", err)
	}
}

func TestLoadLocalesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locales.yaml")
	content := "default: custom\nlocales:\n  custom:\n    date: \"2006.01.02\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadLocales(path)
	if err != nil {
		t.Fatalf("LoadLocales() error = %v", err)
	}

	layout, err := table.DateLayout("")
	if err != nil || layout != "2006.01.02" {
		t.Errorf("DateLayout() = %q, %v", layout, err)
	}
}

func TestParseLocalesErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no locales", "default: pt-BR\n"},
		{"missing layout", "locales:\n  pt-BR: {}\n"},
		{"invalid yaml", "locales: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLocales([]byte(tt.data)); err == nil {
				t.Error("ParseLocales() expected error")
			}
		})
	}

	if _, err := LoadLocales(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadLocales() expected error for missing file")
	}
}
