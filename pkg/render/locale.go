package render

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales.yaml
var defaultLocales []byte

// ErrUnknownLocale is returned when no layout matches a locale tag.
var ErrUnknownLocale = errors.New("unknown locale")

// LocaleFormat holds the layouts used for one locale.
type LocaleFormat struct {
	Date string `yaml:"date"`
}

// LocaleTable maps locale tags to their layouts.
type LocaleTable struct {
	Default string                  `yaml:"default"`
	Locales map[string]LocaleFormat `yaml:"locales"`
}

// LoadLocales reads a locale table from a YAML file.
// An empty path returns the built-in table.
func LoadLocales(path string) (*LocaleTable, error) {
	if path == "" {
		return ParseLocales(defaultLocales)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file: %w", err)
	}
	return ParseLocales(data)
}

// ParseLocales parses a YAML locale table.
func ParseLocales(data []byte) (*LocaleTable, error) {
	var table LocaleTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(table.Locales) == 0 {
		return nil, fmt.Errorf("locale table defines no locales")
	}
	for tag, format := range table.Locales {
		if format.Date == "" {
			return nil, fmt.Errorf("locale %s has no date layout", tag)
		}
	}
	return &table, nil
}

// DateLayout returns the date layout for tag. An empty tag selects the
// table's default. Tags match exactly, then case-insensitively, then by
// language (pt matches pt-BR); among several candidates the first in sorted
// order wins.
func (t *LocaleTable) DateLayout(tag string) (string, error) {
	if tag == "" {
		tag = t.Default
	}

	if f, ok := t.Locales[tag]; ok {
		return f.Date, nil
	}

	tags := make([]string, 0, len(t.Locales))
	for k := range t.Locales {
		tags = append(tags, k)
	}
	sort.Strings(tags)

	for _, k := range tags {
		if strings.EqualFold(k, tag) {
			return t.Locales[k].Date, nil
		}
	}

	if lang := language(tag); lang != "" {
		for _, k := range tags {
			if language(k) == lang {
				return t.Locales[k].Date, nil
			}
		}
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownLocale, tag)
}

// language returns the lower-cased primary subtag of a locale tag.
func language(tag string) string {
	parts := strings.FieldsFunc(tag, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(parts) == 0 {
		return ""
	}
	return strings.ToLower(parts[0])
}
