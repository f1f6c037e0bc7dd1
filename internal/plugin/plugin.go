package plugin

import (
	"fmt"
	"strings"
)

// EcosystemKeyword is always the first keyword of a generated manifest.
const EcosystemKeyword = "vnite-plugin"

// Default answers offered by the prompt flow.
const (
	DefaultName    = "example-plugin"
	DefaultAuthor  = "YourName"
	DefaultLicense = "GPL-3.0-only"
)

// Category selects which template tree a plugin is generated from.
type Category string

const (
	CategoryCommon  Category = "common"
	CategoryScraper Category = "scraper"
)

// Categories lists every category in menu order. The first entry is the default.
var Categories = []Category{CategoryCommon, CategoryScraper}

// Title returns the menu label for the category, e.g. "Common".
func (c Category) Title() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// UnmarshalText implements encoding.TextUnmarshaler so categories can be read
// from configuration files. Matching is case-insensitive.
func (c *Category) UnmarshalText(text []byte) error {
	parsed := Category(strings.ToLower(strings.TrimSpace(string(text))))
	if !parsed.Valid() {
		return fmt.Errorf("unknown category %q: must be one of %s", string(text), categoryList())
	}
	*c = parsed
	return nil
}

func categoryList() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// Answers is the record produced by the prompt flow and consumed once by the
// scaffold generator.
type Answers struct {
	Name        string
	Description string
	Author      string
	Category    Category
	License     string
	Keywords    []string
	Confirm     bool
}

// DefaultDescription returns the description offered for a plugin name.
func DefaultDescription(name string) string {
	return "A Vnite plugin: " + name
}

// Keywords derives the manifest keywords for a category and plugin name.
func Keywords(category Category, name string) []string {
	return []string{EcosystemKeyword, string(category), name}
}

// ID returns the manifest id for the answers: the slugified plugin name.
func (a *Answers) ID() string {
	return Slugify(a.Name)
}
