// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml doubles as the tool's own manifest: its version field is the
// fallback reported by --version when no build version is injected.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	GitHubRepo  string `yaml:"github_repo"`
	Invocation  string `yaml:"invocation"`
	Version     string `yaml:"version"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		// Version stays empty so callers can apply their own fallback.
		defaults = brand{
			CLIName:     "create-vnite-plugin",
			DisplayName: "Create Vnite Plugin",
			Description: "A scaffolding tool for creating Vnite plugins",
			GitHubRepo:  "ximu3/create-vnite-plugin",
			Invocation:  "npm create vnite-plugin",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-vnite-plugin").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// GitHubURL returns the project page shown in help output.
func GitHubURL() string { return "https://github.com/" + GitHubRepo() }

// Invocation returns how users usually launch the tool, used in usage examples.
func Invocation() string { load(); return defaults.Invocation }

// ManifestVersion returns the version recorded in the embedded manifest,
// or an empty string when it has none.
func ManifestVersion() string { load(); return defaults.Version }
