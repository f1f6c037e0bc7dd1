package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnite-labs/create-vnite-plugin/internal/manifest"
	"github.com/vnite-labs/create-vnite-plugin/internal/plugin"
	"github.com/vnite-labs/create-vnite-plugin/internal/scaffold"
	"github.com/vnite-labs/create-vnite-plugin/internal/ui"
)

// run executes the root command in a fresh temporary working directory and
// returns that directory, the combined output and the command error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return dir, out.String(), err
}

func lookupString(t *testing.T, doc *manifest.Document, key string) string {
	t.Helper()
	var s string
	ok, err := doc.Lookup(key, &s)
	require.NoError(t, err)
	require.True(t, ok, "missing %s", key)
	return s
}

func loadManifest(t *testing.T, pluginDir string) *manifest.Document {
	t.Helper()
	doc, err := manifest.Load(filepath.Join(pluginDir, manifest.FileName))
	require.NoError(t, err)
	return doc
}

func TestCreateWithNameAndDefaults(t *testing.T) {
	dir, out, err := run(t, strings.Repeat("\n", 6), "my-plugin")
	require.NoError(t, err)

	pluginDir := filepath.Join(dir, "my-plugin")
	assert.FileExists(t, filepath.Join(pluginDir, "README.md"))
	assert.FileExists(t, filepath.Join(pluginDir, "src", "index.ts"))

	doc := loadManifest(t, pluginDir)
	assert.Equal(t, "my-plugin", lookupString(t, doc, "id"))
	assert.Equal(t, "A Vnite plugin: my-plugin", lookupString(t, doc, "description"))
	assert.Equal(t, plugin.DefaultAuthor, lookupString(t, doc, "author"))
	assert.Equal(t, plugin.DefaultLicense, lookupString(t, doc, "license"))
	assert.Equal(t, "common", lookupString(t, doc, "category"))

	var keywords []string
	_, err = doc.Lookup("keywords", &keywords)
	require.NoError(t, err)
	assert.Equal(t, []string{"vnite-plugin", "common", "my-plugin"}, keywords)

	assert.Contains(t, out, "Creating plugin: my-plugin")
	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Contains(t, out, "Target directory: "+filepath.Join(cwd, "my-plugin"))
	assert.Contains(t, out, "Plugin created successfully!")
	assert.Contains(t, out, "Keywords:    vnite-plugin, common, my-plugin")
	assert.Contains(t, out, "cd my-plugin")
	assert.Contains(t, out, "npm run pack")
}

func TestCreateInteractiveScraper(t *testing.T) {
	input := strings.Join([]string{
		"",               // name: keep "example-plugin"
		"Fetch metadata", // description
		"Ximu",           // author
		"2",              // category: scraper
		"MIT",            // license
		"y",              // confirm
	}, "\n") + "\n"

	dir, _, err := run(t, input)
	require.NoError(t, err)

	pluginDir := filepath.Join(dir, plugin.DefaultName)
	assert.FileExists(t, filepath.Join(pluginDir, "src", "provider.ts"))

	doc := loadManifest(t, pluginDir)
	assert.Equal(t, "scraper", lookupString(t, doc, "category"))
	assert.Equal(t, "Ximu", lookupString(t, doc, "author"))
	assert.Equal(t, "MIT", lookupString(t, doc, "license"))
	assert.Equal(t, "Fetch metadata", lookupString(t, doc, "description"))
}

func TestInvalidNameArgument(t *testing.T) {
	dir, out, err := run(t, "", "Bad Name!")
	require.Error(t, err)
	assert.ErrorIs(t, err, plugin.ErrInvalidIdentifier)

	var he *hintError
	require.ErrorAs(t, err, &he)
	assert.Contains(t, he.hint, "You can omit the name")

	assert.NotContains(t, out, "?", "no question should be asked")
	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestCancelAtAuthor(t *testing.T) {
	dir, out, err := run(t, "\n\n", "my-plugin")
	require.NoError(t, err)
	assert.Contains(t, out, "Plugin creation cancelled")
	assert.NoDirExists(t, filepath.Join(dir, "my-plugin"))
}

func TestDeclineConfirmation(t *testing.T) {
	dir, out, err := run(t, "\n\n\n\n\nn\n", "my-plugin")
	require.NoError(t, err)
	assert.Contains(t, out, "Plugin creation cancelled")
	assert.NoDirExists(t, filepath.Join(dir, "my-plugin"))
}

func TestAcceptDefaults(t *testing.T) {
	dir, out, err := run(t, "", "--yes", "quick-plugin")
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(dir, "quick-plugin"))
	assert.NotContains(t, out, "Let's create your Vnite plugin!")
}

func TestTargetExists(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "taken"), 0755))

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"-y", "taken"})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&bytes.Buffer{})
	err := cmd.Execute()
	assert.ErrorIs(t, err, scaffold.ErrTargetExists)

	entries, _ := os.ReadDir(filepath.Join(dir, "taken"))
	assert.Empty(t, entries)
}

func TestConfigFileAndFlags(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("author: Ximu\ncategory: scraper\nlicense: MIT\n"), 0644))

	dir, _, err := run(t, "", "-y", "--config", cfg, "--license", "Apache-2.0", "my-scraper")
	require.NoError(t, err)

	doc := loadManifest(t, filepath.Join(dir, "my-scraper"))
	assert.Equal(t, "Ximu", lookupString(t, doc, "author"))
	assert.Equal(t, "scraper", lookupString(t, doc, "category"))
	assert.Equal(t, "Apache-2.0", lookupString(t, doc, "license"))
}

func TestInvalidCategoryFlag(t *testing.T) {
	dir, _, err := run(t, "", "-y", "--category", "theme", "my-plugin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
	assert.NoDirExists(t, filepath.Join(dir, "my-plugin"))
}

func TestTemplatesDirMissingCategory(t *testing.T) {
	templates := t.TempDir()
	_, _, err := run(t, "", "-y", "--templates-dir", templates, "my-plugin")
	require.Error(t, err)
	assert.ErrorIs(t, err, scaffold.ErrTemplateMissing)

	var he *hintError
	require.ErrorAs(t, err, &he)
	assert.Contains(t, he.hint, "Please confirm")
}

func TestVersionFlag(t *testing.T) {
	for _, flag := range []string{"--version", "-v"} {
		t.Run(flag, func(t *testing.T) {
			_, out, err := run(t, "", flag)
			require.NoError(t, err)
			assert.Equal(t, "create-vnite-plugin v1.0.0\n", out)
		})
	}
}

func TestHelpFlag(t *testing.T) {
	dir, out, err := run(t, "", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "create-vnite-plugin [plugin-name]")
	assert.Contains(t, out, "https://github.com/ximu3/create-vnite-plugin")
	assert.Contains(t, out, "--yes")

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestRejectedArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"extra positional", []string{"one", "two"}, "accepts at most 1 arg(s)"},
		{"unknown shorthand", []string{"-x"}, "unknown shorthand flag"},
		{"unknown flag", []string{"--frobnicate", "my-plugin"}, "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, _, err := run(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			entries, _ := os.ReadDir(dir)
			assert.Empty(t, entries)
		})
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(ui.New(&buf), &hintError{err: errors.New("boom"), hint: "try again"})
	assert.Equal(t, "✗ boom\ntry again\n", buf.String())
}
