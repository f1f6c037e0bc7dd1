package scaffold

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed all:templates
var templateFS embed.FS

// builtinRoot is shown in messages that name the built-in templates root.
const builtinRoot = "built-in templates"

// Templates returns the built-in template trees, one directory per category.
func Templates() fs.FS {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		// fs.Sub only fails for invalid paths.
		panic(err)
	}
	return sub
}

// New returns a Generator using the built-in templates.
func New() *Generator {
	return &Generator{Templates: Templates(), TemplatesRoot: builtinRoot}
}

// NewFromDir returns a Generator reading template trees from dir.
func NewFromDir(dir string) *Generator {
	return &Generator{Templates: os.DirFS(dir), TemplatesRoot: dir}
}
