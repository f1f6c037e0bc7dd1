package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/vnite-labs/create-vnite-plugin/internal/manifest"
	"github.com/vnite-labs/create-vnite-plugin/internal/platform"
	"github.com/vnite-labs/create-vnite-plugin/internal/plugin"
)

// ReadmeFileName is the generated README.
const ReadmeFileName = "README.md"

var (
	// ErrTargetExists means the plugin directory is already present.
	ErrTargetExists = errors.New("target directory already exists")
	// ErrTemplateMissing means no template tree exists for the category.
	ErrTemplateMissing = errors.New("template directory does not exist")
	// ErrManifestMissing means the copied template has no package.json.
	ErrManifestMissing = errors.New("package.json file is missing from template directory")
)

// excludedNames are files/directories skipped while copying a template.
var excludedNames = map[string]bool{
	"node_modules": true,
	".git":         true,
	".DS_Store":    true,
}

// Generator materializes plugin projects from template trees.
type Generator struct {
	// Templates holds one directory per category.
	Templates fs.FS
	// TemplatesRoot describes where Templates comes from, for messages.
	TemplatesRoot string
	// Logger receives step-by-step diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// Generate creates <workDir>/<name> from the template for the answers'
// category. The target directory must not exist. If any step after creating
// it fails, the directory is removed before the error is returned.
func (g *Generator) Generate(a *plugin.Answers, workDir string) (res *Result, err error) {
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}

	targetDir, err := filepath.Abs(filepath.Join(workDir, a.Name))
	if err != nil {
		return nil, fmt.Errorf("resolving target directory: %w", err)
	}
	category := string(a.Category)

	if _, err := os.Lstat(targetDir); err == nil {
		return nil, fmt.Errorf("directory %q: %w", a.Name, ErrTargetExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("checking target directory %s: %w", targetDir, err)
	}

	if !g.hasTemplate(category) {
		return nil, &TemplateError{Category: category, Root: g.TemplatesRoot}
	}

	logger.Debug("creating plugin", slog.String("target", targetDir), slog.String("template", category))

	if err := os.Mkdir(targetDir, 0755); err != nil {
		return nil, fmt.Errorf("creating target directory %s: %w", targetDir, err)
	}
	defer func() {
		if err == nil {
			return
		}
		logger.Debug("removing partially created plugin", slog.String("target", targetDir))
		if rmErr := os.RemoveAll(targetDir); rmErr != nil {
			err = errors.Join(err, fmt.Errorf("removing %s: %w", targetDir, rmErr))
		}
		res = nil
	}()

	result := &Result{OutputDir: targetDir}

	result.Files, err = copyTree(g.Templates, category, targetDir)
	if err != nil {
		return nil, fmt.Errorf("copying template %q: %w", category, err)
	}
	logger.Debug("copied template", slog.Int("files", len(result.Files)))

	manifestPath := filepath.Join(targetDir, manifest.FileName)
	doc, err := manifest.Load(manifestPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("template %q: %w", category, ErrManifestMissing)
	}
	if err != nil {
		return nil, err
	}

	if err := manifest.Apply(doc, a); err != nil {
		return nil, fmt.Errorf("updating %s: %w", manifest.FileName, err)
	}
	if err := doc.Save(manifestPath); err != nil {
		return nil, err
	}

	// Schema issues are reported, not fatal.
	valResult, valErr := manifest.ValidateFile(manifestPath)
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate manifest: %v", valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			result.Warnings = append(result.Warnings, issue.String())
		}
	}

	readmePath := filepath.Join(targetDir, ReadmeFileName)
	if err := os.WriteFile(readmePath, []byte(Readme(a)), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", readmePath, err)
	}
	if !slices.Contains(result.Files, ReadmeFileName) {
		result.Files = append(result.Files, ReadmeFileName)
	}

	logger.Debug("plugin created", slog.String("target", targetDir), slog.Int("warnings", len(result.Warnings)))
	return result, nil
}

// hasTemplate reports whether a template directory exists for category.
func (g *Generator) hasTemplate(category string) bool {
	if g.Templates == nil || category == "" || !fs.ValidPath(category) || category == "." {
		return false
	}
	info, err := fs.Stat(g.Templates, category)
	return err == nil && info.IsDir()
}

// TemplateError reports a missing template directory. It matches
// ErrTemplateMissing with errors.Is.
type TemplateError struct {
	Category string
	Root     string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template directory %q does not exist in %s", e.Category, e.Root)
}

// Is lets errors.Is(err, ErrTemplateMissing) match.
func (e *TemplateError) Is(target error) bool {
	return target == ErrTemplateMissing
}

// copyTree copies the directory src of fsys into dst, which must exist. It
// returns the copied files as slash-separated paths relative to dst.
func copyTree(fsys fs.FS, src, dst string) ([]string, error) {
	var files []string

	err := fs.WalkDir(fsys, src, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if p == src {
			return nil
		}
		if shouldExclude(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel := p[len(src)+1:]
		out := filepath.Join(dst, filepath.FromSlash(rel))

		switch {
		case d.IsDir():
			return os.Mkdir(out, 0755)
		case d.Type()&fs.ModeSymlink != 0:
			if err := copySymlink(fsys, p, out); err != nil {
				return err
			}
		case d.Type().IsRegular():
			if err := copyFile(fsys, p, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s: unsupported file type %s", rel, d.Type())
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// copyFile copies a single file, keeping its executable bits.
func copyFile(fsys fs.FS, src, dst string) error {
	data, err := fs.ReadFile(fsys, src)
	if err != nil {
		return err
	}
	info, err := fs.Stat(fsys, src)
	if err != nil {
		return err
	}

	mode := info.Mode().Perm() | 0o644
	if err := os.WriteFile(dst, data, mode); err != nil {
		return err
	}
	return platform.KeepExecutable(dst, mode)
}

// copySymlink recreates the link at src as dst with the same target.
func copySymlink(fsys fs.FS, src, dst string) error {
	target, err := fs.ReadLink(fsys, src)
	if err != nil {
		return fmt.Errorf("reading link %s: %w", src, err)
	}
	return os.Symlink(target, dst)
}

// shouldExclude returns true if the name should be excluded during copy.
func shouldExclude(name string) bool {
	return excludedNames[name]
}
