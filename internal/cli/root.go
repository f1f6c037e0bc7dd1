package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vnite-labs/create-vnite-plugin/internal/branding"
	"github.com/vnite-labs/create-vnite-plugin/internal/config"
	"github.com/vnite-labs/create-vnite-plugin/internal/logging"
	"github.com/vnite-labs/create-vnite-plugin/internal/plugin"
	"github.com/vnite-labs/create-vnite-plugin/internal/prompt"
	"github.com/vnite-labs/create-vnite-plugin/internal/scaffold"
	"github.com/vnite-labs/create-vnite-plugin/internal/ui"
	"github.com/vnite-labs/create-vnite-plugin/internal/version"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// hintError carries a follow-up line printed after the error itself.
type hintError struct {
	err  error
	hint string
}

func (e *hintError) Error() string { return e.err.Error() }
func (e *hintError) Unwrap() error { return e.err }

// NewRootCmd builds the create-vnite-plugin command.
func NewRootCmd() *cobra.Command {
	var (
		acceptDefaults bool
		verbose        bool
	)

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " [plugin-name]",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` scaffolds a new Vnite plugin project from a built-in template.

Without a name you are asked for every setting interactively. The plugin is
created in a new directory named after the plugin, below the current one.

Project: ` + branding.GitHubURL(),
		Example: `  ` + branding.Invocation() + `
  ` + branding.Invocation() + ` my-plugin
  ` + branding.CLIName() + ` my-scraper --category scraper --yes
  ` + branding.CLIName() + ` --config ~/.vnite-plugin.yaml`,
		Version:       version.Resolve(buildVersion, branding.ManifestVersion()),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, acceptDefaults, verbose)
		},
	}
	cmd.SetVersionTemplate(branding.CLIName() + " v{{.Version}}\n")

	cmd.Flags().BoolVarP(&acceptDefaults, "yes", "y", false, "Accept the default answer for every question")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Log each generation step to stderr")
	config.RegisterFlags(cmd.Flags())

	return cmd
}

// Execute runs the root command with build info injected via ldflags. Errors
// are printed here, once.
func Execute(ver, commit, date string) error {
	buildVersion = ver
	buildCommit = commit
	buildDate = date

	cmd := NewRootCmd()
	err := cmd.ExecuteContext(context.Background())
	if err != nil {
		printError(ui.New(cmd.ErrOrStderr()), err)
	}
	return err
}

func printError(con *ui.Console, err error) {
	con.Errorf("✗ %v", err)
	var he *hintError
	if errors.As(err, &he) && he.hint != "" {
		con.Notef("%s", he.hint)
	}
}

func runCreate(cmd *cobra.Command, args []string, acceptDefaults, verbose bool) error {
	con := ui.New(cmd.OutOrStdout())

	var providedName string
	if len(args) == 1 {
		providedName = args[0]
		if err := plugin.ValidateIdentifier(providedName); err != nil {
			return &hintError{
				err:  err,
				hint: "Tip: You can omit the name, and we'll guide you through interactive creation",
			}
		}
	}

	settings, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger := logging.Init(cmd.ErrOrStderr(), verbose)
	logger.Debug("starting", slog.String("version", cmd.Version),
		slog.String("commit", buildCommit), slog.String("built", buildDate))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader, closeReader, err := newLineReader(cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeReader()

	collector := &prompt.Collector{
		Reader:  reader,
		Console: con,
		Defaults: prompt.Defaults{
			Author:   settings.Author,
			License:  settings.License,
			Category: settings.Category,
		},
		AcceptDefaults: acceptDefaults,
	}

	answers, err := collector.Collect(ctx, providedName)
	if errors.Is(err, prompt.ErrCancelled) {
		con.Println()
		con.Notef("Plugin creation cancelled")
		return nil
	}
	if err != nil {
		return err
	}

	gen := scaffold.New()
	if settings.TemplatesDir != "" {
		gen = scaffold.NewFromDir(settings.TemplatesDir)
	}
	gen.Logger = logger

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	con.Println()
	con.Infof("Creating plugin: %s", answers.Name)
	con.Println("Target directory: " + con.Bold(filepath.Join(workDir, answers.Name)))

	result, err := gen.Generate(answers, workDir)
	if errors.Is(err, scaffold.ErrTemplateMissing) {
		return &hintError{
			err:  err,
			hint: "Please confirm the templates directory contains a folder for the selected category",
		}
	}
	if err != nil {
		return err
	}

	printSuccess(con, answers, result)
	return nil
}

// newLineReader picks line editing for terminals and plain buffered reads for
// everything else.
func newLineReader(in io.Reader, out io.Writer) (prompt.LineReader, func(), error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		tr, err := prompt.NewTerminalReader(f, out)
		if err != nil {
			return nil, nil, fmt.Errorf("opening terminal: %w", err)
		}
		return tr, func() { _ = tr.Close() }, nil
	}
	return prompt.NewStreamReader(in, out), func() {}, nil
}

func printSuccess(con *ui.Console, a *plugin.Answers, result *scaffold.Result) {
	con.Println()
	con.Successf("✓ Plugin created successfully!")
	con.Println()

	con.Headingf("Plugin information:")
	con.Println("  Name:        " + a.Name)
	con.Println("  Description: " + a.Description)
	con.Println("  Author:      " + a.Author)
	con.Println("  Category:    " + a.Category.Title())
	con.Println("  Keywords:    " + strings.Join(a.Keywords, ", "))
	con.Println("  License:     " + a.License)

	if len(result.Warnings) > 0 {
		con.Println()
		con.Notef("Manifest warnings:")
		for _, w := range result.Warnings {
			con.Notef("  - %s", w)
		}
	}

	con.Println()
	con.Headingf("Next steps:")
	con.Println("  " + con.Info("cd "+a.Name))
	con.Println("  " + con.Info("npm install"))

	con.Println()
	con.Headingf("Useful commands:")
	con.Println("  " + con.Info("npm run pack") + "  # Package as .vnpkg file")

	con.Println()
	con.Successf("Start developing your Vnite plugin!")
}
