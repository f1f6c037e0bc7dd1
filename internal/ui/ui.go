// Package ui prints the colored console messages of the CLI. Styles are bound
// to the writer they render to, so output that is not a terminal stays plain.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Console writes styled lines to an output stream.
type Console struct {
	w io.Writer

	bold    lipgloss.Style
	info    lipgloss.Style
	success lipgloss.Style
	note    lipgloss.Style
	danger  lipgloss.Style
}

// New returns a Console writing to w.
func New(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:       w,
		bold:    r.NewStyle().Bold(true),
		info:    r.NewStyle().Foreground(lipgloss.Color("4")),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		note:    r.NewStyle().Foreground(lipgloss.Color("3")),
		danger:  r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Writer returns the underlying output stream.
func (c *Console) Writer() io.Writer { return c.w }

// Bold renders s in bold without printing it.
func (c *Console) Bold(s string) string { return c.bold.Render(s) }

// Info renders s in the informational color without printing it.
func (c *Console) Info(s string) string { return c.info.Render(s) }

// Success renders s in the success color without printing it.
func (c *Console) Success(s string) string { return c.success.Render(s) }

// Note renders s in the note color without printing it.
func (c *Console) Note(s string) string { return c.note.Render(s) }

// Danger renders s in the error color without printing it.
func (c *Console) Danger(s string) string { return c.danger.Render(s) }

// Println writes the operands followed by a newline.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.w, a...)
}

// Headingf prints a bold line.
func (c *Console) Headingf(format string, a ...any) {
	fmt.Fprintln(c.w, c.Bold(fmt.Sprintf(format, a...)))
}

// Infof prints an informational line.
func (c *Console) Infof(format string, a ...any) {
	fmt.Fprintln(c.w, c.Info(fmt.Sprintf(format, a...)))
}

// Successf prints a success line.
func (c *Console) Successf(format string, a ...any) {
	fmt.Fprintln(c.w, c.Success(fmt.Sprintf(format, a...)))
}

// Notef prints a highlighted note.
func (c *Console) Notef(format string, a ...any) {
	fmt.Fprintln(c.w, c.Note(fmt.Sprintf(format, a...)))
}

// Errorf prints an error line.
func (c *Console) Errorf(format string, a ...any) {
	fmt.Fprintln(c.w, c.Danger(fmt.Sprintf(format, a...)))
}
