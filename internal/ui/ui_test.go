package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_PlainOutputForBuffers(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	c.Headingf("Creating plugin: %s", "my-plugin")
	c.Infof("Target directory: %s", "/tmp/my-plugin")
	c.Successf("done")
	c.Notef("  cd %s", "my-plugin")
	c.Errorf("Error: %s", "boom")

	want := "Creating plugin: my-plugin\n" +
		"Target directory: /tmp/my-plugin\n" +
		"done\n" +
		"  cd my-plugin\n" +
		"Error: boom\n"
	assert.Equal(t, want, buf.String())
	assert.NotContains(t, buf.String(), "\x1b[", "no escape codes for non-terminal writers")
}

func TestConsole_RenderHelpers(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	assert.Equal(t, "x", c.Bold("x"))
	assert.Equal(t, "x", c.Info("x"))
	assert.Same(t, &buf, c.Writer())
}
