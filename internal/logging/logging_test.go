package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)

	logger.Debug("copying template", slog.String("category", "common"))

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "category=common")
}

func TestNew_Quiet(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Error("should not appear")

	assert.Empty(t, buf.String())
}

func TestInit_SetsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := Init(&buf, true)

	assert.Same(t, logger, slog.Default())
	slog.Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
