package utils

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestInitWriterLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, "warn")
	defer Init("info")

	assert.Equal(t, log.WarnLevel, Log.GetLevel())
	Log.Info("hidden")
	assert.Empty(t, buf.String())

	Log.Warn("shown", "key", "value")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=value")
}

func TestInitUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, "loud")
	defer Init("info")

	assert.Equal(t, log.InfoLevel, Log.GetLevel())
}
