package logger

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	color.NoColor = true
	buf := &bytes.Buffer{}
	prev := SetOutput(buf)
	t.Cleanup(func() {
		SetOutput(prev)
		Init(false)
	})
	return buf
}

func TestLevelsArePrefixed(t *testing.T) {
	buf := capture(t)

	Info("created %s", "CMakeLists.txt")
	Warn("skipped %s\n", ".gitignore")
	Error("boom")

	assert.Equal(t, "[INFO] created CMakeLists.txt\n[WARN] skipped .gitignore\n[ERROR] boom\n", buf.String())
}

func TestDebugIsSilentUntilEnabled(t *testing.T) {
	buf := capture(t)

	Debug("hidden")
	assert.Empty(t, buf.String())
	assert.False(t, DebugEnabled())

	Init(true)
	Debug("shown %d", 1)
	assert.Equal(t, "[DEBUG] shown 1\n", buf.String())
}

func TestPlainHasNoPrefix(t *testing.T) {
	buf := capture(t)

	Plain("  %-10s %s", "created", "src/main.cpp")
	assert.Equal(t, "  created    src/main.cpp\n", buf.String())
}
