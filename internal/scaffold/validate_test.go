package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestValidateName(t *testing.T) {
	valid := []string{"demo", "my-app", "_private", "lib2", "Engine_Core"}
	for _, name := range valid {
		assert.NoError(t, ValidateName(name), name)
	}

	invalid := []string{"", "2fast", "-dash", "has space", "dots.not.allowed", "slash/name"}
	for _, name := range invalid {
		assert.Error(t, ValidateName(name), name)
	}
}

func TestValidateNameRejectsKeywordsAndReservedTargets(t *testing.T) {
	for _, name := range []string{"int", "class", "namespace", "co_await", "xor"} {
		assert.ErrorContains(t, ValidateName(name), "C++ keyword", name)
	}
	for _, name := range []string{"test", "all", "clean", "install", "help", "package", "ALL_BUILD"} {
		assert.ErrorContains(t, ValidateName(name), "reserved CMake target", name)
	}

	// only the exact words are reserved
	for _, name := range []string{"integer", "my-class", "tests", "test-utils", "Int"} {
		assert.NoError(t, ValidateName(name), name)
	}
}

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "my_app", Identifier("my-app"))
	assert.Equal(t, "plain", Identifier("plain"))
}

func TestPrepareDir(t *testing.T) {
	root := t.TempDir()

	t.Run("creates_missing", func(t *testing.T) {
		dir := filepath.Join(root, "a", "b")
		existed, err := PrepareDir(dir, false)
		require.NoError(t, err)
		assert.False(t, existed)
		assert.DirExists(t, dir)
	})

	t.Run("dry_run_does_not_create", func(t *testing.T) {
		dir := filepath.Join(root, "dry")
		existed, err := PrepareDir(dir, true)
		require.NoError(t, err)
		assert.False(t, existed)
		assert.NoDirExists(t, dir)
	})

	t.Run("accepts_existing", func(t *testing.T) {
		existed, err := PrepareDir(root, false)
		require.NoError(t, err)
		assert.True(t, existed)
	})

	t.Run("rejects_file", func(t *testing.T) {
		file := filepath.Join(root, "file.txt")
		require.NoError(t, os.WriteFile(file, nil, 0o644))
		_, err := PrepareDir(file, false)
		assert.True(t, errors.Is(err, ErrNotDirectory))
	})
}
