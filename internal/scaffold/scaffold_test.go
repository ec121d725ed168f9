package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paths(files []File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Path)
	}
	return out
}

func contentOf(t *testing.T, files []File, path string) string {
	t.Helper()
	for _, f := range files {
		if f.Path == path {
			return string(f.Content)
		}
	}
	t.Fatalf("%s not rendered", path)
	return ""
}

func TestRenderExecutableWithTests(t *testing.T) {
	data := NewProjectData("my-app", 20, false, true)

	files, err := Render(data)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"CMakeLists.txt",
		".gitignore",
		".clang-format",
		"README.md",
		"include/my_app/my_app.hpp",
		"src/my_app.cpp",
		"src/main.cpp",
		"tests/CMakeLists.txt",
		"tests/test_my_app.cpp",
	}, paths(files))

	cmake := contentOf(t, files, "CMakeLists.txt")
	// GTest::gtest_main comes from FindGTest in 3.20+
	assert.Contains(t, cmake, "cmake_minimum_required(VERSION 3.20)")
	assert.Contains(t, cmake, "project(my-app\n")
	assert.Contains(t, cmake, "set(CMAKE_CXX_STANDARD 20)")
	assert.Contains(t, cmake, "add_library(my_app_core src/my_app.cpp)")
	assert.Contains(t, cmake, "add_executable(my-app src/main.cpp)")
	assert.Contains(t, cmake, "add_subdirectory(tests)")

	header := contentOf(t, files, "include/my_app/my_app.hpp")
	assert.Contains(t, header, "#ifndef MY_APP_MY_APP_HPP")
	assert.Contains(t, header, "namespace my_app {")

	tests := contentOf(t, files, "tests/CMakeLists.txt")
	assert.Contains(t, tests, "target_link_libraries(my_app_tests PRIVATE my_app_core GTest::gtest_main)")
}

func TestRenderLibraryWithoutTests(t *testing.T) {
	data := NewProjectData("geometry", 17, true, false)

	files, err := Render(data)
	require.NoError(t, err)

	assert.NotContains(t, paths(files), "src/main.cpp")
	assert.NotContains(t, paths(files), "tests/CMakeLists.txt")

	cmake := contentOf(t, files, "CMakeLists.txt")
	assert.Contains(t, cmake, "add_library(geometry src/geometry.cpp)")
	assert.NotContains(t, cmake, "add_executable")
	assert.NotContains(t, cmake, "add_subdirectory(tests)")
	assert.NotContains(t, contentOf(t, files, "README.md"), "ctest")
}

func TestRenderGitignoreExtrasAndAuthor(t *testing.T) {
	data := NewProjectData("demo", 17, false, true)
	data.GitignoreExtra = []string{".cache/", "*.log"}
	data.Author = "Jane Doe"
	data.Year = 2026

	files, err := Render(data)
	require.NoError(t, err)

	gitignore := contentOf(t, files, ".gitignore")
	assert.Contains(t, gitignore, "build/\n")
	assert.Contains(t, gitignore, "# Project specific\n.cache/\n*.log\n")
	assert.Contains(t, contentOf(t, files, "README.md"), "Copyright (c) 2026 Jane Doe")
}

func TestGenerateSkipsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "CMakeLists.txt")
	require.NoError(t, os.WriteFile(existing, []byte("# mine\n"), 0o644))

	w, err := NewWriter(dir, Options{})
	require.NoError(t, err)
	require.NoError(t, Generate(w, NewProjectData("demo", 17, false, true)))

	got, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(got))

	actions := map[string]Action{}
	for _, r := range w.Results() {
		actions[r.Path] = r.Action
	}
	assert.Equal(t, Skipped, actions["CMakeLists.txt"])
	assert.Equal(t, Created, actions["src/main.cpp"])
	assert.DirExists(t, filepath.Join(dir, "cmake"))
	assert.DirExists(t, filepath.Join(dir, "docs"))
	assert.FileExists(t, filepath.Join(dir, "tests", "test_demo.cpp"))
}

func TestGenerateIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	data := NewProjectData("demo", 17, false, true)

	first, err := NewWriter(dir, Options{})
	require.NoError(t, err)
	require.NoError(t, Generate(first, data))

	second, err := NewWriter(dir, Options{})
	require.NoError(t, err)
	require.NoError(t, Generate(second, data))

	require.Len(t, second.Results(), len(first.Results()))
	for _, r := range second.Results() {
		assert.Equal(t, Skipped, r.Action, r.Path)
		assert.False(t, r.Wrote())
	}
}

func TestGenerateForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("old\n"), 0o644))

	w, err := NewWriter(dir, Options{Force: true})
	require.NoError(t, err)
	require.NoError(t, Generate(w, NewProjectData("demo", 17, false, false)))

	got, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(got), "# demo")
	assert.Equal(t, Overwritten, w.Results()[3].Action)
}

func TestGenerateDryRunWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh")

	w, err := NewWriter(dir, Options{DryRun: true})
	require.NoError(t, err)
	require.NoError(t, Generate(w, NewProjectData("demo", 17, false, true)))

	assert.NoDirExists(t, dir)
	for _, r := range w.Results() {
		assert.Equal(t, "would create", r.Verb())
	}
}

func TestGenerateSkipGlobs(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWriter(dir, Options{Skip: []string{"tests/**", ".clang-format"}})
	require.NoError(t, err)
	require.NoError(t, Generate(w, NewProjectData("demo", 17, false, true)))

	assert.NoFileExists(t, filepath.Join(dir, "tests", "CMakeLists.txt"))
	assert.NoFileExists(t, filepath.Join(dir, ".clang-format"))
	assert.FileExists(t, filepath.Join(dir, "CMakeLists.txt"))

	excluded := 0
	for _, r := range w.Results() {
		if r.Action == Excluded {
			excluded++
		}
	}
	assert.Equal(t, 3, excluded)
}

func TestNewWriterRejectsBadGlob(t *testing.T) {
	_, err := NewWriter(t.TempDir(), Options{Skip: []string{"src/[a"}})
	assert.ErrorContains(t, err, "invalid skip pattern")
}

func TestWriteRejectsEscapingPaths(t *testing.T) {
	w, err := NewWriter(t.TempDir(), Options{})
	require.NoError(t, err)

	for _, rel := range []string{"../evil", "/etc/passwd", "a/../../b"} {
		_, err := w.Write(rel, []byte("x"), 0o644)
		assert.Error(t, err, rel)
	}
}

func TestWriteRefusesDirectoryTarget(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "main.cpp"), 0o755))

	w, err := NewWriter(dir, Options{Force: true})
	require.NoError(t, err)
	_, err = w.Write("src/main.cpp", []byte("int main() {}\n"), 0o644)
	assert.ErrorContains(t, err, "is a directory")
}

func TestWriteForceRefusesSymlink(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(t.TempDir(), "outside.txt")
	require.NoError(t, os.WriteFile(outside, []byte("untouched\n"), 0o644))
	require.NoError(t, os.Symlink(outside, filepath.Join(dir, "README.md")))

	w, err := NewWriter(dir, Options{Force: true})
	require.NoError(t, err)
	_, err = w.Write("README.md", []byte("# demo\n"), 0o644)
	assert.ErrorContains(t, err, "refusing to overwrite symlink")

	got, err := os.ReadFile(outside)
	require.NoError(t, err)
	assert.Equal(t, "untouched\n", string(got))

	// without --force the link is simply left alone
	w, err = NewWriter(dir, Options{})
	require.NoError(t, err)
	res, err := w.Write("README.md", []byte("# demo\n"), 0o644)
	require.NoError(t, err)
	assert.Equal(t, Skipped, res.Action)
}

func TestWriteSamePathTwiceInDryRun(t *testing.T) {
	w, err := NewWriter(filepath.Join(t.TempDir(), "fresh"), Options{DryRun: true})
	require.NoError(t, err)

	first, err := w.Write("README.md", []byte("a"), 0o644)
	require.NoError(t, err)
	second, err := w.Write("README.md", []byte("b"), 0o644)
	require.NoError(t, err)

	assert.Equal(t, "would create", first.Verb())
	assert.Equal(t, "would skip", second.Verb())
}
