package scaffold

import (
	"bytes"
	"embed"
	"strings"
	"text/template"

	"gitlab.com/tozd/go/errors"
)

// templateFS holds the project templates. Dotfiles are stored without the
// leading dot (go:embed skips them) and renamed through the manifest below.
//
//go:embed templates
var templateFS embed.FS

// ProjectData is passed to every template.
type ProjectData struct {
	Name            string   // Project name as typed, used for project() and the executable
	Identifier      string   // C++-safe form of Name: namespace, header dir, target prefix
	UpperIdentifier string   // Identifier upper-cased for include guards
	LibraryTarget   string   // CMake target holding the sources
	CXXStandard     int      // Value of CMAKE_CXX_STANDARD
	Library         bool     // true for library projects, false adds src/main.cpp and an executable
	Tests           bool     // GoogleTest tree under tests/
	Year            int      // Copyright year
	Author          string   // Optional copyright holder
	GitignoreExtra  []string // Extra .gitignore lines
}

// entry maps one embedded template to its output path.
type entry struct {
	template string
	output   string // text/template rendered with ProjectData
	when     func(ProjectData) bool
}

var manifest = []entry{
	{template: "CMakeLists.txt.tmpl", output: "CMakeLists.txt"},
	{template: "gitignore.tmpl", output: ".gitignore"},
	{template: "clang-format.tmpl", output: ".clang-format"},
	{template: "README.md.tmpl", output: "README.md"},
	{template: "include/header.hpp.tmpl", output: "include/{{.Identifier}}/{{.Identifier}}.hpp"},
	{template: "src/source.cpp.tmpl", output: "src/{{.Identifier}}.cpp"},
	{template: "src/main.cpp.tmpl", output: "src/main.cpp", when: func(d ProjectData) bool { return !d.Library }},
	{template: "tests/CMakeLists.txt.tmpl", output: "tests/CMakeLists.txt", when: func(d ProjectData) bool { return d.Tests }},
	{template: "tests/test.cpp.tmpl", output: "tests/test_{{.Identifier}}.cpp", when: func(d ProjectData) bool { return d.Tests }},
}

// Directories created even when no template lands in them.
var emptyDirs = []string{"cmake", "docs"}

// File is a rendered template ready to be written.
type File struct {
	Path    string // slash-separated, relative to the project root
	Content []byte
}

// Render executes every template that applies to data, in manifest order.
func Render(data ProjectData) ([]File, error) {
	files := make([]File, 0, len(manifest))
	for _, e := range manifest {
		if e.when != nil && !e.when(data) {
			continue
		}

		out, err := execute(e.output, e.output, data)
		if err != nil {
			return nil, err
		}

		raw, err := templateFS.ReadFile("templates/" + e.template)
		if err != nil {
			return nil, errors.Errorf("read template %s: %w", e.template, err)
		}
		content, err := execute(e.template, string(raw), data)
		if err != nil {
			return nil, err
		}

		files = append(files, File{Path: out, Content: []byte(content)})
	}
	return files, nil
}

func execute(name, text string, data ProjectData) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", errors.Errorf("parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Errorf("execute template %s: %w", name, err)
	}
	return strings.TrimLeft(buf.String(), "\n"), nil
}
