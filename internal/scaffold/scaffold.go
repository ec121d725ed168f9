// Package scaffold renders the embedded C++ project templates and writes them
// into a project directory without clobbering files that already exist.
package scaffold

import (
	"strings"

	"github.com/Fabio3rs/init-my-cpp-proj/internal/logger"
)

// NewProjectData derives the template data from a validated project name.
// Year, Author and GitignoreExtra are left for the caller to fill in.
func NewProjectData(name string, std int, library, tests bool) ProjectData {
	ident := Identifier(name)
	libTarget := ident
	if !library {
		libTarget = ident + "_core"
	}
	return ProjectData{
		Name:            name,
		Identifier:      ident,
		UpperIdentifier: strings.ToUpper(ident),
		LibraryTarget:   libTarget,
		CXXStandard:     std,
		Library:         library,
		Tests:           tests,
	}
}

// Generate writes the project skeleton through w.
func Generate(w *Writer, data ProjectData) error {
	logger.Debug("Generating %s (C++%d, library=%t, tests=%t) in %s",
		data.Name, data.CXXStandard, data.Library, data.Tests, w.Root())

	for _, dir := range emptyDirs {
		if err := w.Mkdir(dir); err != nil {
			return err
		}
	}

	files, err := Render(data)
	if err != nil {
		return err
	}
	for _, f := range files {
		if _, err := w.Write(f.Path, f.Content, 0o644); err != nil {
			return err
		}
	}
	return nil
}
