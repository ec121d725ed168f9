package state

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gitlab.com/tozd/go/errors"
)

// Status of a generated file compared to what the generator wrote.
type Status string

const (
	Unchanged Status = "unchanged"
	Modified  Status = "modified"
	Missing   Status = "missing"
)

// FileReport pairs a recorded path with its current status.
type FileReport struct {
	Path   string
	Status Status
}

// Check compares every recorded file under projectDir against its stored checksum.
// Reports are sorted by path.
func (st *State) Check(projectDir string) ([]FileReport, error) {
	paths := make([]string, 0, len(st.Files))
	for p := range st.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	reports := make([]FileReport, 0, len(paths))
	for _, rel := range paths {
		content, err := os.ReadFile(filepath.Join(projectDir, filepath.FromSlash(rel)))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			reports = append(reports, FileReport{Path: rel, Status: Missing})
		case err != nil:
			return nil, errors.Errorf("reading %s: %w", rel, err)
		case Checksum(content) == st.Files[rel].SHA256:
			reports = append(reports, FileReport{Path: rel, Status: Unchanged})
		default:
			reports = append(reports, FileReport{Path: rel, Status: Modified})
		}
	}
	return reports, nil
}
