package scaffold

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Fabio3rs/init-my-cpp-proj/internal/logger"
	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// Action says what happened to a path.
type Action string

const (
	Created     Action = "created"
	Skipped     Action = "skipped"     // already existed, left untouched
	Overwritten Action = "overwritten" // already existed, replaced because of --force
	Excluded    Action = "excluded"    // matched a skip glob
)

// Result is the outcome for a single file.
type Result struct {
	Path    string // slash-separated, relative to the project root
	Action  Action
	DryRun  bool
	Content []byte // what was (or would be) written; nil for Skipped and Excluded
}

// Verb renders the action for humans, e.g. "would create" in dry-run mode.
func (r Result) Verb() string {
	if !r.DryRun {
		return string(r.Action)
	}
	switch r.Action {
	case Created:
		return "would create"
	case Overwritten:
		return "would overwrite"
	case Skipped:
		return "would skip"
	}
	return "would exclude"
}

// Wrote reports whether the file content on disk now comes from the generator.
func (r Result) Wrote() bool {
	return !r.DryRun && (r.Action == Created || r.Action == Overwritten)
}

// Options control how a Writer treats existing files.
type Options struct {
	Force  bool     // overwrite existing files instead of skipping them
	DryRun bool     // report only, never touch the filesystem
	Skip   []string // doublestar globs matched against the relative path
}

// Writer writes files below Root with skip-if-exists semantics and keeps a
// log of every decision it made.
type Writer struct {
	root    string
	opts    Options
	results []Result
	// planned holds paths written (or, in dry-run, to be written) by this
	// Writer, so a later write of the same path sees it as existing.
	planned map[string]bool
}

// NewWriter validates the skip globs and returns a Writer rooted at root.
func NewWriter(root string, opts Options) (*Writer, error) {
	for _, pattern := range opts.Skip {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid skip pattern %q", pattern)
		}
	}
	return &Writer{root: root, opts: opts, planned: map[string]bool{}}, nil
}

// Root is the project directory.
func (w *Writer) Root() string {
	return w.root
}

// Results returns every decision in the order it was made.
func (w *Writer) Results() []Result {
	return w.results
}

// Write places content at rel. Existing files are skipped unless Force is set;
// paths matching a skip glob are excluded. rel must stay inside the root.
func (w *Writer) Write(rel string, content []byte, mode fs.FileMode) (Result, error) {
	rel = filepath.ToSlash(filepath.Clean(filepath.FromSlash(rel)))
	if !filepath.IsLocal(filepath.FromSlash(rel)) {
		return Result{}, errors.Errorf("refusing to write outside the project: %s", rel)
	}

	res := Result{Path: rel, DryRun: w.opts.DryRun}
	if w.excluded(rel) {
		res.Action = Excluded
		logger.Debug("Excluded by skip pattern: %s", rel)
		return w.record(res), nil
	}

	target := filepath.Join(w.root, filepath.FromSlash(rel))
	info, err := os.Lstat(target)
	exists := err == nil || w.planned[rel]
	switch {
	case err == nil && info.IsDir():
		return Result{}, errors.Errorf("%s exists and is a directory", rel)
	case exists && !w.opts.Force:
		res.Action = Skipped
		return w.record(res), nil
	case err == nil && info.Mode()&fs.ModeSymlink != 0:
		// os.WriteFile would follow the link, possibly out of the project
		return Result{}, errors.Errorf("refusing to overwrite symlink %s", rel)
	case exists:
		res.Action = Overwritten
	case errors.Is(err, fs.ErrNotExist):
		res.Action = Created
	default:
		return Result{}, errors.Errorf("checking %s: %w", rel, err)
	}
	res.Content = content
	w.planned[rel] = true

	if w.opts.DryRun {
		return w.record(res), nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return Result{}, errors.Errorf("creating directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(target, content, mode); err != nil {
		return Result{}, errors.Errorf("writing %s: %w", rel, err)
	}
	return w.record(res), nil
}

// Mkdir creates a directory below the root; existing directories are fine.
func (w *Writer) Mkdir(rel string) error {
	if w.opts.DryRun || w.excluded(rel) {
		return nil
	}
	target := filepath.Join(w.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(target, 0o755); err != nil {
		return errors.Errorf("creating %s: %w", rel, err)
	}
	return nil
}

func (w *Writer) excluded(rel string) bool {
	for _, pattern := range w.opts.Skip {
		// patterns were validated in NewWriter
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func (w *Writer) record(res Result) Result {
	w.results = append(w.results, res)
	return res
}
