// Package git initializes the repository of a freshly generated project.
package git

import (
	"context"
	"strings"

	"github.com/Fabio3rs/init-my-cpp-proj/internal/logger"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/shell"
	"gitlab.com/tozd/go/errors"
)

// ErrGitMissing is returned when git is not installed.
var ErrGitMissing = errors.New("git is not installed")

// Outcome of Init.
type Outcome string

const (
	Initialized   Outcome = "initialized"
	AlreadyInRepo Outcome = "already-in-repo"
)

// Options for Init.
type Options struct {
	Commit  bool   // stage everything and create an initial commit
	Message string // commit message
}

// InsideWorkTree reports whether dir already belongs to a git work tree.
func InsideWorkTree(ctx context.Context, r shell.Runner, dir string) bool {
	out, err := r.Run(ctx, dir, "git", "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(string(out)) == "true"
}

// Init runs git init in dir unless dir is already inside a work tree, then
// optionally commits the generated files.
func Init(ctx context.Context, r shell.Runner, dir string, opts Options) (Outcome, error) {
	if !shell.Has(r, "git") {
		return "", ErrGitMissing
	}

	if InsideWorkTree(ctx, r, dir) {
		logger.Info("%s is already inside a git repository, skipping git init", dir)
		return AlreadyInRepo, nil
	}

	if out, err := r.Run(ctx, dir, "git", "init"); err != nil {
		return "", errors.Errorf("git init: %w\nOutput: %s", err, out)
	}
	logger.Info("Initialized git repository in %s", dir)

	if !opts.Commit {
		return Initialized, nil
	}

	if out, err := r.Run(ctx, dir, "git", "add", "-A"); err != nil {
		return Initialized, errors.Errorf("git add: %w\nOutput: %s", err, out)
	}
	msg := opts.Message
	if msg == "" {
		msg = "Initial commit"
	}
	if out, err := r.Run(ctx, dir, "git", "commit", "-m", msg); err != nil {
		// usually a missing user.name / user.email
		return Initialized, errors.Errorf("git commit: %w\nOutput: %s", err, out)
	}
	logger.Info("Created initial commit")
	return Initialized, nil
}
