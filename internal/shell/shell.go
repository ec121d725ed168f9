// Package shell is the single place the generator leaves the process to run
// git, cmake and the OS package managers.
package shell

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/Fabio3rs/init-my-cpp-proj/internal/logger"
	"gitlab.com/tozd/go/errors"
)

// Runner executes external commands. Implementations must be safe to call
// sequentially from a single goroutine; nothing here runs commands concurrently.
type Runner interface {
	// Run executes name with args inside dir and returns combined stdout/stderr.
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
	// LookPath resolves a binary on PATH.
	LookPath(name string) (string, error)
	// IsRoot reports whether the current process runs with uid 0.
	IsRoot() bool
}

// Exec runs real processes through os/exec.
type Exec struct{}

// NewExec returns the os/exec backed runner.
func NewExec() *Exec {
	return &Exec{}
}

func (e *Exec) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	// sudo and some package managers prompt on the terminal
	cmd.Stdin = os.Stdin

	logger.Debug("Running command: %s (in %s)", strings.Join(cmd.Args, " "), dir)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, errors.Errorf("%s failed: %w", name, err)
	}
	return output, nil
}

func (e *Exec) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", errors.Errorf("%s not found on PATH: %w", name, err)
	}
	return path, nil
}

func (e *Exec) IsRoot() bool {
	return os.Geteuid() == 0
}

// Has is a convenience wrapper around LookPath.
func Has(r Runner, name string) bool {
	_, err := r.LookPath(name)
	return err == nil
}
