// Package pkgmgr detects the host's package manager and installs the C++
// toolchain a generated project needs.
package pkgmgr

import (
	"context"
	"strings"

	"github.com/Fabio3rs/init-my-cpp-proj/internal/logger"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/shell"
	"gitlab.com/tozd/go/errors"
)

// ErrNoManager is returned when no supported package manager is on PATH.
var ErrNoManager = errors.New("no supported package manager found")

// ByName returns the manager registered under name (case-insensitive).
func ByName(name string) (*Manager, error) {
	for _, m := range All {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	names := make([]string, 0, len(All))
	for _, m := range All {
		names = append(names, m.Name)
	}
	return nil, errors.Errorf("unknown package manager %q (want one of %s)", name, strings.Join(names, ", "))
}

// Detect picks the package manager for goos: Homebrew on darwin, otherwise
// the first of apt-get, dnf, yum, pacman and zypper found on PATH.
func Detect(r shell.Runner, goos string) (*Manager, error) {
	candidates := linuxOrder
	if goos == "darwin" {
		candidates = []*Manager{brew}
	}
	for _, m := range candidates {
		if shell.Has(r, m.Binary) {
			logger.Debug("Detected package manager %s", m.Name)
			return m, nil
		}
	}
	return nil, errors.Errorf("%s: %w", goos, ErrNoManager)
}

// PackagesFor resolves tools to m's package names, appends extra and removes duplicates.
func (m *Manager) PackagesFor(tools []Tool, extra []string) []string {
	seen := map[string]bool{}
	var out []string
	add := func(p string) {
		if p != "" && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, t := range tools {
		for _, p := range m.Packages[t] {
			add(p)
		}
	}
	for _, p := range extra {
		add(strings.TrimSpace(p))
	}
	return out
}

// InstallOptions tune Install.
type InstallOptions struct {
	Yes    bool // pass the manager's non-interactive flag
	DryRun bool // only return the commands
}

// Install installs pkgs with m. It returns the command lines it ran (or would
// run in dry-run mode), in order.
func Install(ctx context.Context, r shell.Runner, m *Manager, pkgs []string, opts InstallOptions) ([]string, error) {
	if len(pkgs) == 0 {
		return nil, nil
	}

	var steps [][]string
	if len(m.Refresh) > 0 {
		steps = append(steps, append([]string{m.Binary}, m.Refresh...))
	}
	steps = append(steps, append([]string{m.Binary}, m.InstallArgs(opts.Yes, pkgs)...))

	// root does not need sudo, and containers often do not have it at all
	if m.Sudo && !r.IsRoot() {
		for i, s := range steps {
			steps[i] = append([]string{"sudo"}, s...)
		}
	}

	var ran []string
	for _, s := range steps {
		line := strings.Join(s, " ")
		ran = append(ran, line)
		if opts.DryRun {
			continue
		}

		logger.Info("Running %s", line)
		output, err := r.Run(ctx, "", s[0], s[1:]...)
		logger.Debug("%s output:\n%s", m.Name, output)
		if err != nil {
			return ran, errors.Errorf("installing packages with %s: %w\nOutput: %s", m.Name, err, output)
		}
	}
	return ran, nil
}
