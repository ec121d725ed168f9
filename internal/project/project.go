// Package project ties the generator together: validation, templates,
// archive overlay, state, packages, git and cmake, in that order.
package project

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Fabio3rs/init-my-cpp-proj/internal/cmake"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/config"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/git"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/logger"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/pkgmgr"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/scaffold"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/shell"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/state"
	"gitlab.com/tozd/go/errors"
)

// Env is what the generator needs from the outside world.
type Env struct {
	Shell   shell.Runner
	GOOS    string
	Now     func() time.Time
	Version string
}

// Request describes one "new" invocation after flags and config were merged.
type Request struct {
	Name        string // empty means base name of Dir
	Dir         string // empty means ./<Name>
	CXXStandard int
	ProjectType string
	Tests       bool
	Author      string

	Git           bool
	Commit        bool
	CommitMessage string

	InstallDeps   bool
	Manager       string // overrides detection when set
	ExtraPackages []string

	Configure bool
	Build     bool // implies Configure
	Generator string

	Force          bool
	DryRun         bool
	Skip           []string
	GitignoreExtra []string

	TemplateArchive string
	StripTopLevel   bool
}

// Report summarizes what New did.
type Report struct {
	Dir      string
	Name     string
	Files    []scaffold.Result
	Git      git.Outcome
	Commands []string // package manager commands run (or planned in dry-run)
	Warnings []string
}

// Normalize fills in defaults and validates the request. It never touches
// the filesystem.
func (r *Request) Normalize() error {
	if r.Name == "" && r.Dir == "" {
		r.Dir = "."
	}
	if r.Dir == "" {
		r.Dir = r.Name
	}
	abs, err := filepath.Abs(r.Dir)
	if err != nil {
		return errors.Errorf("resolving %s: %w", r.Dir, err)
	}
	r.Dir = abs
	if r.Name == "" {
		r.Name = filepath.Base(abs)
	}

	if err := scaffold.ValidateName(r.Name); err != nil {
		return err
	}
	if r.CXXStandard == 0 {
		r.CXXStandard = config.DefaultStandard
	}
	if err := config.ValidateStandard(r.CXXStandard); err != nil {
		return err
	}
	if r.ProjectType == "" {
		r.ProjectType = config.TypeExecutable
	}
	if err := config.ValidateProjectType(r.ProjectType); err != nil {
		return err
	}
	if r.Build {
		r.Configure = true
	}
	return nil
}

// New scaffolds a project as described by req.
//
// Files are generated first, so a failure in a later step (packages, git,
// cmake) leaves a usable tree behind. Missing git or an undetectable package
// manager only produce warnings; a failing cmake run is an error because the
// user asked for it explicitly.
func New(ctx context.Context, env Env, req Request) (*Report, error) {
	if err := req.Normalize(); err != nil {
		return nil, err
	}
	rep := &Report{Dir: req.Dir, Name: req.Name}

	existed, err := scaffold.PrepareDir(req.Dir, req.DryRun)
	if err != nil {
		return nil, err
	}
	if existed {
		logger.Debug("Using existing directory %s", req.Dir)
	}

	w, err := scaffold.NewWriter(req.Dir, scaffold.Options{
		Force:  req.Force,
		DryRun: req.DryRun,
		Skip:   req.Skip,
	})
	if err != nil {
		return nil, err
	}

	now := env.Now()
	data := scaffold.NewProjectData(req.Name, req.CXXStandard, req.ProjectType == config.TypeLibrary, req.Tests)
	data.Year = now.Year()
	data.Author = req.Author
	data.GitignoreExtra = req.GitignoreExtra

	if err := scaffold.Generate(w, data); err != nil {
		return nil, err
	}
	if req.TemplateArchive != "" {
		if err := scaffold.Overlay(ctx, w, req.TemplateArchive, data, req.StripTopLevel); err != nil {
			return nil, err
		}
	}
	rep.Files = w.Results()

	st := state.LoadState(state.Path(req.Dir))
	st.Version = env.Version
	st.Options = state.Options{
		Name:        req.Name,
		CXXStandard: req.CXXStandard,
		ProjectType: req.ProjectType,
		Tests:       req.Tests,
	}
	for _, res := range rep.Files {
		if res.Wrote() {
			st.Record(res.Path, res.Content, now)
		}
	}

	if req.InstallDeps {
		cmds, installed, err := installDeps(ctx, env, req)
		rep.Commands = cmds
		if err != nil {
			rep.warn("package installation: %v", err)
		}
		st.AddPackages(installed...)
	}

	if !req.DryRun {
		if err := state.SaveState(state.Path(req.Dir), st); err != nil {
			return rep, err
		}
	}

	if req.Git && !req.DryRun {
		outcome, err := git.Init(ctx, env.Shell, req.Dir, git.Options{Commit: req.Commit, Message: req.CommitMessage})
		rep.Git = outcome
		if err != nil {
			rep.warn("git: %v", err)
		}
	}

	if req.Configure && !req.DryRun {
		if err := cmake.Configure(ctx, env.Shell, req.Dir, cmake.Generator(env.Shell, req.Generator)); err != nil {
			return rep, err
		}
		if req.Build {
			if err := cmake.Build(ctx, env.Shell, req.Dir); err != nil {
				return rep, err
			}
		}
	}

	return rep, nil
}

// installDeps returns the commands it ran and the packages that are now installed.
func installDeps(ctx context.Context, env Env, req Request) ([]string, []string, error) {
	m, err := resolveManager(env, req.Manager)
	if err != nil {
		return nil, nil, err
	}

	tools := pkgmgr.Toolchain
	if !req.Tests {
		tools = without(tools, pkgmgr.GTest)
	}
	pkgs := m.PackagesFor(tools, req.ExtraPackages)

	cmds, err := pkgmgr.Install(ctx, env.Shell, m, pkgs, pkgmgr.InstallOptions{Yes: true, DryRun: req.DryRun})
	if err != nil || req.DryRun {
		return cmds, nil, err
	}
	return cmds, pkgs, nil
}

func resolveManager(env Env, name string) (*pkgmgr.Manager, error) {
	if name != "" {
		return pkgmgr.ByName(name)
	}
	return pkgmgr.Detect(env.Shell, env.GOOS)
}

func without(tools []pkgmgr.Tool, drop pkgmgr.Tool) []pkgmgr.Tool {
	out := make([]pkgmgr.Tool, 0, len(tools))
	for _, t := range tools {
		if t != drop {
			out = append(out, t)
		}
	}
	return out
}

func (r *Report) warn(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	r.Warnings = append(r.Warnings, msg)
	logger.Warn("%s", msg)
}
