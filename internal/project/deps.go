package project

import (
	"context"

	"github.com/Fabio3rs/init-my-cpp-proj/internal/logger"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/pkgmgr"
)

// DepsRequest drives the standalone "deps" command.
type DepsRequest struct {
	Manager       string // empty means detect
	ExtraPackages []string
	Tests         bool // include GoogleTest
	Yes           bool
	DryRun        bool
}

// InstallDeps installs the toolchain packages. Unlike New, an undetectable
// package manager is an error here because installing is the whole point.
func InstallDeps(ctx context.Context, env Env, req DepsRequest) ([]string, error) {
	m, err := resolveManager(env, req.Manager)
	if err != nil {
		return nil, err
	}
	logger.Info("Using package manager %s", m.Name)

	tools := pkgmgr.Toolchain
	if !req.Tests {
		tools = without(tools, pkgmgr.GTest)
	}
	return pkgmgr.Install(ctx, env.Shell, m, m.PackagesFor(tools, req.ExtraPackages),
		pkgmgr.InstallOptions{Yes: req.Yes, DryRun: req.DryRun})
}
