package cmd

import (
	"os"
	"path/filepath"

	"github.com/Fabio3rs/init-my-cpp-proj/internal/cmake"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/config"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/logger"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/project"
	"github.com/spf13/cobra"
)

type newOpts struct {
	dir             string
	std             int
	projectType     string
	noTests         bool
	noGit           bool
	commit          bool
	installDeps     bool
	manager         string
	configure       bool
	build           bool
	force           bool
	dryRun          bool
	skip            []string
	templateArchive string
	stripTopLevel   bool
}

func newNewCmd(root *rootOpts) *cobra.Command {
	opts := &newOpts{}

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a new C++ project",
		Example: `  init-cpp-proj new my-app
  init-cpp-proj new geometry --type library --std 20 --commit
  init-cpp-proj new --dir . --install-deps --build`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := opts.request(cmd, root.cfg)
			if len(args) == 1 {
				req.Name = args[0]
			}

			rep, err := project.New(cmd.Context(), root.env(), req)
			if rep != nil {
				printReport(rep, req, err)
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.dir, "dir", "d", "", "Target directory (default ./<name>, or . without a name)")
	f.IntVar(&opts.std, "std", config.DefaultStandard, "C++ standard (11, 14, 17, 20 or 23)")
	f.StringVar(&opts.projectType, "type", config.TypeExecutable, "Project type: executable or library")
	f.BoolVar(&opts.noTests, "no-tests", false, "Do not generate the GoogleTest tests/ tree")
	f.BoolVar(&opts.noGit, "no-git", false, "Do not initialize a git repository")
	f.BoolVar(&opts.commit, "commit", false, "Create an initial commit after git init")
	f.BoolVar(&opts.installDeps, "install-deps", false, "Install compiler, cmake, git, ninja and gtest with the OS package manager")
	f.StringVar(&opts.manager, "manager", "", "Package manager to use instead of detecting one")
	f.BoolVar(&opts.configure, "configure", false, "Run cmake configure after generating")
	f.BoolVar(&opts.build, "build", false, "Configure and build after generating")
	f.BoolVar(&opts.force, "force", false, "Overwrite files that already exist")
	f.BoolVar(&opts.dryRun, "dry-run", false, "Show what would be done without changing anything")
	f.StringArrayVar(&opts.skip, "skip", nil, "Glob of generated paths to leave out (repeatable), e.g. 'docs/**'")
	f.StringVar(&opts.templateArchive, "template-archive", "", "Archive (.zip, .7z, .tar[.gz|.bz2|.xz]) whose files are added to the project")
	f.BoolVar(&opts.stripTopLevel, "strip-top-level", false, "Drop the single top-level directory of --template-archive")

	return cmd
}

// request merges flags over the config file: a flag the user typed always wins.
func (o *newOpts) request(cmd *cobra.Command, cfg config.Config) project.Request {
	changed := cmd.Flags().Changed

	req := project.Request{
		Dir:             o.dir,
		CXXStandard:     cfg.CXXStandard,
		ProjectType:     cfg.ProjectType,
		Tests:           cfg.TestsEnabled() && !o.noTests,
		Author:          cfg.Author,
		Git:             !o.noGit,
		Commit:          o.commit || cfg.Git.Commit,
		CommitMessage:   cfg.Git.Message,
		InstallDeps:     o.installDeps,
		Manager:         o.manager,
		ExtraPackages:   cfg.ExtraPackages,
		Configure:       o.configure,
		Build:           o.build,
		Generator:       cfg.Generator,
		Force:           o.force,
		DryRun:          o.dryRun,
		Skip:            append(append([]string(nil), cfg.Skip...), o.skip...),
		GitignoreExtra:  cfg.GitignoreExtra,
		TemplateArchive: o.templateArchive,
		StripTopLevel:   o.stripTopLevel,
	}
	if changed("std") {
		req.CXXStandard = o.std
	}
	if changed("type") {
		req.ProjectType = o.projectType
	}
	return req
}

// printReport lists the file results. Next steps are only suggested when the
// run succeeded.
func printReport(rep *project.Report, req project.Request, runErr error) {
	logger.Info("Project %s in %s", rep.Name, rep.Dir)
	for _, f := range rep.Files {
		logger.Plain("  %-16s %s", f.Verb(), f.Path)
	}
	if req.DryRun {
		for _, c := range rep.Commands {
			logger.Plain("  %-16s %s", "would run", c)
		}
		if req.Git {
			logger.Plain("  %-16s %s", "would run", "git init")
		}
		if req.Configure || req.Build {
			logger.Plain("  %-16s %s", "would run", "cmake configure")
		}
		return
	}

	if len(rep.Warnings) > 0 {
		logger.Warn("Finished with %d warning(s)", len(rep.Warnings))
	}
	if runErr != nil {
		return
	}

	rel := rep.Dir
	if wd, err := os.Getwd(); err == nil {
		if r, err := filepath.Rel(wd, rep.Dir); err == nil {
			rel = r
		}
	}
	logger.Info("Done. Next steps:")
	if rel != "." {
		logger.Plain("  cd %s", rel)
	}
	if !req.Configure && !req.Build {
		logger.Plain("  cmake -S . -B %s", cmake.BuildDir)
	}
	if !req.Build {
		logger.Plain("  cmake --build %s", cmake.BuildDir)
	}
	if req.Tests {
		logger.Plain("  ctest --test-dir %s --output-on-failure", cmake.BuildDir)
	}
}
