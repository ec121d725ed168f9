package cmd

import (
	"github.com/Fabio3rs/init-my-cpp-proj/internal/logger"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/project"
	"github.com/spf13/cobra"
)

func newDepsCmd(root *rootOpts) *cobra.Command {
	var (
		manager string
		noTests bool
		yes     bool
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Install the C++ toolchain with the OS package manager",
		Long: `deps detects the package manager (Homebrew on macOS; apt-get, dnf, yum,
pacman or zypper on Linux) and installs a compiler, cmake, git, ninja and
GoogleTest, plus any extra_packages from the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmds, err := project.InstallDeps(cmd.Context(), root.env(), project.DepsRequest{
				Manager:       manager,
				ExtraPackages: root.cfg.ExtraPackages,
				Tests:         root.cfg.TestsEnabled() && !noTests,
				Yes:           yes,
				DryRun:        dryRun,
			})
			if err != nil {
				return err
			}

			if dryRun {
				for _, c := range cmds {
					logger.Plain("  %-16s %s", "would run", c)
				}
				return nil
			}
			logger.Info("Toolchain packages installed")
			return nil
		},
	}

	cmd.Flags().StringVar(&manager, "manager", "", "Package manager to use (apt, dnf, yum, pacman, zypper, brew)")
	cmd.Flags().BoolVar(&noTests, "no-tests", false, "Do not install GoogleTest")
	cmd.Flags().BoolVarP(&yes, "yes", "y", true, "Do not ask the package manager for confirmation")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the commands without running them")
	return cmd
}
