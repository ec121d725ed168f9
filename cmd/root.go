package cmd

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/Fabio3rs/init-my-cpp-proj/internal/config"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/logger"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/project"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/shell"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X .../cmd.version=v1.2.3".
var version = "dev"

// rootOpts carries global flags and the loaded config to every subcommand.
type rootOpts struct {
	debug      bool
	configPath string
	cfg        config.Config
	env        func() project.Env
}

func defaultEnv() project.Env {
	return project.Env{
		Shell:   shell.NewExec(),
		GOOS:    runtime.GOOS,
		Now:     time.Now,
		Version: version,
	}
}

// newRootCmd builds the command tree. env is injectable so tests can swap
// the shell runner.
func newRootCmd(env func() project.Env) *cobra.Command {
	opts := &rootOpts{env: env}

	rootCmd := &cobra.Command{
		Use:   "init-cpp-proj",
		Short: "Scaffold a new C++ project",
		Long: `init-cpp-proj creates a CMake based C++ project: directory layout,
CMakeLists.txt, .gitignore, placeholder sources, headers and GoogleTest tests.
It can also initialize git, install the toolchain with the OS package manager
and run the first cmake configure/build.

Existing files are never overwritten unless --force is given, so it is safe
to run again in a directory that already has some of the files.`,
		SilenceUsage:  true,
		SilenceErrors: true,

		// Runs before any subcommand: set up logging, then load user defaults.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Init(opts.debug)
			cfg, err := config.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath(), "Path to YAML defaults file")

	rootCmd.AddCommand(
		newNewCmd(opts),
		newDepsCmd(opts),
		newStatusCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the CLI and exits non-zero on failure. Ctrl-C cancels any
// running git, cmake or package manager process.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(defaultEnv).ExecuteContext(ctx); err != nil {
		logger.Error("%v", err)
		stop()
		os.Exit(1)
	}
}
