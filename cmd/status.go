package cmd

import (
	"github.com/Fabio3rs/init-my-cpp-proj/internal/logger"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/project"
	"github.com/Fabio3rs/init-my-cpp-proj/internal/state"
	"github.com/spf13/cobra"
)

func newStatusCmd(_ *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "status [dir]",
		Short: "Show which generated files were changed or removed since generation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			st, reports, err := project.Status(dir)
			if err != nil {
				return err
			}

			logger.Info("%s (C++%d %s, generated by %s)",
				st.Options.Name, st.Options.CXXStandard, st.Options.ProjectType, st.Version)

			counts := map[state.Status]int{}
			for _, r := range reports {
				counts[r.Status]++
				logger.Plain("  %-10s %s", r.Status, r.Path)
			}
			if len(st.Packages) > 0 {
				logger.Plain("  packages: %v", st.Packages)
			}
			logger.Info("%d unchanged, %d modified, %d missing",
				counts[state.Unchanged], counts[state.Modified], counts[state.Missing])
			return nil
		},
	}
}
