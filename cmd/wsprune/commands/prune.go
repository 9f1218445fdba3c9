package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/wsprune/internal/app"
)

func (c *CLI) newPruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Find upstream packages the workspace does not need and act on them",
		Long: "Scan the upstream pool and the kept workspaces, follow the dependencies of the kept\n" +
			"packages through the pool and report every upstream package that is never reached.\n" +
			"The --action flag decides what happens to those packages.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			upstream, _ := cmd.Flags().GetString("upstream")
			workspaces, _ := cmd.Flags().GetStringArray("workspace")
			packages, _ := cmd.Flags().GetStringArray("package")
			types, _ := cmd.Flags().GetStringSlice("type")
			action, _ := cmd.Flags().GetString("action")
			format, _ := cmd.Flags().GetString("format")
			exclude, _ := cmd.Flags().GetStringArray("exclude")
			fingerprint, _ := cmd.Flags().GetString("expect-fingerprint")
			progress, _ := cmd.Flags().GetBool("progress")

			return c.app.Prune(cmd.Context(), app.PruneOptions{
				ConfigPath:        configPath,
				Upstream:          upstream,
				Workspaces:        workspaces,
				Packages:          packages,
				Types:             types,
				Action:            action,
				Format:            format,
				Exclude:           exclude,
				ExpectFingerprint: fingerprint,
				Progress:          progress,
			})
		},
	}
	cmd.Flags().StringP("upstream", "u", "", "Directory holding the upstream package pool")
	cmd.Flags().StringArrayP("workspace", "w", nil, "Workspace whose packages are kept (repeatable)")
	cmd.Flags().StringArrayP("package", "p", nil, "Upstream package to keep instead of a workspace (repeatable)")
	cmd.Flags().StringSliceP("type", "t", nil, "Only follow dependencies of these types: all, build, exec, test")
	cmd.Flags().StringP("action", "a", "",
		"What to do with unused packages: print, colcon-ignore, catkin-ignore, ament-ignore, remove")
	cmd.Flags().StringP("format", "f", "", "Report format: text, json or yaml")
	cmd.Flags().StringArray("exclude", nil, "Do not descend into directories matching this glob (repeatable)")
	cmd.Flags().String("expect-fingerprint", "", "Abort unless the unused set has this fingerprint")
	cmd.MarkFlagsMutuallyExclusive("workspace", "package")
	return cmd
}
