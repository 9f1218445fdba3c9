package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/wsprune/internal/app"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [roots...]",
		Short: "List the packages found below each root and their dependencies",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			format, _ := cmd.Flags().GetString("format")
			exclude, _ := cmd.Flags().GetStringArray("exclude")
			progress, _ := cmd.Flags().GetBool("progress")

			return c.app.Scan(cmd.Context(), app.ScanOptions{
				ConfigPath: configPath,
				Roots:      args,
				Exclude:    exclude,
				Format:     format,
				Progress:   progress,
			})
		},
	}
	cmd.Flags().StringP("format", "f", "", "Output format: text, json or yaml")
	cmd.Flags().StringArray("exclude", nil, "Do not descend into directories matching this glob (repeatable)")
	return cmd
}
