package commands

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about gitlab-mcp",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadSettings()
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), cfg.Output, a.info, func(t *tablewriter.Table) {
				t.Header("Property", "Value")
				_ = t.Append("Version", a.info.Version)
				_ = t.Append("Commit", a.info.Commit)
				_ = t.Append("Built", a.info.Built)
			})
		},
	}
}
