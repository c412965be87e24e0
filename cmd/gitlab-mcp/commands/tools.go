package commands

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/gitlab-mcp/internal/tools"
)

type toolInfo struct {
	Name        string                 `json:"name"        yaml:"name"`
	Description string                 `json:"description" yaml:"description"`
	ReadOnly    bool                   `json:"read_only"   yaml:"read_only"`
	Properties  map[string]interface{} `json:"properties"  yaml:"properties"`
	Required    []string               `json:"required"    yaml:"required"`
}

func newToolsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the available tools",
		Long:  "List the tools the server exposes. With --read-only only tools that do not modify GitLab are listed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			// Listing needs no credentials; the registry is never called.
			registry := tools.NewRegistry(nil, tools.WithReadOnly(cfg.ReadOnly))

			list := registry.List()
			infos := make([]toolInfo, 0, len(list))

			for _, tool := range list {
				props, required := tool.Schema()
				infos = append(infos, toolInfo{
					Name:        tool.Name,
					Description: tool.Description,
					ReadOnly:    tool.ReadOnly,
					Properties:  props,
					Required:    required,
				})
			}

			return writeOutput(cmd.OutOrStdout(), cfg.Output, infos, func(t *tablewriter.Table) {
				t.Header("Name", "Access", "Description")

				for _, info := range infos {
					access := "write"
					if info.ReadOnly {
						access = "read"
					}

					_ = t.Append(info.Name, access, info.Description)
				}
			})
		},
	}
}
