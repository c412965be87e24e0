package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/gitlab-mcp/internal/json"
	"github.com/fivetwenty-io/gitlab-mcp/internal/tools"
)

func newCallCommand(a *app) *cobra.Command {
	var (
		argsJSON string
		argsFile string
	)

	cmd := &cobra.Command{
		Use:   "call TOOL",
		Short: "Call a tool",
		Long: `Call one tool with JSON arguments and print its result.

  gitlab-mcp call get_project --args '{"project_id": "group/app"}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			toolArgs, err := parseToolArgs(argsJSON, argsFile)
			if err != nil {
				return err
			}

			logger := newLogger(cmd, cfg)

			client, err := newClient(cfg, logger, nil)
			if err != nil {
				return err
			}

			registry := tools.NewRegistry(client,
				tools.WithReadOnly(cfg.ReadOnly),
				tools.WithLogger(logger),
			)

			result, err := registry.Call(cmd.Context(), args[0], toolArgs)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), cfg.Output, result)
		},
	}

	cmd.Flags().StringVar(&argsJSON, "args", "", "tool arguments as a JSON object")
	cmd.Flags().StringVar(&argsFile, "args-file", "", "read tool arguments from a JSON file")
	cmd.MarkFlagsMutuallyExclusive("args", "args-file")

	return cmd
}

// parseToolArgs decodes the arguments object. Numbers stay json.Number so
// large IDs keep their precision.
func parseToolArgs(argsJSON, argsFile string) (map[string]interface{}, error) {
	data := []byte(strings.TrimSpace(argsJSON))

	if argsFile != "" {
		content, err := os.ReadFile(argsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", argsFile, err)
		}

		data = content
	}

	if len(data) == 0 {
		return map[string]interface{}{}, nil
	}

	decoded, err := json.UnmarshalTree(data)
	if err != nil {
		return nil, fmt.Errorf("%w: expected a JSON object: %w", ErrInvalidArguments, err)
	}

	args, ok := decoded.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidArguments)
	}

	return args, nil
}
