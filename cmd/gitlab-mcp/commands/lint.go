package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/gitlab-mcp/internal/constants"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

func newLintCommand(a *app) *cobra.Command {
	var (
		file     string
		noMerged bool
	)

	cmd := &cobra.Command{
		Use:   "lint PROJECT",
		Short: "Validate a GitLab CI configuration",
		Long: `Validate CI configuration with GitLab's CI lint API in the context of PROJECT.

Without --file the project's .gitlab-ci.yml is read from its default branch.
The command exits non-zero when the configuration is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			opts := &gitlab.CILintOptions{IncludeMergedYAML: gitlab.Bool(!noMerged)}

			if file != "" {
				content, err := readCIFile(file)
				if err != nil {
					return err
				}

				opts.Content = content
			}

			client, err := newClient(cfg, newLogger(cmd, cfg), nil)
			if err != nil {
				return err
			}

			result, err := client.CILint().Lint(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			if err := writeLintResult(cmd.OutOrStdout(), cfg.Output, result); err != nil {
				return err
			}

			if !result.Valid {
				return ErrCIConfigInvalid
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "local CI configuration to validate instead of the project's "+constants.CIConfigPath)
	cmd.Flags().BoolVar(&noMerged, "no-merged", false, "do not request the merged YAML")

	return cmd
}

// readCIFile reads a local CI file and rejects content that is empty or not
// YAML before it is sent to GitLab. Empty content would make the client lint
// the project's own CI file instead.
func readCIFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyCIFile, path)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return "", fmt.Errorf("%w in %s: %w", ErrInvalidYAML, path, err)
	}

	return string(data), nil
}

func writeLintResult(w io.Writer, format string, result *gitlab.CILintResult) error {
	err := writeOutput(w, format, result, func(t *tablewriter.Table) {
		t.Header("Level", "Message")

		if result.Valid {
			_ = t.Append("valid", "CI configuration is valid")
		} else {
			_ = t.Append("invalid", "CI configuration is invalid")
		}

		for _, msg := range result.Errors {
			_ = t.Append("error", msg)
		}

		for _, msg := range result.Warnings {
			_ = t.Append("warning", msg)
		}

		for _, include := range result.IncludeList() {
			_ = t.Append("include", include)
		}
	})
	if err != nil {
		return err
	}

	if format == constants.FormatTable && result.MergedYAML != nil {
		_, err = fmt.Fprintf(w, "\nMerged YAML:\n%s\n", strings.TrimRight(*result.MergedYAML, "\n"))
	}

	return err
}
