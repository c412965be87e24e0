package commands

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/gitlab-mcp/internal/config"
	"github.com/fivetwenty-io/gitlab-mcp/internal/log"
)

type checkResult struct {
	APIURL     string                   `json:"api_url"              yaml:"api_url"`
	Token      string                   `json:"token"                yaml:"token"`
	ConfigFile string                   `json:"config_file"          yaml:"config_file"`
	Report     *config.Report           `json:"validation"           yaml:"validation"`
	Connection *config.ConnectionReport `json:"connection,omitempty" yaml:"connection,omitempty"`
	Error      string                   `json:"error,omitempty"      yaml:"error,omitempty"`
}

func newCheckCommand(a *app) *cobra.Command {
	var skipConnection bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and test the GitLab connection",
		Long: `Validate the configuration, then authenticate against GitLab and check
that the token can read the API.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			result := &checkResult{
				APIURL:     cfg.APIURL,
				ConfigFile: cfg.ConfigFile,
				Report:     cfg.Validate(),
			}

			if cfg.Token != "" {
				result.Token = log.SanitizeToken(cfg.Token)
			}

			var checkErr error

			if !result.Report.OK() {
				checkErr = fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(result.Report.Errors, "; "))
			} else if !skipConnection {
				client, err := newClient(cfg, newLogger(cmd, cfg), nil)
				if err != nil {
					return err
				}

				result.Connection, checkErr = config.CheckConnection(cmd.Context(), client)
			}

			if checkErr != nil {
				result.Error = checkErr.Error()
			}

			if err := writeOutput(cmd.OutOrStdout(), cfg.Output, result, checkTable(result)); err != nil {
				return err
			}

			return checkErr
		},
	}

	cmd.Flags().BoolVar(&skipConnection, "skip-connection", false, "only validate the configuration")

	return cmd
}

func checkTable(result *checkResult) func(*tablewriter.Table) {
	return func(t *tablewriter.Table) {
		t.Header("Check", "Status", "Detail")

		_ = t.Append("api url", "", result.APIURL)

		for _, msg := range result.Report.Errors {
			_ = t.Append("config", "error", msg)
		}

		for _, msg := range result.Report.Warnings {
			_ = t.Append("config", "warning", msg)
		}

		for _, msg := range result.Report.Info {
			_ = t.Append("config", "info", msg)
		}

		if result.Connection != nil {
			for _, test := range result.Connection.Tests {
				status := "ok"
				if !test.Passed {
					status = "failed"
				}

				_ = t.Append(test.Name, status, strings.TrimSpace(test.Permission+" "+test.Error))
			}

			if user := result.Connection.User; user != nil {
				_ = t.Append("user", "ok", fmt.Sprintf("%s (@%s)", user.Name, user.Username))
			}
		}
	}
}
