package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/gitlab-mcp/internal/constants"
)

func newTokenCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the token stored in the OS keyring",
		Long: "Store or remove the GitLab personal access token in the OS keyring.\n" +
			"A stored token is used when neither --token nor " + constants.EnvToken + " is set.",
	}

	cmd.AddCommand(newTokenSetCommand(a))
	cmd.AddCommand(newTokenDeleteCommand(a))

	return cmd
}

func newTokenSetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set",
		Short: "Store a token for the API URL",
		Long:  "Read a token from the terminal without echo, or from stdin when it is not a terminal, and store it for the API URL's host.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadSettings()
			if err != nil {
				return err
			}

			token, err := a.readToken(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if err := a.keyring.Set(cfg.APIURL, token); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Token stored for %s\n", cfg.APIURL)

			return err
		},
	}
}

func newTokenDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Remove the token stored for the API URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadSettings()
			if err != nil {
				return err
			}

			if err := a.keyring.Delete(cfg.APIURL); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Token removed for %s\n", cfg.APIURL)

			return err
		},
	}
}

// readToken prompts without echo on a terminal and otherwise reads the
// first line of stdin.
func (a *app) readToken(prompt io.Writer) (string, error) {
	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(prompt, "GitLab personal access token: ")

		data, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(prompt)

		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}

		return nonEmptyToken(string(data))
	}

	line, err := bufio.NewReader(a.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	return nonEmptyToken(line)
}

func nonEmptyToken(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
