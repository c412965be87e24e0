// Package commands implements the gitlab-mcp command line.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/gitlab-mcp/internal/auth"
	"github.com/fivetwenty-io/gitlab-mcp/internal/config"
	"github.com/fivetwenty-io/gitlab-mcp/internal/constants"
	"github.com/fivetwenty-io/gitlab-mcp/internal/log"
	"github.com/fivetwenty-io/gitlab-mcp/internal/metrics"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlabclient"
)

var (
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrUnknownOutputFormat = errors.New("unknown output format")
	ErrInvalidArguments    = errors.New("invalid --args")
	ErrInvalidYAML         = errors.New("invalid YAML")
	ErrEmptyCIFile         = errors.New("CI file is empty")
	ErrCIConfigInvalid     = errors.New("CI configuration is invalid")
	ErrEmptyToken          = errors.New("token is empty")
)

// BuildInfo identifies the binary.
type BuildInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit"  yaml:"commit"`
	Built   string `json:"built"   yaml:"built"`
}

type tokenStore interface {
	Get(apiURL string) (string, error)
	Set(apiURL, token string) error
	Delete(apiURL string) error
}

// app carries what every command shares: one viper instance per root
// command, the build info and where configuration is looked up.
type app struct {
	v         *viper.Viper
	info      BuildInfo
	envFile   string
	configDir string
	keyring   tokenStore
	stdin     io.Reader
}

func newApp(info BuildInfo) *app {
	a := &app{
		v:       config.NewViper(),
		info:    info,
		envFile: ".env",
		keyring: auth.NewKeyringStore(),
		stdin:   os.Stdin,
	}

	if home, err := os.UserHomeDir(); err == nil {
		a.configDir = filepath.Join(home, constants.ConfigDirName)
	}

	return a
}

// NewRootCommand builds the gitlab-mcp command tree.
func NewRootCommand(info BuildInfo) *cobra.Command {
	return newRootCommand(newApp(info))
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitlab-mcp",
		Short: "GitLab MCP server",
		Long: `An MCP server exposing the GitLab REST API as tools.

Run "gitlab-mcp serve" from an MCP client. The other commands call tools,
validate CI configuration and check the configuration from a terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.gitlab-mcp/config.yml)")
	flags.StringP("api-url", "a", "", "GitLab API URL (default "+constants.DefaultAPIURL+")")
	flags.StringP("token", "t", "", "GitLab personal access token")
	flags.StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.Bool("read-only", false, "expose only tools that do not modify GitLab")

	for _, key := range []string{
		config.KeyConfig,
		config.KeyAPIURL,
		config.KeyToken,
		config.KeyOutput,
		config.KeyVerbose,
		config.KeyReadOnly,
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(newServeCommand(a))
	rootCmd.AddCommand(newToolsCommand(a))
	rootCmd.AddCommand(newCallCommand(a))
	rootCmd.AddCommand(newLintCommand(a))
	rootCmd.AddCommand(newCheckCommand(a))
	rootCmd.AddCommand(newTokenCommand(a))
	rootCmd.AddCommand(newVersionCommand(a))

	return rootCmd
}

func (a *app) loadConfig() (*config.Config, error) {
	var store config.TokenStore
	if a.keyring != nil {
		store = a.keyring
	}

	return a.load(store)
}

// loadSettings loads the configuration without consulting the keyring.
func (a *app) loadSettings() (*config.Config, error) {
	return a.load(nil)
}

func (a *app) load(store config.TokenStore) (*config.Config, error) {
	cfg, err := config.Load(a.v, config.Options{
		EnvFile:   a.envFile,
		ConfigDir: a.configDir,
		Keyring:   store,
	})
	if err != nil {
		return nil, err
	}

	switch cfg.Output {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOutputFormat, cfg.Output)
	}

	return cfg, nil
}

// newLogger writes to the command's stderr; stdout is reserved for output
// and, under serve, for the MCP stream.
func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	logConfig := log.FromEnv()
	logConfig.Output = cmd.ErrOrStderr()

	if cfg.Verbose {
		logConfig.Level = "debug"
	}

	return log.New(logConfig)
}

// newClient validates cfg and builds a client. m may be nil.
func newClient(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) (gitlab.Client, error) {
	if report := cfg.Validate(); !report.OK() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(report.Errors, "; "))
	}

	var recorder gitlab.MetricsRecorder
	if m != nil {
		recorder = m
	}

	clientConfig, err := cfg.ClientConfig(log.NewAdapter(logger), recorder)
	if err != nil {
		return nil, err
	}

	logger.Debug("GitLab client configured",
		slog.String("api_url", cfg.APIURL),
		slog.String("token", log.SanitizeToken(cfg.Token)),
		slog.String("token_source", cfg.TokenSource),
	)

	return gitlabclient.New(clientConfig)
}
