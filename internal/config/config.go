// Package config loads the server configuration from flags, environment
// variables, an optional .env file, an optional config file and the OS
// keyring, and validates it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/gitlab-mcp/internal/constants"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// Viper keys. Flags bound with BindPFlag use the same names.
const (
	KeyConfig      = "config"
	KeyToken       = "token"
	KeyAPIURL      = "api-url"
	KeyPort        = "port"
	KeySSE         = "sse"
	KeyReadOnly    = "read-only"
	KeyHTTPTimeout = "http-timeout"
	KeyOutput      = "output"
	KeyVerbose     = "verbose"
)

// Token sources reported by Config.TokenSource.
const (
	TokenSourceNone    = ""
	TokenSourceConfig  = "config"
	TokenSourceKeyring = "keyring"
)

var (
	ErrReadEnvFile    = errors.New("reading .env file")
	ErrReadConfigFile = errors.New("reading config file")
)

// envKeys maps viper keys to the environment variables that set them.
var envKeys = map[string]string{
	KeyToken:       constants.EnvToken,
	KeyAPIURL:      constants.EnvAPIURL,
	KeyPort:        constants.EnvPort,
	KeySSE:         constants.EnvUseSSE,
	KeyReadOnly:    constants.EnvReadOnlyMode,
	KeyHTTPTimeout: constants.EnvHTTPTimeout,
}

// TokenStore looks up a stored token for an API URL.
type TokenStore interface {
	Get(apiURL string) (string, error)
}

// Options controls where Load looks for configuration.
type Options struct {
	// EnvFile is a .env file to read. A missing file is ignored.
	EnvFile string
	// ConfigDir is searched for config.yml when no --config is given.
	ConfigDir string
	// Keyring supplies the token when neither flag nor environment set one.
	Keyring TokenStore
}

// Config is the resolved server configuration.
type Config struct {
	Token       string
	TokenSource string
	APIURL      string
	// PortValue is the raw PORT setting; Port is zero when it does not parse.
	PortValue   string
	Port        int
	UseSSE      bool
	ReadOnly    bool
	HTTPTimeout time.Duration
	Output      string
	Verbose     bool
	ConfigFile  string

	timeoutValue string
	keyringErr   error
}

// NewViper returns a viper instance with the defaults set and every
// environment variable bound.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyAPIURL, constants.DefaultAPIURL)
	v.SetDefault(KeyPort, strconv.Itoa(constants.DefaultPort))
	v.SetDefault(KeySSE, false)
	v.SetDefault(KeyReadOnly, false)
	v.SetDefault(KeyHTTPTimeout, constants.DefaultHTTPTimeout.String())
	v.SetDefault(KeyOutput, constants.FormatTable)

	for key, env := range envKeys {
		_ = v.BindEnv(key, env)
	}

	return v
}

// Load resolves the configuration held by v. Precedence, highest first:
// flags, environment, config file, .env file, defaults.
func Load(v *viper.Viper, opts Options) (*Config, error) {
	if err := applyEnvFile(v, opts.EnvFile); err != nil {
		return nil, err
	}

	if err := readConfigFile(v, opts.ConfigDir); err != nil {
		return nil, err
	}

	cfg := &Config{
		Token:        strings.TrimSpace(v.GetString(KeyToken)),
		APIURL:       strings.TrimSpace(v.GetString(KeyAPIURL)),
		PortValue:    strings.TrimSpace(v.GetString(KeyPort)),
		UseSSE:       v.GetBool(KeySSE),
		ReadOnly:     v.GetBool(KeyReadOnly),
		Output:       v.GetString(KeyOutput),
		Verbose:      v.GetBool(KeyVerbose),
		ConfigFile:   v.ConfigFileUsed(),
		timeoutValue: strings.TrimSpace(v.GetString(KeyHTTPTimeout)),
	}

	if port, err := strconv.Atoi(cfg.PortValue); err == nil {
		cfg.Port = port
	}

	if timeout, err := parseTimeout(cfg.timeoutValue); err == nil {
		cfg.HTTPTimeout = timeout
	}

	if cfg.Token != "" {
		cfg.TokenSource = TokenSourceConfig
	} else if opts.Keyring != nil && cfg.APIURL != "" {
		token, err := opts.Keyring.Get(cfg.APIURL)
		if err != nil {
			cfg.keyringErr = err
		} else {
			cfg.Token = token
			cfg.TokenSource = TokenSourceKeyring
		}
	}

	return cfg, nil
}

// applyEnvFile layers .env values under real environment variables.
func applyEnvFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("%w %s: %w", ErrReadEnvFile, path, err)
	}

	for key, env := range envKeys {
		value, ok := values[env]
		if !ok {
			continue
		}

		if _, set := os.LookupEnv(env); set {
			continue
		}

		v.SetDefault(key, value)
	}

	return nil
}

func readConfigFile(v *viper.Viper, dir string) error {
	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)

		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("%w %s: %w", ErrReadConfigFile, file, err)
		}

		return nil
	}

	if dir == "" {
		return nil
	}

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("%w: %w", ErrReadConfigFile, err)
	}

	return nil
}

// parseTimeout accepts a Go duration ("45s") or a number of seconds ("45").
func parseTimeout(value string) (time.Duration, error) {
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}

	return time.ParseDuration(value)
}

// Credentials builds the client credentials.
func (c *Config) Credentials() (gitlab.Credentials, error) {
	return gitlab.NewCredentials(c.APIURL, c.Token)
}

// ClientConfig builds a client configuration. logger and metrics may be nil.
func (c *Config) ClientConfig(logger gitlab.Logger, metrics gitlab.MetricsRecorder) (*gitlab.Config, error) {
	creds, err := c.Credentials()
	if err != nil {
		return nil, err
	}

	return &gitlab.Config{
		Credentials: creds,
		HTTPTimeout: c.HTTPTimeout,
		Debug:       c.Verbose,
		Logger:      logger,
		Metrics:     metrics,
	}, nil
}

// Report is the outcome of Validate.
type Report struct {
	Errors   []string `json:"errors"   yaml:"errors"`
	Warnings []string `json:"warnings" yaml:"warnings"`
	Info     []string `json:"info"     yaml:"info"`
}

// OK reports whether validation found no errors.
func (r *Report) OK() bool {
	return len(r.Errors) == 0
}

// Validate checks the configuration. Errors prevent the server from
// starting; warnings do not.
func (c *Config) Validate() *Report {
	report := &Report{}

	switch {
	case c.Token == "":
		report.Errors = append(report.Errors, constants.EnvToken+" is required but not set")

		if c.keyringErr != nil {
			report.Info = append(report.Info, "no token in the OS keyring: "+c.keyringErr.Error())
		}
	case len(c.Token) < constants.MinTokenLength:
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("GitLab token appears to be short. Typical tokens are %d+ characters.", constants.MinTokenLength))
	}

	if c.TokenSource == TokenSourceKeyring {
		report.Info = append(report.Info, "token read from the OS keyring")
	}

	if u, err := url.Parse(c.APIURL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		report.Errors = append(report.Errors, fmt.Sprintf("%s must be a valid URL: %q", constants.EnvAPIURL, c.APIURL))
	} else if u.Scheme == "http" {
		report.Warnings = append(report.Warnings, "Using HTTP instead of HTTPS for GitLab API is not secure.")
	}

	if _, err := strconv.Atoi(c.PortValue); err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("%s must be a number: %q", constants.EnvPort, c.PortValue))
	} else if c.Port < 1 || c.Port > constants.MaxPort {
		report.Errors = append(report.Errors, fmt.Sprintf("%s must be between 1 and %d", constants.EnvPort, constants.MaxPort))
	}

	if c.HTTPTimeout <= 0 {
		report.Errors = append(report.Errors,
			fmt.Sprintf("%s must be a positive duration: %q", constants.EnvHTTPTimeout, c.timeoutValue))
	}

	if c.UseSSE {
		report.Info = append(report.Info, fmt.Sprintf("SSE transport enabled on port %s", c.PortValue))
	}

	if c.ReadOnly {
		report.Info = append(report.Info, "read-only mode enabled")
	}

	return report
}
