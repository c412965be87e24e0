//go:build integration

package integration

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/gitlab-mcp/internal/json"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIURL     string
	Token      string
	Project    string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIURL:     os.Getenv("GITLAB_API_URL"),
		Token:      os.Getenv("GITLAB_PERSONAL_ACCESS_TOKEN"),
		Project:    os.Getenv("GITLAB_TEST_PROJECT"),
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("GITLAB_MCP_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the gitlab-mcp binary.
func getBinaryPath() string {
	if path := os.Getenv("GITLAB_MCP_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../gitlab-mcp", "./gitlab-mcp", "../gitlab-mcp"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "gitlab-mcp"
}

// SkipIfMissingConfig skips the test when no GitLab instance is configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Token == "" {
		t.Skip("GITLAB_PERSONAL_ACCESS_TOKEN not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("gitlab-mcp binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs gitlab-mcp commands.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{config: config, t: t}
}

// Run executes a gitlab-mcp command and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes a gitlab-mcp command with stdin input.
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.BinaryPath, args...)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.Stdin = strings.NewReader(input)
	cmd.Env = append(os.Environ(), "GITLAB_PERSONAL_ACCESS_TOKEN="+runner.config.Token)

	if runner.config.APIURL != "" {
		cmd.Env = append(cmd.Env, "GITLAB_API_URL="+runner.config.APIURL)
	}

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// GenerateTestName creates a unique test resource name.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// AssertJSONOutput checks that output is valid JSON and returns it decoded.
func AssertJSONOutput(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &result), "output is not a JSON object: %s", output)

	return result
}
