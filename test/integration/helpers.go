//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Endpoint   string
	Token      string
	TenantID   string
	Country    string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	country := os.Getenv("PARTNERCENTER_TEST_COUNTRY")
	if country == "" {
		country = "US"
	}

	return &TestConfig{
		Endpoint:   os.Getenv("PARTNERCENTER_ENDPOINT"),
		Token:      os.Getenv("PARTNERCENTER_TOKEN"),
		TenantID:   os.Getenv("PARTNERCENTER_TENANT_ID"),
		Country:    country,
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("PARTNERCENTER_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the partnercenter binary
func getBinaryPath() string {
	if path := os.Getenv("PARTNERCENTER_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../partnercenter",
		"./partnercenter",
		"../partnercenter",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "partnercenter"
}

// SkipIfMissingConfig skips the test if the service is not reachable with
// the configured credentials.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Token == "" {
		t.Skip("PARTNERCENTER_TOKEN not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips the test if the CLI binary cannot be found.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("partnercenter binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner provides utilities for running partnercenter commands
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a runner with an isolated config file.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config:     config,
		configFile: filepath.Join(t.TempDir(), "config.yml"),
		t:          t,
	}
}

// Run executes a partnercenter command and returns its output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	global := []string{"--config", runner.configFile, "--token", runner.config.Token}
	if runner.config.Endpoint != "" {
		global = append(global, "--endpoint", runner.config.Endpoint)
	}

	cmd := exec.Command(runner.config.BinaryPath, append(global, args...)...) // #nosec G204 -- test binary

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

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

// RunJSON executes a command with JSON output and decodes it into out.
func (runner *CommandRunner) RunJSON(out interface{}, args ...string) error {
	stdout, stderr, err := runner.Run(append(args, "--output", "json")...)
	if err != nil {
		return fmt.Errorf("command %v failed: %w: %s", args, err, stderr)
	}

	err = json.Unmarshal([]byte(stdout), out)
	if err != nil {
		return fmt.Errorf("decoding output of %v: %w", args, err)
	}

	return nil
}
