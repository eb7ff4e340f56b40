//nolint:testpackage // Need access to internal types
package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// subcommandNames lists the names of the subcommands of cmd.
func subcommandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}

	return names
}

// captureOutput selects an output format and collects everything rendered
// until the test ends. viper and stdout are restored afterwards.
func captureOutput(t *testing.T, format string) *bytes.Buffer {
	t.Helper()

	buffer := &bytes.Buffer{}
	stdout = buffer

	viper.Set("output", format)

	t.Cleanup(func() {
		stdout = os.Stdout

		viper.Reset()
	})

	return buffer
}

// useConfigFile points viper at a config file in a temporary directory.
func useConfigFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	viper.SetConfigFile(path)

	t.Cleanup(viper.Reset)

	return path
}

// readConfigFile decodes the config file written by the command under test.
func readConfigFile(t *testing.T, path string) Config {
	t.Helper()

	data, err := os.ReadFile(path) // #nosec G304 -- test temp file
	require.NoError(t, err)

	var config Config
	require.NoError(t, yaml.Unmarshal(data, &config))

	return config
}

// newAPIServer serves handler and configures the CLI to talk to it with a
// static token.
func newAPIServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	viper.Set("endpoint", server.URL)
	viper.Set("token", "test-token")

	return server
}

// writeJSON writes body as a JSON response.
func writeJSON(t *testing.T, w http.ResponseWriter, status int, body interface{}) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		t.Errorf("failed to write response: %v", err)
	}
}

// execute runs cmd with args.
func execute(cmd *cobra.Command, args ...string) error {
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	return cmd.ExecuteContext(context.Background())
}

// viperSetAll sets every key in values.
func viperSetAll(values map[string]interface{}) {
	for key, value := range values {
		viper.Set(key, value)
	}
}
