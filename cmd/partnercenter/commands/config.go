package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/partnercenter/internal/constants"
)

// Config represents the CLI configuration.
type Config struct {
	Endpoint        string     `json:"endpoint,omitempty"         yaml:"endpoint,omitempty"`
	Locale          string     `json:"locale,omitempty"           yaml:"locale,omitempty"`
	Output          string     `json:"output,omitempty"           yaml:"output,omitempty"`
	ApplicationName string     `json:"application_name,omitempty" yaml:"application_name,omitempty"`
	Token           string     `json:"token,omitempty"            yaml:"token,omitempty"`
	TokenExpiresAt  *time.Time `json:"token_expires_at,omitempty" yaml:"token_expires_at,omitempty"`
	TenantID        string     `json:"tenant_id,omitempty"        yaml:"tenant_id,omitempty"`
	ClientID        string     `json:"client_id,omitempty"        yaml:"client_id,omitempty"`
	ClientSecret    string     `json:"client_secret,omitempty"    yaml:"client_secret,omitempty"`
	TokenURL        string     `json:"token_url,omitempty"        yaml:"token_url,omitempty"`
	TraceNATSURL    string     `json:"trace_nats_url,omitempty"   yaml:"trace_nats_url,omitempty"`
}

// configSetters maps settable keys to their fields.
var configSetters = map[string]func(*Config, string){
	"endpoint":         func(c *Config, v string) { c.Endpoint = v },
	"locale":           func(c *Config, v string) { c.Locale = v },
	"output":           func(c *Config, v string) { c.Output = v },
	"application_name": func(c *Config, v string) { c.ApplicationName = v },
	"tenant_id":        func(c *Config, v string) { c.TenantID = v },
	"client_id":        func(c *Config, v string) { c.ClientID = v },
	"token_url":        func(c *Config, v string) { c.TokenURL = v },
	"trace_nats_url":   func(c *Config, v string) { c.TraceNATSURL = v },
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the partnercenter CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := maskSecrets(loadConfig())

			return render(config, func(writer io.Writer) error {
				return renderProperties(writer, [][]string{
					{"Endpoint", valueOrNA(config.Endpoint)},
					{"Locale", valueOrNA(config.Locale)},
					{"Output", valueOrNA(config.Output)},
					{"Application", valueOrNA(config.ApplicationName)},
					{"Token", valueOrNA(config.Token)},
					{"Token Expires", formatTime(config.TokenExpiresAt)},
					{"Tenant", valueOrNA(config.TenantID)},
					{"Client ID", valueOrNA(config.ClientID)},
					{"Client Secret", valueOrNA(config.ClientSecret)},
					{"Token URL", valueOrNA(config.TokenURL)},
					{"Trace NATS URL", valueOrNA(config.TraceNATSURL)},
				})
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	keys := make([]string, 0, len(configSetters))
	for key := range configSetters {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(keys, ", "),
		Args:  cobra.ExactArgs(constants.TwoArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(stdout, "Set %s\n", args[0])

			return nil
		},
	}
}

func setConfigValue(config *Config, key, value string) error {
	setter, ok := configSetters[strings.ToLower(key)]
	if !ok {
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	if strings.EqualFold(key, "output") {
		switch value {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		default:
			return fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, value)
		}
	}

	setter(config, value)

	return nil
}

// loadConfig reads the configuration from viper. Flags and environment
// variables take precedence over the config file.
func loadConfig() *Config {
	config := &Config{
		Endpoint:        viper.GetString("endpoint"),
		Locale:          viper.GetString("locale"),
		Output:          viper.GetString("output"),
		ApplicationName: viper.GetString("application_name"),
		Token:           viper.GetString("token"),
		TenantID:        viper.GetString("tenant_id"),
		ClientID:        viper.GetString("client_id"),
		ClientSecret:    viper.GetString("client_secret"),
		TokenURL:        viper.GetString("token_url"),
		TraceNATSURL:    viper.GetString("trace_nats_url"),
	}

	if expiresAt := viper.GetTime("token_expires_at"); !expiresAt.IsZero() {
		config.TokenExpiresAt = &expiresAt
	}

	return config
}

// configFilePath returns the config file in use, or the default location.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".partnercenter", "config.yml"), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func maskSecrets(config *Config) *Config {
	masked := *config

	if masked.Token != "" {
		masked.Token = constants.MaskedSecret
	}

	if masked.ClientSecret != "" {
		masked.ClientSecret = constants.MaskedSecret
	}

	return &masked
}

func formatTime(value *time.Time) string {
	if value == nil || value.IsZero() {
		return constants.NotAvailable
	}

	return value.Format(time.RFC3339)
}

// configPersister stores refreshed tokens in the config file.
type configPersister struct {
	mutex sync.Mutex
}

// SaveToken implements auth.TokenPersister.
func (p *configPersister) SaveToken(token string, expiresAt time.Time) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config := loadConfig()
	config.Token = token

	if expiresAt.IsZero() {
		config.TokenExpiresAt = nil
	} else {
		config.TokenExpiresAt = &expiresAt
	}

	return saveConfigStruct(config)
}
