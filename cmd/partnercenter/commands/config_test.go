//nolint:testpackage // Need access to internal types
package commands

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/partnercenter/internal/constants"
)

func TestSetConfigValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
		check   func(t *testing.T, config *Config)
	}{
		{
			name:  "endpoint",
			key:   "endpoint",
			value: "https://api.partner.example.com",
			check: func(t *testing.T, config *Config) {
				t.Helper()
				assert.Equal(t, "https://api.partner.example.com", config.Endpoint)
			},
		},
		{
			name:  "key is case insensitive",
			key:   "Locale",
			value: "fr-FR",
			check: func(t *testing.T, config *Config) {
				t.Helper()
				assert.Equal(t, "fr-FR", config.Locale)
			},
		},
		{
			name:  "valid output",
			key:   "output",
			value: constants.FormatYAML,
			check: func(t *testing.T, config *Config) {
				t.Helper()
				assert.Equal(t, constants.FormatYAML, config.Output)
			},
		},
		{
			name:    "invalid output",
			key:     "output",
			value:   "xml",
			wantErr: constants.ErrInvalidOutputFormat,
		},
		{
			name:    "unknown key",
			key:     "username",
			value:   "admin",
			wantErr: constants.ErrUnknownConfigKey,
		},
		{
			name:    "secrets are not settable",
			key:     "client_secret",
			value:   "s3cret",
			wantErr: constants.ErrUnknownConfigKey,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			config := &Config{}

			err := setConfigValue(config, tt.key, tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, &Config{}, config)

				return
			}

			require.NoError(t, err)
			tt.check(t, config)
		})
	}
}

func TestMaskSecrets(t *testing.T) {
	t.Parallel()

	config := &Config{Token: "eyJ0eXAi", ClientSecret: "s3cret", ClientID: "app"}
	masked := maskSecrets(config)

	assert.Equal(t, constants.MaskedSecret, masked.Token)
	assert.Equal(t, constants.MaskedSecret, masked.ClientSecret)
	assert.Equal(t, "app", masked.ClientID)
	assert.Equal(t, "eyJ0eXAi", config.Token)

	assert.Empty(t, maskSecrets(&Config{}).Token)
}

func TestConfigSetCommand(t *testing.T) {
	path := useConfigFile(t)
	output := captureOutput(t, constants.FormatTable)

	require.NoError(t, execute(newConfigSetCommand(), "tenant_id", "contoso.onmicrosoft.com"))
	assert.Equal(t, "Set tenant_id\n", output.String())

	saved := readConfigFile(t, path)
	assert.Equal(t, "contoso.onmicrosoft.com", saved.TenantID)

	err := execute(newConfigSetCommand(), "bogus", "value")
	require.ErrorIs(t, err, constants.ErrUnknownConfigKey)
}

func TestConfigShowCommand_MasksSecrets(t *testing.T) {
	output := captureOutput(t, constants.FormatJSON)
	viper.Set("token", "eyJ0eXAi")
	viper.Set("client_secret", "s3cret")
	viper.Set("client_id", "app")

	require.NoError(t, execute(newConfigShowCommand()))

	var shown Config
	require.NoError(t, json.Unmarshal(output.Bytes(), &shown))
	assert.Equal(t, constants.MaskedSecret, shown.Token)
	assert.Equal(t, constants.MaskedSecret, shown.ClientSecret)
	assert.Equal(t, "app", shown.ClientID)
	assert.NotContains(t, output.String(), "s3cret")
}

func TestConfigPersister_SaveToken(t *testing.T) {
	path := useConfigFile(t)
	viper.Set("client_id", "app")

	expiresAt := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

	persister := &configPersister{}
	require.NoError(t, persister.SaveToken("refreshed-token", expiresAt))

	saved := readConfigFile(t, path)
	assert.Equal(t, "refreshed-token", saved.Token)
	assert.Equal(t, "app", saved.ClientID)
	require.NotNil(t, saved.TokenExpiresAt)
	assert.True(t, expiresAt.Equal(*saved.TokenExpiresAt))

	require.NoError(t, persister.SaveToken("no-expiry", time.Time{}))
	assert.Nil(t, readConfigFile(t, path).TokenExpiresAt)
}

func TestFormatTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, constants.NotAvailable, formatTime(nil))
	assert.Equal(t, constants.NotAvailable, formatTime(&time.Time{}))

	value := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-05-01T12:00:00Z", formatTime(&value))
}
