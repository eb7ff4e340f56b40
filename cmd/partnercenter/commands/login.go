package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/partnercenter/internal/auth"
	"github.com/fivetwenty-io/partnercenter/internal/constants"
)

// readSecret prompts for a secret without echo when stdin is a terminal.
var readSecret = func(prompt string) (string, error) {
	_, _ = fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd()) // #nosec G115 -- file descriptors fit in int
	if term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(os.Stderr)

		if err != nil {
			return "", fmt.Errorf("failed to read secret: %w", err)
		}

		return strings.TrimSpace(string(secret)), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// fetchToken is replaced in tests.
var fetchToken = auth.FetchToken

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		tenantID     string
		clientID     string
		clientSecret string
		tokenURL     string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store partner service credentials",
		Long: `Store credentials for the partner service.

With --client-id the client credentials grant is used and the secret is
prompted for when not given. Otherwise an access token is taken from --token
or prompted for.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if clientID != "" {
				return loginWithClientCredentials(cmd, config, auth.ClientCredentialsConfig{
					TenantID:     tenantID,
					ClientID:     clientID,
					ClientSecret: clientSecret,
					TokenURL:     tokenURL,
				})
			}

			token := ""
			if flag := cmd.Flag("token"); flag != nil && flag.Changed {
				token = flag.Value.String()
			}

			return loginWithToken(config, token)
		},
	}

	cmd.Flags().StringVar(&tenantID, "tenant", "", "tenant id or domain of the partner")
	cmd.Flags().StringVar(&clientID, "client-id", "", "application (client) id")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "application secret (prompted when empty)")
	cmd.Flags().StringVar(&tokenURL, "token-url", "", "override the token endpoint")

	return cmd
}

func loginWithToken(config *Config, token string) error {
	if token == "" {
		var err error

		token, err = readSecret("Access token: ")
		if err != nil {
			return err
		}
	}

	if token == "" {
		return constants.ErrNoCredentialsConfigured
	}

	credentials := auth.NewTokenCredentials(token, time.Time{})
	if credentials.IsExpired() {
		return fmt.Errorf("%w: token has expired", constants.ErrNoCredentialsConfigured)
	}

	config.Token = token
	config.ClientID = ""
	config.ClientSecret = ""
	config.TokenExpiresAt = nil

	if expiresAt := credentials.ExpiresAt(); !expiresAt.IsZero() {
		config.TokenExpiresAt = &expiresAt
	}

	err := saveConfigStruct(config)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(stdout, "Token stored, expires %s\n", formatTime(config.TokenExpiresAt))

	return nil
}

func loginWithClientCredentials(cmd *cobra.Command, config *Config, credentials auth.ClientCredentialsConfig) error {
	if credentials.TenantID == "" && credentials.TokenURL == "" {
		return constants.ErrTenantRequired
	}

	if credentials.ClientSecret == "" {
		secret, err := readSecret("Client secret: ")
		if err != nil {
			return err
		}

		credentials.ClientSecret = secret
	}

	token, err := fetchToken(cmd.Context(), credentials)
	if err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	config.TenantID = credentials.TenantID
	config.ClientID = credentials.ClientID
	config.ClientSecret = credentials.ClientSecret
	config.TokenURL = credentials.TokenURL
	config.Token = token.AccessToken
	config.TokenExpiresAt = nil

	if !token.ExpiresAt.IsZero() {
		config.TokenExpiresAt = &token.ExpiresAt
	}

	err = saveConfigStruct(config)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(stdout, "Authenticated as %s, token expires %s\n", credentials.ClientID, formatTime(config.TokenExpiresAt))

	return nil
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		Long:  "Clear the stored token and client credentials from the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Token = ""
			config.TokenExpiresAt = nil
			config.ClientID = ""
			config.ClientSecret = ""

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintln(stdout, "Successfully logged out")

			return nil
		},
	}
}
