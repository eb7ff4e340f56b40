package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fivetwenty-io/partnercenter/internal/auth"
	"github.com/fivetwenty-io/partnercenter/internal/constants"
	"github.com/fivetwenty-io/partnercenter/internal/logging"
	"github.com/fivetwenty-io/partnercenter/internal/tracing"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
	"github.com/fivetwenty-io/partnercenter/pkg/partnerclient"
)

// session is a client together with the resources that must be released
// after the command ran.
type session struct {
	client  partner.Client
	closers []func()
}

// Close releases the resources of the session.
func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// newSession builds a client from the current configuration.
func newSession(cmd *cobra.Command) (*session, error) {
	config := loadConfig()

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = constants.DefaultEndpoint
	}

	sess := &session{}

	verbose := viper.GetBool("verbose")

	zapLogger, err := logging.NewZap(verbose)
	if err != nil {
		return nil, err
	}

	sess.closers = append(sess.closers, func() { _ = zapLogger.Sync() })
	logger := logging.New(zapLogger.With(zap.String("command", cmd.CommandPath())))

	credentials, refresh, err := resolveCredentials(config, logger)
	if err != nil {
		sess.Close()

		return nil, err
	}

	chain := partner.NewInterceptorChain()
	if verbose {
		collector := partner.NewMetricsCollector()
		collector.SetOnChange(func(endpoint string, metrics partner.Metrics) {
			logger.Debug("partner call metrics", map[string]interface{}{
				"endpoint":        endpoint,
				"total_requests":  metrics.TotalRequests,
				"total_errors":    metrics.TotalErrors,
				"throttled":       metrics.Throttled,
				"average_latency": metrics.AverageLatency.String(),
			})
		})

		chain.AddRequestInterceptor(partner.MetricsRequestInterceptor(collector))
		chain.AddResponseInterceptor(partner.MetricsResponseInterceptor(collector))
	}

	if config.TraceNATSURL != "" {
		conn, err := tracing.Connect(config.TraceNATSURL, "partnercenter-cli")
		if err != nil {
			sess.Close()

			return nil, err
		}

		sess.closers = append(sess.closers, conn.Close)
		tracing.New(conn, "", logger).Install(chain)
	}

	requestContext := partner.NewRequestContext(config.Locale)

	client, err := partnerclient.New(cmd.Context(), &partner.Config{
		Endpoint:           endpoint,
		Credentials:        credentials,
		RefreshCredentials: refresh,
		RequestContext:     requestContext,
		ApplicationName:    config.ApplicationName,
		Debug:              verbose,
		Logger:             logger,
		Interceptors:       chain,
	})
	if err != nil {
		sess.Close()

		return nil, err
	}

	sess.client = client

	return sess, nil
}

// resolveCredentials picks client credentials when configured and a plain
// token otherwise. Refreshed client credential tokens are saved to the
// config file.
func resolveCredentials(config *Config, logger partner.Logger) (partner.Credentials, partner.RefreshCredentialsFunc, error) {
	expiresAt := time.Time{}
	if config.TokenExpiresAt != nil {
		expiresAt = *config.TokenExpiresAt
	}

	if config.ClientID != "" && config.ClientSecret != "" {
		if config.TenantID == "" && config.TokenURL == "" {
			return nil, nil, constants.ErrTenantRequired
		}

		credentials := auth.NewPersistingCredentials(
			auth.NewTokenCredentials(config.Token, expiresAt),
			&configPersister{},
			logger,
		)

		return credentials, auth.NewClientCredentialsRefresher(auth.ClientCredentialsConfig{
			TenantID:     config.TenantID,
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			TokenURL:     config.TokenURL,
		}), nil
	}

	if config.Token != "" {
		return auth.NewTokenCredentials(config.Token, expiresAt), nil, nil
	}

	return nil, nil, constants.ErrNoCredentialsConfigured
}

// warnf prints a warning to stderr.
func warnf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// withClient runs fn with a client built from the current configuration.
func withClient(cmd *cobra.Command, fn func(ctx context.Context, client partner.Client) error) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	return fn(cmd.Context(), sess.client)
}
