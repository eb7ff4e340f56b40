package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/fivetwenty-io/partnercenter/internal/constants"
	"github.com/fivetwenty-io/partnercenter/internal/http"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// Client implements the partner.Client interface.
type Client struct {
	httpClient *http.Client
	apis       partner.APIs
	root       http.StaticRoot
	logger     partner.Logger

	// Resource clients
	products         partner.ProductsClient
	customerProducts partner.CustomerProductsClient
	validationRules  partner.ValidationRulesClient
	agreements       partner.AgreementsClient
	compliance       partner.ComplianceClient
	customers        partner.CustomersClient
	subscriptions    partner.SubscriptionsClient
	usage            partner.UsageClient
	productUpgrades  partner.ProductUpgradesClient
	roles            partner.RolesClient
}

var _ partner.Client = (*Client)(nil)

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *partner.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// settingsFromConfig copies the per-request settings out of config, filling
// defaults for empty fields.
func settingsFromConfig(config *partner.Config) http.Settings {
	settings := http.DefaultSettings()

	if config.APIVersion != "" {
		settings.APIVersion = config.APIVersion
	}

	if config.PartnerCenterClient != "" {
		settings.PartnerCenterClient = config.PartnerCenterClient
	}

	if config.SDKVersion != "" {
		settings.SDKVersion = config.SDKVersion
	}

	settings.ApplicationName = config.ApplicationName
	settings.EnforceMFA = config.EnforceMFA
	settings.UserAgent = config.UserAgent
	settings.RefreshCredentials = config.RefreshCredentials

	return settings
}

// New creates a new partner service client.
func New(config *partner.Config) (*Client, error) {
	if config == nil {
		return nil, partner.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, partner.ErrEndpointRequired
	}

	requestContext := config.RequestContext
	if requestContext.CorrelationID == uuid.Nil {
		requestContext = partner.NewRequestContext(requestContext.Locale)
	}

	if requestContext.Locale == "" {
		requestContext.Locale = partner.DefaultLocale
	}

	apis := config.APIs
	if apis == nil {
		apis = partner.DefaultAPIs()
	}

	root := http.StaticRoot{
		Creds:   config.Credentials,
		Context: requestContext,
		Config:  settingsFromConfig(config),
	}

	client := &Client{
		httpClient: http.NewClient(config.Endpoint, root, createHTTPClientOptions(config)...),
		apis:       apis,
		root:       root,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// NewWithHTTPClient creates a client around an existing pipeline. The
// pipeline's root context is used as the client's root.
func NewWithHTTPClient(httpClient *http.Client, apis partner.APIs) *Client {
	if apis == nil {
		apis = partner.DefaultAPIs()
	}

	root := http.StaticRoot{
		Creds:   httpClient.Root().Credentials(),
		Context: httpClient.Root().RequestContext(),
		Config:  httpClient.Root().Settings(),
	}

	client := &Client{
		httpClient: httpClient.WithRoot(root),
		apis:       apis,
		root:       root,
	}

	client.initializeResourceClients()

	return client
}

// RequestContext implements partner.Client.RequestContext.
func (c *Client) RequestContext() partner.RequestContext {
	return c.root.Context
}

// With implements partner.Client.With.
func (c *Client) With(requestContext partner.RequestContext) partner.Client {
	if requestContext.Locale == "" {
		requestContext.Locale = c.root.Context.Locale
	}

	root := c.root
	root.Context = requestContext

	clone := &Client{
		httpClient: c.httpClient.WithRoot(root),
		apis:       c.apis,
		root:       root,
		logger:     c.logger,
	}

	clone.initializeResourceClients()

	return clone
}

// FollowLink implements partner.LinkFollower.FollowLink.
func (c *Client) FollowLink(ctx context.Context, link partner.Link, out any) error {
	if strings.TrimSpace(link.URI) == "" {
		return partner.MissingIdentifier("link.URI")
	}

	resp, err := c.httpClient.GetLink(ctx, link)
	if err != nil {
		return fmt.Errorf("following link: %w", err)
	}

	err = resp.Decode(out)
	if err != nil {
		return fmt.Errorf("parsing linked resource: %w", err)
	}

	return nil
}

// Resource client accessors

// Products implements partner.Client.Products.
func (c *Client) Products() partner.ProductsClient {
	return c.products
}

// CustomerProducts implements partner.Client.CustomerProducts.
func (c *Client) CustomerProducts() partner.CustomerProductsClient {
	return c.customerProducts
}

// ValidationRules implements partner.Client.ValidationRules.
func (c *Client) ValidationRules() partner.ValidationRulesClient {
	return c.validationRules
}

// Agreements implements partner.Client.Agreements.
func (c *Client) Agreements() partner.AgreementsClient {
	return c.agreements
}

// Compliance implements partner.Client.Compliance.
func (c *Client) Compliance() partner.ComplianceClient {
	return c.compliance
}

// Customers implements partner.Client.Customers.
func (c *Client) Customers() partner.CustomersClient {
	return c.customers
}

// Subscriptions implements partner.Client.Subscriptions.
func (c *Client) Subscriptions() partner.SubscriptionsClient {
	return c.subscriptions
}

// Usage implements partner.Client.Usage.
func (c *Client) Usage() partner.UsageClient {
	return c.usage
}

// ProductUpgrades implements partner.Client.ProductUpgrades.
func (c *Client) ProductUpgrades() partner.ProductUpgradesClient {
	return c.productUpgrades
}

// Roles implements partner.Client.Roles.
func (c *Client) Roles() partner.RolesClient {
	return c.roles
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.products = NewProductsClient(c.httpClient, c.apis)
	c.customerProducts = NewCustomerProductsClient(c.httpClient, c.apis)
	c.validationRules = NewValidationRulesClient(c.httpClient, c.apis)
	c.agreements = NewAgreementsClient(c.httpClient, c.apis)
	c.compliance = NewComplianceClient(c.httpClient, c.apis)
	c.customers = NewCustomersClient(c.httpClient, c.apis)
	c.subscriptions = NewSubscriptionsClient(c.httpClient, c.apis)
	c.usage = NewUsageClient(c.httpClient, c.apis)
	c.productUpgrades = NewProductUpgradesClient(c.httpClient, c.apis)
	c.roles = NewRolesClient(c.httpClient, c.apis)
}

// requireIDs checks identifiers in name, value pairs.
func requireIDs(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return partner.MissingIdentifier(pairs[i])
		}
	}

	return nil
}

// operationPath looks up an operation and fills its placeholders.
func operationPath(apis partner.APIs, operation string, ids ...string) (partner.API, string, error) {
	api, err := apis.Lookup(operation)
	if err != nil {
		return partner.API{}, "", fmt.Errorf("resolving %s: %w", operation, err)
	}

	return api, api.Format(ids...), nil
}

// setParam adds a query parameter under its configured wire name. Empty
// values are not sent.
func setParam(query url.Values, api partner.API, key, value string) {
	if value == "" {
		return
	}

	query.Set(api.Param(key), value)
}
