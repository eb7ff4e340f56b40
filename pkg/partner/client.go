package partner

import (
	"context"
	"time"
)

// CatalogClients provides access to the product catalog.
type CatalogClients interface {
	Products() ProductsClient
	CustomerProducts() CustomerProductsClient
	ValidationRules() ValidationRulesClient
}

// AgreementClients provides access to agreements and compliance.
type AgreementClients interface {
	Agreements() AgreementsClient
	Compliance() ComplianceClient
}

// CustomerClients provides access to customer scoped resources.
type CustomerClients interface {
	Customers() CustomersClient
	Subscriptions() SubscriptionsClient
	Usage() UsageClient
	ProductUpgrades() ProductUpgradesClient
}

// DirectoryClients provides access to the partner directory.
type DirectoryClients interface {
	Roles() RolesClient
}

// Client is the root of the partner service SDK.
type Client interface {
	CatalogClients
	AgreementClients
	CustomerClients
	DirectoryClients
	LinkFollower

	// RequestContext returns the root context of this client.
	RequestContext() RequestContext

	// With returns a client bound to a different root context. Credentials
	// and configuration are shared with the receiver.
	With(requestContext RequestContext) Client
}

// ProductListOptions scopes a product listing.
type ProductListOptions struct {
	Country          string
	TargetView       string
	TargetSegment    string
	ReservationScope string
}

// ProductOptions scopes a single product lookup.
type ProductOptions struct {
	Country          string
	ReservationScope string
}

// SkuListOptions scopes a sku listing.
type SkuListOptions struct {
	Country          string
	TargetSegment    string
	ReservationScope string
}

// SkuOptions scopes a single sku lookup.
type SkuOptions struct {
	Country          string
	ReservationScope string
}

// AvailabilityListOptions scopes an availability listing.
type AvailabilityListOptions struct {
	Country          string
	TargetSegment    string
	ReservationScope string
}

// ProductsClient reads the partner product catalog.
type ProductsClient interface {
	List(ctx context.Context, opts ProductListOptions) (*ResourceCollection[Product], error)
	Get(ctx context.Context, productID string, opts ProductOptions) (*Product, error)
	ListSkus(ctx context.Context, productID string, opts SkuListOptions) (*ResourceCollection[Sku], error)
	GetSku(ctx context.Context, productID, skuID string, opts SkuOptions) (*Sku, error)
	ListAvailabilities(ctx context.Context, productID, skuID string, opts AvailabilityListOptions) (*ResourceCollection[Availability], error)
}

// CustomerProductsClient reads the catalog as seen by one customer. The
// Country field of the options is not sent; the customer's country applies.
type CustomerProductsClient interface {
	List(ctx context.Context, customerID string, opts ProductListOptions) (*ResourceCollection[Product], error)
	Get(ctx context.Context, customerID, productID string, opts ProductOptions) (*Product, error)
	ListSkus(ctx context.Context, customerID, productID string, opts SkuListOptions) (*ResourceCollection[Sku], error)
	GetSku(ctx context.Context, customerID, productID, skuID string, opts SkuOptions) (*Sku, error)
	ListAvailabilities(ctx context.Context, customerID, productID, skuID string, opts AvailabilityListOptions) (*ResourceCollection[Availability], error)
}

// AgreementDocumentOptions selects the rendition of an agreement document.
type AgreementDocumentOptions struct {
	Country  string
	Language string
}

// AgreementsClient manages agreement metadata and customer acceptances.
type AgreementsClient interface {
	ListDetails(ctx context.Context, agreementType string) (*ResourceCollection[AgreementMetaData], error)
	GetDocument(ctx context.Context, templateID string, opts AgreementDocumentOptions) (*AgreementDocument, error)
	ListCustomerAgreements(ctx context.Context, customerID, agreementType string) (*ResourceCollection[Agreement], error)
	CreateCustomerAgreement(ctx context.Context, customerID string, agreement *Agreement) (*Agreement, error)
}

// SignatureStatusOptions identifies the partner whose signature is checked.
// At least one field should be set.
type SignatureStatusOptions struct {
	MpnID    string
	TenantID string
}

// ComplianceClient reads partner compliance state.
type ComplianceClient interface {
	GetAgreementSignatureStatus(ctx context.Context, opts SignatureStatusOptions) (*AgreementSignatureStatus, error)
}

// RolesClient reads directory roles of the partner tenant.
type RolesClient interface {
	List(ctx context.Context) (*ResourceCollection[Role], error)
	ListMembers(ctx context.Context, roleID string) (*SeekBasedResourceCollection[RoleMember], error)
}

// ProductUpgradesClient checks and runs product upgrades.
type ProductUpgradesClient interface {
	CheckEligibility(ctx context.Context, request *ProductUpgradeRequest) (*ProductUpgradeEligibility, error)
	// Create starts an upgrade and returns the location of the new upgrade.
	Create(ctx context.Context, request *ProductUpgradeRequest) (string, error)
	CheckStatus(ctx context.Context, upgradeID string, request *ProductUpgradeRequest) (*ProductUpgradesStatus, error)
}

// UsageClient reads subscription usage records.
type UsageClient interface {
	ListResourceUsage(ctx context.Context, customerID, subscriptionID string) (*ResourceCollection[ResourceUsageRecord], error)
}

// AzureUtilizationOptions scopes a utilization query. Start and End are
// required.
type AzureUtilizationOptions struct {
	Start       time.Time
	End         time.Time
	Granularity AzureUtilizationGranularity
	ShowDetails bool
	Size        int
}

// SubscriptionsClient manages customer subscriptions.
type SubscriptionsClient interface {
	Get(ctx context.Context, customerID, subscriptionID string) (*Subscription, error)
	Update(ctx context.Context, customerID, subscriptionID string, subscription *Subscription) (*Subscription, error)
	ListAddOns(ctx context.Context, customerID, subscriptionID string) (*ResourceCollection[Subscription], error)
	ListAzureEntitlements(ctx context.Context, customerID, subscriptionID string) (*ResourceCollection[AzureEntitlement], error)
	ListAzureUtilization(ctx context.Context, customerID, subscriptionID string, opts AzureUtilizationOptions) (*ResourceCollection[AzureUtilizationRecord], error)
}

// CustomersClient reads customer scoped settings.
type CustomersClient interface {
	GetQualification(ctx context.Context, customerID string) (CustomerQualification, error)
}

// ValidationRulesClient reads country validation rules.
type ValidationRulesClient interface {
	Get(ctx context.Context, country string) (*CountryValidationRules, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a partner.Client.
//
// # Credentials and refresh
//
// Credentials are checked before every request. When they report expiry the
// RefreshCredentials callback runs with the resolved request context and must
// install a fresh token; without a callback the request fails with an
// Unauthorized PartnerError before anything is sent.
//
// # Timeouts and retries
//
// Per-request timeouts should be controlled via the context passed to client
// methods. RetryMax defaults to zero, so every operation is one HTTP attempt.
// A positive RetryMax retries connection failures only; responses with any
// status code are never retried.
type Config struct {
	// Required fields
	// Endpoint: base URL of the partner service. partnerclient.New trims a
	// trailing slash and adds "https://" if no scheme is present.
	Endpoint string
	// Credentials: supplies the bearer token.
	Credentials Credentials

	// Optional configurations
	// APIVersion: path prefix of every relative URI. Defaults to "v1".
	APIVersion string
	// RequestContext: root tracing context. A zero value gets a new
	// correlation id and the default locale.
	RequestContext RequestContext
	// RefreshCredentials: renews expired credentials before dispatch.
	RefreshCredentials RefreshCredentialsFunc
	// ApplicationName: sent as MS-PartnerCenter-Application when set.
	ApplicationName string
	// EnforceMFA: sends MS-Enforce-MFA: True on every request.
	EnforceMFA bool
	// PartnerCenterClient: value of the MS-PartnerCenter-Client header.
	PartnerCenterClient string
	// SDKVersion: value of the MS-SdkVersion header.
	SDKVersion string
	// APIs: operation path table. Defaults to DefaultAPIs().
	APIs APIs
	// HTTPTimeout: timeout of the underlying HTTP client.
	HTTPTimeout time.Duration
	// RetryMax: connection-level retries. Zero sends exactly one attempt.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug: enables HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// Interceptors: optional hooks run around every call.
	Interceptors *InterceptorChain
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
