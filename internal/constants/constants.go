package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Service defaults.
const (
	// DefaultEndpoint is the public partner service endpoint.
	DefaultEndpoint = "https://api.partnercenter.microsoft.com"

	// DefaultAPIVersion is the path prefix of every relative URI.
	DefaultAPIVersion = "v1"

	// DefaultPartnerCenterClient is the value of the client identification header.
	DefaultPartnerCenterClient = "Partner Center Go SDK"

	// SDKVersion is sent with every request and printed by the CLI.
	SDKVersion = "1.0.0"

	// DefaultTokenScope is the OAuth2 scope of the partner service.
	DefaultTokenScope = "https://api.partnercenter.microsoft.com/.default"
)

// Request headers.
const (
	// HeaderApplicationName carries the configured application name.
	HeaderApplicationName = "MS-PartnerCenter-Application"

	// HeaderClient identifies the SDK.
	HeaderClient = "MS-PartnerCenter-Client"

	// HeaderCorrelationID groups the requests of one logical operation.
	HeaderCorrelationID = "MS-CorrelationId"

	// HeaderEnforceMFA asks the service to require multi-factor authentication.
	HeaderEnforceMFA = "MS-Enforce-MFA"

	// HeaderLocale carries the request locale.
	HeaderLocale = "X-Locale"

	// HeaderRequestID identifies one request.
	HeaderRequestID = "MS-RequestId"

	// HeaderSDKVersion carries the SDK version.
	HeaderSDKVersion = "MS-SdkVersion"

	// HeaderLocation carries the location of a created resource.
	HeaderLocation = "Location"

	// MediaTypeJSON is the only media type the service speaks.
	MediaTypeJSON = "application/json"

	// AuthorizationScheme prefixes the bearer token.
	AuthorizationScheme = "Bearer"

	// EnforceMFAValue is the value sent with HeaderEnforceMFA.
	EnforceMFAValue = "True"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry and concurrency limits.
const (
	// DefaultRetryWaitMin is the minimum wait time between connection retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between connection retries.
	DefaultRetryWaitMax = 10 * time.Second

	// DefaultConcurrencyLimit limits concurrent operations.
	DefaultConcurrencyLimit = 3
)

// Token handling.
const (
	// TokenExpirationBuffer is the buffer time before token expiration.
	TokenExpirationBuffer = 30 * time.Second

	// TokenPartsCount is the expected number of parts in a JWT token.
	TokenPartsCount = 3
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// DescriptionDisplayLength is the default length for displaying descriptions.
	DescriptionDisplayLength = 60

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// Tracing.
const (
	// DefaultTraceSubject is the NATS subject trace events are published to.
	DefaultTraceSubject = "partnercenter.requests"
)

// Command argument counts.
const (
	// ThreeArgumentsRequired indicates commands requiring exactly 3 arguments.
	ThreeArgumentsRequired = 3

	// TwoArgumentsRequired indicates commands requiring exactly 2 arguments.
	TwoArgumentsRequired = 2
)
