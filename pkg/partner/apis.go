package partner

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Operation names of the built-in API table.
const (
	GetProducts                           = "GetProducts"
	GetProduct                            = "GetProduct"
	GetSkus                               = "GetSkus"
	GetSku                                = "GetSku"
	GetAvailabilities                     = "GetAvailabilities"
	GetCustomerProducts                   = "GetCustomerProducts"
	GetCustomerProduct                    = "GetCustomerProduct"
	GetCustomerSkus                       = "GetCustomerSkus"
	GetCustomerSku                        = "GetCustomerSku"
	GetCustomerAvailabilities             = "GetCustomerAvailabilities"
	GetAgreementsDetails                  = "GetAgreementsDetails"
	GetAgreementDocument                  = "GetAgreementDocument"
	GetCustomerAgreements                 = "GetCustomerAgreements"
	CreateCustomerAgreement               = "CreateCustomerAgreement"
	GetAgreementSignatureStatus           = "GetAgreementSignatureStatus"
	GetPartnerRoles                       = "GetPartnerRoles"
	GetPartnerRoleMembers                 = "GetPartnerRoleMembers"
	GetProductUpgradeEligibility          = "GetProductUpgradeEligibility"
	UpgradeProduct                        = "UpgradeProduct"
	GetProductUpgradeStatus               = "GetProductUpgradeStatus"
	GetSubscriptionUsageRecordsByResource = "GetSubscriptionUsageRecordsByResource"
	GetSubscription                       = "GetSubscription"
	UpdateSubscription                    = "UpdateSubscription"
	GetSubscriptionAddOns                 = "GetSubscriptionAddOns"
	GetAzureEntitlements                  = "GetAzureEntitlements"
	GetAzureUtilizationRecords            = "GetAzureUtilizationRecords"
	GetCustomerQualification              = "GetCustomerQualification"
	GetCountryValidationRules             = "GetCountryValidationRules"
)

// Query parameter keys used by the built-in table.
const (
	ParamCountry          = "Country"
	ParamTargetView       = "TargetView"
	ParamTargetSegment    = "TargetSegment"
	ParamReservationScope = "ReservationScope"
	ParamAgreementType    = "AgreementType"
	ParamLanguage         = "Language"
	ParamMpnID            = "MpnId"
	ParamTenantID         = "TenantId"
	ParamStartTime        = "StartTime"
	ParamEndTime          = "EndTime"
	ParamGranularity      = "Granularity"
	ParamShowDetails      = "ShowResourceDetails"
	ParamSize             = "Size"
)

// API is one configured operation: a relative path template with {0}
// style placeholders plus the wire names of its query parameters.
type API struct {
	Path       string            `yaml:"path"`
	Parameters map[string]string `yaml:"parameters,omitempty"`
}

// Format fills the placeholders of the path with path-escaped ids.
func (a API) Format(ids ...string) string {
	path := a.Path
	for i, id := range ids {
		path = strings.ReplaceAll(path, "{"+strconv.Itoa(i)+"}", url.PathEscape(id))
	}

	return path
}

// Param returns the wire name of a parameter key, or the key itself.
func (a API) Param(key string) string {
	if name, ok := a.Parameters[key]; ok && name != "" {
		return name
	}

	return key
}

// APIs maps operation names to their configured paths.
type APIs map[string]API

// Lookup returns the API for an operation.
func (a APIs) Lookup(name string) (API, error) {
	api, ok := a[name]
	if !ok {
		return API{}, fmt.Errorf("%w: %s", ErrUnknownAPI, name)
	}

	return api, nil
}

// Clone returns an independent copy of the table.
func (a APIs) Clone() APIs {
	clone := make(APIs, len(a))
	for name, api := range a {
		params := make(map[string]string, len(api.Parameters))
		for key, value := range api.Parameters {
			params[key] = value
		}

		clone[name] = API{Path: api.Path, Parameters: params}
	}

	return clone
}

// DefaultAPIs returns the built-in operation table.
func DefaultAPIs() APIs {
	catalog := map[string]string{
		ParamCountry:          "country",
		ParamTargetSegment:    "targetSegment",
		ParamReservationScope: "reservationScope",
	}

	withTargetView := map[string]string{
		ParamCountry:          "country",
		ParamTargetView:       "targetView",
		ParamTargetSegment:    "targetSegment",
		ParamReservationScope: "reservationScope",
	}

	agreementType := map[string]string{ParamAgreementType: "agreementType"}

	utilization := map[string]string{
		ParamStartTime:   "start_time",
		ParamEndTime:     "end_time",
		ParamGranularity: "granularity",
		ParamShowDetails: "show_resource_details",
		ParamSize:        "size",
	}

	return APIs{
		GetProducts:                           {Path: "products", Parameters: withTargetView},
		GetProduct:                            {Path: "products/{0}", Parameters: catalog},
		GetSkus:                               {Path: "products/{0}/skus", Parameters: catalog},
		GetSku:                                {Path: "products/{0}/skus/{1}", Parameters: catalog},
		GetAvailabilities:                     {Path: "products/{0}/skus/{1}/availabilities", Parameters: catalog},
		GetCustomerProducts:                   {Path: "customers/{0}/products", Parameters: withTargetView},
		GetCustomerProduct:                    {Path: "customers/{0}/products/{1}", Parameters: catalog},
		GetCustomerSkus:                       {Path: "customers/{0}/products/{1}/skus", Parameters: catalog},
		GetCustomerSku:                        {Path: "customers/{0}/products/{1}/skus/{2}", Parameters: catalog},
		GetCustomerAvailabilities:             {Path: "customers/{0}/products/{1}/skus/{2}/availabilities", Parameters: catalog},
		GetAgreementsDetails:                  {Path: "agreements", Parameters: agreementType},
		GetAgreementDocument:                  {Path: "agreements/{0}/document", Parameters: map[string]string{ParamCountry: "country", ParamLanguage: "language"}},
		GetCustomerAgreements:                 {Path: "customers/{0}/agreements", Parameters: agreementType},
		CreateCustomerAgreement:               {Path: "customers/{0}/agreements"},
		GetAgreementSignatureStatus:           {Path: "compliance/csp/agreementstatus", Parameters: map[string]string{ParamMpnID: "mpnId", ParamTenantID: "tenantId"}},
		GetPartnerRoles:                       {Path: "roles"},
		GetPartnerRoleMembers:                 {Path: "roles/{0}/usermembers"},
		GetProductUpgradeEligibility:          {Path: "productUpgrades/eligibility"},
		UpgradeProduct:                        {Path: "productUpgrades"},
		GetProductUpgradeStatus:               {Path: "productUpgrades/{0}/status"},
		GetSubscriptionUsageRecordsByResource: {Path: "customers/{0}/subscriptions/{1}/usagerecords/resources"},
		GetSubscription:                       {Path: "customers/{0}/subscriptions/{1}"},
		UpdateSubscription:                    {Path: "customers/{0}/subscriptions/{1}"},
		GetSubscriptionAddOns:                 {Path: "customers/{0}/subscriptions/{1}/addons"},
		GetAzureEntitlements:                  {Path: "customers/{0}/subscriptions/{1}/azureEntitlements"},
		GetAzureUtilizationRecords:            {Path: "customers/{0}/subscriptions/{1}/utilizations/azure", Parameters: utilization},
		GetCustomerQualification:              {Path: "customers/{0}/qualification"},
		GetCountryValidationRules:             {Path: "countryvalidationrules/{0}"},
	}.Clone()
}

// LoadAPIs overlays a YAML document on the built-in table. Entries in the
// document replace the built-in entry of the same name; a missing path
// keeps the built-in path.
func LoadAPIs(r io.Reader) (APIs, error) {
	var overlay APIs

	err := yaml.NewDecoder(r).Decode(&overlay)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing api table: %w", err)
	}

	apis := DefaultAPIs()

	for name, api := range overlay {
		base, ok := apis[name]
		if ok && api.Path == "" {
			api.Path = base.Path
		}

		if ok && api.Parameters == nil {
			api.Parameters = base.Parameters
		}

		apis[name] = api
	}

	return apis, nil
}
