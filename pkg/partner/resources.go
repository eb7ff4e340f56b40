package partner

import "time"

// Resource carries the attributes every partner resource returns.
type Resource struct {
	Attributes *ResourceAttributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// LinkedResource is a resource that also returns navigation links.
type LinkedResource struct {
	Resource

	Links *ResourceLinks `json:"links,omitempty" yaml:"links,omitempty"`
}

// Product represents a catalog product.
type Product struct {
	LinkedResource

	ID            string    `json:"id"                      yaml:"id"`
	Title         string    `json:"title"                   yaml:"title"`
	Description   string    `json:"description,omitempty"   yaml:"description,omitempty"`
	ProductType   *ItemType `json:"productType,omitempty"   yaml:"product_type,omitempty"`
	IsMicrosoft   bool      `json:"isMicrosoftProduct"      yaml:"is_microsoft_product"`
	PublisherName string    `json:"publisherName,omitempty" yaml:"publisher_name,omitempty"`
}

// ItemType classifies a product or sku.
type ItemType struct {
	ID          string    `json:"id"                yaml:"id"`
	DisplayName string    `json:"displayName"       yaml:"display_name"`
	SubType     *ItemType `json:"subType,omitempty" yaml:"sub_type,omitempty"`
}

// Sku represents a purchasable variant of a product.
type Sku struct {
	LinkedResource

	ID                     string             `json:"id"                               yaml:"id"`
	ProductID              string             `json:"productId"                        yaml:"product_id"`
	Title                  string             `json:"title"                            yaml:"title"`
	Description            string             `json:"description,omitempty"            yaml:"description,omitempty"`
	MinimumQuantity        int                `json:"minimumQuantity,omitempty"        yaml:"minimum_quantity,omitempty"`
	MaximumQuantity        int                `json:"maximumQuantity,omitempty"        yaml:"maximum_quantity,omitempty"`
	IsTrial                bool               `json:"isTrial"                          yaml:"is_trial"`
	SupportedBillingCycles []BillingCycleType `json:"supportedBillingCycles,omitempty" yaml:"supported_billing_cycles,omitempty"`
	PurchasePrerequisites  []string           `json:"purchasePrerequisites,omitempty"  yaml:"purchase_prerequisites,omitempty"`
	InventoryVariables     []string           `json:"inventoryVariables,omitempty"     yaml:"inventory_variables,omitempty"`
	ProvisioningVariables  []string           `json:"provisioningVariables,omitempty"  yaml:"provisioning_variables,omitempty"`
	ActionFilters          []string           `json:"actionFilters,omitempty"          yaml:"action_filters,omitempty"`
	DynamicAttributes      map[string]any     `json:"dynamicAttributes,omitempty"      yaml:"dynamic_attributes,omitempty"`
	IsAutoRenewable        bool               `json:"isAutoRenewable"                  yaml:"is_auto_renewable"`
	ConsumptionType        string             `json:"consumptionType,omitempty"        yaml:"consumption_type,omitempty"`
	BillingFrequencies     []string           `json:"billingFrequencies,omitempty"     yaml:"billing_frequencies,omitempty"`
}

// Availability is a configuration of a sku that can be purchased.
type Availability struct {
	LinkedResource

	ID                      string    `json:"id"                                yaml:"id"`
	ProductID               string    `json:"productId"                         yaml:"product_id"`
	SkuID                   string    `json:"skuId"                             yaml:"sku_id"`
	CatalogItemID           string    `json:"catalogItemId"                     yaml:"catalog_item_id"`
	DefaultCurrency         *Currency `json:"defaultCurrency,omitempty"         yaml:"default_currency,omitempty"`
	Segment                 string    `json:"segment,omitempty"                 yaml:"segment,omitempty"`
	Country                 string    `json:"country,omitempty"                 yaml:"country,omitempty"`
	IsPurchasable           bool      `json:"isPurchasable"                     yaml:"is_purchasable"`
	IsRenewable             bool      `json:"isRenewable"                       yaml:"is_renewable"`
	Terms                   []Term    `json:"terms,omitempty"                   yaml:"terms,omitempty"`
	IncludedQuantityOptions []int     `json:"includedQuantityOptions,omitempty" yaml:"included_quantity_options,omitempty"`
}

// Currency describes the currency an availability is priced in.
type Currency struct {
	Code   string `json:"code"             yaml:"code"`
	Symbol string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
}

// Term is a purchasable duration of an availability.
type Term struct {
	Duration             string               `json:"duration"                       yaml:"duration"`
	Description          string               `json:"description,omitempty"          yaml:"description,omitempty"`
	BillingCycle         BillingCycleType     `json:"billingCycle,omitempty"         yaml:"billing_cycle,omitempty"`
	CancellationPolicies []CancellationPolicy `json:"cancellationPolicies,omitempty" yaml:"cancellation_policies,omitempty"`
}

// CancellationPolicy describes the refund rules of a term.
type CancellationPolicy struct {
	RefundOptions []RefundOption `json:"refundOptions,omitempty" yaml:"refund_options,omitempty"`
}

// RefundOption is one refund window of a cancellation policy.
type RefundOption struct {
	Type         string `json:"type"         yaml:"type"`
	ExpiresAfter string `json:"expiresAfter" yaml:"expires_after"`
	SequenceID   int    `json:"sequenceId"   yaml:"sequence_id"`
}

// AgreementMetaData describes an agreement that can be accepted.
type AgreementMetaData struct {
	TemplateID    string `json:"templateId"              yaml:"template_id"`
	AgreementType string `json:"agreementType"           yaml:"agreement_type"`
	AgreementLink string `json:"agreementLink,omitempty" yaml:"agreement_link,omitempty"`
	VersionRank   int    `json:"versionRank"             yaml:"version_rank"`
}

// Agreement records a customer's acceptance of an agreement.
type Agreement struct {
	Resource

	TemplateID     string     `json:"templateId"               yaml:"template_id"`
	Type           string     `json:"type,omitempty"           yaml:"type,omitempty"`
	AgreementLink  string     `json:"agreementLink,omitempty"  yaml:"agreement_link,omitempty"`
	DateAgreed     *time.Time `json:"dateAgreed,omitempty"     yaml:"date_agreed,omitempty"`
	UserID         string     `json:"userId,omitempty"         yaml:"user_id,omitempty"`
	PrimaryContact *Contact   `json:"primaryContact,omitempty" yaml:"primary_contact,omitempty"`
}

// Contact is the person who accepted an agreement.
type Contact struct {
	FirstName   string `json:"firstName"             yaml:"first_name"`
	LastName    string `json:"lastName"              yaml:"last_name"`
	Email       string `json:"email"                 yaml:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty" yaml:"phone_number,omitempty"`
}

// AgreementDocument locates the rendered text of an agreement template.
type AgreementDocument struct {
	Country     string `json:"country,omitempty"     yaml:"country,omitempty"`
	DisplayURI  string `json:"displayUri,omitempty"  yaml:"display_uri,omitempty"`
	DownloadURI string `json:"downloadUri,omitempty" yaml:"download_uri,omitempty"`
	Language    string `json:"language,omitempty"    yaml:"language,omitempty"`
}

// AgreementSignatureStatus reports whether the partner agreement is signed.
type AgreementSignatureStatus struct {
	IsAgreementSigned bool `json:"isAgreementSigned" yaml:"is_agreement_signed"`
}

// Role is a directory role of the partner tenant.
type Role struct {
	Resource

	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// RoleMember is a user assigned to a directory role.
type RoleMember struct {
	Resource

	AccountID   string `json:"accountId,omitempty"   yaml:"account_id,omitempty"`
	DisplayName string `json:"displayName,omitempty" yaml:"display_name,omitempty"`
	ID          string `json:"id"                    yaml:"id"`
	RoleID      string `json:"roleId,omitempty"      yaml:"role_id,omitempty"`
}

// ProductUpgradeRequest identifies the customer and product family to upgrade.
type ProductUpgradeRequest struct {
	Resource

	CustomerID    string `json:"customerId"    yaml:"customer_id"`
	ProductFamily string `json:"productFamily" yaml:"product_family"`
}

// ProductUpgradeEligibility reports whether an upgrade is possible.
type ProductUpgradeEligibility struct {
	Resource

	CustomerID    string                `json:"customerId"          yaml:"customer_id"`
	IsEligible    bool                  `json:"isEligible"          yaml:"is_eligible"`
	ProductFamily string                `json:"productFamily"       yaml:"product_family"`
	Reason        string                `json:"reason,omitempty"    yaml:"reason,omitempty"`
	UpgradeID     string                `json:"upgradeId,omitempty" yaml:"upgrade_id,omitempty"`
	Details       *ProductUpgradeDetail `json:"details,omitempty"   yaml:"details,omitempty"`
}

// ProductUpgradeDetail names a product involved in an upgrade.
type ProductUpgradeDetail struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// ProductUpgradeErrorDetails describes why an upgrade step failed.
type ProductUpgradeErrorDetails struct {
	Code        string `json:"code,omitempty"        yaml:"code,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ProductUpgradeLineItem is the outcome of one product within an upgrade.
type ProductUpgradeLineItem struct {
	ErrorDetails  *ProductUpgradeErrorDetails `json:"errorDetails,omitempty"  yaml:"error_details,omitempty"`
	SourceProduct *ProductUpgradeDetail       `json:"sourceProduct,omitempty" yaml:"source_product,omitempty"`
	Status        ProductUpgradeStatus        `json:"status"                  yaml:"status"`
	TargetProduct *ProductUpgradeDetail       `json:"targetProduct,omitempty" yaml:"target_product,omitempty"`
	UpgradedDate  *time.Time                  `json:"upgradedDate,omitempty"  yaml:"upgraded_date,omitempty"`
}

// ProductUpgradesStatus is the overall status of an upgrade.
type ProductUpgradesStatus struct {
	Resource

	ErrorDetails  *ProductUpgradeErrorDetails `json:"errorDetails,omitempty" yaml:"error_details,omitempty"`
	ID            string                      `json:"id"                     yaml:"id"`
	LineItems     []ProductUpgradeLineItem    `json:"lineItems,omitempty"    yaml:"line_items,omitempty"`
	ProductFamily string                      `json:"productFamily"          yaml:"product_family"`
	Status        ProductUpgradeStatus        `json:"status"                 yaml:"status"`
}

// ResourceUsageRecord is the usage of one Azure resource in a subscription.
type ResourceUsageRecord struct {
	Resource

	EntitlementID     string     `json:"entitlementId,omitempty"     yaml:"entitlement_id,omitempty"`
	EntitlementName   string     `json:"entitlementName,omitempty"   yaml:"entitlement_name,omitempty"`
	ResourceGroupName string     `json:"resourceGroupName,omitempty" yaml:"resource_group_name,omitempty"`
	ResourceID        string     `json:"resourceId,omitempty"        yaml:"resource_id,omitempty"`
	ResourceName      string     `json:"resourceName,omitempty"      yaml:"resource_name,omitempty"`
	ResourceType      string     `json:"resourceType,omitempty"      yaml:"resource_type,omitempty"`
	ResourceURI       string     `json:"resourceUri,omitempty"       yaml:"resource_uri,omitempty"`
	SubscriptionID    string     `json:"subscriptionId,omitempty"    yaml:"subscription_id,omitempty"`
	Category          string     `json:"category,omitempty"          yaml:"category,omitempty"`
	TotalCost         float64    `json:"totalCost"                   yaml:"total_cost"`
	CurrencyLocale    string     `json:"currencyLocale,omitempty"    yaml:"currency_locale,omitempty"`
	IsTaxIncluded     bool       `json:"isTaxIncluded"               yaml:"is_tax_included"`
	LastModifiedDate  *time.Time `json:"lastModifiedDate,omitempty"  yaml:"last_modified_date,omitempty"`
}

// Subscription is a customer's subscription to an offer.
type Subscription struct {
	LinkedResource

	ID                   string           `json:"id"                             yaml:"id"`
	EntitlementID        string           `json:"entitlementId,omitempty"        yaml:"entitlement_id,omitempty"`
	OfferID              string           `json:"offerId,omitempty"              yaml:"offer_id,omitempty"`
	OfferName            string           `json:"offerName,omitempty"            yaml:"offer_name,omitempty"`
	FriendlyName         string           `json:"friendlyName,omitempty"         yaml:"friendly_name,omitempty"`
	Quantity             int              `json:"quantity"                       yaml:"quantity"`
	UnitType             string           `json:"unitType,omitempty"             yaml:"unit_type,omitempty"`
	ParentSubscriptionID string           `json:"parentSubscriptionId,omitempty" yaml:"parent_subscription_id,omitempty"`
	CreationDate         *time.Time       `json:"creationDate,omitempty"         yaml:"creation_date,omitempty"`
	EffectiveStartDate   *time.Time       `json:"effectiveStartDate,omitempty"   yaml:"effective_start_date,omitempty"`
	CommitmentEndDate    *time.Time       `json:"commitmentEndDate,omitempty"    yaml:"commitment_end_date,omitempty"`
	Status               string           `json:"status,omitempty"               yaml:"status,omitempty"`
	AutoRenewEnabled     bool             `json:"autoRenewEnabled"               yaml:"auto_renew_enabled"`
	IsTrial              bool             `json:"isTrial"                        yaml:"is_trial"`
	BillingType          string           `json:"billingType,omitempty"          yaml:"billing_type,omitempty"`
	BillingCycle         BillingCycleType `json:"billingCycle,omitempty"         yaml:"billing_cycle,omitempty"`
	TermDuration         string           `json:"termDuration,omitempty"         yaml:"term_duration,omitempty"`
	OrderID              string           `json:"orderId,omitempty"              yaml:"order_id,omitempty"`
}

// AzureEntitlement is an Azure subscription created under an Azure plan.
type AzureEntitlement struct {
	FriendlyName   string `json:"friendlyName,omitempty"   yaml:"friendly_name,omitempty"`
	ID             string `json:"id"                       yaml:"id"`
	Status         string `json:"status,omitempty"         yaml:"status,omitempty"`
	SubscriptionID string `json:"subscriptionId,omitempty" yaml:"subscription_id,omitempty"`
}

// CountryValidationRules holds the address and contact rules of a country.
type CountryValidationRules struct {
	Resource

	ISO2Code                string   `json:"iso2Code"                          yaml:"iso2_code"`
	DefaultCulture          string   `json:"defaultCulture,omitempty"          yaml:"default_culture,omitempty"`
	IsStateRequired         bool     `json:"isStateRequired"                   yaml:"is_state_required"`
	SupportedStatesList     []string `json:"supportedStatesList,omitempty"     yaml:"supported_states_list,omitempty"`
	SupportedLanguagesList  []string `json:"supportedLanguagesList,omitempty"  yaml:"supported_languages_list,omitempty"`
	SupportedCulturesList   []string `json:"supportedCulturesList,omitempty"   yaml:"supported_cultures_list,omitempty"`
	IsPostalCodeRequired    bool     `json:"isPostalCodeRequired"              yaml:"is_postal_code_required"`
	PostalCodeRegex         string   `json:"postalCodeRegex,omitempty"         yaml:"postal_code_regex,omitempty"`
	IsCityRequired          bool     `json:"isCityRequired"                    yaml:"is_city_required"`
	IsVatIDSupported        bool     `json:"isVatIdSupported"                  yaml:"is_vat_id_supported"`
	PhoneNumberRegex        string   `json:"phoneNumberRegex,omitempty"        yaml:"phone_number_regex,omitempty"`
	VatIDRegex              string   `json:"vatIdRegex,omitempty"              yaml:"vat_id_regex,omitempty"`
	CountryCallingCodesList []string `json:"countryCallingCodesList,omitempty" yaml:"country_calling_codes_list,omitempty"`
}

// AzureUtilizationRecord is the metered consumption of one resource over one
// interval.
type AzureUtilizationRecord struct {
	Attributes     *ResourceAttributes `json:"attributes,omitempty"     yaml:"attributes,omitempty"`
	UsageStartTime *time.Time          `json:"usageStartTime,omitempty" yaml:"usage_start_time,omitempty"`
	UsageEndTime   *time.Time          `json:"usageEndTime,omitempty"   yaml:"usage_end_time,omitempty"`
	Quantity       float64             `json:"quantity"                 yaml:"quantity"`
	Unit           string              `json:"unit,omitempty"           yaml:"unit,omitempty"`
	Resource       *AzureResource      `json:"resource,omitempty"       yaml:"resource,omitempty"`
	InstanceData   map[string]any      `json:"instanceData,omitempty"   yaml:"instance_data,omitempty"`
	InfoFields     map[string]any      `json:"infoFields,omitempty"     yaml:"info_fields,omitempty"`
}

// AzureResource identifies the metered resource of a utilization record.
type AzureResource struct {
	ID          string `json:"id"                    yaml:"id"`
	Name        string `json:"name,omitempty"        yaml:"name,omitempty"`
	Category    string `json:"category,omitempty"    yaml:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`
	Region      string `json:"region,omitempty"      yaml:"region,omitempty"`
}
