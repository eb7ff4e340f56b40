package partner

// BillingCycleType is how often a purchase is billed.
type BillingCycleType int

// Billing cycles.
const (
	BillingCycleUnknown BillingCycleType = iota
	BillingCycleMonthly
	BillingCycleAnnual
	BillingCycleNone
	BillingCycleOneTime
	BillingCycleTriennial
)

var billingCycleCodec = NewEnumCodec[BillingCycleType](map[BillingCycleType]string{
	BillingCycleUnknown:   "Unknown",
	BillingCycleMonthly:   "Monthly",
	BillingCycleAnnual:    "Annual",
	BillingCycleNone:      "None",
	BillingCycleOneTime:   "OneTime",
	BillingCycleTriennial: "Triennial",
})

func (b BillingCycleType) String() string { return billingCycleCodec.Name(b) }

// MarshalJSON implements json.Marshaler.
func (b BillingCycleType) MarshalJSON() ([]byte, error) { return billingCycleCodec.Marshal(b) }

// UnmarshalJSON implements json.Unmarshaler.
func (b *BillingCycleType) UnmarshalJSON(data []byte) error {
	return billingCycleCodec.Unmarshal(data, b)
}

// MarshalYAML implements yaml.Marshaler.
func (b BillingCycleType) MarshalYAML() (interface{}, error) { return b.String(), nil }

// ParseBillingCycleType parses a billing cycle name.
func ParseBillingCycleType(raw string) (BillingCycleType, error) {
	return billingCycleCodec.Parse(raw)
}

// AzureUtilizationGranularity is the aggregation interval of utilization records.
type AzureUtilizationGranularity int

// Utilization granularities.
const (
	GranularityDaily AzureUtilizationGranularity = iota
	GranularityHourly
)

var granularityCodec = NewEnumCodec[AzureUtilizationGranularity](map[AzureUtilizationGranularity]string{
	GranularityDaily:  "Daily",
	GranularityHourly: "Hourly",
})

func (g AzureUtilizationGranularity) String() string { return granularityCodec.Name(g) }

// MarshalJSON implements json.Marshaler.
func (g AzureUtilizationGranularity) MarshalJSON() ([]byte, error) {
	return granularityCodec.Marshal(g)
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *AzureUtilizationGranularity) UnmarshalJSON(data []byte) error {
	return granularityCodec.Unmarshal(data, g)
}

// MarshalYAML implements yaml.Marshaler.
func (g AzureUtilizationGranularity) MarshalYAML() (interface{}, error) { return g.String(), nil }

// ParseAzureUtilizationGranularity parses a granularity name.
func ParseAzureUtilizationGranularity(raw string) (AzureUtilizationGranularity, error) {
	return granularityCodec.Parse(raw)
}

// CustomerQualification is the special segment a customer is qualified for.
type CustomerQualification int

// Customer qualifications.
const (
	QualificationNone CustomerQualification = iota
	QualificationEducation
	QualificationGovernmentCommunityCloud
	QualificationStateOwnedEntity
)

var qualificationCodec = NewEnumCodec[CustomerQualification](map[CustomerQualification]string{
	QualificationNone:                     "None",
	QualificationEducation:                "Education",
	QualificationGovernmentCommunityCloud: "GovernmentCommunityCloud",
	QualificationStateOwnedEntity:         "StateOwnedEntity",
})

func (q CustomerQualification) String() string { return qualificationCodec.Name(q) }

// MarshalJSON implements json.Marshaler.
func (q CustomerQualification) MarshalJSON() ([]byte, error) { return qualificationCodec.Marshal(q) }

// UnmarshalJSON implements json.Unmarshaler.
func (q *CustomerQualification) UnmarshalJSON(data []byte) error {
	return qualificationCodec.Unmarshal(data, q)
}

// MarshalYAML implements yaml.Marshaler.
func (q CustomerQualification) MarshalYAML() (interface{}, error) { return q.String(), nil }

// ProductUpgradeStatus is the state of an upgrade or one of its line items.
type ProductUpgradeStatus int

// Upgrade states.
const (
	UpgradeStatusUnknown ProductUpgradeStatus = iota
	UpgradeStatusInProgress
	UpgradeStatusSucceeded
	UpgradeStatusFailed
)

var upgradeStatusCodec = NewEnumCodec[ProductUpgradeStatus](map[ProductUpgradeStatus]string{
	UpgradeStatusUnknown:    "Unknown",
	UpgradeStatusInProgress: "InProgress",
	UpgradeStatusSucceeded:  "Succeeded",
	UpgradeStatusFailed:     "Failed",
})

func (s ProductUpgradeStatus) String() string { return upgradeStatusCodec.Name(s) }

// MarshalJSON implements json.Marshaler.
func (s ProductUpgradeStatus) MarshalJSON() ([]byte, error) { return upgradeStatusCodec.Marshal(s) }

// UnmarshalJSON implements json.Unmarshaler.
func (s *ProductUpgradeStatus) UnmarshalJSON(data []byte) error {
	return upgradeStatusCodec.Unmarshal(data, s)
}

// MarshalYAML implements yaml.Marshaler.
func (s ProductUpgradeStatus) MarshalYAML() (interface{}, error) { return s.String(), nil }
