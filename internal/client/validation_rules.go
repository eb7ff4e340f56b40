package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/partnercenter/internal/http"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// ValidationRulesClient implements partner.ValidationRulesClient.
type ValidationRulesClient struct {
	httpClient *http.Client
	apis       partner.APIs
}

// NewValidationRulesClient creates a new country validation rules client.
func NewValidationRulesClient(httpClient *http.Client, apis partner.APIs) *ValidationRulesClient {
	return &ValidationRulesClient{
		httpClient: httpClient,
		apis:       apis,
	}
}

// Get implements partner.ValidationRulesClient.Get.
func (c *ValidationRulesClient) Get(ctx context.Context, country string) (*partner.CountryValidationRules, error) {
	err := requireIDs("country", country)
	if err != nil {
		return nil, err
	}

	_, path, err := operationPath(c.apis, partner.GetCountryValidationRules, country)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting country validation rules: %w", err)
	}

	rules, err := http.DecodeInto[partner.CountryValidationRules](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing country validation rules: %w", err)
	}

	return &rules, nil
}
