package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/partnercenter/internal/http"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// CustomersClient implements partner.CustomersClient.
type CustomersClient struct {
	httpClient *http.Client
	apis       partner.APIs
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(httpClient *http.Client, apis partner.APIs) *CustomersClient {
	return &CustomersClient{
		httpClient: httpClient,
		apis:       apis,
	}
}

// GetQualification implements partner.CustomersClient.GetQualification. The
// service answers with the bare qualification name.
func (c *CustomersClient) GetQualification(ctx context.Context, customerID string) (partner.CustomerQualification, error) {
	err := requireIDs("customerID", customerID)
	if err != nil {
		return partner.QualificationNone, err
	}

	_, path, err := operationPath(c.apis, partner.GetCustomerQualification, customerID)
	if err != nil {
		return partner.QualificationNone, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return partner.QualificationNone, fmt.Errorf("getting customer qualification: %w", err)
	}

	qualification, err := http.DecodeInto[partner.CustomerQualification](resp, nil)
	if err != nil {
		return partner.QualificationNone, fmt.Errorf("parsing customer qualification: %w", err)
	}

	return qualification, nil
}
