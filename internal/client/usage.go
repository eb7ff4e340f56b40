package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/partnercenter/internal/http"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// UsageClient implements partner.UsageClient.
type UsageClient struct {
	httpClient *http.Client
	apis       partner.APIs
}

// NewUsageClient creates a new usage client.
func NewUsageClient(httpClient *http.Client, apis partner.APIs) *UsageClient {
	return &UsageClient{
		httpClient: httpClient,
		apis:       apis,
	}
}

// ListResourceUsage implements partner.UsageClient.ListResourceUsage.
func (c *UsageClient) ListResourceUsage(ctx context.Context, customerID, subscriptionID string) (*partner.ResourceCollection[partner.ResourceUsageRecord], error) {
	err := requireIDs("customerID", customerID, "subscriptionID", subscriptionID)
	if err != nil {
		return nil, err
	}

	_, path, err := operationPath(c.apis, partner.GetSubscriptionUsageRecordsByResource, customerID, subscriptionID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing resource usage records: %w", err)
	}

	records, err := http.DecodeInto[partner.ResourceCollection[partner.ResourceUsageRecord]](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing resource usage records: %w", err)
	}

	return &records, nil
}
