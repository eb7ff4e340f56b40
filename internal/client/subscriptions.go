package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/partnercenter/internal/constants"
	"github.com/fivetwenty-io/partnercenter/internal/http"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// SubscriptionsClient implements partner.SubscriptionsClient.
type SubscriptionsClient struct {
	httpClient *http.Client
	apis       partner.APIs
}

// NewSubscriptionsClient creates a new subscriptions client.
func NewSubscriptionsClient(httpClient *http.Client, apis partner.APIs) *SubscriptionsClient {
	return &SubscriptionsClient{
		httpClient: httpClient,
		apis:       apis,
	}
}

// Get implements partner.SubscriptionsClient.Get.
func (c *SubscriptionsClient) Get(ctx context.Context, customerID, subscriptionID string) (*partner.Subscription, error) {
	err := requireIDs("customerID", customerID, "subscriptionID", subscriptionID)
	if err != nil {
		return nil, err
	}

	_, path, err := operationPath(c.apis, partner.GetSubscription, customerID, subscriptionID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting subscription: %w", err)
	}

	subscription, err := http.DecodeInto[partner.Subscription](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing subscription: %w", err)
	}

	return &subscription, nil
}

// Update implements partner.SubscriptionsClient.Update.
func (c *SubscriptionsClient) Update(ctx context.Context, customerID, subscriptionID string, subscription *partner.Subscription) (*partner.Subscription, error) {
	err := requireIDs("customerID", customerID, "subscriptionID", subscriptionID)
	if err != nil {
		return nil, err
	}

	if subscription == nil {
		return nil, partner.ErrNilRequest
	}

	_, path, err := operationPath(c.apis, partner.UpdateSubscription, customerID, subscriptionID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, path, subscription)
	if err != nil {
		return nil, fmt.Errorf("updating subscription: %w", err)
	}

	updated, err := http.DecodeInto[partner.Subscription](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing subscription: %w", err)
	}

	return &updated, nil
}

// ListAddOns implements partner.SubscriptionsClient.ListAddOns.
func (c *SubscriptionsClient) ListAddOns(ctx context.Context, customerID, subscriptionID string) (*partner.ResourceCollection[partner.Subscription], error) {
	err := requireIDs("customerID", customerID, "subscriptionID", subscriptionID)
	if err != nil {
		return nil, err
	}

	_, path, err := operationPath(c.apis, partner.GetSubscriptionAddOns, customerID, subscriptionID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing subscription add-ons: %w", err)
	}

	addOns, err := http.DecodeInto[partner.ResourceCollection[partner.Subscription]](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing subscription add-ons: %w", err)
	}

	return &addOns, nil
}

// ListAzureEntitlements implements partner.SubscriptionsClient.ListAzureEntitlements.
func (c *SubscriptionsClient) ListAzureEntitlements(ctx context.Context, customerID, subscriptionID string) (*partner.ResourceCollection[partner.AzureEntitlement], error) {
	err := requireIDs("customerID", customerID, "subscriptionID", subscriptionID)
	if err != nil {
		return nil, err
	}

	_, path, err := operationPath(c.apis, partner.GetAzureEntitlements, customerID, subscriptionID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing azure entitlements: %w", err)
	}

	entitlements, err := http.DecodeInto[partner.ResourceCollection[partner.AzureEntitlement]](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing azure entitlements: %w", err)
	}

	return &entitlements, nil
}

// ListAzureUtilization implements partner.SubscriptionsClient.ListAzureUtilization.
func (c *SubscriptionsClient) ListAzureUtilization(ctx context.Context, customerID, subscriptionID string, opts partner.AzureUtilizationOptions) (*partner.ResourceCollection[partner.AzureUtilizationRecord], error) {
	err := requireIDs("customerID", customerID, "subscriptionID", subscriptionID)
	if err != nil {
		return nil, err
	}

	if opts.Start.IsZero() || !opts.End.After(opts.Start) {
		return nil, constants.ErrInvalidTimeRange
	}

	api, path, err := operationPath(c.apis, partner.GetAzureUtilizationRecords, customerID, subscriptionID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	setParam(query, api, partner.ParamStartTime, opts.Start.UTC().Format(time.RFC3339))
	setParam(query, api, partner.ParamEndTime, opts.End.UTC().Format(time.RFC3339))
	setParam(query, api, partner.ParamGranularity, strings.ToLower(opts.Granularity.String()))
	setParam(query, api, partner.ParamShowDetails, strconv.FormatBool(opts.ShowDetails))

	if opts.Size > 0 {
		setParam(query, api, partner.ParamSize, strconv.Itoa(opts.Size))
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing azure utilization records: %w", err)
	}

	records, err := http.DecodeInto[partner.ResourceCollection[partner.AzureUtilizationRecord]](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing azure utilization records: %w", err)
	}

	return &records, nil
}
