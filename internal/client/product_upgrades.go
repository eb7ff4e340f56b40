package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/partnercenter/internal/http"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// ProductUpgradesClient implements partner.ProductUpgradesClient.
type ProductUpgradesClient struct {
	httpClient *http.Client
	apis       partner.APIs
}

// NewProductUpgradesClient creates a new product upgrades client.
func NewProductUpgradesClient(httpClient *http.Client, apis partner.APIs) *ProductUpgradesClient {
	return &ProductUpgradesClient{
		httpClient: httpClient,
		apis:       apis,
	}
}

// CheckEligibility implements partner.ProductUpgradesClient.CheckEligibility.
func (c *ProductUpgradesClient) CheckEligibility(ctx context.Context, request *partner.ProductUpgradeRequest) (*partner.ProductUpgradeEligibility, error) {
	if request == nil {
		return nil, partner.ErrNilRequest
	}

	_, path, err := operationPath(c.apis, partner.GetProductUpgradeEligibility)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("checking upgrade eligibility: %w", err)
	}

	eligibility, err := http.DecodeInto[partner.ProductUpgradeEligibility](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing upgrade eligibility: %w", err)
	}

	return &eligibility, nil
}

// Create implements partner.ProductUpgradesClient.Create. The location is
// empty when the service does not return one.
func (c *ProductUpgradesClient) Create(ctx context.Context, request *partner.ProductUpgradeRequest) (string, error) {
	if request == nil {
		return "", partner.ErrNilRequest
	}

	_, path, err := operationPath(c.apis, partner.UpgradeProduct)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return "", fmt.Errorf("creating product upgrade: %w", err)
	}

	return resp.Location(), nil
}

// CheckStatus implements partner.ProductUpgradesClient.CheckStatus.
func (c *ProductUpgradesClient) CheckStatus(ctx context.Context, upgradeID string, request *partner.ProductUpgradeRequest) (*partner.ProductUpgradesStatus, error) {
	err := requireIDs("upgradeID", upgradeID)
	if err != nil {
		return nil, err
	}

	if request == nil {
		return nil, partner.ErrNilRequest
	}

	_, path, err := operationPath(c.apis, partner.GetProductUpgradeStatus, upgradeID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("checking upgrade status: %w", err)
	}

	status, err := http.DecodeInto[partner.ProductUpgradesStatus](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing upgrade status: %w", err)
	}

	return &status, nil
}
