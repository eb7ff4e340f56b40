package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/partnercenter/internal/http"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// ComplianceClient implements partner.ComplianceClient.
type ComplianceClient struct {
	httpClient *http.Client
	apis       partner.APIs
}

// NewComplianceClient creates a new compliance client.
func NewComplianceClient(httpClient *http.Client, apis partner.APIs) *ComplianceClient {
	return &ComplianceClient{
		httpClient: httpClient,
		apis:       apis,
	}
}

// GetAgreementSignatureStatus implements partner.ComplianceClient.GetAgreementSignatureStatus.
func (c *ComplianceClient) GetAgreementSignatureStatus(ctx context.Context, opts partner.SignatureStatusOptions) (*partner.AgreementSignatureStatus, error) {
	if opts.MpnID == "" && opts.TenantID == "" {
		return nil, partner.MissingIdentifier("mpnID or tenantID")
	}

	api, path, err := operationPath(c.apis, partner.GetAgreementSignatureStatus)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	setParam(query, api, partner.ParamMpnID, opts.MpnID)
	setParam(query, api, partner.ParamTenantID, opts.TenantID)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting agreement signature status: %w", err)
	}

	status, err := http.DecodeInto[partner.AgreementSignatureStatus](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing agreement signature status: %w", err)
	}

	return &status, nil
}
