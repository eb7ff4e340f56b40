package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/partnercenter/internal/http"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// AgreementsClient implements partner.AgreementsClient.
type AgreementsClient struct {
	httpClient *http.Client
	apis       partner.APIs
}

// NewAgreementsClient creates a new agreements client.
func NewAgreementsClient(httpClient *http.Client, apis partner.APIs) *AgreementsClient {
	return &AgreementsClient{
		httpClient: httpClient,
		apis:       apis,
	}
}

// ListDetails implements partner.AgreementsClient.ListDetails. An empty
// agreementType lists every agreement type.
func (c *AgreementsClient) ListDetails(ctx context.Context, agreementType string) (*partner.ResourceCollection[partner.AgreementMetaData], error) {
	api, path, err := operationPath(c.apis, partner.GetAgreementsDetails)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	setParam(query, api, partner.ParamAgreementType, agreementType)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing agreement details: %w", err)
	}

	details, err := http.DecodeInto[partner.ResourceCollection[partner.AgreementMetaData]](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing agreement details list: %w", err)
	}

	return &details, nil
}

// GetDocument implements partner.AgreementsClient.GetDocument.
func (c *AgreementsClient) GetDocument(ctx context.Context, templateID string, opts partner.AgreementDocumentOptions) (*partner.AgreementDocument, error) {
	err := requireIDs("templateID", templateID)
	if err != nil {
		return nil, err
	}

	api, path, err := operationPath(c.apis, partner.GetAgreementDocument, templateID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	setParam(query, api, partner.ParamCountry, opts.Country)
	setParam(query, api, partner.ParamLanguage, opts.Language)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting agreement document: %w", err)
	}

	document, err := http.DecodeInto[partner.AgreementDocument](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing agreement document: %w", err)
	}

	return &document, nil
}

// ListCustomerAgreements implements partner.AgreementsClient.ListCustomerAgreements.
func (c *AgreementsClient) ListCustomerAgreements(ctx context.Context, customerID, agreementType string) (*partner.ResourceCollection[partner.Agreement], error) {
	err := requireIDs("customerID", customerID)
	if err != nil {
		return nil, err
	}

	api, path, err := operationPath(c.apis, partner.GetCustomerAgreements, customerID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	setParam(query, api, partner.ParamAgreementType, agreementType)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing customer agreements: %w", err)
	}

	agreements, err := http.DecodeInto[partner.ResourceCollection[partner.Agreement]](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing customer agreements list: %w", err)
	}

	return &agreements, nil
}

// CreateCustomerAgreement implements partner.AgreementsClient.CreateCustomerAgreement.
func (c *AgreementsClient) CreateCustomerAgreement(ctx context.Context, customerID string, agreement *partner.Agreement) (*partner.Agreement, error) {
	err := requireIDs("customerID", customerID)
	if err != nil {
		return nil, err
	}

	if agreement == nil {
		return nil, partner.ErrNilRequest
	}

	_, path, err := operationPath(c.apis, partner.CreateCustomerAgreement, customerID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, agreement)
	if err != nil {
		return nil, fmt.Errorf("creating customer agreement: %w", err)
	}

	created, err := http.DecodeInto[partner.Agreement](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing customer agreement: %w", err)
	}

	return &created, nil
}
