package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestAgreementsClient_Reads(t *testing.T) {
	t.Parallel()

	t.Run("ListDetails", func(t *testing.T) {
		t.Parallel()

		RunGetTests(t, []TestGetOperation[partner.ResourceCollection[partner.AgreementMetaData]]{
			{
				Name:          "filtered by type",
				ExpectedPath:  "/v1/agreements",
				ExpectedQuery: "agreementType=MicrosoftCustomerAgreement",
				StatusCode:    http.StatusOK,
				Response: map[string]interface{}{
					"totalCount": 1,
					"items": []map[string]interface{}{
						{"templateId": "117a77b0-9360-443b-8795-c6dedc750cf9", "agreementType": "MicrosoftCustomerAgreement", "versionRank": 1},
					},
				},
				Check: func(t *testing.T, result *partner.ResourceCollection[partner.AgreementMetaData]) {
					t.Helper()

					require.Len(t, result.Items, 1)
					assert.Equal(t, "117a77b0-9360-443b-8795-c6dedc750cf9", result.Items[0].TemplateID)
				},
			},
		}, func(c *Client) func(context.Context) (*partner.ResourceCollection[partner.AgreementMetaData], error) {
			return func(ctx context.Context) (*partner.ResourceCollection[partner.AgreementMetaData], error) {
				return c.Agreements().ListDetails(ctx, "MicrosoftCustomerAgreement")
			}
		})

		RunGetTests(t, []TestGetOperation[partner.ResourceCollection[partner.AgreementMetaData]]{
			{
				Name:         "all types",
				ExpectedPath: "/v1/agreements",
				StatusCode:   http.StatusOK,
				Response:     map[string]interface{}{"totalCount": 0, "items": []interface{}{}},
			},
		}, func(c *Client) func(context.Context) (*partner.ResourceCollection[partner.AgreementMetaData], error) {
			return func(ctx context.Context) (*partner.ResourceCollection[partner.AgreementMetaData], error) {
				return c.Agreements().ListDetails(ctx, "")
			}
		})
	})

	t.Run("GetDocument", func(t *testing.T) {
		t.Parallel()

		RunGetTests(t, []TestGetOperation[partner.AgreementDocument]{
			{
				Name:          "country and language",
				ExpectedPath:  "/v1/agreements/117a77b0/document",
				ExpectedQuery: "country=US&language=en-US",
				StatusCode:    http.StatusOK,
				Response: map[string]interface{}{
					"country":     "US",
					"language":    "en-US",
					"displayUri":  "https://example.com/agreement.htm",
					"downloadUri": "https://example.com/agreement.pdf",
				},
				Check: func(t *testing.T, result *partner.AgreementDocument) {
					t.Helper()

					assert.Equal(t, "https://example.com/agreement.pdf", result.DownloadURI)
				},
			},
		}, func(c *Client) func(context.Context) (*partner.AgreementDocument, error) {
			return func(ctx context.Context) (*partner.AgreementDocument, error) {
				return c.Agreements().GetDocument(ctx, "117a77b0", partner.AgreementDocumentOptions{Country: "US", Language: "en-US"})
			}
		})
	})

	t.Run("ListCustomerAgreements", func(t *testing.T) {
		t.Parallel()

		RunGetTests(t, []TestGetOperation[partner.ResourceCollection[partner.Agreement]]{
			{
				Name:          "success",
				ExpectedPath:  "/v1/customers/" + testCustomerID + "/agreements",
				ExpectedQuery: "agreementType=MicrosoftCloudAgreement",
				StatusCode:    http.StatusOK,
				Response: map[string]interface{}{
					"totalCount": 1,
					"items":      []map[string]interface{}{{"templateId": "0c5c3b5a", "type": "MicrosoftCloudAgreement"}},
				},
			},
		}, func(c *Client) func(context.Context) (*partner.ResourceCollection[partner.Agreement], error) {
			return func(ctx context.Context) (*partner.ResourceCollection[partner.Agreement], error) {
				return c.Agreements().ListCustomerAgreements(ctx, testCustomerID, "MicrosoftCloudAgreement")
			}
		})
	})
}

func TestAgreementsClient_CreateCustomerAgreement(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, http.StatusCreated, nil, map[string]interface{}{
		"templateId": "117a77b0",
		"type":       "MicrosoftCustomerAgreement",
		"primaryContact": map[string]interface{}{
			"firstName": "Ada",
			"lastName":  "Lovelace",
			"email":     "ada@contoso.example",
		},
	})

	client := NewTestClient(server.URL)

	agreement, err := client.Agreements().CreateCustomerAgreement(context.Background(), testCustomerID, &partner.Agreement{
		TemplateID: "117a77b0",
		Type:       "MicrosoftCustomerAgreement",
		PrimaryContact: &partner.Contact{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@contoso.example",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Lovelace", agreement.PrimaryContact.LastName)

	request := server.Last(t)
	assert.Equal(t, http.MethodPost, request.Method)
	assert.Equal(t, "/v1/customers/"+testCustomerID+"/agreements", request.Path)
	assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(request.Body, &sent))
	assert.Equal(t, "117a77b0", sent["templateId"])
	assert.NotContains(t, sent, "dateAgreed")
}

func TestAgreementsClient_Validation(t *testing.T) {
	t.Parallel()

	RunMissingIdentifierTests(t, []TestMissingIdentifier{
		{
			Name:       "document without template",
			Identifier: "templateID",
			Call: func(ctx context.Context, c *Client) error {
				_, err := c.Agreements().GetDocument(ctx, "", partner.AgreementDocumentOptions{})

				return err
			},
		},
		{
			Name:       "customer agreements without customer",
			Identifier: "customerID",
			Call: func(ctx context.Context, c *Client) error {
				_, err := c.Agreements().ListCustomerAgreements(ctx, "", "")

				return err
			},
		},
	})

	t.Run("nil agreement", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusCreated, nil, nil)

		_, err := NewTestClient(server.URL).Agreements().CreateCustomerAgreement(context.Background(), testCustomerID, nil)
		require.ErrorIs(t, err, partner.ErrNilRequest)
		assert.Empty(t, server.Requests())
	})
}
