package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/partnercenter/internal/http"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// RolesClient implements partner.RolesClient.
type RolesClient struct {
	httpClient *http.Client
	apis       partner.APIs
}

// NewRolesClient creates a new roles client.
func NewRolesClient(httpClient *http.Client, apis partner.APIs) *RolesClient {
	return &RolesClient{
		httpClient: httpClient,
		apis:       apis,
	}
}

// List implements partner.RolesClient.List.
func (c *RolesClient) List(ctx context.Context) (*partner.ResourceCollection[partner.Role], error) {
	_, path, err := operationPath(c.apis, partner.GetPartnerRoles)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}

	roles, err := http.DecodeInto[partner.ResourceCollection[partner.Role]](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing roles list: %w", err)
	}

	return &roles, nil
}

// ListMembers implements partner.RolesClient.ListMembers.
func (c *RolesClient) ListMembers(ctx context.Context, roleID string) (*partner.SeekBasedResourceCollection[partner.RoleMember], error) {
	err := requireIDs("roleID", roleID)
	if err != nil {
		return nil, err
	}

	_, path, err := operationPath(c.apis, partner.GetPartnerRoleMembers, roleID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing role members: %w", err)
	}

	members, err := http.DecodeInto[partner.SeekBasedResourceCollection[partner.RoleMember]](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing role members list: %w", err)
	}

	return &members, nil
}
