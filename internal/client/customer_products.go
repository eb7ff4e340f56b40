package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/partnercenter/internal/http"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// CustomerProductsClient implements partner.CustomerProductsClient.
type CustomerProductsClient struct {
	httpClient *http.Client
	apis       partner.APIs
}

// NewCustomerProductsClient creates a new customer products client.
func NewCustomerProductsClient(httpClient *http.Client, apis partner.APIs) *CustomerProductsClient {
	return &CustomerProductsClient{
		httpClient: httpClient,
		apis:       apis,
	}
}

// List implements partner.CustomerProductsClient.List.
func (c *CustomerProductsClient) List(ctx context.Context, customerID string, opts partner.ProductListOptions) (*partner.ResourceCollection[partner.Product], error) {
	err := requireIDs("customerID", customerID, "targetView", opts.TargetView)
	if err != nil {
		return nil, err
	}

	api, path, err := operationPath(c.apis, partner.GetCustomerProducts, customerID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	setParam(query, api, partner.ParamTargetView, opts.TargetView)
	setParam(query, api, partner.ParamTargetSegment, opts.TargetSegment)
	setParam(query, api, partner.ParamReservationScope, opts.ReservationScope)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing customer products: %w", err)
	}

	products, err := http.DecodeInto[partner.ResourceCollection[partner.Product]](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing customer products list: %w", err)
	}

	return &products, nil
}

// Get implements partner.CustomerProductsClient.Get.
func (c *CustomerProductsClient) Get(ctx context.Context, customerID, productID string, opts partner.ProductOptions) (*partner.Product, error) {
	err := requireIDs("customerID", customerID, "productID", productID)
	if err != nil {
		return nil, err
	}

	api, path, err := operationPath(c.apis, partner.GetCustomerProduct, customerID, productID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	setParam(query, api, partner.ParamReservationScope, opts.ReservationScope)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting customer product: %w", err)
	}

	product, err := http.DecodeInto[partner.Product](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing customer product: %w", err)
	}

	return &product, nil
}

// ListSkus implements partner.CustomerProductsClient.ListSkus.
func (c *CustomerProductsClient) ListSkus(ctx context.Context, customerID, productID string, opts partner.SkuListOptions) (*partner.ResourceCollection[partner.Sku], error) {
	err := requireIDs("customerID", customerID, "productID", productID)
	if err != nil {
		return nil, err
	}

	api, path, err := operationPath(c.apis, partner.GetCustomerSkus, customerID, productID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	setParam(query, api, partner.ParamTargetSegment, opts.TargetSegment)
	setParam(query, api, partner.ParamReservationScope, opts.ReservationScope)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing customer skus: %w", err)
	}

	skus, err := http.DecodeInto[partner.ResourceCollection[partner.Sku]](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing customer skus list: %w", err)
	}

	return &skus, nil
}

// GetSku implements partner.CustomerProductsClient.GetSku.
func (c *CustomerProductsClient) GetSku(ctx context.Context, customerID, productID, skuID string, opts partner.SkuOptions) (*partner.Sku, error) {
	err := requireIDs("customerID", customerID, "productID", productID, "skuID", skuID)
	if err != nil {
		return nil, err
	}

	api, path, err := operationPath(c.apis, partner.GetCustomerSku, customerID, productID, skuID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	setParam(query, api, partner.ParamReservationScope, opts.ReservationScope)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting customer sku: %w", err)
	}

	sku, err := http.DecodeInto[partner.Sku](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing customer sku: %w", err)
	}

	return &sku, nil
}

// ListAvailabilities implements partner.CustomerProductsClient.ListAvailabilities.
func (c *CustomerProductsClient) ListAvailabilities(ctx context.Context, customerID, productID, skuID string, opts partner.AvailabilityListOptions) (*partner.ResourceCollection[partner.Availability], error) {
	err := requireIDs("customerID", customerID, "productID", productID, "skuID", skuID)
	if err != nil {
		return nil, err
	}

	api, path, err := operationPath(c.apis, partner.GetCustomerAvailabilities, customerID, productID, skuID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	setParam(query, api, partner.ParamTargetSegment, opts.TargetSegment)
	setParam(query, api, partner.ParamReservationScope, opts.ReservationScope)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing customer availabilities: %w", err)
	}

	availabilities, err := http.DecodeInto[partner.ResourceCollection[partner.Availability]](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing customer availabilities list: %w", err)
	}

	return &availabilities, nil
}
