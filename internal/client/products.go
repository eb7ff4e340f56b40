package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/partnercenter/internal/http"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// ProductsClient implements partner.ProductsClient.
type ProductsClient struct {
	httpClient *http.Client
	apis       partner.APIs
}

// NewProductsClient creates a new products client.
func NewProductsClient(httpClient *http.Client, apis partner.APIs) *ProductsClient {
	return &ProductsClient{
		httpClient: httpClient,
		apis:       apis,
	}
}

// List implements partner.ProductsClient.List.
func (c *ProductsClient) List(ctx context.Context, opts partner.ProductListOptions) (*partner.ResourceCollection[partner.Product], error) {
	err := requireIDs("country", opts.Country, "targetView", opts.TargetView)
	if err != nil {
		return nil, err
	}

	api, path, err := operationPath(c.apis, partner.GetProducts)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	setParam(query, api, partner.ParamCountry, opts.Country)
	setParam(query, api, partner.ParamTargetView, opts.TargetView)
	setParam(query, api, partner.ParamTargetSegment, opts.TargetSegment)
	setParam(query, api, partner.ParamReservationScope, opts.ReservationScope)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	products, err := http.DecodeInto[partner.ResourceCollection[partner.Product]](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing products list: %w", err)
	}

	return &products, nil
}

// Get implements partner.ProductsClient.Get.
func (c *ProductsClient) Get(ctx context.Context, productID string, opts partner.ProductOptions) (*partner.Product, error) {
	err := requireIDs("productID", productID, "country", opts.Country)
	if err != nil {
		return nil, err
	}

	api, path, err := operationPath(c.apis, partner.GetProduct, productID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	setParam(query, api, partner.ParamCountry, opts.Country)
	setParam(query, api, partner.ParamReservationScope, opts.ReservationScope)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}

	product, err := http.DecodeInto[partner.Product](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing product: %w", err)
	}

	return &product, nil
}

// ListSkus implements partner.ProductsClient.ListSkus.
func (c *ProductsClient) ListSkus(ctx context.Context, productID string, opts partner.SkuListOptions) (*partner.ResourceCollection[partner.Sku], error) {
	err := requireIDs("productID", productID, "country", opts.Country)
	if err != nil {
		return nil, err
	}

	api, path, err := operationPath(c.apis, partner.GetSkus, productID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	setParam(query, api, partner.ParamCountry, opts.Country)
	setParam(query, api, partner.ParamTargetSegment, opts.TargetSegment)
	setParam(query, api, partner.ParamReservationScope, opts.ReservationScope)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing skus: %w", err)
	}

	skus, err := http.DecodeInto[partner.ResourceCollection[partner.Sku]](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing skus list: %w", err)
	}

	return &skus, nil
}

// GetSku implements partner.ProductsClient.GetSku.
func (c *ProductsClient) GetSku(ctx context.Context, productID, skuID string, opts partner.SkuOptions) (*partner.Sku, error) {
	err := requireIDs("productID", productID, "skuID", skuID, "country", opts.Country)
	if err != nil {
		return nil, err
	}

	api, path, err := operationPath(c.apis, partner.GetSku, productID, skuID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	setParam(query, api, partner.ParamCountry, opts.Country)
	setParam(query, api, partner.ParamReservationScope, opts.ReservationScope)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting sku: %w", err)
	}

	sku, err := http.DecodeInto[partner.Sku](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing sku: %w", err)
	}

	return &sku, nil
}

// ListAvailabilities implements partner.ProductsClient.ListAvailabilities.
func (c *ProductsClient) ListAvailabilities(ctx context.Context, productID, skuID string, opts partner.AvailabilityListOptions) (*partner.ResourceCollection[partner.Availability], error) {
	err := requireIDs("productID", productID, "skuID", skuID, "country", opts.Country)
	if err != nil {
		return nil, err
	}

	api, path, err := operationPath(c.apis, partner.GetAvailabilities, productID, skuID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	setParam(query, api, partner.ParamCountry, opts.Country)
	setParam(query, api, partner.ParamTargetSegment, opts.TargetSegment)
	setParam(query, api, partner.ParamReservationScope, opts.ReservationScope)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing availabilities: %w", err)
	}

	availabilities, err := http.DecodeInto[partner.ResourceCollection[partner.Availability]](resp, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing availabilities list: %w", err)
	}

	return &availabilities, nil
}
