package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fivetwenty-io/partnercenter/internal/constants"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// NewProductsCommand creates the products command group.
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Browse the product catalog",
		Long:    "List products, skus and availabilities of the partner catalog",
	}

	cmd.AddCommand(newProductsListCommand())
	cmd.AddCommand(newProductsGetCommand())
	cmd.AddCommand(newProductsSkusCommand())
	cmd.AddCommand(newProductsAvailabilitiesCommand())

	return cmd
}

// CountryProduct is a product listed for one country.
type CountryProduct struct {
	Country string          `json:"country" yaml:"country"`
	Product partner.Product `json:"product" yaml:"product"`
}

func newProductsListCommand() *cobra.Command {
	var (
		countries        []string
		targetView       string
		targetSegment    string
		reservationScope string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Long:  "List the products of a catalog view. Several countries are fetched concurrently.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(countries) == 0 {
				return ErrCountryRequired
			}

			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				products, err := listProductsByCountry(ctx, client.Products(), countries, partner.ProductListOptions{
					TargetView:       targetView,
					TargetSegment:    targetSegment,
					ReservationScope: reservationScope,
				})
				if err != nil {
					return err
				}

				return render(products, func(writer io.Writer) error {
					rows := make([][]string, 0, len(products))
					for _, item := range products {
						rows = append(rows, []string{item.Country, item.Product.ID, item.Product.Title, truncate(item.Product.Description)})
					}

					return renderTable(writer, "No products found", []string{"Country", "ID", "Title", "Description"}, rows)
				})
			})
		},
	}

	cmd.Flags().StringSliceVar(&countries, "country", nil, "two letter country code (repeatable)")
	cmd.Flags().StringVar(&targetView, "target-view", "", "catalog view, for example Azure or OnlineServices")
	cmd.Flags().StringVar(&targetSegment, "target-segment", "", "segment, for example commercial or education")
	cmd.Flags().StringVar(&reservationScope, "reservation-scope", "", "reservation scope, for example public")
	_ = cmd.MarkFlagRequired("target-view")

	return cmd
}

// listProductsByCountry lists the products of every country concurrently and
// returns them grouped in the order the countries were given.
func listProductsByCountry(ctx context.Context, products partner.ProductsClient, countries []string, opts partner.ProductListOptions) ([]CountryProduct, error) {
	pages := make([][]partner.Product, len(countries))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(constants.DefaultConcurrencyLimit)

	for i, country := range countries {
		i, country := i, country
		country = strings.ToUpper(strings.TrimSpace(country))

		group.Go(func() error {
			countryOpts := opts
			countryOpts.Country = country

			collection, err := products.List(groupCtx, countryOpts)
			if err != nil {
				return fmt.Errorf("failed to list products for %s: %w", country, err)
			}

			pages[i] = collection.Items

			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	var result []CountryProduct

	for i, page := range pages {
		for _, product := range page {
			result = append(result, CountryProduct{Country: strings.ToUpper(strings.TrimSpace(countries[i])), Product: product})
		}
	}

	return result, nil
}

func newProductsGetCommand() *cobra.Command {
	var (
		country          string
		reservationScope string
	)

	cmd := &cobra.Command{
		Use:   "get PRODUCT_ID",
		Short: "Get product details",
		Long:  "Display detailed information about a specific product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				product, err := client.Products().Get(ctx, args[0], partner.ProductOptions{
					Country:          country,
					ReservationScope: reservationScope,
				})
				if err != nil {
					return fmt.Errorf("failed to get product: %w", err)
				}

				return renderProduct(product)
			})
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "two letter country code")
	cmd.Flags().StringVar(&reservationScope, "reservation-scope", "", "reservation scope")
	_ = cmd.MarkFlagRequired("country")

	return cmd
}

func renderProduct(product *partner.Product) error {
	return render(product, func(writer io.Writer) error {
		productType := constants.NotAvailable
		if product.ProductType != nil {
			productType = product.ProductType.DisplayName
		}

		return renderProperties(writer, [][]string{
			{"ID", product.ID},
			{"Title", product.Title},
			{"Description", truncate(valueOrNA(product.Description))},
			{"Type", productType},
			{"Publisher", valueOrNA(product.PublisherName)},
			{"Microsoft Product", formatBool(product.IsMicrosoft)},
		})
	})
}

func newProductsSkusCommand() *cobra.Command {
	var (
		country          string
		targetSegment    string
		reservationScope string
	)

	cmd := &cobra.Command{
		Use:   "skus PRODUCT_ID",
		Short: "List skus of a product",
		Long:  "List the skus of a specific product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				skus, err := client.Products().ListSkus(ctx, args[0], partner.SkuListOptions{
					Country:          country,
					TargetSegment:    targetSegment,
					ReservationScope: reservationScope,
				})
				if err != nil {
					return fmt.Errorf("failed to list skus: %w", err)
				}

				return renderSkus(skus.Items)
			})
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "two letter country code")
	cmd.Flags().StringVar(&targetSegment, "target-segment", "", "segment")
	cmd.Flags().StringVar(&reservationScope, "reservation-scope", "", "reservation scope")
	_ = cmd.MarkFlagRequired("country")

	return cmd
}

func renderSkus(skus []partner.Sku) error {
	return render(skus, func(writer io.Writer) error {
		rows := make([][]string, 0, len(skus))
		for _, sku := range skus {
			cycles := make([]string, 0, len(sku.SupportedBillingCycles))
			for _, cycle := range sku.SupportedBillingCycles {
				cycles = append(cycles, cycle.String())
			}

			rows = append(rows, []string{sku.ID, sku.Title, formatBool(sku.IsTrial), strings.Join(cycles, ", ")})
		}

		return renderTable(writer, "No skus found", []string{"ID", "Title", "Trial", "Billing Cycles"}, rows)
	})
}

func newProductsAvailabilitiesCommand() *cobra.Command {
	var (
		country          string
		targetSegment    string
		reservationScope string
	)

	cmd := &cobra.Command{
		Use:   "availabilities PRODUCT_ID SKU_ID",
		Short: "List availabilities of a sku",
		Long:  "List the purchasable availabilities of a specific sku",
		Args:  cobra.ExactArgs(constants.TwoArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				availabilities, err := client.Products().ListAvailabilities(ctx, args[0], args[1], partner.AvailabilityListOptions{
					Country:          country,
					TargetSegment:    targetSegment,
					ReservationScope: reservationScope,
				})
				if err != nil {
					return fmt.Errorf("failed to list availabilities: %w", err)
				}

				return renderAvailabilities(availabilities.Items)
			})
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "two letter country code")
	cmd.Flags().StringVar(&targetSegment, "target-segment", "", "segment")
	cmd.Flags().StringVar(&reservationScope, "reservation-scope", "", "reservation scope")
	_ = cmd.MarkFlagRequired("country")

	return cmd
}

func renderAvailabilities(availabilities []partner.Availability) error {
	return render(availabilities, func(writer io.Writer) error {
		rows := make([][]string, 0, len(availabilities))
		for _, availability := range availabilities {
			currency := constants.NotAvailable
			if availability.DefaultCurrency != nil {
				currency = availability.DefaultCurrency.Code
			}

			terms := make([]string, 0, len(availability.Terms))
			for _, term := range availability.Terms {
				terms = append(terms, term.Duration)
			}

			rows = append(rows, []string{
				availability.ID,
				availability.CatalogItemID,
				currency,
				formatBool(availability.IsPurchasable),
				strings.Join(terms, ", "),
			})
		}

		return renderTable(writer, "No availabilities found", []string{"ID", "Catalog Item", "Currency", "Purchasable", "Terms"}, rows)
	})
}
