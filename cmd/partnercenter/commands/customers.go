package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/partnercenter/internal/constants"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Inspect customers",
		Long:    "Inspect customer qualifications and the catalog available to a customer",
	}

	cmd.AddCommand(newCustomersQualificationCommand())
	cmd.AddCommand(newCustomersProductsCommand())
	cmd.AddCommand(newCustomersSkusCommand())
	cmd.AddCommand(newCustomersAvailabilitiesCommand())

	return cmd
}

// QualificationInfo is the rendered qualification of a customer.
type QualificationInfo struct {
	CustomerID    string                        `json:"customer_id"   yaml:"customer_id"`
	Qualification partner.CustomerQualification `json:"qualification" yaml:"qualification"`
}

func newCustomersQualificationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "qualification CUSTOMER_ID",
		Short: "Get the qualification of a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				qualification, err := client.Customers().GetQualification(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get qualification: %w", err)
				}

				info := QualificationInfo{CustomerID: args[0], Qualification: qualification}

				return render(info, func(writer io.Writer) error {
					return renderProperties(writer, [][]string{
						{"Customer", info.CustomerID},
						{"Qualification", info.Qualification.String()},
					})
				})
			})
		},
	}
}

func newCustomersProductsCommand() *cobra.Command {
	var (
		targetView    string
		targetSegment string
	)

	cmd := &cobra.Command{
		Use:   "products CUSTOMER_ID",
		Short: "List products available to a customer",
		Long:  "List the products of a catalog view available to a customer. The customer's country applies.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				products, err := client.CustomerProducts().List(ctx, args[0], partner.ProductListOptions{
					TargetView:    targetView,
					TargetSegment: targetSegment,
				})
				if err != nil {
					return fmt.Errorf("failed to list customer products: %w", err)
				}

				return render(products.Items, func(writer io.Writer) error {
					rows := make([][]string, 0, len(products.Items))
					for _, product := range products.Items {
						rows = append(rows, []string{product.ID, product.Title, truncate(product.Description)})
					}

					return renderTable(writer, "No products found", []string{"ID", "Title", "Description"}, rows)
				})
			})
		},
	}

	cmd.Flags().StringVar(&targetView, "target-view", "", "catalog view, for example Azure or OnlineServices")
	cmd.Flags().StringVar(&targetSegment, "target-segment", "", "segment")
	_ = cmd.MarkFlagRequired("target-view")

	return cmd
}

func newCustomersSkusCommand() *cobra.Command {
	var targetSegment string

	cmd := &cobra.Command{
		Use:   "skus CUSTOMER_ID PRODUCT_ID",
		Short: "List skus of a product for a customer",
		Args:  cobra.ExactArgs(constants.TwoArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				skus, err := client.CustomerProducts().ListSkus(ctx, args[0], args[1], partner.SkuListOptions{
					TargetSegment: targetSegment,
				})
				if err != nil {
					return fmt.Errorf("failed to list customer skus: %w", err)
				}

				return renderSkus(skus.Items)
			})
		},
	}

	cmd.Flags().StringVar(&targetSegment, "target-segment", "", "segment")

	return cmd
}

func newCustomersAvailabilitiesCommand() *cobra.Command {
	var targetSegment string

	cmd := &cobra.Command{
		Use:   "availabilities CUSTOMER_ID PRODUCT_ID SKU_ID",
		Short: "List availabilities of a sku for a customer",
		Args:  cobra.ExactArgs(constants.ThreeArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				availabilities, err := client.CustomerProducts().ListAvailabilities(ctx, args[0], args[1], args[2], partner.AvailabilityListOptions{
					TargetSegment: targetSegment,
				})
				if err != nil {
					return fmt.Errorf("failed to list customer availabilities: %w", err)
				}

				return renderAvailabilities(availabilities.Items)
			})
		},
	}

	cmd.Flags().StringVar(&targetSegment, "target-segment", "", "segment")

	return cmd
}
