package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/partnercenter/internal/constants"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// NewUsageCommand creates the usage command group.
func NewUsageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Inspect subscription usage",
	}

	cmd.AddCommand(newUsageResourcesCommand())

	return cmd
}

func newUsageResourcesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resources CUSTOMER_ID SUBSCRIPTION_ID",
		Short: "List the usage of each resource in a subscription",
		Args:  cobra.ExactArgs(constants.TwoArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				records, err := client.Usage().ListResourceUsage(ctx, args[0], args[1])
				if err != nil {
					return fmt.Errorf("failed to list resource usage: %w", err)
				}

				return render(records.Items, func(writer io.Writer) error {
					rows := make([][]string, 0, len(records.Items))
					for _, record := range records.Items {
						rows = append(rows, []string{
							valueOrNA(record.ResourceName),
							valueOrNA(record.ResourceType),
							valueOrNA(record.ResourceGroupName),
							strconv.FormatFloat(record.TotalCost, 'f', 2, 64),
							valueOrNA(record.CurrencyLocale),
						})
					}

					return renderTable(writer, "No usage records found", []string{"Resource", "Type", "Group", "Total Cost", "Currency"}, rows)
				})
			})
		},
	}
}
