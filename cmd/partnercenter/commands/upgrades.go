package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/partnercenter/internal/constants"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// NewUpgradesCommand creates the product upgrades command group.
func NewUpgradesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "upgrades",
		Aliases: []string{"upgrade"},
		Short:   "Manage product upgrades",
		Long:    "Check eligibility for, start and track product upgrades of a customer",
	}

	cmd.AddCommand(newUpgradesEligibilityCommand())
	cmd.AddCommand(newUpgradesCreateCommand())
	cmd.AddCommand(newUpgradesStatusCommand())

	return cmd
}

func upgradeRequest(customerID, family string) (*partner.ProductUpgradeRequest, error) {
	if family == "" {
		return nil, ErrFamilyRequired
	}

	return &partner.ProductUpgradeRequest{CustomerID: customerID, ProductFamily: family}, nil
}

func newUpgradesEligibilityCommand() *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "eligibility CUSTOMER_ID",
		Short: "Check whether a customer can upgrade a product family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := upgradeRequest(args[0], family)
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				eligibility, err := client.ProductUpgrades().CheckEligibility(ctx, request)
				if err != nil {
					return fmt.Errorf("failed to check upgrade eligibility: %w", err)
				}

				return render(eligibility, func(writer io.Writer) error {
					target := constants.NotAvailable
					if eligibility.Details != nil {
						target = eligibility.Details.Name
					}

					return renderProperties(writer, [][]string{
						{"Customer", eligibility.CustomerID},
						{"Product Family", eligibility.ProductFamily},
						{"Eligible", formatBool(eligibility.IsEligible)},
						{"Reason", valueOrNA(eligibility.Reason)},
						{"Upgrade ID", valueOrNA(eligibility.UpgradeID)},
						{"Target", target},
					})
				})
			})
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "product family, for example azure")

	return cmd
}

// UpgradeCreated is the rendered result of starting an upgrade.
type UpgradeCreated struct {
	CustomerID    string `json:"customer_id"    yaml:"customer_id"`
	ProductFamily string `json:"product_family" yaml:"product_family"`
	Location      string `json:"location"       yaml:"location"`
}

func newUpgradesCreateCommand() *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "create CUSTOMER_ID",
		Short: "Start a product upgrade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := upgradeRequest(args[0], family)
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				location, err := client.ProductUpgrades().Create(ctx, request)
				if err != nil {
					return fmt.Errorf("failed to create upgrade: %w", err)
				}

				if location == "" {
					warnf("upgrade accepted without a status location")
				}

				created := UpgradeCreated{CustomerID: request.CustomerID, ProductFamily: request.ProductFamily, Location: location}

				return render(created, func(writer io.Writer) error {
					return renderProperties(writer, [][]string{
						{"Customer", created.CustomerID},
						{"Product Family", created.ProductFamily},
						{"Location", valueOrNA(created.Location)},
					})
				})
			})
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "product family, for example azure")

	return cmd
}

func newUpgradesStatusCommand() *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "status CUSTOMER_ID UPGRADE_ID",
		Short: "Track the status of a product upgrade",
		Args:  cobra.ExactArgs(constants.TwoArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := upgradeRequest(args[0], family)
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				status, err := client.ProductUpgrades().CheckStatus(ctx, args[1], request)
				if err != nil {
					return fmt.Errorf("failed to get upgrade status: %w", err)
				}

				return render(status, func(writer io.Writer) error {
					rows := make([][]string, 0, len(status.LineItems))
					for _, item := range status.LineItems {
						source, target := constants.NotAvailable, constants.NotAvailable
						if item.SourceProduct != nil {
							source = item.SourceProduct.Name
						}

						if item.TargetProduct != nil {
							target = item.TargetProduct.Name
						}

						rows = append(rows, []string{source, target, item.Status.String(), formatTime(item.UpgradedDate)})
					}

					_, err := fmt.Fprintf(writer, "Upgrade %s: %s\n", status.ID, status.Status)
					if err != nil {
						return err
					}

					return renderTable(writer, "No line items", []string{"Source", "Target", "Status", "Upgraded"}, rows)
				})
			})
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "product family, for example azure")

	return cmd
}
