package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/partnercenter/internal/constants"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// NewSubscriptionsCommand creates the subscriptions command group.
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subscription", "subs"},
		Short:   "Manage customer subscriptions",
		Long:    "Inspect and update the subscriptions of a customer",
	}

	cmd.AddCommand(newSubscriptionsGetCommand())
	cmd.AddCommand(newSubscriptionsUpdateCommand())
	cmd.AddCommand(newSubscriptionsAddOnsCommand())
	cmd.AddCommand(newSubscriptionsEntitlementsCommand())
	cmd.AddCommand(newSubscriptionsUtilizationCommand())

	return cmd
}

func newSubscriptionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOMER_ID SUBSCRIPTION_ID",
		Short: "Get subscription details",
		Args:  cobra.ExactArgs(constants.TwoArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				subscription, err := client.Subscriptions().Get(ctx, args[0], args[1])
				if err != nil {
					return fmt.Errorf("failed to get subscription: %w", err)
				}

				return renderSubscription(subscription)
			})
		},
	}
}

func renderSubscription(subscription *partner.Subscription) error {
	return render(subscription, func(writer io.Writer) error {
		return renderProperties(writer, [][]string{
			{"ID", subscription.ID},
			{"Friendly Name", valueOrNA(subscription.FriendlyName)},
			{"Offer", valueOrNA(subscription.OfferName)},
			{"Quantity", strconv.Itoa(subscription.Quantity)},
			{"Status", valueOrNA(subscription.Status)},
			{"Billing Cycle", subscription.BillingCycle.String()},
			{"Term", valueOrNA(subscription.TermDuration)},
			{"Auto Renew", formatBool(subscription.AutoRenewEnabled)},
			{"Trial", formatBool(subscription.IsTrial)},
			{"Commitment End", formatTime(subscription.CommitmentEndDate)},
		})
	})
}

func newSubscriptionsUpdateCommand() *cobra.Command {
	var (
		friendlyName string
		quantity     int
		billingCycle string
		autoRenew    bool
		status       string
	)

	cmd := &cobra.Command{
		Use:   "update CUSTOMER_ID SUBSCRIPTION_ID",
		Short: "Update a subscription",
		Long:  "Read a subscription, apply the given changes and send it back",
		Args:  cobra.ExactArgs(constants.TwoArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				subscription, err := client.Subscriptions().Get(ctx, args[0], args[1])
				if err != nil {
					return fmt.Errorf("failed to get subscription: %w", err)
				}

				flags := cmd.Flags()

				if flags.Changed("friendly-name") {
					subscription.FriendlyName = friendlyName
				}

				if flags.Changed("quantity") {
					subscription.Quantity = quantity
				}

				if flags.Changed("auto-renew") {
					subscription.AutoRenewEnabled = autoRenew
				}

				if flags.Changed("status") {
					subscription.Status = status
				}

				if flags.Changed("billing-cycle") {
					cycle, err := partner.ParseBillingCycleType(billingCycle)
					if err != nil {
						return err
					}

					subscription.BillingCycle = cycle
				}

				updated, err := client.Subscriptions().Update(ctx, args[0], args[1], subscription)
				if err != nil {
					return fmt.Errorf("failed to update subscription: %w", err)
				}

				return renderSubscription(updated)
			})
		},
	}

	cmd.Flags().StringVar(&friendlyName, "friendly-name", "", "new friendly name")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "new seat quantity")
	cmd.Flags().StringVar(&billingCycle, "billing-cycle", "", "new billing cycle, for example Monthly or Annual")
	cmd.Flags().BoolVar(&autoRenew, "auto-renew", false, "enable auto renewal")
	cmd.Flags().StringVar(&status, "status", "", "new status, for example suspended")

	return cmd
}

func renderSubscriptions(subscriptions []partner.Subscription) error {
	return render(subscriptions, func(writer io.Writer) error {
		rows := make([][]string, 0, len(subscriptions))
		for _, subscription := range subscriptions {
			rows = append(rows, []string{
				subscription.ID,
				valueOrNA(subscription.FriendlyName),
				strconv.Itoa(subscription.Quantity),
				valueOrNA(subscription.Status),
			})
		}

		return renderTable(writer, "No subscriptions found", []string{"ID", "Friendly Name", "Quantity", "Status"}, rows)
	})
}

func newSubscriptionsAddOnsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "addons CUSTOMER_ID SUBSCRIPTION_ID",
		Short: "List add-ons of a subscription",
		Args:  cobra.ExactArgs(constants.TwoArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				addOns, err := client.Subscriptions().ListAddOns(ctx, args[0], args[1])
				if err != nil {
					return fmt.Errorf("failed to list add-ons: %w", err)
				}

				return renderSubscriptions(addOns.Items)
			})
		},
	}
}

func newSubscriptionsEntitlementsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "entitlements CUSTOMER_ID SUBSCRIPTION_ID",
		Short: "List Azure entitlements of an Azure plan",
		Args:  cobra.ExactArgs(constants.TwoArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				entitlements, err := client.Subscriptions().ListAzureEntitlements(ctx, args[0], args[1])
				if err != nil {
					return fmt.Errorf("failed to list entitlements: %w", err)
				}

				return render(entitlements.Items, func(writer io.Writer) error {
					rows := make([][]string, 0, len(entitlements.Items))
					for _, entitlement := range entitlements.Items {
						rows = append(rows, []string{
							entitlement.ID,
							valueOrNA(entitlement.FriendlyName),
							valueOrNA(entitlement.SubscriptionID),
							valueOrNA(entitlement.Status),
						})
					}

					return renderTable(writer, "No entitlements found", []string{"ID", "Friendly Name", "Subscription", "Status"}, rows)
				})
			})
		},
	}
}

// utilizationFlags holds the raw flag values of the utilization command.
type utilizationFlags struct {
	start       string
	end         string
	granularity string
	showDetails bool
	size        int
}

// options parses the flags. An empty end defaults to now.
func (f utilizationFlags) options(now time.Time) (partner.AzureUtilizationOptions, error) {
	var opts partner.AzureUtilizationOptions

	start, err := time.Parse(time.RFC3339, f.start)
	if err != nil {
		return opts, fmt.Errorf("%w: start: %w", constants.ErrInvalidTimeRange, err)
	}

	end := now
	if f.end != "" {
		end, err = time.Parse(time.RFC3339, f.end)
		if err != nil {
			return opts, fmt.Errorf("%w: end: %w", constants.ErrInvalidTimeRange, err)
		}
	}

	granularity, err := partner.ParseAzureUtilizationGranularity(f.granularity)
	if err != nil {
		return opts, err
	}

	return partner.AzureUtilizationOptions{
		Start:       start,
		End:         end,
		Granularity: granularity,
		ShowDetails: f.showDetails,
		Size:        f.size,
	}, nil
}

func newSubscriptionsUtilizationCommand() *cobra.Command {
	var flags utilizationFlags

	cmd := &cobra.Command{
		Use:   "utilization CUSTOMER_ID SUBSCRIPTION_ID",
		Short: "List Azure utilization records of a subscription",
		Args:  cobra.ExactArgs(constants.TwoArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(time.Now())
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				records, err := client.Subscriptions().ListAzureUtilization(ctx, args[0], args[1], opts)
				if err != nil {
					return fmt.Errorf("failed to list utilization: %w", err)
				}

				return render(records.Items, func(writer io.Writer) error {
					rows := make([][]string, 0, len(records.Items))
					for _, record := range records.Items {
						name := constants.NotAvailable
						if record.Resource != nil {
							name = record.Resource.Name
						}

						rows = append(rows, []string{
							formatTime(record.UsageStartTime),
							formatTime(record.UsageEndTime),
							valueOrNA(name),
							strconv.FormatFloat(record.Quantity, 'f', -1, 64),
							valueOrNA(record.Unit),
						})
					}

					return renderTable(writer, "No utilization records found", []string{"Start", "End", "Resource", "Quantity", "Unit"}, rows)
				})
			})
		},
	}

	cmd.Flags().StringVar(&flags.start, "start", "", "start of the range in RFC3339")
	cmd.Flags().StringVar(&flags.end, "end", "", "end of the range in RFC3339 (default now)")
	cmd.Flags().StringVar(&flags.granularity, "granularity", "Daily", "Daily or Hourly")
	cmd.Flags().BoolVar(&flags.showDetails, "show-details", false, "include instance level details")
	cmd.Flags().IntVar(&flags.size, "size", 0, "maximum records per page")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}
