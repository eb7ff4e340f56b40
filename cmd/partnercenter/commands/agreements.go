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

// NewAgreementsCommand creates the agreements command group.
func NewAgreementsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "agreements",
		Aliases: []string{"agreement"},
		Short:   "Manage agreements",
		Long:    "List agreement templates and record customer acceptance of agreements",
	}

	cmd.AddCommand(newAgreementsListCommand())
	cmd.AddCommand(newAgreementsDocumentCommand())
	cmd.AddCommand(newAgreementsCustomerListCommand())
	cmd.AddCommand(newAgreementsCustomerCreateCommand())

	return cmd
}

func newAgreementsListCommand() *cobra.Command {
	var agreementType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List agreement templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				details, err := client.Agreements().ListDetails(ctx, agreementType)
				if err != nil {
					return fmt.Errorf("failed to list agreements: %w", err)
				}

				return render(details.Items, func(writer io.Writer) error {
					rows := make([][]string, 0, len(details.Items))
					for _, detail := range details.Items {
						rows = append(rows, []string{
							detail.TemplateID,
							detail.AgreementType,
							strconv.Itoa(detail.VersionRank),
							valueOrNA(detail.AgreementLink),
						})
					}

					return renderTable(writer, "No agreements found", []string{"Template ID", "Type", "Version Rank", "Link"}, rows)
				})
			})
		},
	}

	cmd.Flags().StringVar(&agreementType, "type", "", "agreement type, for example MicrosoftCloudAgreement")

	return cmd
}

func newAgreementsDocumentCommand() *cobra.Command {
	var (
		country  string
		language string
	)

	cmd := &cobra.Command{
		Use:   "document TEMPLATE_ID",
		Short: "Locate the document of an agreement template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				document, err := client.Agreements().GetDocument(ctx, args[0], partner.AgreementDocumentOptions{
					Country:  country,
					Language: language,
				})
				if err != nil {
					return fmt.Errorf("failed to get agreement document: %w", err)
				}

				return render(document, func(writer io.Writer) error {
					return renderProperties(writer, [][]string{
						{"Country", valueOrNA(document.Country)},
						{"Language", valueOrNA(document.Language)},
						{"Display URI", valueOrNA(document.DisplayURI)},
						{"Download URI", valueOrNA(document.DownloadURI)},
					})
				})
			})
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "two letter country code")
	cmd.Flags().StringVar(&language, "language", "", "document language, for example en-US")

	return cmd
}

func newAgreementsCustomerListCommand() *cobra.Command {
	var agreementType string

	cmd := &cobra.Command{
		Use:   "customer-list CUSTOMER_ID",
		Short: "List agreements accepted by a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				agreements, err := client.Agreements().ListCustomerAgreements(ctx, args[0], agreementType)
				if err != nil {
					return fmt.Errorf("failed to list customer agreements: %w", err)
				}

				return renderAgreements(agreements.Items)
			})
		},
	}

	cmd.Flags().StringVar(&agreementType, "type", "", "agreement type")

	return cmd
}

func renderAgreements(agreements []partner.Agreement) error {
	return render(agreements, func(writer io.Writer) error {
		rows := make([][]string, 0, len(agreements))
		for _, agreement := range agreements {
			contact := constants.NotAvailable
			if agreement.PrimaryContact != nil {
				contact = agreement.PrimaryContact.Email
			}

			rows = append(rows, []string{
				agreement.TemplateID,
				valueOrNA(agreement.Type),
				formatTime(agreement.DateAgreed),
				contact,
			})
		}

		return renderTable(writer, "No agreements found", []string{"Template ID", "Type", "Date Agreed", "Contact"}, rows)
	})
}

func newAgreementsCustomerCreateCommand() *cobra.Command {
	var (
		templateID    string
		agreementType string
		userID        string
		contact       partner.Contact
	)

	cmd := &cobra.Command{
		Use:   "customer-create CUSTOMER_ID",
		Short: "Record that a customer accepted an agreement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if templateID == "" {
				return ErrTemplateRequired
			}

			agreement := &partner.Agreement{
				TemplateID: templateID,
				Type:       agreementType,
				UserID:     userID,
			}

			if contact != (partner.Contact{}) {
				agreement.PrimaryContact = &contact
			}

			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				created, err := client.Agreements().CreateCustomerAgreement(ctx, args[0], agreement)
				if err != nil {
					return fmt.Errorf("failed to create customer agreement: %w", err)
				}

				return renderAgreements([]partner.Agreement{*created})
			})
		},
	}

	cmd.Flags().StringVar(&templateID, "template-id", "", "agreement template id")
	cmd.Flags().StringVar(&agreementType, "type", "", "agreement type")
	cmd.Flags().StringVar(&userID, "user-id", "", "id of the partner user recording the acceptance")
	cmd.Flags().StringVar(&contact.FirstName, "first-name", "", "first name of the accepting contact")
	cmd.Flags().StringVar(&contact.LastName, "last-name", "", "last name of the accepting contact")
	cmd.Flags().StringVar(&contact.Email, "email", "", "email of the accepting contact")
	cmd.Flags().StringVar(&contact.PhoneNumber, "phone", "", "phone number of the accepting contact")

	return cmd
}
