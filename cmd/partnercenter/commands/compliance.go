package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// NewComplianceCommand creates the compliance command group.
func NewComplianceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compliance",
		Short: "Check partner compliance",
	}

	cmd.AddCommand(newComplianceSignatureStatusCommand())

	return cmd
}

func newComplianceSignatureStatusCommand() *cobra.Command {
	var opts partner.SignatureStatusOptions

	cmd := &cobra.Command{
		Use:   "signature-status",
		Short: "Check whether the partner agreement is signed",
		Long:  "Check whether the partner agreement is signed for a partner network id or a tenant id",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				status, err := client.Compliance().GetAgreementSignatureStatus(ctx, opts)
				if err != nil {
					return fmt.Errorf("failed to get signature status: %w", err)
				}

				return render(status, func(writer io.Writer) error {
					return renderProperties(writer, [][]string{
						{"Agreement Signed", formatBool(status.IsAgreementSigned)},
					})
				})
			})
		},
	}

	cmd.Flags().StringVar(&opts.MpnID, "mpn-id", "", "partner network id")
	cmd.Flags().StringVar(&opts.TenantID, "tenant-id", "", "partner tenant id")
	cmd.MarkFlagsOneRequired("mpn-id", "tenant-id")

	return cmd
}
