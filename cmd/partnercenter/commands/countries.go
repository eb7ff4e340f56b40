package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// NewCountriesCommand creates the countries command group.
func NewCountriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "countries",
		Aliases: []string{"country"},
		Short:   "Inspect country rules",
	}

	cmd.AddCommand(newCountriesRulesCommand())

	return cmd
}

func newCountriesRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules COUNTRY",
		Short: "Get the address and contact validation rules of a country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				rules, err := client.ValidationRules().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get validation rules: %w", err)
				}

				return render(rules, func(writer io.Writer) error {
					return renderProperties(writer, [][]string{
						{"Country", rules.ISO2Code},
						{"Default Culture", valueOrNA(rules.DefaultCulture)},
						{"State Required", formatBool(rules.IsStateRequired)},
						{"City Required", formatBool(rules.IsCityRequired)},
						{"Postal Code Required", formatBool(rules.IsPostalCodeRequired)},
						{"Postal Code Pattern", valueOrNA(rules.PostalCodeRegex)},
						{"VAT ID Supported", formatBool(rules.IsVatIDSupported)},
						{"Languages", valueOrNA(strings.Join(rules.SupportedLanguagesList, ", "))},
					})
				})
			})
		},
	}
}
