package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// NewRolesCommand creates the roles command group.
func NewRolesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "roles",
		Aliases: []string{"role"},
		Short:   "Inspect directory roles",
		Long:    "List the directory roles of the partner tenant and their members",
	}

	cmd.AddCommand(newRolesListCommand())
	cmd.AddCommand(newRolesMembersCommand())

	return cmd
}

func newRolesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List directory roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				roles, err := client.Roles().List(ctx)
				if err != nil {
					return fmt.Errorf("failed to list roles: %w", err)
				}

				return render(roles.Items, func(writer io.Writer) error {
					rows := make([][]string, 0, len(roles.Items))
					for _, role := range roles.Items {
						rows = append(rows, []string{role.ID, role.Name})
					}

					return renderTable(writer, "No roles found", []string{"ID", "Name"}, rows)
				})
			})
		},
	}
}

func newRolesMembersCommand() *cobra.Command {
	var allPages bool

	cmd := &cobra.Command{
		Use:   "members ROLE_ID",
		Short: "List members of a directory role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client partner.Client) error {
				members, err := listRoleMembers(ctx, client, args[0], allPages)
				if err != nil {
					return err
				}

				return render(members, func(writer io.Writer) error {
					rows := make([][]string, 0, len(members))
					for _, member := range members {
						rows = append(rows, []string{member.ID, valueOrNA(member.DisplayName), valueOrNA(member.AccountID)})
					}

					return renderTable(writer, "No members found", []string{"ID", "Display Name", "Account ID"}, rows)
				})
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all-pages", false, "follow continuation links until the last page")

	return cmd
}

// listRoleMembers returns the first page of members, or every page when
// allPages is set.
func listRoleMembers(ctx context.Context, client partner.Client, roleID string, allPages bool) ([]partner.RoleMember, error) {
	page, err := client.Roles().ListMembers(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list role members: %w", err)
	}

	members := page.Items

	for allPages {
		page, err = partner.NextSeekPage(ctx, client, page)
		if errors.Is(err, partner.ErrNoMoreItems) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to list role members: %w", err)
		}

		members = append(members, page.Items...)
	}

	return members, nil
}
