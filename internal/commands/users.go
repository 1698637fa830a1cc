package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"voyago/internal/models/db_models"
	"voyago/internal/repositories"
)

func UsersCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage accounts",
	}
	cmd.AddCommand(promoteCmd(open))
	return cmd
}

func promoteCmd(open opener) *cobra.Command {
	var email, role string
	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Change the role of an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := db_models.Role(strings.ToUpper(strings.TrimSpace(role)))
			if !r.Valid() {
				return fmt.Errorf("unknown role %q", role)
			}

			db, closeDB, err := open(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			accounts := repositories.NewAccountRepository(db)
			user, err := accounts.FindByEmail(cmd.Context(), strings.ToLower(strings.TrimSpace(email)))
			if err != nil {
				return err
			}
			if user == nil {
				return fmt.Errorf("no account with email %q", email)
			}
			if err := accounts.UpdateRole(cmd.Context(), user.ID, r); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s.\n", user.Email, r)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&role, "role", string(db_models.RoleAdmin), "ADMIN, MANAGER, GUIDE or USER")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
