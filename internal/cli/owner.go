package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sriteja123gujjari/RentalManagement/internal/auth"
	"github.com/sriteja123gujjari/RentalManagement/internal/models"
	"github.com/sriteja123gujjari/RentalManagement/internal/storage"
)

func newOwnerCmd(a *app) *cobra.Command {
	ownerCmd := &cobra.Command{
		Use:   "owner",
		Short: "List owners and manage their passwords",
	}
	ownerCmd.AddCommand(newOwnerListCmd(a))
	ownerCmd.AddCommand(newOwnerSetPasswordCmd(a))
	return ownerCmd
}

func newOwnerListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the configured owners",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			for i, o := range a.owners.List() {
				login := "no password"
				if _, err := store.GetOwnerCredential(cmd.Context(), o); err == nil {
					login = "password set"
				} else if !errors.Is(err, storage.ErrCredentialNotFound) {
					return err
				}
				marker := ""
				if i == 0 {
					marker = " (default collector)"
				}
				fmt.Fprintf(out, "%s%s: %s\n", o, marker, login)
			}
			return nil
		},
	}
}

func newOwnerSetPasswordCmd(a *app) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "set-password OWNER",
		Short: "Set the password an owner logs in with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			owner := models.Owner(args[0])
			authenticator := auth.NewPasswordAuthenticator(store, a.owners)
			if err := authenticator.SetCredential(cmd.Context(), owner, password); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Password set for %s\n", owner)
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "New password (at least 8 characters)")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
