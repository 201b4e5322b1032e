package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sriteja123gujjari/RentalManagement/internal/service"
)

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the default units from the config",
		Long:  `Create every configured default unit whose name is not in the ledger yet.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := a.cfg.DefaultUnits()
			if err != nil {
				return err
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			created, err := service.SeedUnits(cmd.Context(), store, defaults)
			if err != nil {
				return fmt.Errorf("seed units: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, u := range created {
				fmt.Fprintf(out, "Created %s (%s %s)\n", u.Name, a.cfg.Currency, u.BaseRent.StringFixed(2))
			}
			fmt.Fprintf(out, "%d unit(s) created, %d already present\n", len(created), len(defaults)-len(created))
			return nil
		},
	}
}
