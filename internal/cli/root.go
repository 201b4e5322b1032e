// Package cli implements the rentctl command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sriteja123gujjari/RentalManagement/internal/backend"
	"github.com/sriteja123gujjari/RentalManagement/internal/config"
	"github.com/sriteja123gujjari/RentalManagement/internal/models"
	"github.com/sriteja123gujjari/RentalManagement/internal/storage"
)

// app carries what every subcommand needs once the config is loaded.
type app struct {
	configPath string
	cfg        *config.Config
	owners     models.OwnerSet
}

// NewRootCommand builds rentctl with all subcommands attached.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "rentctl",
		Short: "Inspect and maintain the shared rental ledger",
		Long: `rentctl works directly on the ledger database configured for the server.
It prints period summaries with the settlement plan, seeds the default units
and manages owner passwords.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to the TOML config file")

	rootCmd.AddCommand(newSummaryCmd(a))
	rootCmd.AddCommand(newSeedCmd(a))
	rootCmd.AddCommand(newOwnerCmd(a))
	return rootCmd
}

func (a *app) load() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	owners, err := cfg.OwnerSet()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.owners = owners
	return nil
}

func (a *app) openStore() (storage.Store, error) {
	store, err := backend.OpenStore(a.cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}
