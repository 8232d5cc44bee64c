package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qalab/employee-directory/internal/core/domain"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the employee store with sample data",
	Long: `Write the sample employees when the store is empty or missing.
With --reset the store is overwritten with the sample set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, log, err := bootstrap(ctx)
		if err != nil {
			return err
		}

		b := &backends{}
		defer b.Close(ctx, log)
		if err := openEmployeeStore(ctx, cfg, b, log); err != nil {
			return err
		}

		seed := domain.SeedEmployees()
		if resetData {
			if err := b.employees.SaveAll(ctx, seed); err != nil {
				return fmt.Errorf("reset employees: %w", err)
			}
			log.Info().Int("employees", len(seed)).Msg("employee store reset")
			return nil
		}

		seeded, err := b.employees.Bootstrap(ctx, seed)
		if err != nil {
			return fmt.Errorf("seed employees: %w", err)
		}
		if !seeded {
			log.Info().Msg("employee store already initialised; use --reset to overwrite")
			return nil
		}
		log.Info().Int("employees", len(seed)).Msg("employee store seeded")
		return nil
	},
}
