package commands

import (
	"fmt"

	"github.com/de-tools/commerce-atlas/pkg/services/seed"
	"github.com/spf13/cobra"
)

type SeedCmd struct {
	opts   seed.Options
	seeder func() (*seed.Seeder, error)
}

// NewSeedCmd populates the store with random demo data.
func NewSeedCmd(seeder func() (*seed.Seeder, error)) *cobra.Command {
	sc := &SeedCmd{opts: seed.DefaultOptions(), seeder: seeder}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the store with demo categories, products, sales and inventory",
		RunE:  sc.run,
	}

	cmd.Flags().IntVar(&sc.opts.Categories, "categories", sc.opts.Categories, "Number of categories to create")
	cmd.Flags().IntVar(&sc.opts.Products, "products", sc.opts.Products, "Number of products to create")
	cmd.Flags().IntVar(&sc.opts.Sales, "sales", sc.opts.Sales, "Number of sales to record over the last two years")

	return cmd
}

func (sc *SeedCmd) run(cmd *cobra.Command, _ []string) error {
	seeder, err := sc.seeder()
	if err != nil {
		return err
	}

	summary, err := seeder.Run(cmd.Context(), sc.opts)
	if err != nil {
		return fmt.Errorf("failed to seed demo data: %w", err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(),
		"Seeded %d categories, %d products, %d sales and %d inventory rows.\n",
		summary.Categories, summary.Products, summary.Sales, summary.Inventory)
	return err
}
