package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Renal37/laundry-service/internal/pricing"
)

func newRatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Inspect rate tables",
	}
	cmd.AddCommand(newRatesCheckCmd())
	return cmd
}

func newRatesCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a YAML rate table and print its ladder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rates, err := pricing.LoadRateTable(args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SERVICE\tFROM KG\tTO KG\tPRICE/KG\tDISCOUNT %")
			for _, tier := range rates.Tiers() {
				fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\n",
					tier.ServiceType, tier.MinWeight, tier.MaxWeight, tier.PricePerKg, tier.DiscountPercentage)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "iron add-on: %g per kg\n", rates.IronRatePerKg())
			return nil
		},
	}
}
