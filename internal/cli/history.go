package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/app"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/domain"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "history",
		Short:   "Show recent orders from the journal",
		Example: "  binance-bot history -n 20",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Bootstrap(flagConfig, flagSimulate)
			if err != nil {
				return err
			}
			defer a.Close()

			entries, err := a.Journal.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No orders recorded yet.")
				return nil
			}

			header("order history")
			for _, e := range entries {
				line := fmt.Sprintf("  %s  %-9s %-10s %-4s %-11s %v @ $%.4f  %s",
					e.Timestamp.Format("2006-01-02 15:04:05"),
					e.Mode, e.Symbol, e.Side, e.Type, e.Quantity, e.Price, e.Status)
				if e.Status == domain.OrderStatusFailed {
					warnColor.Println(line)
				} else {
					fmt.Println(line)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of entries to show")
	return cmd
}
