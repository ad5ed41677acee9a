package cli

import (
	"github.com/spf13/cobra"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/app"
)

func newPriceCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "price SYMBOL",
		Short:   "Show the current price for a symbol",
		Example: "  binance-bot price BTCUSDT",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Bootstrap(flagConfig, flagSimulate)
			if err != nil {
				return err
			}
			defer a.Close()

			symbol := parseSymbol(args[0])
			price, err := a.Gateway.CurrentPrice(cmd.Context(), symbol)
			if err != nil {
				return err
			}

			printMode(a.Mode)
			kv(symbol, "$%.4f", price)
			return nil
		},
	}
}
