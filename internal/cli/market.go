package cli

import (
	"github.com/spf13/cobra"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/app"
)

func newMarketCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "market SYMBOL SIDE QUANTITY",
		Short:   "Place a market order",
		Example: "  binance-bot market BTCUSDT BUY 0.01",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := parseFloatArg(args[2], "quantity")
			if err != nil {
				return err
			}

			a, err := app.Bootstrap(flagConfig, flagSimulate)
			if err != nil {
				return err
			}
			defer a.Close()

			receipt, err := a.Placer().Market(cmd.Context(), parseSymbol(args[0]), parseSide(args[1]), quantity, flagSentiment)
			if err != nil {
				return err
			}

			header("market order placed")
			printMode(a.Mode)
			kv("Order ID", "%s", receipt.Order.OrderID)
			kv("Symbol", "%s", receipt.Order.Symbol)
			kv("Side", "%s", receipt.Order.Side)
			kv("Quantity", "%v", receipt.Order.OrigQty)
			kv("Status", "%s", receipt.Order.Status)
			kv("Market Price", "$%.2f", receipt.CurrentPrice)
			kv("Total Value", "$%.2f", receipt.TotalValue)
			printSentiment(receipt.SentimentIndex)
			printWarnings(receipt.Warnings)
			return nil
		},
	}
}
