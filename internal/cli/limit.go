package cli

import (
	"github.com/spf13/cobra"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/app"
)

func newLimitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "limit SYMBOL SIDE QUANTITY PRICE",
		Short:   "Place a limit order",
		Example: "  binance-bot limit BTCUSDT BUY 0.01 44000",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := parseFloatArg(args[2], "quantity")
			if err != nil {
				return err
			}
			price, err := parseFloatArg(args[3], "price")
			if err != nil {
				return err
			}

			a, err := app.Bootstrap(flagConfig, flagSimulate)
			if err != nil {
				return err
			}
			defer a.Close()

			receipt, err := a.Placer().Limit(cmd.Context(), parseSymbol(args[0]), parseSide(args[1]), quantity, price, flagSentiment)
			if err != nil {
				return err
			}

			header("limit order placed")
			printMode(a.Mode)
			kv("Order ID", "%s", receipt.Order.OrderID)
			kv("Symbol", "%s", receipt.Order.Symbol)
			kv("Side", "%s", receipt.Order.Side)
			kv("Quantity", "%v", receipt.Order.OrigQty)
			kv("Limit Price", "$%.2f", receipt.Order.Price)
			kv("Status", "%s", receipt.Order.Status)
			kv("Market Price", "$%.2f", receipt.CurrentPrice)
			kv("Distance", "$%.2f (%.2f%%)", receipt.PriceDiff, receipt.PriceDiffPct)
			kv("Fill Probability", "%s", receipt.ExecutionProbability)
			kv("Total Value", "$%.2f", receipt.TotalValue)
			printSentiment(receipt.SentimentIndex)
			printWarnings(receipt.Warnings)
			return nil
		},
	}
}
