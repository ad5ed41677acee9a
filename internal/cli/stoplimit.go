package cli

import (
	"github.com/spf13/cobra"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/app"
)

func newStopLimitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stop-limit SYMBOL SIDE QUANTITY STOP_PRICE LIMIT_PRICE",
		Short:   "Place a stop-limit order",
		Example: "  binance-bot stop-limit BTCUSDT SELL 0.01 44000 43900",
		Args:    cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := parseFloatArg(args[2], "quantity")
			if err != nil {
				return err
			}
			stopPrice, err := parseFloatArg(args[3], "stop price")
			if err != nil {
				return err
			}
			limitPrice, err := parseFloatArg(args[4], "limit price")
			if err != nil {
				return err
			}

			a, err := app.Bootstrap(flagConfig, flagSimulate)
			if err != nil {
				return err
			}
			defer a.Close()

			receipt, err := a.Placer().StopLimit(cmd.Context(), parseSymbol(args[0]), parseSide(args[1]), quantity, stopPrice, limitPrice, flagSentiment)
			if err != nil {
				return err
			}

			header("stop-limit order placed")
			printMode(a.Mode)
			kv("Order ID", "%s", receipt.Order.OrderID)
			kv("Symbol", "%s", receipt.Order.Symbol)
			kv("Side", "%s", receipt.Order.Side)
			kv("Quantity", "%v", receipt.Order.OrigQty)
			kv("Stop Price", "$%.2f (%.2f%%)", receipt.StopPrice, receipt.StopDiffPct)
			kv("Limit Price", "$%.2f (%.2f%%)", receipt.Order.Price, receipt.LimitDiffPct)
			kv("Status", "%s", receipt.Order.Status)
			kv("Market Price", "$%.2f", receipt.CurrentPrice)
			kv("Risk Level", "%s", receipt.RiskLevel)
			printSentiment(receipt.SentimentIndex)
			printWarnings(receipt.Warnings)
			return nil
		},
	}
}
