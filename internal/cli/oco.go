package cli

import (
	"github.com/spf13/cobra"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/app"
)

func newOCOCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "oco SYMBOL SIDE QUANTITY PRICE STOP_PRICE STOP_LIMIT_PRICE",
		Short:   "Place a take-profit / stop-loss pair",
		Long:    "Places a take-profit limit order and a stop-loss stop-limit order.\nThe legs are independent futures orders; if the second leg fails the first stays on the book.",
		Example: "  binance-bot oco BTCUSDT SELL 0.01 47000 43000 42900",
		Args:    cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := parseFloatArg(args[2], "quantity")
			if err != nil {
				return err
			}
			price, err := parseFloatArg(args[3], "price")
			if err != nil {
				return err
			}
			stopPrice, err := parseFloatArg(args[4], "stop price")
			if err != nil {
				return err
			}
			stopLimitPrice, err := parseFloatArg(args[5], "stop limit price")
			if err != nil {
				return err
			}

			a, err := app.Bootstrap(flagConfig, flagSimulate)
			if err != nil {
				return err
			}
			defer a.Close()

			receipt, err := a.Placer().OCO(cmd.Context(), parseSymbol(args[0]), parseSide(args[1]), quantity, price, stopPrice, stopLimitPrice, flagSentiment)
			if err != nil {
				return err
			}

			header("oco pair placed")
			printMode(a.Mode)
			kv("List ID", "%s", receipt.ListID)
			kv("Status", "%s", receipt.Status)
			kv("Market Price", "$%.2f", receipt.CurrentPrice)
			kv("Take-Profit", "%s at $%.2f (%+.2f%%)", receipt.TakeProfit.OrderID, receipt.TakeProfit.Price, receipt.ProfitPct)
			kv("Stop-Loss", "%s at $%.2f (%+.2f%%)", receipt.StopLoss.OrderID, receipt.StopLoss.Price, receipt.LossPct)
			kv("Risk/Reward", "%.2f", receipt.RiskReward)
			printSentiment(receipt.SentimentIndex)
			printWarnings(receipt.Warnings)
			return nil
		},
	}
}
