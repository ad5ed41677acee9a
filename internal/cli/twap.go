package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/app"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/domain"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/strategy"
)

func newTwapCmd() *cobra.Command {
	var (
		duration  time.Duration
		numOrders int
	)

	cmd := &cobra.Command{
		Use:     "twap SYMBOL SIDE TOTAL_QUANTITY",
		Short:   "Split a large order into timed market slices",
		Example: "  binance-bot twap BTCUSDT BUY 0.5 --duration 30m --orders 10",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			totalQuantity, err := parseFloatArg(args[2], "total quantity")
			if err != nil {
				return err
			}

			a, err := app.Bootstrap(flagConfig, flagSimulate)
			if err != nil {
				return err
			}
			defer a.Close()

			params := strategy.TwapParams{
				Symbol:        parseSymbol(args[0]),
				Side:          parseSide(args[1]),
				TotalQuantity: totalQuantity,
				Duration:      duration,
				NumOrders:     numOrders,
				UseSentiment:  flagSentiment,
			}

			header("twap execution")
			printMode(a.Mode)
			kv("Symbol", "%s", params.Symbol)
			kv("Side", "%s", params.Side)
			kv("Total Quantity", "%v", params.TotalQuantity)
			kv("Orders", "%d every %s", params.NumOrders, params.Interval())
			fmt.Println()

			runner := a.Twap()
			runner.Progress = func(index, total int, slice domain.TwapSlice, err error) {
				if err != nil {
					warnColor.Printf("  [%d/%d] failed: %v\n", index, total, err)
					return
				}
				successColor.Printf("  [%d/%d] filled %v at $%.2f\n", index, total, slice.Quantity, slice.Price)
			}

			report, err := runner.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			fmt.Println()
			header("twap summary")
			kv("Executed", "%d of %d slices", len(report.Slices), params.NumOrders)
			kv("Failed", "%d", report.Failed)
			kv("Executed Quantity", "%v of %v", report.ExecutedQty, params.TotalQuantity)
			kv("Completion", "%.1f%%", report.CompletionRate)
			kv("Average Price", "$%.2f", report.AveragePrice)
			kv("Price Range", "$%.2f - $%.2f", report.PriceMin, report.PriceMax)
			kv("Price Std Dev", "$%.2f", report.PriceStdDev)
			kv("Total Cost", "$%.2f", report.TotalCost)
			printSentiment(report.SentimentIndex)
			return nil
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", time.Hour, "total execution window")
	cmd.Flags().IntVar(&numOrders, "orders", 10, "number of slices")
	return cmd
}
