package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/app"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/strategy"
)

func newGridCmd() *cobra.Command {
	var (
		investment float64
		rangePct   float64
		grids      int
		yes        bool
	)

	cmd := &cobra.Command{
		Use:     "grid SYMBOL",
		Short:   "Place a grid of limit orders around the current price",
		Long:    "Splits an investment across evenly spaced price levels.\nLevels below the market become buy limits, levels above become sell limits.\nThe plan is shown first and must be confirmed before anything is placed.",
		Example: "  binance-bot grid BTCUSDT --investment 1000 --range 10 --grids 5",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Bootstrap(flagConfig, flagSimulate)
			if err != nil {
				return err
			}
			defer a.Close()

			params := strategy.GridParams{
				Symbol:       parseSymbol(args[0]),
				Investment:   investment,
				RangePct:     rangePct,
				Grids:        grids,
				UseSentiment: flagSentiment,
			}

			planner := a.Grid()
			plan, err := planner.Plan(cmd.Context(), params)
			if err != nil {
				return err
			}

			header("grid plan")
			printMode(a.Mode)
			kv("Symbol", "%s", params.Symbol)
			kv("Market Price", "$%.2f", plan.CurrentPrice)
			kv("Range", "$%.2f - $%.2f (%.1f%%)", plan.Lower, plan.Upper, params.RangePct)
			kv("Levels", "%d (%d buy, %d sell)", len(plan.Levels), plan.BuyLevels, plan.SellLevels)
			kv("Per Level", "$%.2f of $%.2f total", plan.PerGrid, params.Investment)
			kv("Max Drawdown", "%.1f%% to the lower edge", plan.MaxDownsidePct)
			printSentiment(plan.SentimentIndex)
			fmt.Println()
			for _, lvl := range plan.Levels {
				fmt.Printf("  #%d  %-4s %-6s  %v @ $%.4f  ($%.2f)\n",
					lvl.Level, lvl.Side, lvl.Type, lvl.Quantity, lvl.Price, lvl.Investment)
			}
			fmt.Println()

			if plan.ExtremeGreed() {
				warnColor.Printf("  Fear & greed index is %d (Extreme Greed); grid entries may chase the top.\n", plan.SentimentIndex)
			}
			if !yes {
				if !confirm(cmd, "Place these orders?") {
					warnColor.Println("  Aborted.")
					return nil
				}
			}

			report, err := planner.Execute(cmd.Context(), plan)
			if err != nil {
				return err
			}

			header("grid placed")
			kv("Placed", "%d", report.Placed)
			kv("Failed", "%d", report.Failed)
			kv("Buy Quantity", "%v", report.BuyQty)
			kv("Sell Quantity", "%v", report.SellQty)
			for _, lvl := range plan.Levels {
				if lvl.OrderID != "" {
					fmt.Printf("  #%d  %s  %s\n", lvl.Level, lvl.Status, lvl.OrderID)
				} else {
					warnColor.Printf("  #%d  %s\n", lvl.Level, lvl.Status)
				}
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&investment, "investment", 0, "total USDT to spread across the grid")
	cmd.Flags().Float64Var(&rangePct, "range", 10, "full grid range as a percentage of the current price")
	cmd.Flags().IntVar(&grids, "grids", 5, "number of levels")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	_ = cmd.MarkFlagRequired("investment")
	return cmd
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
