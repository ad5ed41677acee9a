// Package cli wires the cobra command tree. Every trading command
// bootstraps its own App, runs one operation and exits; there is no
// long-lived daemon.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagSimulate  bool
	flagSentiment bool
)

// Execute runs the command tree. Errors come back to main for the
// exit code; cobra's own error printing is silenced.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "binance-bot",
		Short:         "Binance USDT-M futures order bot",
		Long:          "Places market, limit, stop-limit, OCO, TWAP and grid orders on Binance perpetual futures.\nWithout API credentials every order is simulated against historical data.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config.yaml")
	root.PersistentFlags().BoolVar(&flagSimulate, "simulate", false, "force simulated execution even with credentials")
	root.PersistentFlags().BoolVar(&flagSentiment, "sentiment", false, "gate the order on the fear & greed index")

	root.AddCommand(
		newMarketCmd(),
		newLimitCmd(),
		newStopLimitCmd(),
		newOCOCmd(),
		newTwapCmd(),
		newGridCmd(),
		newPriceCmd(),
		newHistoryCmd(),
	)
	return root
}

func parseSymbol(arg string) string {
	return strings.ToUpper(strings.TrimSpace(arg))
}

func parseSide(arg string) string {
	return strings.ToUpper(strings.TrimSpace(arg))
}

func parseFloatArg(arg, name string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", name, arg)
	}
	return v, nil
}
