package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/execution"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/sentiment"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	labelColor   = color.New(color.FgWhite)
)

func header(title string) {
	headerColor.Printf("=== %s ===\n", strings.ToUpper(title))
}

func kv(label string, format string, args ...any) {
	labelColor.Printf("  %-22s", label+":")
	fmt.Printf(format+"\n", args...)
}

func printMode(mode execution.Mode) {
	if mode == execution.ModeSimulated {
		warnColor.Println("  Mode: SIMULATED (no real orders)")
	} else {
		successColor.Println("  Mode: LIVE")
	}
}

func printWarnings(warnings []string) {
	for _, w := range warnings {
		warnColor.Printf("  Warning: %s\n", w)
	}
}

func printSentiment(index int) {
	if index < 0 {
		return
	}
	kv("Fear & Greed", "%d (%s)", index, sentiment.Label(index))
}
