// Package app assembles the pieces a command needs: config, logger,
// historical data, sentiment source, journal and the execution gateway.
package app

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/execution"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/infra"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/journal"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/marketdata"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/order"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/sentiment"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/strategy"
)

// App holds everything a command touches. Build one per invocation and
// Close it on the way out.
type App struct {
	Config    *infra.Config
	Log       *slog.Logger
	History   *marketdata.History
	Sentiment *sentiment.Source
	Journal   *journal.Journal
	Gateway   execution.Gateway
	Mode      execution.Mode
}

// Bootstrap loads config and credentials, opens the journal and picks
// the execution mode. A missing .env file is not an error.
func Bootstrap(configPath string, forceSimulate bool) (*App, error) {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig(infra.ResolveConfigPath(configPath))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := infra.NewLogger(cfg)

	history := marketdata.Load(cfg.Data.HistoricalPrices, log)
	sent := sentiment.NewSource(cfg.Data.FearGreed, log)

	journalPath := infra.JournalPath(cfg)
	if err := infra.EnsureDir(filepath.Dir(journalPath)); err != nil {
		return nil, fmt.Errorf("prepare journal directory: %w", err)
	}
	j, err := journal.Open(journalPath, log)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	gateway, mode, err := execution.NewGateway(cfg, history, log, forceSimulate)
	if err != nil {
		j.Close()
		return nil, err
	}

	log.Info("application ready",
		slog.String("mode", string(mode)),
		slog.Bool("testnet", cfg.Trading.Testnet))

	return &App{
		Config:    cfg,
		Log:       log,
		History:   history,
		Sentiment: sent,
		Journal:   j,
		Gateway:   gateway,
		Mode:      mode,
	}, nil
}

// Placer builds the single-shot order placer over the app's gateway.
func (a *App) Placer() *order.Placer {
	return &order.Placer{
		Gateway:   a.Gateway,
		Journal:   a.Journal,
		Sentiment: a.Sentiment,
		Mode:      a.Mode,
		Log:       a.Log,
	}
}

// Twap builds the TWAP runner.
func (a *App) Twap() *strategy.Twap {
	return &strategy.Twap{
		Gateway:   a.Gateway,
		Journal:   a.Journal,
		Sentiment: a.Sentiment,
		Mode:      a.Mode,
		Log:       a.Log,
	}
}

// Grid builds the grid planner.
func (a *App) Grid() *strategy.Grid {
	return &strategy.Grid{
		Gateway:   a.Gateway,
		Journal:   a.Journal,
		Sentiment: a.Sentiment,
		Mode:      a.Mode,
		Log:       a.Log,
	}
}

// Close releases the journal and, for live runs, the HTTP client's
// credential material.
func (a *App) Close() {
	if a.Journal != nil {
		if err := a.Journal.Close(); err != nil {
			a.Log.Warn("failed to close journal", slog.Any("error", err))
		}
	}
	if closer, ok := a.Gateway.(interface{ Close() }); ok {
		closer.Close()
	}
}
