package execution

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/infra"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/infra/binance"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/marketdata"
)

// NewGateway selects the gateway for this invocation: simulated when
// forced or when no credentials are configured, live otherwise.
func NewGateway(cfg *infra.Config, history *marketdata.History, log *slog.Logger, forceSimulate bool) (Gateway, Mode, error) {
	if forceSimulate || !cfg.HasCredentials() {
		if !forceSimulate {
			log.Info("no API keys provided, running in simulated mode")
		}
		return NewSimulated(history, log), ModeSimulated, nil
	}

	if !cfg.Trading.Testnet {
		// Safety latch: mainnet trading moves real money.
		if os.Getenv("CONFIRM_REAL_MONEY") != "true" {
			return nil, "", fmt.Errorf("mainnet trading requires CONFIRM_REAL_MONEY=true in the environment")
		}
		log.Warn("connecting to Binance MAINNET with real funds")
	} else {
		log.Info("connecting to Binance testnet")
	}

	client := binance.NewClient(
		cfg.BaseURL(),
		cfg.API.Binance.APIKey,
		cfg.API.Binance.SecretKey,
		cfg.API.Binance.RecvWindowMS,
		log,
	)
	return NewLive(client, log), ModeLive, nil
}
