package execution

import (
	"context"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/domain"
)

// Mode tags journal entries and console output with the trading mode.
type Mode string

const (
	ModeLive      Mode = "LIVE"
	ModeSimulated Mode = "SIMULATED"
)

// Gateway is the exchange contract the placers and planners consume.
type Gateway interface {
	// CreateOrder submits a new order to the exchange.
	CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.OrderResult, error)

	// CurrentPrice returns the last price for a symbol.
	CurrentPrice(ctx context.Context, symbol string) (float64, error)

	// SymbolExists checks the exchange metadata for a tradable symbol.
	SymbolExists(ctx context.Context, symbol string) (bool, error)
}
