package execution

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/domain"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/infra/binance"
)

// Live adapts the Binance REST client to the Gateway interface.
type Live struct {
	client *binance.Client
	log    *slog.Logger
}

// NewLive creates a live gateway over a Binance client.
func NewLive(client *binance.Client, log *slog.Logger) *Live {
	return &Live{client: client, log: log}
}

// CreateOrder submits the order, tagging it with a client order ID so
// the attempt is traceable even if the response is lost.
func (l *Live) CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.OrderResult, error) {
	if err := req.Validate(); err != nil {
		return domain.OrderResult{}, err
	}
	if req.ClientOrderID == "" {
		req.ClientOrderID = uuid.NewString()
	}
	return l.client.CreateOrder(ctx, req)
}

// CurrentPrice returns the ticker price.
func (l *Live) CurrentPrice(ctx context.Context, symbol string) (float64, error) {
	return l.client.TickerPrice(ctx, symbol)
}

// SymbolExists checks the exchange metadata.
func (l *Live) SymbolExists(ctx context.Context, symbol string) (bool, error) {
	return l.client.SymbolListed(ctx, symbol)
}

// Close wipes the client credentials.
func (l *Live) Close() {
	l.client.Close()
}
