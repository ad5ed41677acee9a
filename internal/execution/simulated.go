package execution

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/domain"
	"github.com/predator-911/LakshyaKumar-binance-bot/internal/marketdata"
)

// Simulated fabricates order results from historical data instead of
// talking to the exchange. MARKET orders fill immediately at the last
// observed price; resting types stay NEW. Identifiers are deterministic.
type Simulated struct {
	history *marketdata.History
	log     *slog.Logger

	mu        sync.Mutex
	lastPrice map[string]float64
}

// NewSimulated creates a simulated gateway over the historical dataset.
func NewSimulated(history *marketdata.History, log *slog.Logger) *Simulated {
	return &Simulated{
		history:   history,
		log:       log,
		lastPrice: make(map[string]float64),
	}
}

// CurrentPrice serves the symbol's most recent historical close, then
// falls back to the per-symbol default.
func (s *Simulated) CurrentPrice(ctx context.Context, symbol string) (float64, error) {
	price, ok := s.history.LastClose(symbol)
	return s.observe(symbol, price, ok), nil
}

// StepPrice walks the symbol's historical rows forward, one row per
// call, clamping at the final row. TWAP slices use it so successive
// observations move through the dataset instead of quoting the same
// close every time.
func (s *Simulated) StepPrice(ctx context.Context, symbol string) (float64, error) {
	price, ok := s.history.NextClose(symbol)
	return s.observe(symbol, price, ok), nil
}

// observe records the served price so the next market fill matches it.
func (s *Simulated) observe(symbol string, price float64, ok bool) float64 {
	if !ok {
		price = marketdata.DefaultPrice(symbol)
		s.log.Debug("no historical data, using default price",
			slog.String("symbol", symbol), slog.Float64("price", price))
	}

	s.mu.Lock()
	s.lastPrice[symbol] = price
	s.mu.Unlock()
	return price
}

// CreateOrder fabricates the result the exchange would have returned.
func (s *Simulated) CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.OrderResult, error) {
	if err := req.Validate(); err != nil {
		return domain.OrderResult{}, err
	}

	result := domain.OrderResult{
		OrderID: simulatedID(req),
		Symbol:  req.Symbol,
		Side:    req.Side,
		Type:    req.Type,
		OrigQty: req.Quantity,
	}

	if req.Resting() {
		result.Status = domain.OrderStatusNew
		result.Price = req.Price
	} else {
		result.Status = domain.OrderStatusFilled
		result.ExecutedQty = req.Quantity
		result.Price = s.fillPrice(ctx, req.Symbol)
	}

	s.log.Info("SIMULATED: order placed",
		slog.String("order_id", result.OrderID),
		slog.String("symbol", result.Symbol),
		slog.String("side", result.Side),
		slog.String("type", result.Type),
		slog.String("status", result.Status))
	return result, nil
}

// SymbolExists accepts the default whitelist plus any symbol with
// historical rows.
func (s *Simulated) SymbolExists(ctx context.Context, symbol string) (bool, error) {
	return marketdata.KnownSymbol(symbol) || s.history.HasSymbol(symbol), nil
}

// fillPrice uses the last price this gateway served, so a market fill
// matches the price the caller just observed.
func (s *Simulated) fillPrice(ctx context.Context, symbol string) float64 {
	s.mu.Lock()
	price, ok := s.lastPrice[symbol]
	s.mu.Unlock()
	if ok {
		return price
	}
	if last, ok := s.history.LastClose(symbol); ok {
		return last
	}
	return marketdata.DefaultPrice(symbol)
}

// simulatedID builds a deterministic identifier from the request.
func simulatedID(req domain.OrderRequest) string {
	if req.ClientOrderID != "" {
		return "SIM_" + req.ClientOrderID
	}
	return fmt.Sprintf("SIM_%s_%s_%s_%v", req.Type, req.Symbol, req.Side, req.Quantity)
}
