package execution

import (
	"context"

	"github.com/predator-911/LakshyaKumar-binance-bot/internal/domain"
)

// Recorder is a Gateway stub for tests: it serves a fixed price,
// records every submission, and fails the scripted attempts.
type Recorder struct {
	Price  float64
	Prices []float64 // optional per-call prices; falls back to Price when exhausted
	// FailOn maps 1-based CreateOrder call numbers to the error returned.
	FailOn map[int]error
	// Missing symbols for SymbolExists.
	Unknown map[string]bool

	Orders     []domain.OrderRequest
	priceCalls int
	orderCalls int
}

func (r *Recorder) CurrentPrice(ctx context.Context, symbol string) (float64, error) {
	r.priceCalls++
	if n := r.priceCalls - 1; n < len(r.Prices) {
		return r.Prices[n], nil
	}
	return r.Price, nil
}

func (r *Recorder) CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.OrderResult, error) {
	r.orderCalls++
	if err, ok := r.FailOn[r.orderCalls]; ok {
		return domain.OrderResult{}, err
	}
	r.Orders = append(r.Orders, req)

	result := domain.OrderResult{
		OrderID: simulatedID(req),
		Symbol:  req.Symbol,
		Side:    req.Side,
		Type:    req.Type,
		OrigQty: req.Quantity,
		Price:   req.Price,
	}
	if req.Resting() {
		result.Status = domain.OrderStatusNew
	} else {
		result.Status = domain.OrderStatusFilled
		result.ExecutedQty = req.Quantity
		result.Price = r.lastPrice()
	}
	return result, nil
}

func (r *Recorder) SymbolExists(ctx context.Context, symbol string) (bool, error) {
	return !r.Unknown[symbol], nil
}

func (r *Recorder) lastPrice() float64 {
	if n := r.priceCalls - 1; n >= 0 && n < len(r.Prices) {
		return r.Prices[n]
	}
	return r.Price
}
